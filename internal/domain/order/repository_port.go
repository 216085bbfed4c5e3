// internal/domain/order/repository_port.go
package order

import (
	"context"
	"time"
)

// Repository is a persistence port for orders.
//
// Storage (Firestore):
// - collection: orders
// - docId: order id
//
// Deletion is hard (no soft-delete / audit trail); that is the documented
// behavior of the admin surface.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Order, error)
	Create(ctx context.Context, o *Order) error

	// UpdateStatus overwrites the status field only.
	UpdateStatus(ctx context.Context, id string, st Status) (*Order, error)

	Delete(ctx context.Context, id string) error

	List(ctx context.Context) ([]Order, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Order, error)

	CountByStatus(ctx context.Context, st Status) (int, error)
	CountForCustomer(ctx context.Context, customerID string, st Status) (int, error)

	// SumCompletedInRange sums TotalPrice over completed orders with
	// orderedAt in [from, to).
	SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error)
}
