// internal/domain/catalog/repository_port.go
package catalog

import "context"

// Repository is a persistence port for catalog items.
//
// Storage (Firestore):
// - collection: catalog_items
// - docId: item id
//
// ReserveStock must be an atomic decrement-if-sufficient: the read of the
// current stock and the conditional write happen inside one transaction, so
// two near-simultaneous "last unit" purchases cannot both succeed.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]Item, error)
	Upsert(ctx context.Context, it *Item) error
	Delete(ctx context.Context, id string) error

	// ReserveStock decrements stock for id by qty.
	// Returns ErrNotFound / ErrInsufficientStock. No partial decrement.
	ReserveStock(ctx context.Context, id string, qty int) (*Item, error)
}
