// internal/domain/cake/repository_port.go
package cake

import "context"

// Repository is a persistence port for cake specs.
//
// Storage (Firestore):
// - collection: cake_specs
// - docId: spec id
type Repository interface {
	// GetByID returns (nil, nil) if not found (nil policy).
	GetByID(ctx context.Context, id string) (*Spec, error)
	ListByCustomer(ctx context.Context, customerEmail string) ([]Spec, error)
	Create(ctx context.Context, s *Spec) error
	Delete(ctx context.Context, id string) error
}
