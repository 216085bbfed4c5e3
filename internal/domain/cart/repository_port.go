// internal/domain/cart/repository_port.go
package cart

import "context"

// Repository is a persistence port for Cart.
//
// Storage (Firestore):
// - collection: carts
// - docId: customer email
// - fields: catalogLines, cakeSpecIds, createdAt, updatedAt, expiresAt
//
// TTL:
// - Configure Firestore TTL on the "expiresAt" field.
// - expiresAt is refreshed on each cart mutation (handled by domain via touch()).
type Repository interface {
	// GetByCustomer returns (nil, nil) if the customer has no cart.
	GetByCustomer(ctx context.Context, customerID string) (*Cart, error)

	// Upsert saves the cart (create or update).
	Upsert(ctx context.Context, c *Cart) error

	// DeleteByCustomer deletes the cart (e.g., after order).
	DeleteByCustomer(ctx context.Context, customerID string) error
}
