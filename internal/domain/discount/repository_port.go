// internal/domain/discount/repository_port.go
package discount

import "context"

// Repository is a persistence port for discount grants.
//
// Storage (Firestore):
// - collection: discount_grants
// - docId: code
//
// Redeem must be atomic: the "is it still unused?" read and the used=true
// write happen in one transaction so a code can never be redeemed twice.
type Repository interface {
	// GetByCode returns (nil, nil) if no grant matches.
	GetByCode(ctx context.Context, code string) (*Grant, error)

	Create(ctx context.Context, g *Grant) error

	// Redeem marks the grant used-once; returns ErrInvalidCode when the code
	// is unknown or already used.
	Redeem(ctx context.Context, code string) (*Grant, error)
}
