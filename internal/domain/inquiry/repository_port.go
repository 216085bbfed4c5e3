// internal/domain/inquiry/repository_port.go
package inquiry

import "context"

// Repository is a persistence port for contact inquiries.
//
// Storage (Firestore):
// - collection: inquiries
// - docId: inquiry id
type Repository interface {
	GetByID(ctx context.Context, id string) (*Inquiry, error)
	Create(ctx context.Context, q *Inquiry) error
	ListAll(ctx context.Context) ([]Inquiry, error)
	Delete(ctx context.Context, id string) error
}
