// internal/domain/feedback/repository_port.go
package feedback

import "context"

// Repository is a persistence port for feedback.
//
// Storage (Firestore):
// - collection: feedbacks
// - docId: feedback id
type Repository interface {
	GetByID(ctx context.Context, id string) (*Feedback, error)
	Create(ctx context.Context, f *Feedback) error
	// ListApproved returns feedback visible to the storefront.
	ListApproved(ctx context.Context) ([]Feedback, error)
	// ListAll returns everything (admin moderation view).
	ListAll(ctx context.Context) ([]Feedback, error)
	SetApproved(ctx context.Context, id string, approved bool) (*Feedback, error)
	// Delete is hard (moderation reject).
	Delete(ctx context.Context, id string) error
}
