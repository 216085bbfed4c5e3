// internal/domain/payment/repository_port.go
package payment

import "context"

// Repository is a read-only port over the card verification records.
//
// Storage (Firestore):
// - collection: card_records
// - docId: normalized card number
type Repository interface {
	// FindMatch returns the record matching all four normalized fields, or
	// (nil, nil) when none does.
	FindMatch(ctx context.Context, holderName, cardNumber, expiry, cvv string) (*CardRecord, error)
}
