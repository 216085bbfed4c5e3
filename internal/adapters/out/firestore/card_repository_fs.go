// internal/adapters/out/firestore/card_repository_fs.go
package firestore

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	paymentdom "patisserie/internal/domain/payment"
)

const cardCollection = "card_records"

// CardRepositoryFS implements payment.Repository using Firestore.
//
// Collection design:
// - collection: card_records
// - docId: normalized card number
//
// The card number keys the lookup; the remaining three fields are compared
// in memory. A number with no document, or a document whose other fields
// mismatch, both yield (nil, nil) so the caller cannot tell which check
// failed.
type CardRepositoryFS struct {
	Client *firestore.Client
}

func NewCardRepositoryFS(client *firestore.Client) *CardRepositoryFS {
	return &CardRepositoryFS{Client: client}
}

func (r *CardRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cardCollection)
}

// FindMatch expects already-normalized inputs (usecase responsibility).
func (r *CardRepositoryFS) FindMatch(ctx context.Context, holderName, cardNumber, expiry, cvv string) (*paymentdom.CardRecord, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("card_repository_fs: firestore client is nil")
	}
	if cardNumber == "" {
		return nil, nil
	}

	snap, err := r.col().Doc(cardNumber).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var rec paymentdom.CardRecord
	if err := snap.DataTo(&rec); err != nil {
		return nil, err
	}

	if !rec.Matches(holderName, cardNumber, expiry, cvv) {
		return nil, nil
	}
	return &rec, nil
}
