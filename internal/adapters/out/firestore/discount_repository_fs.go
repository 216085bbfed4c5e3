// internal/adapters/out/firestore/discount_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	discountdom "patisserie/internal/domain/discount"
)

const discountCollection = "discount_grants"

// DiscountRepositoryFS implements discount.Repository using Firestore.
//
// Collection design:
// - collection: discount_grants
// - docId: code (codes are unique by construction)
//
// Redeem runs inside RunTransaction: the unused-check and the used=true
// write are one atomic unit, so concurrent redemptions of the same code
// cannot both succeed.
type DiscountRepositoryFS struct {
	Client *firestore.Client
}

func NewDiscountRepositoryFS(client *firestore.Client) *DiscountRepositoryFS {
	return &DiscountRepositoryFS{Client: client}
}

func (r *DiscountRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(discountCollection)
}

// GetByCode returns (nil, nil) when the code is unknown.
func (r *DiscountRepositoryFS) GetByCode(ctx context.Context, code string) (*discountdom.Grant, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("discount_repository_fs: firestore client is nil")
	}
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, discountdom.ErrInvalidCode
	}

	snap, err := r.col().Doc(c).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var g discountdom.Grant
	if err := snap.DataTo(&g); err != nil {
		return nil, err
	}
	g.Code = c
	return &g, nil
}

func (r *DiscountRepositoryFS) Create(ctx context.Context, g *discountdom.Grant) error {
	if r == nil || r.Client == nil {
		return errors.New("discount_repository_fs: firestore client is nil")
	}
	if g == nil {
		return errors.New("discount_repository_fs: grant is nil")
	}
	c := strings.TrimSpace(g.Code)
	if c == "" {
		return discountdom.ErrInvalidCode
	}

	// Create, not Set: a collision on docId must fail loudly so the caller
	// can regenerate the code.
	_, err := r.col().Doc(c).Create(ctx, g)
	return err
}

// Redeem flips used=false → used=true atomically. Unknown codes and already
// used codes both surface as ErrInvalidCode (callers must not be able to
// probe which grants exist).
func (r *DiscountRepositoryFS) Redeem(ctx context.Context, code string) (*discountdom.Grant, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("discount_repository_fs: firestore client is nil")
	}
	c := strings.TrimSpace(code)
	if c == "" {
		return nil, discountdom.ErrInvalidCode
	}

	ref := r.col().Doc(c)
	var redeemed discountdom.Grant

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return discountdom.ErrInvalidCode
			}
			return err
		}

		var g discountdom.Grant
		if err := snap.DataTo(&g); err != nil {
			return err
		}
		g.Code = c

		if err := g.Redeem(); err != nil {
			return err
		}

		redeemed = g
		return tx.Set(ref, &g)
	})
	if err != nil {
		if errors.Is(err, discountdom.ErrAlreadyUsed) {
			return nil, discountdom.ErrInvalidCode
		}
		return nil, err
	}
	return &redeemed, nil
}
