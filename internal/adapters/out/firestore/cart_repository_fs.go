// internal/adapters/out/firestore/cart_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cartdom "patisserie/internal/domain/cart"
)

const cartCollection = "carts"

// CartRepositoryFS implements cart.Repository using Firestore.
//
// Collection design:
// - collection: carts
// - docId: customer email (one live cart per customer)
// - TTL: configure Firestore TTL on the "expiresAt" field.
type CartRepositoryFS struct {
	Client *firestore.Client
}

func NewCartRepositoryFS(client *firestore.Client) *CartRepositoryFS {
	return &CartRepositoryFS{Client: client}
}

func (r *CartRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cartCollection)
}

// GetByCustomer returns (nil, nil) when the customer has no cart document.
func (r *CartRepositoryFS) GetByCustomer(ctx context.Context, customerID string) (*cartdom.Cart, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cart_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, errors.New("cart_repository_fs: customerID is empty")
	}

	snap, err := r.col().Doc(cid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var c cartdom.Cart
	if err := snap.DataTo(&c); err != nil {
		return nil, err
	}
	c.ID = cid
	return &c, nil
}

func (r *CartRepositoryFS) Upsert(ctx context.Context, c *cartdom.Cart) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	if c == nil {
		return errors.New("cart_repository_fs: cart is nil")
	}
	cid := strings.TrimSpace(c.ID)
	if cid == "" {
		return errors.New("cart_repository_fs: customerID is empty")
	}

	_, err := r.col().Doc(cid).Set(ctx, c)
	return err
}

func (r *CartRepositoryFS) DeleteByCustomer(ctx context.Context, customerID string) error {
	if r == nil || r.Client == nil {
		return errors.New("cart_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return errors.New("cart_repository_fs: customerID is empty")
	}
	_, err := r.col().Doc(cid).Delete(ctx)
	return err
}
