// internal/adapters/out/firestore/cake_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	cakedom "patisserie/internal/domain/cake"
)

const cakeCollection = "cake_specs"

// CakeRepositoryFS implements cake.Repository using Firestore.
//
// Collection design:
// - collection: cake_specs
// - docId: spec id
type CakeRepositoryFS struct {
	Client *firestore.Client
}

func NewCakeRepositoryFS(client *firestore.Client) *CakeRepositoryFS {
	return &CakeRepositoryFS{Client: client}
}

func (r *CakeRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(cakeCollection)
}

// GetByID returns (nil, nil) when the spec does not exist.
func (r *CakeRepositoryFS) GetByID(ctx context.Context, id string) (*cakedom.Spec, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cake_repository_fs: firestore client is nil")
	}
	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, cakedom.ErrInvalidID
	}

	snap, err := r.col().Doc(sid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var s cakedom.Spec
	if err := snap.DataTo(&s); err != nil {
		return nil, err
	}
	s.ID = sid
	return &s, nil
}

func (r *CakeRepositoryFS) ListByCustomer(ctx context.Context, customerEmail string) ([]cakedom.Spec, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("cake_repository_fs: firestore client is nil")
	}
	email := strings.TrimSpace(customerEmail)
	if email == "" {
		return nil, cakedom.ErrInvalidCustomer
	}

	it := r.col().Where("customerEmail", "==", email).Documents(ctx)
	defer it.Stop()

	out := []cakedom.Spec{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var s cakedom.Spec
		if err := snap.DataTo(&s); err != nil {
			return nil, err
		}
		s.ID = snap.Ref.ID
		out = append(out, s)
	}
	return out, nil
}

func (r *CakeRepositoryFS) Create(ctx context.Context, s *cakedom.Spec) error {
	if r == nil || r.Client == nil {
		return errors.New("cake_repository_fs: firestore client is nil")
	}
	if s == nil {
		return errors.New("cake_repository_fs: spec is nil")
	}
	sid := strings.TrimSpace(s.ID)
	if sid == "" {
		return cakedom.ErrInvalidID
	}

	_, err := r.col().Doc(sid).Set(ctx, s)
	return err
}

func (r *CakeRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("cake_repository_fs: firestore client is nil")
	}
	sid := strings.TrimSpace(id)
	if sid == "" {
		return cakedom.ErrInvalidID
	}
	_, err := r.col().Doc(sid).Delete(ctx)
	return err
}
