// internal/adapters/out/firestore/catalog_repository_fs.go
package firestore

import (
	"context"
	"errors"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	catalogdom "patisserie/internal/domain/catalog"
)

const catalogCollection = "catalog_items"

// CatalogRepositoryFS implements catalog.Repository using Firestore.
//
// Collection design:
// - collection: catalog_items
// - docId: item id
//
// ReserveStock runs inside RunTransaction so the stock check and the
// decrement are one atomic unit (no oversubscription on the last units).
type CatalogRepositoryFS struct {
	Client *firestore.Client
}

func NewCatalogRepositoryFS(client *firestore.Client) *CatalogRepositoryFS {
	return &CatalogRepositoryFS{Client: client}
}

func (r *CatalogRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(catalogCollection)
}

func (r *CatalogRepositoryFS) GetByID(ctx context.Context, id string) (*catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("catalog_repository_fs: firestore client is nil")
	}
	iid := strings.TrimSpace(id)
	if iid == "" {
		return nil, catalogdom.ErrInvalidID
	}

	snap, err := r.col().Doc(iid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, catalogdom.ErrNotFound
		}
		return nil, err
	}

	var it catalogdom.Item
	if err := snap.DataTo(&it); err != nil {
		return nil, err
	}
	// docId is the source of truth
	it.ID = iid
	return &it, nil
}

func (r *CatalogRepositoryFS) List(ctx context.Context) ([]catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("catalog_repository_fs: firestore client is nil")
	}

	it := r.col().OrderBy("name", firestore.Asc).Documents(ctx)
	defer it.Stop()

	out := []catalogdom.Item{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var item catalogdom.Item
		if err := snap.DataTo(&item); err != nil {
			return nil, err
		}
		item.ID = snap.Ref.ID
		out = append(out, item)
	}
	return out, nil
}

func (r *CatalogRepositoryFS) Upsert(ctx context.Context, it *catalogdom.Item) error {
	if r == nil || r.Client == nil {
		return errors.New("catalog_repository_fs: firestore client is nil")
	}
	if it == nil {
		return errors.New("catalog_repository_fs: item is nil")
	}
	iid := strings.TrimSpace(it.ID)
	if iid == "" {
		return catalogdom.ErrInvalidID
	}

	_, err := r.col().Doc(iid).Set(ctx, it)
	return err
}

func (r *CatalogRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("catalog_repository_fs: firestore client is nil")
	}
	iid := strings.TrimSpace(id)
	if iid == "" {
		return catalogdom.ErrInvalidID
	}
	_, err := r.col().Doc(iid).Delete(ctx)
	return err
}

// ReserveStock decrements stock for id by qty as one transaction:
// read → domain Reserve (validates sufficiency, flips availability at 0)
// → conditional write. Retried on contention by the Firestore client.
func (r *CatalogRepositoryFS) ReserveStock(ctx context.Context, id string, qty int) (*catalogdom.Item, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("catalog_repository_fs: firestore client is nil")
	}
	iid := strings.TrimSpace(id)
	if iid == "" {
		return nil, catalogdom.ErrInvalidID
	}
	if qty <= 0 {
		return nil, catalogdom.ErrInvalidQuantity
	}

	ref := r.col().Doc(iid)
	var reserved catalogdom.Item

	err := r.Client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return catalogdom.ErrNotFound
			}
			return err
		}

		var it catalogdom.Item
		if err := snap.DataTo(&it); err != nil {
			return err
		}
		it.ID = iid

		if err := it.Reserve(qty, time.Now().UTC()); err != nil {
			return err
		}

		reserved = it
		return tx.Set(ref, &it)
	})
	if err != nil {
		return nil, err
	}
	return &reserved, nil
}
