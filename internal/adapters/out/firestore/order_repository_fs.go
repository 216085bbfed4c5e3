// internal/adapters/out/firestore/order_repository_fs.go
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

	orderdom "patisserie/internal/domain/order"
)

const orderCollection = "orders"

// OrderRepositoryFS implements order.Repository using Firestore.
//
// Collection design:
// - collection: orders
// - docId: order id
//
// Aggregates (counts, revenue sums) iterate matching documents rather than
// using server-side aggregation queries; order volume is small enough that
// this is the simpler correct choice. A Postgres read model can be swapped
// in for revenue via the usecase's RevenueReader port.
type OrderRepositoryFS struct {
	Client *firestore.Client
}

func NewOrderRepositoryFS(client *firestore.Client) *OrderRepositoryFS {
	return &OrderRepositoryFS{Client: client}
}

func (r *OrderRepositoryFS) col() *firestore.CollectionRef {
	return r.Client.Collection(orderCollection)
}

func (r *OrderRepositoryFS) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, orderdom.ErrInvalidID
	}

	snap, err := r.col().Doc(oid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}

	var o orderdom.Order
	if err := snap.DataTo(&o); err != nil {
		return nil, err
	}
	o.ID = oid
	return &o, nil
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o *orderdom.Order) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	if o == nil {
		return errors.New("order_repository_fs: order is nil")
	}
	oid := strings.TrimSpace(o.ID)
	if oid == "" {
		return orderdom.ErrInvalidID
	}

	_, err := r.col().Doc(oid).Create(ctx, o)
	return err
}

// UpdateStatus overwrites the status field only, then returns the fresh
// document. NotFound from the update maps to the domain sentinel.
func (r *OrderRepositoryFS) UpdateStatus(ctx context.Context, id string, st orderdom.Status) (*orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, orderdom.ErrInvalidID
	}

	ref := r.col().Doc(oid)
	_, err := ref.Update(ctx, []firestore.Update{
		{Path: "status", Value: string(st)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, orderdom.ErrNotFound
		}
		return nil, err
	}

	return r.GetByID(ctx, oid)
}

func (r *OrderRepositoryFS) Delete(ctx context.Context, id string) error {
	if r == nil || r.Client == nil {
		return errors.New("order_repository_fs: firestore client is nil")
	}
	oid := strings.TrimSpace(id)
	if oid == "" {
		return orderdom.ErrInvalidID
	}

	// Delete on an absent doc is a no-op in Firestore; the admin surface
	// wants 404 there, so check existence first.
	ref := r.col().Doc(oid)
	if _, err := ref.Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return orderdom.ErrNotFound
		}
		return err
	}

	_, err := ref.Delete(ctx)
	return err
}

func (r *OrderRepositoryFS) List(ctx context.Context) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	q := r.col().OrderBy("orderedAt", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *OrderRepositoryFS) ListByCustomer(ctx context.Context, customerID string) ([]orderdom.Order, error) {
	if r == nil || r.Client == nil {
		return nil, errors.New("order_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, orderdom.ErrInvalidCustomer
	}
	q := r.col().Where("customerId", "==", cid).OrderBy("orderedAt", firestore.Desc)
	return r.collect(ctx, q)
}

func (r *OrderRepositoryFS) CountByStatus(ctx context.Context, st orderdom.Status) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("order_repository_fs: firestore client is nil")
	}
	q := r.col().Where("status", "==", string(st))
	return r.count(ctx, q)
}

func (r *OrderRepositoryFS) CountForCustomer(ctx context.Context, customerID string, st orderdom.Status) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("order_repository_fs: firestore client is nil")
	}
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return 0, orderdom.ErrInvalidCustomer
	}
	q := r.col().
		Where("customerId", "==", cid).
		Where("status", "==", string(st))
	return r.count(ctx, q)
}

// SumCompletedInRange sums totalPrice over completed orders with orderedAt
// in [from, to).
func (r *OrderRepositoryFS) SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error) {
	if r == nil || r.Client == nil {
		return 0, errors.New("order_repository_fs: firestore client is nil")
	}

	q := r.col().
		Where("status", "==", string(orderdom.StatusCompleted)).
		Where("orderedAt", ">=", from.UTC()).
		Where("orderedAt", "<", to.UTC())

	it := q.Documents(ctx)
	defer it.Stop()

	sum := 0
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, err
		}
		var o orderdom.Order
		if err := snap.DataTo(&o); err != nil {
			return 0, err
		}
		sum += o.TotalPrice
	}
	return sum, nil
}

func (r *OrderRepositoryFS) collect(ctx context.Context, q firestore.Query) ([]orderdom.Order, error) {
	it := q.Documents(ctx)
	defer it.Stop()

	out := []orderdom.Order{}
	for {
		snap, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		var o orderdom.Order
		if err := snap.DataTo(&o); err != nil {
			return nil, err
		}
		o.ID = snap.Ref.ID
		out = append(out, o)
	}
	return out, nil
}

func (r *OrderRepositoryFS) count(ctx context.Context, q firestore.Query) (int, error) {
	it := q.Documents(ctx)
	defer it.Stop()

	n := 0
	for {
		_, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}
