package db

import (
	"context"
	"log"
	"time"

	orderdom "patisserie/internal/domain/order"
)

// OrderProjectionRepository decorates an order.Repository so every write is
// mirrored into the Postgres read model. Projection is best-effort: a
// failed mirror write is logged, never surfaced, because the document store
// already committed.
type OrderProjectionRepository struct {
	inner   orderdom.Repository
	revenue *OrderRevenuePG
}

func NewOrderProjectionRepository(inner orderdom.Repository, revenue *OrderRevenuePG) *OrderProjectionRepository {
	return &OrderProjectionRepository{inner: inner, revenue: revenue}
}

func (r *OrderProjectionRepository) GetByID(ctx context.Context, id string) (*orderdom.Order, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *OrderProjectionRepository) Create(ctx context.Context, o *orderdom.Order) error {
	if err := r.inner.Create(ctx, o); err != nil {
		return err
	}
	if err := r.revenue.Project(ctx, o); err != nil {
		log.Printf("[OrderProjection] WARN: project order %s failed: %v", o.ID, err)
	}
	return nil
}

func (r *OrderProjectionRepository) UpdateStatus(ctx context.Context, id string, st orderdom.Status) (*orderdom.Order, error) {
	o, err := r.inner.UpdateStatus(ctx, id, st)
	if err != nil {
		return nil, err
	}
	if err := r.revenue.Project(ctx, o); err != nil {
		log.Printf("[OrderProjection] WARN: project order %s failed: %v", id, err)
	}
	return o, nil
}

func (r *OrderProjectionRepository) Delete(ctx context.Context, id string) error {
	if err := r.inner.Delete(ctx, id); err != nil {
		return err
	}
	if err := r.revenue.Remove(ctx, id); err != nil {
		log.Printf("[OrderProjection] WARN: remove order %s from read model failed: %v", id, err)
	}
	return nil
}

func (r *OrderProjectionRepository) List(ctx context.Context) ([]orderdom.Order, error) {
	return r.inner.List(ctx)
}

func (r *OrderProjectionRepository) ListByCustomer(ctx context.Context, customerID string) ([]orderdom.Order, error) {
	return r.inner.ListByCustomer(ctx, customerID)
}

func (r *OrderProjectionRepository) CountByStatus(ctx context.Context, st orderdom.Status) (int, error) {
	return r.inner.CountByStatus(ctx, st)
}

func (r *OrderProjectionRepository) CountForCustomer(ctx context.Context, customerID string, st orderdom.Status) (int, error) {
	return r.inner.CountForCustomer(ctx, customerID, st)
}

func (r *OrderProjectionRepository) SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error) {
	return r.inner.SumCompletedInRange(ctx, from, to)
}
