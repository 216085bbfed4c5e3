package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	orderdom "patisserie/internal/domain/order"
)

// OrderRevenuePG is the PostgreSQL reporting read model for orders.
//
// The document store remains the system of record; this table carries only
// the flat columns the revenue dashboard needs. Rows are projected
// synchronously by OrderProjectionRepository on every order write.
type OrderRevenuePG struct {
	DB *sql.DB
}

func NewOrderRevenuePG(db *sql.DB) *OrderRevenuePG {
	return &OrderRevenuePG{DB: db}
}

// EnsureSchema creates the read-model table when it does not exist. Called
// once at startup.
func (r *OrderRevenuePG) EnsureSchema(ctx context.Context) error {
	if r == nil || r.DB == nil {
		return errors.New("order_revenue_pg: db is nil")
	}
	const q = `
CREATE TABLE IF NOT EXISTS order_revenue (
  order_id    TEXT PRIMARY KEY,
  customer_id TEXT NOT NULL,
  status      TEXT NOT NULL,
  total_price BIGINT NOT NULL,
  ordered_at  TIMESTAMPTZ NOT NULL
)`
	_, err := r.DB.ExecContext(ctx, q)
	return err
}

// Project upserts one order row.
func (r *OrderRevenuePG) Project(ctx context.Context, o *orderdom.Order) error {
	if r == nil || r.DB == nil {
		return errors.New("order_revenue_pg: db is nil")
	}
	if o == nil {
		return errors.New("order_revenue_pg: order is nil")
	}
	const q = `
INSERT INTO order_revenue (order_id, customer_id, status, total_price, ordered_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (order_id) DO UPDATE SET
  status      = EXCLUDED.status,
  total_price = EXCLUDED.total_price`
	_, err := r.DB.ExecContext(ctx, q,
		strings.TrimSpace(o.ID),
		o.CustomerID,
		string(o.Status),
		o.TotalPrice,
		o.OrderedAt.UTC(),
	)
	return err
}

func (r *OrderRevenuePG) Remove(ctx context.Context, orderID string) error {
	if r == nil || r.DB == nil {
		return errors.New("order_revenue_pg: db is nil")
	}
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM order_revenue WHERE order_id = $1`,
		strings.TrimSpace(orderID),
	)
	return err
}

// SumCompletedInRange implements usecase.RevenueReader: Σ total_price over
// completed orders with ordered_at in [from, to).
func (r *OrderRevenuePG) SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error) {
	if r == nil || r.DB == nil {
		return 0, errors.New("order_revenue_pg: db is nil")
	}
	const q = `
SELECT COALESCE(SUM(total_price), 0)
FROM order_revenue
WHERE status = $1
  AND ordered_at >= $2
  AND ordered_at <  $3`

	var sum int
	err := r.DB.QueryRowContext(ctx, q,
		string(orderdom.StatusCompleted), from.UTC(), to.UTC(),
	).Scan(&sum)
	if err != nil {
		return 0, err
	}
	return sum, nil
}
