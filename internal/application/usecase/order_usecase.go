// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	orderdom "patisserie/internal/domain/order"
)

var (
	ErrOrderInvalidArgument = errors.New("order_usecase: invalid argument")
	ErrOrderNotFound        = errors.New("order_usecase: not found")
)

// RevenueReader is an outbound port for the revenue aggregate. The default
// implementation is the order repository itself; a SQL read model can be
// injected for reporting-heavy deployments.
type RevenueReader interface {
	SumCompletedInRange(ctx context.Context, from, to time.Time) (int, error)
}

// OrderUsecase is the order lifecycle tracker: status transitions plus
// aggregate views (counts, revenue-by-month).
type OrderUsecase struct {
	repo    orderdom.Repository
	revenue RevenueReader
}

func NewOrderUsecase(repo orderdom.Repository) *OrderUsecase {
	return &OrderUsecase{repo: repo, revenue: repo}
}

// NewOrderUsecaseWithRevenue injects a dedicated reporting reader
// (e.g. the Postgres read model).
func NewOrderUsecaseWithRevenue(repo orderdom.Repository, revenue RevenueReader) *OrderUsecase {
	if revenue == nil {
		revenue = repo
	}
	return &OrderUsecase{repo: repo, revenue: revenue}
}

func (uc *OrderUsecase) Get(ctx context.Context, id string) (*orderdom.Order, error) {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.repo.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o == nil {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (uc *OrderUsecase) List(ctx context.Context) ([]orderdom.Order, error) {
	return uc.repo.List(ctx)
}

func (uc *OrderUsecase) ListByCustomer(ctx context.Context, customerID string) ([]orderdom.Order, error) {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, ErrOrderInvalidArgument
	}
	return uc.repo.ListByCustomer(ctx, cid)
}

// MarkCompleted sets status=completed. pending → completed is the only
// transition; re-completing an already completed order is idempotent.
func (uc *OrderUsecase) MarkCompleted(ctx context.Context, id string) (*orderdom.Order, error) {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return nil, ErrOrderInvalidArgument
	}
	o, err := uc.repo.UpdateStatus(ctx, oid, orderdom.StatusCompleted)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// Delete hard-deletes the order (admin only; bypasses the state machine,
// no tombstone/audit trail).
func (uc *OrderUsecase) Delete(ctx context.Context, id string) error {
	oid := strings.TrimSpace(id)
	if oid == "" {
		return ErrOrderInvalidArgument
	}
	if err := uc.repo.Delete(ctx, oid); err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (uc *OrderUsecase) CountByStatus(ctx context.Context, st orderdom.Status) (int, error) {
	return uc.repo.CountByStatus(ctx, st)
}

func (uc *OrderUsecase) CountForCustomer(ctx context.Context, customerID string, st orderdom.Status) (int, error) {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return 0, ErrOrderInvalidArgument
	}
	return uc.repo.CountForCustomer(ctx, cid, st)
}

// MonthlyRevenueReport is the admin revenue aggregate for one month.
type MonthlyRevenueReport struct {
	Month           int `json:"month"`
	Year            int `json:"year"`
	Revenue         int `json:"revenue"`
	PreviousRevenue int `json:"previousRevenue"`
	// GrowthPercent versus the preceding month. A zero previous-month
	// baseline reports +100 by convention (never Inf/NaN), 0 when both
	// months are empty.
	GrowthPercent int `json:"growthPercent"`
}

// MonthlyRevenue sums total_price over completed orders in (month, year)
// and computes percentage growth versus the immediately preceding month.
func (uc *OrderUsecase) MonthlyRevenue(ctx context.Context, month, year int) (*MonthlyRevenueReport, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrOrderInvalidArgument
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)
	prevFrom := from.AddDate(0, -1, 0)

	cur, err := uc.revenue.SumCompletedInRange(ctx, from, to)
	if err != nil {
		return nil, err
	}
	prev, err := uc.revenue.SumCompletedInRange(ctx, prevFrom, from)
	if err != nil {
		return nil, err
	}

	growth := 0
	switch {
	case prev == 0 && cur > 0:
		growth = 100
	case prev > 0:
		growth = (cur - prev) * 100 / prev
	}

	return &MonthlyRevenueReport{
		Month:           month,
		Year:            year,
		Revenue:         cur,
		PreviousRevenue: prev,
		GrowthPercent:   growth,
	}, nil
}
