package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "patisserie/internal/domain/order"
)

func completedOrder(t *testing.T, id string, total int, orderedAt time.Time) orderdom.Order {
	t.Helper()
	o, err := orderdom.New(id, "marie@example.com", []orderdom.LineItem{
		orderdom.NewInventoryLineItem(orderdom.InventoryLine{
			ItemID: "it-1", Name: "Macaron box", UnitPrice: total, Qty: 1,
		}),
	}, orderedAt)
	require.NoError(t, err)
	o.MarkCompleted()
	return o
}

func pendingOrder(t *testing.T, id string, total int, orderedAt time.Time) orderdom.Order {
	t.Helper()
	o, err := orderdom.New(id, "marie@example.com", []orderdom.LineItem{
		orderdom.NewInventoryLineItem(orderdom.InventoryLine{
			ItemID: "it-1", Name: "Macaron box", UnitPrice: total, Qty: 1,
		}),
	}, orderedAt)
	require.NoError(t, err)
	return o
}

func TestMarkCompleted(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(pendingOrder(t, "ord-1", 2700, at))
	uc := NewOrderUsecase(repo)

	o, err := uc.MarkCompleted(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusCompleted, o.Status)

	// idempotent: completing again succeeds with the same state
	o, err = uc.MarkCompleted(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusCompleted, o.Status)

	_, err = uc.MarkCompleted(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestDeleteOrder(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(pendingOrder(t, "ord-1", 2700, at))
	uc := NewOrderUsecase(repo)

	require.NoError(t, uc.Delete(context.Background(), "ord-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "ord-1"), ErrOrderNotFound)
}

func TestCountByStatus(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(
		pendingOrder(t, "ord-1", 100, at),
		pendingOrder(t, "ord-2", 200, at),
		completedOrder(t, "ord-3", 300, at),
	)
	uc := NewOrderUsecase(repo)

	n, err := uc.CountByStatus(context.Background(), orderdom.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = uc.CountForCustomer(context.Background(), "marie@example.com", orderdom.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMonthlyRevenueGrowth(t *testing.T) {
	feb := time.Date(2026, 2, 14, 12, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(
		completedOrder(t, "ord-1", 1000, feb),
		completedOrder(t, "ord-2", 1500, mar),
		pendingOrder(t, "ord-3", 9999, mar), // pending orders never count
	)
	uc := NewOrderUsecase(repo)

	rep, err := uc.MonthlyRevenue(context.Background(), 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1500, rep.Revenue)
	assert.Equal(t, 1000, rep.PreviousRevenue)
	assert.Equal(t, 50, rep.GrowthPercent)
}

func TestMonthlyRevenueZeroBaseline(t *testing.T) {
	mar := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(completedOrder(t, "ord-1", 1500, mar))
	uc := NewOrderUsecase(repo)

	// first month with revenue reports +100, not Inf
	rep, err := uc.MonthlyRevenue(context.Background(), 3, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.PreviousRevenue)
	assert.Equal(t, 100, rep.GrowthPercent)

	// both months empty reports 0
	rep, err = uc.MonthlyRevenue(context.Background(), 7, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Revenue)
	assert.Equal(t, 0, rep.GrowthPercent)
}

func TestMonthlyRevenueValidation(t *testing.T) {
	uc := NewOrderUsecase(newMemOrderRepo())

	_, err := uc.MonthlyRevenue(context.Background(), 0, 2026)
	assert.ErrorIs(t, err, ErrOrderInvalidArgument)

	_, err = uc.MonthlyRevenue(context.Background(), 13, 2026)
	assert.ErrorIs(t, err, ErrOrderInvalidArgument)
}
