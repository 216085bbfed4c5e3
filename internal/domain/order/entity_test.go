package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func inventoryLine(id string, unitPrice, qty int) LineItem {
	return NewInventoryLineItem(InventoryLine{
		ItemID:    id,
		Name:      "Item " + id,
		UnitPrice: unitPrice,
		Qty:       qty,
	})
}

func cakeLine(id string, price int) LineItem {
	return NewCakeLineItem(CakeLine{
		CakeSpecID:   id,
		Event:        "birthday",
		BaseType:     "chocolate",
		RequiredDate: testNow.AddDate(0, 0, 7),
		Size:         "medium",
		Price:        price,
	})
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus(" Pending ")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	st, err = ParseStatus("COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, st)

	_, err = ParseStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestNewOrderComputesTotal(t *testing.T) {
	o, err := New("ord-1", "marie@example.com", []LineItem{
		inventoryLine("it-1", 600, 2),
		cakeLine("cake-1", 1500),
	}, testNow)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, 2700, o.TotalPrice)

	sum, err := o.Sum()
	require.NoError(t, err)
	assert.Equal(t, o.TotalPrice, sum)
}

func TestNewOrderValidation(t *testing.T) {
	_, err := New("ord-1", "marie@example.com", nil, testNow)
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = New("", "marie@example.com", []LineItem{inventoryLine("it-1", 600, 1)}, testNow)
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = New("ord-1", "", []LineItem{inventoryLine("it-1", 600, 1)}, testNow)
	assert.ErrorIs(t, err, ErrInvalidCustomer)
}

func TestLineItemValidate(t *testing.T) {
	// line price must equal unitPrice × qty
	bad := LineItem{Kind: LineKindInventory, Inventory: &InventoryLine{
		ItemID: "it-1", Name: "x", UnitPrice: 100, Qty: 2, LinePrice: 300,
	}}
	_, err := New("ord-1", "marie@example.com", []LineItem{bad}, testNow)
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	// exactly one variant may be set
	both := LineItem{Kind: LineKindCake,
		Cake:      &CakeLine{CakeSpecID: "cake-1", Price: 100, Qty: 1},
		Inventory: &InventoryLine{ItemID: "it-1", Name: "x", UnitPrice: 1, Qty: 1, LinePrice: 1},
	}
	_, err = New("ord-1", "marie@example.com", []LineItem{both}, testNow)
	assert.ErrorIs(t, err, ErrInvalidLineItem)

	_, err = LineItem{Kind: "voucher"}.Price()
	assert.ErrorIs(t, err, ErrInvalidLineItem)
}

func TestMarkCompletedIdempotent(t *testing.T) {
	o, err := New("ord-1", "marie@example.com", []LineItem{inventoryLine("it-1", 600, 1)}, testNow)
	require.NoError(t, err)

	o.MarkCompleted()
	assert.Equal(t, StatusCompleted, o.Status)

	o.MarkCompleted()
	assert.Equal(t, StatusCompleted, o.Status)
}
