package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "patisserie/internal/domain/order"
)

func sampleOrder(t *testing.T) orderdom.Order {
	t.Helper()
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	o, err := orderdom.New("ord-1", "marie@example.com", []orderdom.LineItem{
		orderdom.NewInventoryLineItem(orderdom.InventoryLine{
			ItemID: "it-1", Name: "Macaron box", UnitPrice: 600, Qty: 2,
		}),
		orderdom.NewCakeLineItem(orderdom.CakeLine{
			CakeSpecID:   "cake-1",
			Event:        "birthday",
			BaseType:     "chocolate",
			RequiredDate: at.AddDate(0, 0, 7),
			Size:         "medium",
			Price:        1500,
		}),
	}, at)
	require.NoError(t, err)
	return o
}

func TestRenderProducesPDF(t *testing.T) {
	r := NewInvoiceRendererFPDF()

	out, err := r.Render(sampleOrder(t))
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestRenderIsDeterministicPerOrder(t *testing.T) {
	r := NewInvoiceRendererFPDF()
	o := sampleOrder(t)

	a, err := r.Render(o)
	require.NoError(t, err)
	b, err := r.Render(o)
	require.NoError(t, err)
	assert.Equal(t, len(a), len(b))
}
