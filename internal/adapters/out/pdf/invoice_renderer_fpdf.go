// internal/adapters/out/pdf/invoice_renderer_fpdf.go
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	orderdom "patisserie/internal/domain/order"
)

const (
	storeName    = "Patisserie"
	invoiceTitle = "INVOICE"
)

// InvoiceRendererFPDF lays out the fixed invoice template: store header,
// order metadata, line-item table, grand total. Prices are printed from the
// frozen order; nothing is re-read or re-priced here.
type InvoiceRendererFPDF struct{}

func NewInvoiceRendererFPDF() *InvoiceRendererFPDF {
	return &InvoiceRendererFPDF{}
}

func (r *InvoiceRendererFPDF) Render(o orderdom.Order) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Invoice %s", o.ID), false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, storeName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 14)
	pdf.CellFormat(0, 8, invoiceTitle, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	// Order metadata
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Order ID: %s", o.ID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Customer: %s", o.CustomerID), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Ordered at: %s", o.OrderedAt.Format("2006-01-02 15:04 MST")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", o.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(90, 8, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Line total", "1", 1, "R", true, 0, "")

	// Line items
	pdf.SetFont("Helvetica", "", 10)
	for _, li := range o.Items {
		name, qty, unit, line := describeLine(li)
		pdf.CellFormat(90, 8, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 8, fmt.Sprintf("%d", qty), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 8, formatMoney(unit), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 8, formatMoney(line), "1", 1, "R", false, 0, "")
	}

	// Total
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 9, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 9, formatMoney(o.TotalPrice), "1", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Thank you for your order.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("invoice_renderer: %w", err)
	}
	return buf.Bytes(), nil
}

func describeLine(li orderdom.LineItem) (name string, qty, unit, line int) {
	switch li.Kind {
	case orderdom.LineKindCake:
		c := li.Cake
		if c == nil {
			return "custom cake", 0, 0, 0
		}
		parts := []string{}
		if strings.TrimSpace(c.Event) != "" {
			parts = append(parts, c.Event)
		}
		if strings.TrimSpace(c.Size) != "" {
			parts = append(parts, c.Size)
		}
		name = "Custom cake"
		if len(parts) > 0 {
			name = fmt.Sprintf("Custom cake (%s)", strings.Join(parts, ", "))
		}
		return name, c.Qty, c.Price, c.Price * c.Qty
	case orderdom.LineKindInventory:
		v := li.Inventory
		if v == nil {
			return "item", 0, 0, 0
		}
		return v.Name, v.Qty, v.UnitPrice, v.LinePrice
	}
	return "item", 0, 0, 0
}

func formatMoney(v int) string {
	return fmt.Sprintf("%d", v)
}
