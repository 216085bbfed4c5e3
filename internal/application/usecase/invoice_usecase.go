// internal/application/usecase/invoice_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	orderdom "patisserie/internal/domain/order"
)

var (
	ErrInvoiceInvalidArgument = errors.New("invoice_usecase: invalid argument")
	ErrInvoiceOrderNotFound   = errors.New("invoice_usecase: order not found")
	ErrInvoiceNotConfigured   = errors.New("invoice_usecase: renderer is not configured")
)

// InvoiceRenderer lays out the fixed invoice template (header, line-item
// table, total, footer) from a materialized order.
type InvoiceRenderer interface {
	Render(o orderdom.Order) ([]byte, error)
}

// InvoiceArtifactStore persists the rendered document under a deterministic
// path keyed by order identity and returns a URL for it. Re-rendering
// overwrites the prior artifact (not versioned).
type InvoiceArtifactStore interface {
	Put(ctx context.Context, orderID string, pdf []byte) (string, error)
}

// InvoiceUsecase produces the printable invoice for an order. The invoice
// is a derived artifact: it is regenerated from the frozen Order on demand,
// never stored as structured data.
type InvoiceUsecase struct {
	orders   orderdom.Repository
	renderer InvoiceRenderer
	store    InvoiceArtifactStore
}

func NewInvoiceUsecase(orders orderdom.Repository, renderer InvoiceRenderer, store InvoiceArtifactStore) *InvoiceUsecase {
	return &InvoiceUsecase{orders: orders, renderer: renderer, store: store}
}

// Render renders the invoice for orderID and returns the artifact URL.
func (uc *InvoiceUsecase) Render(ctx context.Context, orderID string) (string, error) {
	oid := strings.TrimSpace(orderID)
	if oid == "" {
		return "", ErrInvoiceInvalidArgument
	}
	if uc.renderer == nil || uc.store == nil {
		return "", ErrInvoiceNotConfigured
	}

	o, err := uc.orders.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, orderdom.ErrNotFound) {
			return "", ErrInvoiceOrderNotFound
		}
		return "", err
	}
	if o == nil {
		return "", ErrInvoiceOrderNotFound
	}

	pdf, err := uc.renderer.Render(*o)
	if err != nil {
		return "", fmt.Errorf("invoice_usecase: render failed: %w", err)
	}

	url, err := uc.store.Put(ctx, oid, pdf)
	if err != nil {
		return "", fmt.Errorf("invoice_usecase: store failed: %w", err)
	}
	return url, nil
}
