package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	orderdom "patisserie/internal/domain/order"
)

type stubRenderer struct {
	out []byte
	err error
}

func (r stubRenderer) Render(o orderdom.Order) ([]byte, error) { return r.out, r.err }

type captureStore struct {
	orderID string
	pdf     []byte
	url     string
	err     error
}

func (s *captureStore) Put(ctx context.Context, orderID string, pdf []byte) (string, error) {
	s.orderID = orderID
	s.pdf = pdf
	return s.url, s.err
}

func TestInvoiceRender(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(pendingOrder(t, "ord-1", 2700, at))
	store := &captureStore{url: "https://storage.googleapis.com/invoices/invoice_ord-1.pdf"}
	uc := NewInvoiceUsecase(repo, stubRenderer{out: []byte("%PDF-1.3 fake")}, store)

	url, err := uc.Render(context.Background(), "ord-1")
	require.NoError(t, err)
	assert.Equal(t, store.url, url)
	assert.Equal(t, "ord-1", store.orderID)
	assert.NotEmpty(t, store.pdf)
}

func TestInvoiceRenderOrderNotFound(t *testing.T) {
	uc := NewInvoiceUsecase(newMemOrderRepo(), stubRenderer{out: []byte("x")}, &captureStore{})

	_, err := uc.Render(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, ErrInvoiceOrderNotFound)

	_, err = uc.Render(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvoiceInvalidArgument)
}

func TestInvoiceRenderNotConfigured(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(pendingOrder(t, "ord-1", 2700, at))

	uc := NewInvoiceUsecase(repo, nil, &captureStore{})
	_, err := uc.Render(context.Background(), "ord-1")
	assert.ErrorIs(t, err, ErrInvoiceNotConfigured)
}

func TestInvoiceRenderStoreFailure(t *testing.T) {
	at := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := newMemOrderRepo(pendingOrder(t, "ord-1", 2700, at))
	store := &captureStore{err: errors.New("bucket gone")}
	uc := NewInvoiceUsecase(repo, stubRenderer{out: []byte("x")}, store)

	_, err := uc.Render(context.Background(), "ord-1")
	assert.Error(t, err)
}
