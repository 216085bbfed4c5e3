package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cakedom "patisserie/internal/domain/cake"
	catalogdom "patisserie/internal/domain/catalog"
)

var cartNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

const cartCustomer = "marie@example.com"

func newCartForTest(items ...catalogdom.Item) (*CartUsecase, *memCartRepo, *memCatalogRepo, *memCakeRepo) {
	carts := newMemCartRepo()
	catalog := newMemCatalogRepo(items...)
	cakes := newMemCakeRepo()
	uc := NewCartUsecaseWithClock(carts, catalog, cakes, fixedClock{cartNow})
	return uc, carts, catalog, cakes
}

func eclairItem(t *testing.T, stock int) catalogdom.Item {
	t.Helper()
	it, err := catalogdom.New("it-eclair", "Éclair", "items/eclair.jpg", 450, stock, cartNow)
	require.NoError(t, err)
	return it
}

func TestAddCatalogItemMergesQuantities(t *testing.T) {
	uc, _, _, _ := newCartForTest(eclairItem(t, 10))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 2)
	require.NoError(t, err)
	c, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 3)
	require.NoError(t, err)

	require.Len(t, c.CatalogLines, 1)
	assert.Equal(t, 5, c.CatalogLines[0].Qty)
}

func TestAddCatalogItemStockHint(t *testing.T) {
	uc, _, catalog, _ := newCartForTest(eclairItem(t, 3))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 2)
	require.NoError(t, err)

	// projected 2+2 exceeds stock 3
	_, err = uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 2)
	assert.ErrorIs(t, err, ErrCartOutOfStock)

	// the hint never reserves anything
	it, err := catalog.GetByID(context.Background(), "it-eclair")
	require.NoError(t, err)
	assert.Equal(t, 3, it.Stock)
}

func TestAddCatalogItemValidation(t *testing.T) {
	uc, _, _, _ := newCartForTest(eclairItem(t, 3))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "no-such-item", 1)
	assert.ErrorIs(t, err, ErrCartItemNotFound)

	_, err = uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 0)
	assert.ErrorIs(t, err, ErrCartInvalidQuantity)

	_, err = uc.AddCatalogItem(context.Background(), "", "it-eclair", 1)
	assert.ErrorIs(t, err, ErrCartInvalidArgument)
}

func TestUpdateQuantity(t *testing.T) {
	uc, _, _, _ := newCartForTest(eclairItem(t, 5))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 1)
	require.NoError(t, err)

	c, err := uc.UpdateQuantity(context.Background(), cartCustomer, "it-eclair", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, c.CatalogLines[0].Qty)

	_, err = uc.UpdateQuantity(context.Background(), cartCustomer, "it-eclair", 9)
	assert.ErrorIs(t, err, ErrCartOutOfStock)

	_, err = uc.UpdateQuantity(context.Background(), cartCustomer, "it-eclair", 0)
	assert.ErrorIs(t, err, ErrCartInvalidQuantity)
}

func TestRemoveItemIdempotent(t *testing.T) {
	uc, _, _, _ := newCartForTest(eclairItem(t, 5))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 1)
	require.NoError(t, err)

	c, err := uc.RemoveItem(context.Background(), cartCustomer, "it-eclair")
	require.NoError(t, err)
	assert.Empty(t, c.CatalogLines)

	// removing again is a no-op success
	c, err = uc.RemoveItem(context.Background(), cartCustomer, "it-eclair")
	require.NoError(t, err)
	assert.Empty(t, c.CatalogLines)
}

func TestAddCakeUnknownSpec(t *testing.T) {
	uc, _, _, _ := newCartForTest()

	_, err := uc.AddCake(context.Background(), cartCustomer, "no-such-cake")
	assert.ErrorIs(t, err, ErrCartCakeNotFound)
}

func TestViewRecomputesSubtotal(t *testing.T) {
	uc, _, catalog, cakes := newCartForTest(eclairItem(t, 10))
	require.NoError(t, cakes.Create(context.Background(), &cakedom.Spec{
		ID:            "cake-1",
		CustomerEmail: cartCustomer,
		Event:         "birthday",
		BaseType:      "vanilla",
		RequiredDate:  cartNow.AddDate(0, 0, 7),
		Size:          "small",
		Price:         1200,
		CreatedAt:     cartNow,
	}))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 2)
	require.NoError(t, err)
	_, err = uc.AddCake(context.Background(), cartCustomer, "cake-1")
	require.NoError(t, err)

	view, err := uc.View(context.Background(), cartCustomer)
	require.NoError(t, err)
	assert.Equal(t, 450*2+1200, view.Subtotal)

	// a price edit before checkout is reflected on the next read
	it, err := catalog.GetByID(context.Background(), "it-eclair")
	require.NoError(t, err)
	it.UnitPrice = 500
	require.NoError(t, catalog.Upsert(context.Background(), it))

	view, err = uc.View(context.Background(), cartCustomer)
	require.NoError(t, err)
	assert.Equal(t, 500*2+1200, view.Subtotal)
}

func TestViewSkipsVanishedRecords(t *testing.T) {
	uc, _, catalog, _ := newCartForTest(eclairItem(t, 10))

	_, err := uc.AddCatalogItem(context.Background(), cartCustomer, "it-eclair", 2)
	require.NoError(t, err)
	require.NoError(t, catalog.Delete(context.Background(), "it-eclair"))

	view, err := uc.View(context.Background(), cartCustomer)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Equal(t, 0, view.Subtotal)
}

func TestViewEmptyCart(t *testing.T) {
	uc, _, _, _ := newCartForTest()

	view, err := uc.View(context.Background(), cartCustomer)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.Empty(t, view.Cakes)
	assert.Equal(t, 0, view.Subtotal)
}
