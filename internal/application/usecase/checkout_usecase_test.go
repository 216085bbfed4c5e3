package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cakedom "patisserie/internal/domain/cake"
	cartdom "patisserie/internal/domain/cart"
	catalogdom "patisserie/internal/domain/catalog"
	orderdom "patisserie/internal/domain/order"
)

var checkoutNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

const checkoutCustomer = "marie@example.com"

func seedCart(t *testing.T, carts *memCartRepo, lines []cartdom.CatalogLine, cakeIDs []string) {
	t.Helper()
	c, err := cartdom.NewCart(checkoutCustomer, checkoutNow)
	require.NoError(t, err)
	for _, l := range lines {
		require.NoError(t, c.AddCatalogItem(l.ItemID, l.Qty, checkoutNow))
	}
	for _, id := range cakeIDs {
		require.NoError(t, c.AddCake(id, checkoutNow))
	}
	require.NoError(t, carts.Upsert(context.Background(), c))
}

func macaronItem(t *testing.T, stock int) catalogdom.Item {
	t.Helper()
	it, err := catalogdom.New("it-macaron", "Macaron box", "items/macaron.jpg", 600, stock, checkoutNow)
	require.NoError(t, err)
	return it
}

func birthdayCake(price int) cakedom.Spec {
	return cakedom.Spec{
		ID:            "cake-1",
		CustomerEmail: checkoutCustomer,
		Event:         "birthday",
		BaseType:      "chocolate",
		RequiredDate:  checkoutNow.AddDate(0, 0, 7),
		Size:          "medium",
		Colors:        []string{"pink"},
		Toppings:      []string{"strawberries"},
		Price:         price,
		CreatedAt:     checkoutNow,
	}
}

func newCheckoutForTest(carts *memCartRepo, catalog *memCatalogRepo, cakes *memCakeRepo, orders *memOrderRepo, config *memConfigRepo) *CheckoutUsecase {
	return NewCheckoutUsecaseWithClock(carts, catalog, cakes, orders, config, fixedClock{checkoutNow}, func() string {
		return "ord-1"
	})
}

func TestMaterializeFreezesPricesAndTotal(t *testing.T) {
	carts := newMemCartRepo()
	catalog := newMemCatalogRepo(macaronItem(t, 10))
	cakes := newMemCakeRepo(birthdayCake(1500))
	orders := newMemOrderRepo()
	config := &memConfigRepo{}

	seedCart(t, carts, []cartdom.CatalogLine{{ItemID: "it-macaron", Qty: 2}}, []string{"cake-1"})

	uc := newCheckoutForTest(carts, catalog, cakes, orders, config)
	res, err := uc.Materialize(context.Background(), checkoutCustomer)
	require.NoError(t, err)

	// 600×2 + 1500
	assert.Equal(t, 2700, res.Total)

	o, err := orders.GetByID(context.Background(), res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, orderdom.StatusPending, o.Status)
	assert.Equal(t, 2700, o.TotalPrice)
	require.Len(t, o.Items, 2)

	// stock reserved
	it, err := catalog.GetByID(context.Background(), "it-macaron")
	require.NoError(t, err)
	assert.Equal(t, 8, it.Stock)

	// cart consumed
	c, err := carts.GetByCustomer(context.Background(), checkoutCustomer)
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestMaterializeSnapshotSurvivesPriceEdit(t *testing.T) {
	carts := newMemCartRepo()
	catalog := newMemCatalogRepo(macaronItem(t, 10))
	cakes := newMemCakeRepo(birthdayCake(1500))
	orders := newMemOrderRepo()

	seedCart(t, carts, []cartdom.CatalogLine{{ItemID: "it-macaron", Qty: 1}}, nil)

	uc := newCheckoutForTest(carts, catalog, cakes, orders, &memConfigRepo{})
	res, err := uc.Materialize(context.Background(), checkoutCustomer)
	require.NoError(t, err)
	require.Equal(t, 600, res.Total)

	// later catalog edit must not touch the materialized order
	it, err := catalog.GetByID(context.Background(), "it-macaron")
	require.NoError(t, err)
	it.UnitPrice = 900
	require.NoError(t, catalog.Upsert(context.Background(), it))

	o, err := orders.GetByID(context.Background(), res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 600, o.TotalPrice)
	assert.Equal(t, 600, o.Items[0].Inventory.UnitPrice)
}

func TestMaterializeInsufficientStock(t *testing.T) {
	carts := newMemCartRepo()
	catalog := newMemCatalogRepo(macaronItem(t, 3))
	orders := newMemOrderRepo()

	seedCart(t, carts, []cartdom.CatalogLine{{ItemID: "it-macaron", Qty: 5}}, nil)

	uc := newCheckoutForTest(carts, catalog, newMemCakeRepo(), orders, &memConfigRepo{})
	_, err := uc.Materialize(context.Background(), checkoutCustomer)
	assert.ErrorIs(t, err, ErrCheckoutOutOfStock)

	// no partial effects: stock unchanged, no order, cart still there
	it, err := catalog.GetByID(context.Background(), "it-macaron")
	require.NoError(t, err)
	assert.Equal(t, 3, it.Stock)

	list, err := orders.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	c, err := carts.GetByCustomer(context.Background(), checkoutCustomer)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.False(t, c.IsEmpty())
}

func TestMaterializeEmptyCart(t *testing.T) {
	carts := newMemCartRepo()
	uc := newCheckoutForTest(carts, newMemCatalogRepo(), newMemCakeRepo(), newMemOrderRepo(), &memConfigRepo{})

	// no cart doc at all
	_, err := uc.Materialize(context.Background(), checkoutCustomer)
	assert.ErrorIs(t, err, ErrCheckoutEmptyOrder)

	// cart doc exists but holds nothing
	seedCart(t, carts, nil, nil)
	_, err = uc.Materialize(context.Background(), checkoutCustomer)
	assert.ErrorIs(t, err, ErrCheckoutEmptyOrder)
}

func TestMaterializeVacationMode(t *testing.T) {
	carts := newMemCartRepo()
	catalog := newMemCatalogRepo(macaronItem(t, 10))
	seedCart(t, carts, []cartdom.CatalogLine{{ItemID: "it-macaron", Qty: 1}}, nil)

	config := &memConfigRepo{vacation: true}
	uc := newCheckoutForTest(carts, catalog, newMemCakeRepo(), newMemOrderRepo(), config)

	_, err := uc.Materialize(context.Background(), checkoutCustomer)
	assert.ErrorIs(t, err, ErrCheckoutVacationMode)
}

func TestMaterializeCakeSpecGone(t *testing.T) {
	carts := newMemCartRepo()
	seedCart(t, carts, nil, []string{"cake-gone"})

	uc := newCheckoutForTest(carts, newMemCatalogRepo(), newMemCakeRepo(), newMemOrderRepo(), &memConfigRepo{})
	_, err := uc.Materialize(context.Background(), checkoutCustomer)
	assert.ErrorIs(t, err, ErrCheckoutCakeNotFound)
}

func TestMaterializeInvalidCustomer(t *testing.T) {
	uc := newCheckoutForTest(newMemCartRepo(), newMemCatalogRepo(), newMemCakeRepo(), newMemOrderRepo(), &memConfigRepo{})
	_, err := uc.Materialize(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCheckoutInvalidArgument)
}
