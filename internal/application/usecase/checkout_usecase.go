// internal/application/usecase/checkout_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	cakedom "patisserie/internal/domain/cake"
	cartdom "patisserie/internal/domain/cart"
	catalogdom "patisserie/internal/domain/catalog"
	orderdom "patisserie/internal/domain/order"
	syscfg "patisserie/internal/domain/systemconfig"
)

var (
	ErrCheckoutInvalidArgument = errors.New("checkout_usecase: invalid argument")
	ErrCheckoutEmptyOrder      = errors.New("checkout_usecase: cart is empty")
	ErrCheckoutItemNotFound    = errors.New("checkout_usecase: catalog item not found")
	ErrCheckoutCakeNotFound    = errors.New("checkout_usecase: cake spec not found")
	ErrCheckoutOutOfStock      = errors.New("checkout_usecase: insufficient stock")
	ErrCheckoutVacationMode    = errors.New("checkout_usecase: store is on vacation")
	ErrCheckoutPersistence     = errors.New("checkout_usecase: persistence failure")
)

// CheckoutUsecase is the order materializer: it converts the server-held
// cart into one immutable Order with a fixed total and line-item snapshot.
//
// The cart content is treated as untrusted intent: prices come from the live
// catalog / stored cake specs at materialization time, never from the client,
// and the authoritative stock decrement happens here as an atomic
// decrement-if-sufficient — the cart-time check is a non-binding hint.
type CheckoutUsecase struct {
	carts   cartdom.Repository
	catalog catalogdom.Repository
	cakes   cakedom.Repository
	orders  orderdom.Repository
	config  syscfg.Repository

	clock Clock
	newID func() string
}

func NewCheckoutUsecase(
	carts cartdom.Repository,
	catalog catalogdom.Repository,
	cakes cakedom.Repository,
	orders orderdom.Repository,
	config syscfg.Repository,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		carts:   carts,
		catalog: catalog,
		cakes:   cakes,
		orders:  orders,
		config:  config,
		clock:   systemClock{},
		newID:   uuid.NewString,
	}
}

// NewCheckoutUsecaseWithClock is useful for tests.
func NewCheckoutUsecaseWithClock(
	carts cartdom.Repository,
	catalog catalogdom.Repository,
	cakes cakedom.Repository,
	orders orderdom.Repository,
	config syscfg.Repository,
	clock Clock,
	newID func() string,
) *CheckoutUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CheckoutUsecase{
		carts:   carts,
		catalog: catalog,
		cakes:   cakes,
		orders:  orders,
		config:  config,
		clock:   clock,
		newID:   newID,
	}
}

// MaterializeResult is the checkout response payload.
type MaterializeResult struct {
	OrderID string `json:"orderId"`
	Total   int    `json:"total"`
}

// Materialize converts the customer's cart into a pending Order:
//
//  1. rejects when vacation mode is on
//  2. rejects an empty cart (EmptyOrder)
//  3. freezes each cake spec into a CakeLine (price as stored)
//  4. reserves stock atomically per catalog line and freezes the live unit
//     price into an InventoryLine
//  5. persists the Order (status=pending, total = Σ lines)
//  6. consumes the cart
//
// Any persistence failure aborts with ErrCheckoutPersistence; no partial
// order document is ever written.
func (uc *CheckoutUsecase) Materialize(ctx context.Context, customerID string) (*MaterializeResult, error) {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, ErrCheckoutInvalidArgument
	}

	if uc.config != nil {
		vacation, err := uc.config.GetVacationMode(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCheckoutPersistence, err)
		}
		if vacation {
			return nil, ErrCheckoutVacationMode
		}
	}

	c, err := uc.carts.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutPersistence, err)
	}
	if c == nil || c.IsEmpty() {
		return nil, ErrCheckoutEmptyOrder
	}

	now := uc.clock.Now().UTC()
	lines, cakeIDs, err := c.ConsumeAll(now)
	if err != nil {
		return nil, err
	}

	items := make([]orderdom.LineItem, 0, len(lines)+len(cakeIDs))

	// cake lines: frozen copy of the stored spec, price as given
	for _, sid := range cakeIDs {
		spec, err := uc.cakes.GetByID(ctx, sid)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCheckoutPersistence, err)
		}
		if spec == nil {
			return nil, fmt.Errorf("%w: %s", ErrCheckoutCakeNotFound, sid)
		}
		items = append(items, orderdom.NewCakeLineItem(orderdom.CakeLine{
			CakeSpecID:   spec.ID,
			Event:        spec.Event,
			BaseType:     spec.BaseType,
			RequiredDate: spec.RequiredDate,
			Size:         spec.Size,
			Colors:       spec.Colors,
			Pickup:       spec.Pickup,
			Toppings:     spec.Toppings,
			Writing:      spec.Writing,
			ImagePath:    spec.ImagePath,
			Notes:        spec.Notes,
			Price:        spec.Price,
			Qty:          1,
		}))
	}

	// inventory lines: atomic reserve, price from the live record
	for _, l := range lines {
		it, err := uc.catalog.ReserveStock(ctx, l.ItemID, l.Qty)
		if err != nil {
			if errors.Is(err, catalogdom.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", ErrCheckoutItemNotFound, l.ItemID)
			}
			if errors.Is(err, catalogdom.ErrInsufficientStock) {
				return nil, fmt.Errorf("%w: %s", ErrCheckoutOutOfStock, l.ItemID)
			}
			return nil, fmt.Errorf("%w: %v", ErrCheckoutPersistence, err)
		}
		items = append(items, orderdom.NewInventoryLineItem(orderdom.InventoryLine{
			ItemID:    it.ID,
			Name:      it.Name,
			ImagePath: it.ImagePath,
			UnitPrice: it.UnitPrice,
			Qty:       l.Qty,
		}))
	}

	o, err := orderdom.New(uc.newID(), cid, items, now)
	if err != nil {
		return nil, err
	}

	if err := uc.orders.Create(ctx, &o); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCheckoutPersistence, err)
	}

	// cart consumed; delete the doc. Best-effort: the order already exists.
	if err := uc.carts.DeleteByCustomer(ctx, cid); err != nil {
		log.Printf("[checkout_uc] WARN: cart delete failed customerId=%s orderId=%s err=%v", cid, o.ID, err)
	}

	log.Printf("[checkout_uc] OK: order materialized customerId=%s orderId=%s total=%d items=%d",
		cid, o.ID, o.TotalPrice, len(o.Items),
	)

	return &MaterializeResult{OrderID: o.ID, Total: o.TotalPrice}, nil
}
