// internal/application/usecase/cart_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	cakedom "patisserie/internal/domain/cake"
	cartdom "patisserie/internal/domain/cart"
	catalogdom "patisserie/internal/domain/catalog"
)

var (
	ErrCartInvalidArgument = errors.New("cart_usecase: invalid argument")
	ErrCartNotFound        = errors.New("cart_usecase: not found")
	ErrCartItemNotFound    = errors.New("cart_usecase: item not found")
	ErrCartCakeNotFound    = errors.New("cart_usecase: cake spec not found")
	ErrCartOutOfStock      = errors.New("cart_usecase: out of stock")
	ErrCartInvalidQuantity = errors.New("cart_usecase: quantity must be >= 1")
)

// Clock provides current time (for testability).
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// CartUsecase coordinates cart operations. Stock is only checked here, not
// reserved; the authoritative decrement happens at order materialization.
type CartUsecase struct {
	repo    cartdom.Repository
	catalog catalogdom.Repository
	cakes   cakedom.Repository
	clock   Clock
}

func NewCartUsecase(repo cartdom.Repository, catalog catalogdom.Repository, cakes cakedom.Repository) *CartUsecase {
	return &CartUsecase{
		repo:    repo,
		catalog: catalog,
		cakes:   cakes,
		clock:   systemClock{},
	}
}

// NewCartUsecaseWithClock is useful for tests.
func NewCartUsecaseWithClock(repo cartdom.Repository, catalog catalogdom.Repository, cakes cakedom.Repository, clock Clock) *CartUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &CartUsecase{repo: repo, catalog: catalog, cakes: cakes, clock: clock}
}

// Get returns the cart for customerID.
// If the cart does not exist, returns (nil, ErrCartNotFound).
func (uc *CartUsecase) Get(ctx context.Context, customerID string) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}
	return c, nil
}

// AddCatalogItem merges qty of itemID into the cart.
// The item must exist, be available, and the projected line quantity must
// not exceed current stock (availability hint only; no reservation here).
func (uc *CartUsecase) AddCatalogItem(ctx context.Context, customerID, itemID string, qty int) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	iid := strings.TrimSpace(itemID)
	if cid == "" || iid == "" {
		return nil, ErrCartInvalidArgument
	}
	if qty <= 0 {
		return nil, ErrCartInvalidQuantity
	}

	it, err := uc.catalog.GetByID(ctx, iid)
	if err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if it == nil {
		return nil, ErrCartItemNotFound
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(cid, now)
		if err != nil {
			return nil, err
		}
	}

	projected := qty
	for _, l := range c.CatalogLines {
		if l.ItemID == iid {
			projected += l.Qty
		}
	}
	if !it.InStock(projected) {
		return nil, ErrCartOutOfStock
	}

	if err := c.AddCatalogItem(iid, qty, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddCake appends a cake spec reference to the cart. Custom cakes are not
// inventory-bound, so there is no stock check.
func (uc *CartUsecase) AddCake(ctx context.Context, customerID, cakeSpecID string) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	sid := strings.TrimSpace(cakeSpecID)
	if cid == "" || sid == "" {
		return nil, ErrCartInvalidArgument
	}

	spec, err := uc.cakes.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if spec == nil {
		return nil, ErrCartCakeNotFound
	}

	now := uc.clock.Now()

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		c, err = cartdom.NewCart(cid, now)
		if err != nil {
			return nil, err
		}
	}

	if err := c.AddCake(sid, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity overwrites the line quantity for itemID.
// qty < 1 is rejected; qty above current stock is rejected, leaving the
// cart (and stock) unchanged.
func (uc *CartUsecase) UpdateQuantity(ctx context.Context, customerID, itemID string, qty int) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	iid := strings.TrimSpace(itemID)
	if cid == "" || iid == "" {
		return nil, ErrCartInvalidArgument
	}
	if qty < 1 {
		return nil, ErrCartInvalidQuantity
	}

	it, err := uc.catalog.GetByID(ctx, iid)
	if err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	if it == nil {
		return nil, ErrCartItemNotFound
	}
	if !it.InStock(qty) {
		return nil, ErrCartOutOfStock
	}

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	now := uc.clock.Now()
	if err := c.SetQty(iid, qty, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem removes itemID from the cart. Removing an absent item is a
// no-op success.
func (uc *CartUsecase) RemoveItem(ctx context.Context, customerID, itemID string) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	iid := strings.TrimSpace(itemID)
	if cid == "" || iid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	now := uc.clock.Now()
	if err := c.Remove(iid, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveCake drops a cake spec reference from the cart (idempotent).
func (uc *CartUsecase) RemoveCake(ctx context.Context, customerID, cakeSpecID string) (*cartdom.Cart, error) {
	cid := strings.TrimSpace(customerID)
	sid := strings.TrimSpace(cakeSpecID)
	if cid == "" || sid == "" {
		return nil, ErrCartInvalidArgument
	}

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCartNotFound
	}

	now := uc.clock.Now()
	if err := c.RemoveCake(sid, now); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear deletes the cart doc (useful for "empty cart" UX).
func (uc *CartUsecase) Clear(ctx context.Context, customerID string) error {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return ErrCartInvalidArgument
	}
	return uc.repo.DeleteByCustomer(ctx, cid)
}

// ----------------------------
// Derived view (subtotal)
// ----------------------------

// CartLineView is a catalog line priced against the live catalog.
type CartLineView struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	ImagePath string `json:"imagePath"`
	UnitPrice int    `json:"unitPrice"`
	Qty       int    `json:"qty"`
	LinePrice int    `json:"linePrice"`
}

// CartCakeView is a cake spec reference priced as stored.
type CartCakeView struct {
	CakeSpecID string `json:"cakeSpecId"`
	Event      string `json:"event"`
	BaseType   string `json:"baseType"`
	Price      int    `json:"price"`
}

// CartView is the customer-facing cart with a derived subtotal.
type CartView struct {
	CustomerID string         `json:"customerId"`
	Lines      []CartLineView `json:"lines"`
	Cakes      []CartCakeView `json:"cakes"`
	Subtotal   int            `json:"subtotal"`
}

// View recomputes the subtotal on every read against the live catalog and
// cake records (not cached), so price edits before checkout are reflected.
// Lines whose backing record disappeared are skipped, not failed.
func (uc *CartUsecase) View(ctx context.Context, customerID string) (*CartView, error) {
	cid := strings.TrimSpace(customerID)
	if cid == "" {
		return nil, ErrCartInvalidArgument
	}

	view := &CartView{
		CustomerID: cid,
		Lines:      []CartLineView{},
		Cakes:      []CartCakeView{},
	}

	c, err := uc.repo.GetByCustomer(ctx, cid)
	if err != nil {
		return nil, err
	}
	if c == nil {
		// empty cart (stable UX)
		return view, nil
	}

	for _, l := range c.CatalogLines {
		it, err := uc.catalog.GetByID(ctx, l.ItemID)
		if err != nil {
			if errors.Is(err, catalogdom.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if it == nil {
			continue
		}
		lp := it.UnitPrice * l.Qty
		view.Lines = append(view.Lines, CartLineView{
			ItemID:    it.ID,
			Name:      it.Name,
			ImagePath: it.ImagePath,
			UnitPrice: it.UnitPrice,
			Qty:       l.Qty,
			LinePrice: lp,
		})
		view.Subtotal += lp
	}

	for _, sid := range c.CakeSpecIDs {
		spec, err := uc.cakes.GetByID(ctx, sid)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			continue
		}
		view.Cakes = append(view.Cakes, CartCakeView{
			CakeSpecID: spec.ID,
			Event:      spec.Event,
			BaseType:   spec.BaseType,
			Price:      spec.Price,
		})
		view.Subtotal += spec.Price
	}

	return view, nil
}
