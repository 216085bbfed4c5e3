// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	catalogdom "patisserie/internal/domain/catalog"
)

var (
	ErrCatalogInvalidArgument = errors.New("catalog_usecase: invalid argument")
	ErrCatalogNotFound        = errors.New("catalog_usecase: item not found")
	ErrCatalogOutOfStock      = errors.New("catalog_usecase: insufficient stock")
)

// CatalogUsecase covers the storefront catalog reads, the admin inventory
// CRUD, and the stock adjuster.
type CatalogUsecase struct {
	repo  catalogdom.Repository
	clock Clock
	newID func() string
}

func NewCatalogUsecase(repo catalogdom.Repository) *CatalogUsecase {
	return &CatalogUsecase{repo: repo, clock: systemClock{}, newID: uuid.NewString}
}

func NewCatalogUsecaseWithClock(repo catalogdom.Repository, clock Clock, newID func() string) *CatalogUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CatalogUsecase{repo: repo, clock: clock, newID: newID}
}

func (uc *CatalogUsecase) Get(ctx context.Context, id string) (*catalogdom.Item, error) {
	iid := strings.TrimSpace(id)
	if iid == "" {
		return nil, ErrCatalogInvalidArgument
	}
	it, err := uc.repo.GetByID(ctx, iid)
	if err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}
	if it == nil {
		return nil, ErrCatalogNotFound
	}
	return it, nil
}

func (uc *CatalogUsecase) List(ctx context.Context) ([]catalogdom.Item, error) {
	return uc.repo.List(ctx)
}

// Create registers a new sellable item (admin).
func (uc *CatalogUsecase) Create(ctx context.Context, name, imagePath string, unitPrice, stock int) (*catalogdom.Item, error) {
	it, err := catalogdom.New(uc.newID(), name, imagePath, unitPrice, stock, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, &it); err != nil {
		return nil, err
	}
	return &it, nil
}

// Update edits name / image / price and, when stock >= 0, restocks (admin).
// stock < 0 means "no stock change".
func (uc *CatalogUsecase) Update(ctx context.Context, id, name, imagePath string, unitPrice, stock int) (*catalogdom.Item, error) {
	it, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	if n := strings.TrimSpace(name); n != "" {
		it.Name = n
	}
	if p := strings.TrimSpace(imagePath); p != "" {
		it.ImagePath = p
	}
	if unitPrice >= 0 {
		it.UnitPrice = unitPrice
	}
	if stock >= 0 {
		if err := it.Restock(stock, now); err != nil {
			return nil, err
		}
	}
	it.UpdatedAt = now.UTC()

	if err := it.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Upsert(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// Delete removes the item permanently (admin, hard delete).
func (uc *CatalogUsecase) Delete(ctx context.Context, id string) error {
	iid := strings.TrimSpace(id)
	if iid == "" {
		return ErrCatalogInvalidArgument
	}
	if err := uc.repo.Delete(ctx, iid); err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			return ErrCatalogNotFound
		}
		return err
	}
	return nil
}

// ReserveStock decrements stock for id by qty (all-or-nothing, atomic in
// the repository). Reaching zero flips availability to "out of stock".
func (uc *CatalogUsecase) ReserveStock(ctx context.Context, id string, qty int) (*catalogdom.Item, error) {
	iid := strings.TrimSpace(id)
	if iid == "" || qty <= 0 {
		return nil, ErrCatalogInvalidArgument
	}
	it, err := uc.repo.ReserveStock(ctx, iid, qty)
	if err != nil {
		if errors.Is(err, catalogdom.ErrNotFound) {
			return nil, ErrCatalogNotFound
		}
		if errors.Is(err, catalogdom.ErrInsufficientStock) {
			return nil, ErrCatalogOutOfStock
		}
		return nil, err
	}
	return it, nil
}
