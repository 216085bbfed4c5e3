// internal/domain/catalog/entity.go
package catalog

import (
	"errors"
	"strings"
	"time"
)

// Availability labels. Stock and availability must stay consistent:
// Stock == 0 ⇔ Availability == AvailabilityOutOfStock.
const (
	AvailabilityAvailable  = "available"
	AvailabilityOutOfStock = "out of stock"
)

var (
	ErrNotFound          = errors.New("catalog: item not found")
	ErrInvalidID         = errors.New("catalog: invalid id")
	ErrInvalidName       = errors.New("catalog: invalid name")
	ErrInvalidUnitPrice  = errors.New("catalog: invalid unitPrice")
	ErrInvalidStock      = errors.New("catalog: invalid stock")
	ErrInvalidQuantity   = errors.New("catalog: invalid quantity")
	ErrInsufficientStock = errors.New("catalog: insufficient stock")
)

// Item represents one sellable store product (non-cake).
type Item struct {
	ID           string `json:"id" firestore:"id"`
	Name         string `json:"name" firestore:"name"`
	ImagePath    string `json:"imagePath" firestore:"imagePath"`
	UnitPrice    int    `json:"unitPrice" firestore:"unitPrice"`
	Stock        int    `json:"stock" firestore:"stock"`
	Availability string `json:"availability" firestore:"availability"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

func New(id, name, imagePath string, unitPrice, stock int, now time.Time) (Item, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	it := Item{
		ID:           strings.TrimSpace(id),
		Name:         strings.TrimSpace(name),
		ImagePath:    strings.TrimSpace(imagePath),
		UnitPrice:    unitPrice,
		Stock:        stock,
		Availability: availabilityFor(stock),
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	return it, nil
}

func (it Item) Validate() error {
	if it.ID == "" {
		return ErrInvalidID
	}
	if it.Name == "" {
		return ErrInvalidName
	}
	if it.UnitPrice < 0 {
		return ErrInvalidUnitPrice
	}
	if it.Stock < 0 {
		return ErrInvalidStock
	}
	// availability は stock から一意に決まる
	if it.Availability != availabilityFor(it.Stock) {
		return ErrInvalidStock
	}
	return nil
}

// Reserve decrements stock by qty (all-or-nothing).
// Stock never goes negative; reaching 0 flips availability to "out of stock".
func (it *Item) Reserve(qty int, now time.Time) error {
	if it == nil {
		return ErrNotFound
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > it.Stock {
		return ErrInsufficientStock
	}
	it.Stock -= qty
	it.Availability = availabilityFor(it.Stock)
	it.UpdatedAt = now.UTC()
	return nil
}

// Restock sets stock to an absolute value (admin operation).
func (it *Item) Restock(stock int, now time.Time) error {
	if it == nil {
		return ErrNotFound
	}
	if stock < 0 {
		return ErrInvalidStock
	}
	it.Stock = stock
	it.Availability = availabilityFor(it.Stock)
	it.UpdatedAt = now.UTC()
	return nil
}

// InStock reports whether qty units can currently be sold.
func (it Item) InStock(qty int) bool {
	if qty <= 0 {
		return false
	}
	return it.Availability == AvailabilityAvailable && qty <= it.Stock
}

func availabilityFor(stock int) string {
	if stock <= 0 {
		return AvailabilityOutOfStock
	}
	return AvailabilityAvailable
}
