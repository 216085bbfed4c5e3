// internal/domain/order/entity.go
package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ========================================
// Status
// ========================================

// Status is the order lifecycle label.
// pending → completed is the only transition; there is no cancelled state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusCompleted:
		return StatusCompleted, nil
	}
	return "", ErrInvalidStatus
}

// ========================================
// Line items (tagged union)
// ========================================

// LineKind discriminates the two line item variants. Adding a third variant
// requires extending every switch on LineKind (Price, validate, invoice
// layout), which is the point.
type LineKind string

const (
	LineKindCake      LineKind = "cake"
	LineKindInventory LineKind = "inventory"
)

// CakeLine is a frozen copy of a cake spec at order time. Qty is always 1
// in current flows.
type CakeLine struct {
	CakeSpecID   string    `json:"cakeSpecId" firestore:"cakeSpecId"`
	Event        string    `json:"event" firestore:"event"`
	BaseType     string    `json:"baseType" firestore:"baseType"`
	RequiredDate time.Time `json:"requiredDate" firestore:"requiredDate"`
	Size         string    `json:"size" firestore:"size"`
	Colors       []string  `json:"colors" firestore:"colors"`
	Pickup       bool      `json:"pickup" firestore:"pickup"`
	Toppings     []string  `json:"toppings" firestore:"toppings"`
	Writing      string    `json:"writing" firestore:"writing"`
	ImagePath    string    `json:"imagePath" firestore:"imagePath"`
	Notes        string    `json:"notes" firestore:"notes"`
	Price        int       `json:"price" firestore:"price"`
	Qty          int       `json:"qty" firestore:"qty"`
}

// InventoryLine is a catalog purchase snapshot: the unit price is frozen at
// order time and LinePrice = UnitPrice × Qty.
type InventoryLine struct {
	ItemID    string `json:"itemId" firestore:"itemId"`
	Name      string `json:"name" firestore:"name"`
	ImagePath string `json:"imagePath" firestore:"imagePath"`
	UnitPrice int    `json:"unitPrice" firestore:"unitPrice"`
	Qty       int    `json:"qty" firestore:"qty"`
	LinePrice int    `json:"linePrice" firestore:"linePrice"`
}

// LineItem is the closed polymorphic set: exactly one of Cake / Inventory is
// set, selected by Kind.
type LineItem struct {
	Kind      LineKind       `json:"kind" firestore:"kind"`
	Cake      *CakeLine      `json:"cake,omitempty" firestore:"cake,omitempty"`
	Inventory *InventoryLine `json:"inventory,omitempty" firestore:"inventory,omitempty"`
}

func NewCakeLineItem(l CakeLine) LineItem {
	if l.Qty <= 0 {
		l.Qty = 1
	}
	return LineItem{Kind: LineKindCake, Cake: &l}
}

func NewInventoryLineItem(l InventoryLine) LineItem {
	l.LinePrice = l.UnitPrice * l.Qty
	return LineItem{Kind: LineKindInventory, Inventory: &l}
}

// Price returns the total price contributed by this line.
func (li LineItem) Price() (int, error) {
	switch li.Kind {
	case LineKindCake:
		if li.Cake == nil {
			return 0, ErrInvalidLineItem
		}
		return li.Cake.Price * li.Cake.Qty, nil
	case LineKindInventory:
		if li.Inventory == nil {
			return 0, ErrInvalidLineItem
		}
		return li.Inventory.LinePrice, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidLineItem, li.Kind)
}

func (li LineItem) validate() error {
	switch li.Kind {
	case LineKindCake:
		c := li.Cake
		if c == nil || li.Inventory != nil {
			return ErrInvalidLineItem
		}
		if strings.TrimSpace(c.CakeSpecID) == "" {
			return ErrInvalidLineItem
		}
		if c.Price < 0 || c.Qty <= 0 {
			return ErrInvalidLineItem
		}
	case LineKindInventory:
		v := li.Inventory
		if v == nil || li.Cake != nil {
			return ErrInvalidLineItem
		}
		if strings.TrimSpace(v.ItemID) == "" || strings.TrimSpace(v.Name) == "" {
			return ErrInvalidLineItem
		}
		if v.UnitPrice < 0 || v.Qty <= 0 {
			return ErrInvalidLineItem
		}
		if v.LinePrice != v.UnitPrice*v.Qty {
			return ErrInvalidLineItem
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidLineItem, li.Kind)
	}
	return nil
}

// ========================================
// Entity
// ========================================

// Order is an immutable record materialized from a cart at checkout: frozen
// line items and a total fixed at creation. Never re-priced afterwards.
type Order struct {
	ID         string     `json:"id" firestore:"id"`
	CustomerID string     `json:"customerId" firestore:"customerId"`
	OrderedAt  time.Time  `json:"orderedAt" firestore:"orderedAt"`
	Status     Status     `json:"status" firestore:"status"`
	TotalPrice int        `json:"totalPrice" firestore:"totalPrice"`
	Items      []LineItem `json:"items" firestore:"items"`
}

// ========================================
// Errors
// ========================================

var (
	ErrNotFound        = errors.New("order: not found")
	ErrInvalidID       = errors.New("order: invalid id")
	ErrInvalidCustomer = errors.New("order: invalid customerId")
	ErrInvalidStatus   = errors.New("order: invalid status")
	ErrInvalidTotal    = errors.New("order: invalid totalPrice")
	ErrInvalidLineItem = errors.New("order: invalid line item")
	ErrEmptyOrder      = errors.New("order: no line items")
)

// ========================================
// Constructors
// ========================================

// New assembles an order from frozen line items. TotalPrice is computed here
// and must equal the sum of line prices; it is never recomputed later.
func New(id, customerID string, items []LineItem, orderedAt time.Time) (Order, error) {
	o := Order{
		ID:         strings.TrimSpace(id),
		CustomerID: strings.TrimSpace(customerID),
		OrderedAt:  orderedAt.UTC(),
		Status:     StatusPending,
		Items:      items,
	}

	total := 0
	for _, li := range items {
		p, err := li.Price()
		if err != nil {
			return Order{}, err
		}
		total += p
	}
	o.TotalPrice = total

	if err := o.validate(); err != nil {
		return Order{}, err
	}
	return o, nil
}

// ========================================
// Behavior
// ========================================

// MarkCompleted sets status=completed. Completing an already completed order
// re-applies the same status (idempotent, no error).
func (o *Order) MarkCompleted() {
	o.Status = StatusCompleted
}

// Sum recomputes Σ(line price) over Items. For a valid order this always
// equals TotalPrice.
func (o Order) Sum() (int, error) {
	total := 0
	for _, li := range o.Items {
		p, err := li.Price()
		if err != nil {
			return 0, err
		}
		total += p
	}
	return total, nil
}

// ========================================
// Validation
// ========================================

func (o Order) validate() error {
	if o.ID == "" {
		return ErrInvalidID
	}
	if o.CustomerID == "" {
		return ErrInvalidCustomer
	}
	if o.OrderedAt.IsZero() {
		return ErrInvalidStatus
	}
	if o.Status != StatusPending && o.Status != StatusCompleted {
		return ErrInvalidStatus
	}
	if len(o.Items) == 0 {
		return ErrEmptyOrder
	}
	total := 0
	for _, li := range o.Items {
		if err := li.validate(); err != nil {
			return err
		}
		p, err := li.Price()
		if err != nil {
			return err
		}
		total += p
	}
	if o.TotalPrice < 0 || o.TotalPrice != total {
		return ErrInvalidTotal
	}
	return nil
}
