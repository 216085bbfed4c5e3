// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	ErrInvalidCart = errors.New("cart: invalid")
)

// DefaultCartTTL is the inactivity window after which the cart becomes
// eligible for auto deletion (Firestore TTL should be configured on expiresAt).
const DefaultCartTTL = 7 * 24 * time.Hour

// CatalogLine is one store-item line in a cart: a catalog item reference
// plus the requested quantity. Prices are NOT stored here; the subtotal is
// recomputed from the live catalog on every read.
type CatalogLine struct {
	ItemID string `json:"itemId" firestore:"itemId"`
	Qty    int    `json:"qty" firestore:"qty"`
}

// Cart represents "a cart document".
//   - docId = customer email (Firestore)
//   - CatalogLines: store items with quantity
//   - CakeSpecIDs: custom cake spec references (qty is always 1)
//   - ExpiresAt: for Firestore TTL (auto deletion), refreshed on each mutation
//
// NOTE:
// - ordered フラグは持たない
// - 注文確定（order 作成）に合わせて ConsumeAll で中身を空にする
type Cart struct {
	// ID is Firestore docId (= customer email).
	ID string `json:"id" firestore:"id"`

	CatalogLines []CatalogLine `json:"catalogLines" firestore:"catalogLines"`
	CakeSpecIDs  []string      `json:"cakeSpecIds" firestore:"cakeSpecIds"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
	ExpiresAt time.Time `json:"expiresAt" firestore:"expiresAt"`
}

// NewCart creates a new cart doc. id is the Firestore docId (customer email).
func NewCart(id string, now time.Time) (*Cart, error) {
	c := &Cart{
		ID:           strings.TrimSpace(id),
		CatalogLines: []CatalogLine{},
		CakeSpecIDs:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(DefaultCartTTL),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// AddCatalogItem increases quantity for itemID (merge into existing line).
// qty must be >= 1.
func (c *Cart) AddCatalogItem(itemID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	id := strings.TrimSpace(itemID)
	if id == "" || qty <= 0 {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.CatalogLines, id)
	if idx >= 0 {
		c.CatalogLines[idx].Qty += qty
	} else {
		c.CatalogLines = append(c.CatalogLines, CatalogLine{ItemID: id, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// SetQty overwrites quantity for itemID. If qty <= 0, the line is removed.
func (c *Cart) SetQty(itemID string, qty int, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	id := strings.TrimSpace(itemID)
	if id == "" {
		return ErrInvalidCart
	}

	idx := findLineIndex(c.CatalogLines, id)
	if qty <= 0 {
		if idx >= 0 {
			c.CatalogLines = append(c.CatalogLines[:idx], c.CatalogLines[idx+1:]...)
		}
		c.touch(now)
		return c.validate()
	}

	if idx >= 0 {
		c.CatalogLines[idx].Qty = qty
	} else {
		c.CatalogLines = append(c.CatalogLines, CatalogLine{ItemID: id, Qty: qty})
	}

	c.touch(now)
	return c.validate()
}

// Remove removes itemID from the cart. Removing an absent item is a no-op.
func (c *Cart) Remove(itemID string, now time.Time) error {
	return c.SetQty(itemID, 0, now)
}

// AddCake appends a cake spec reference. Duplicate references are kept
// single (one cake spec == one frozen cake in the order).
func (c *Cart) AddCake(cakeSpecID string, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	id := strings.TrimSpace(cakeSpecID)
	if id == "" {
		return ErrInvalidCart
	}
	for _, v := range c.CakeSpecIDs {
		if v == id {
			c.touch(now)
			return c.validate()
		}
	}
	c.CakeSpecIDs = append(c.CakeSpecIDs, id)
	c.touch(now)
	return c.validate()
}

// RemoveCake drops a cake spec reference; absent reference is a no-op.
func (c *Cart) RemoveCake(cakeSpecID string, now time.Time) error {
	if c == nil {
		return ErrInvalidCart
	}
	id := strings.TrimSpace(cakeSpecID)
	if id == "" {
		return ErrInvalidCart
	}
	out := c.CakeSpecIDs[:0]
	for _, v := range c.CakeSpecIDs {
		if v != id {
			out = append(out, v)
		}
	}
	c.CakeSpecIDs = out
	c.touch(now)
	return c.validate()
}

// IsEmpty reports whether the cart has neither catalog lines nor cakes.
func (c *Cart) IsEmpty() bool {
	if c == nil {
		return true
	}
	return len(c.CatalogLines) == 0 && len(c.CakeSpecIDs) == 0
}

// ConsumeAll clears the cart for order creation and returns a snapshot.
//
// 想定ユースケース:
// 1) snapshot を元に order を作成
// 2) 同リクエスト内で items を空にする（消費）
func (c *Cart) ConsumeAll(now time.Time) ([]CatalogLine, []string, error) {
	if c == nil {
		return nil, nil, ErrInvalidCart
	}

	lines := make([]CatalogLine, len(c.CatalogLines))
	copy(lines, c.CatalogLines)
	cakes := make([]string, len(c.CakeSpecIDs))
	copy(cakes, c.CakeSpecIDs)

	c.CatalogLines = []CatalogLine{}
	c.CakeSpecIDs = []string{}

	c.touch(now)
	if err := c.validate(); err != nil {
		return nil, nil, err
	}
	return lines, cakes, nil
}

func (c *Cart) touch(now time.Time) {
	c.UpdatedAt = now
	c.ExpiresAt = now.Add(DefaultCartTTL)
}

func (c *Cart) validate() error {
	if c == nil {
		return ErrInvalidCart
	}
	if strings.TrimSpace(c.ID) == "" {
		return ErrInvalidCart
	}
	if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() || c.ExpiresAt.IsZero() {
		return ErrInvalidCart
	}
	if c.UpdatedAt.Before(c.CreatedAt) {
		return ErrInvalidCart
	}
	if c.ExpiresAt.Before(c.UpdatedAt) {
		return ErrInvalidCart
	}

	if len(c.CatalogLines) > 0 {
		c.CatalogLines = normalizeAndMergeLines(c.CatalogLines)
		for _, l := range c.CatalogLines {
			if strings.TrimSpace(l.ItemID) == "" || l.Qty <= 0 {
				return ErrInvalidCart
			}
		}
	}
	return nil
}

// ----------------------------
// Helpers
// ----------------------------

func findLineIndex(lines []CatalogLine, itemID string) int {
	for i := range lines {
		if lines[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

func normalizeAndMergeLines(src []CatalogLine) []CatalogLine {
	m := map[string]int{}
	for _, l := range src {
		id := strings.TrimSpace(l.ItemID)
		if id == "" || l.Qty <= 0 {
			continue
		}
		m[id] += l.Qty
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]CatalogLine, 0, len(keys))
	for _, k := range keys {
		out = append(out, CatalogLine{ItemID: k, Qty: m[k]})
	}
	return out
}
