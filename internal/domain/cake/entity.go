// internal/domain/cake/entity.go
package cake

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound         = errors.New("cake: spec not found")
	ErrInvalidID        = errors.New("cake: invalid id")
	ErrInvalidCustomer  = errors.New("cake: invalid customer email")
	ErrInvalidEvent     = errors.New("cake: invalid event")
	ErrInvalidBaseType  = errors.New("cake: invalid base type")
	ErrInvalidSize      = errors.New("cake: invalid size")
	ErrInvalidDate      = errors.New("cake: invalid required date")
	ErrInvalidPrice     = errors.New("cake: invalid price")
	ErrInvalidCreatedAt = errors.New("cake: invalid createdAt")
)

// Spec is a customer-authored cake configuration, priced independently of
// stock. It may exist un-ordered (abandoned) indefinitely; once an order
// line item copies it, the copy is the frozen source of truth.
type Spec struct {
	ID            string    `json:"id" firestore:"id"`
	CustomerEmail string    `json:"customerEmail" firestore:"customerEmail"`
	Event         string    `json:"event" firestore:"event"`
	BaseType      string    `json:"baseType" firestore:"baseType"`
	RequiredDate  time.Time `json:"requiredDate" firestore:"requiredDate"`
	Size          string    `json:"size" firestore:"size"`
	Colors        []string  `json:"colors" firestore:"colors"`
	Pickup        bool      `json:"pickup" firestore:"pickup"`
	Toppings      []string  `json:"toppings" firestore:"toppings"`
	Writing       string    `json:"writing" firestore:"writing"`
	ImagePath     string    `json:"imagePath" firestore:"imagePath"`
	Notes         string    `json:"notes" firestore:"notes"`
	Price         int       `json:"price" firestore:"price"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

func New(
	id, customerEmail, event, baseType string,
	requiredDate time.Time,
	size string,
	colors []string,
	pickup bool,
	toppings []string,
	writing, imagePath, notes string,
	price int,
	now time.Time,
) (Spec, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	s := Spec{
		ID:            strings.TrimSpace(id),
		CustomerEmail: strings.TrimSpace(customerEmail),
		Event:         strings.TrimSpace(event),
		BaseType:      strings.TrimSpace(baseType),
		RequiredDate:  requiredDate.UTC(),
		Size:          strings.TrimSpace(size),
		Colors:        normalizeList(colors),
		Pickup:        pickup,
		Toppings:      normalizeList(toppings),
		Writing:       strings.TrimSpace(writing),
		ImagePath:     strings.TrimSpace(imagePath),
		Notes:         strings.TrimSpace(notes),
		Price:         price,
		CreatedAt:     now.UTC(),
	}
	if err := s.Validate(); err != nil {
		return Spec{}, err
	}
	return s, nil
}

func (s Spec) Validate() error {
	if s.ID == "" {
		return ErrInvalidID
	}
	if s.CustomerEmail == "" || !strings.Contains(s.CustomerEmail, "@") {
		return ErrInvalidCustomer
	}
	if s.Event == "" {
		return ErrInvalidEvent
	}
	if s.BaseType == "" {
		return ErrInvalidBaseType
	}
	if s.Size == "" {
		return ErrInvalidSize
	}
	if s.RequiredDate.IsZero() {
		return ErrInvalidDate
	}
	if s.Price < 0 {
		return ErrInvalidPrice
	}
	if s.CreatedAt.IsZero() {
		return ErrInvalidCreatedAt
	}
	return nil
}

// normalizeList trims entries, drops blanks, preserves order
// (colors は順序が意味を持つので sort しない).
func normalizeList(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}
