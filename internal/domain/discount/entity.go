// internal/domain/discount/entity.go
package discount

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Errors
var (
	ErrInvalidCode    = errors.New("discount: invalid or used code")
	ErrInvalidPercent = errors.New("discount: invalid discount percent")
	ErrAlreadyUsed    = errors.New("discount: code already used")
)

// Policy
var (
	// 0..100% by default
	MinPercent = 0
	MaxPercent = 100

	// Code format (nil disables)
	CodeRe = regexp.MustCompile(`^[A-Z0-9]{4,16}$`)
)

// Grant is a single-use promotional code bound to a percentage reduction.
// A grant is created by a promotional trigger (loyalty wheel etc.) and
// consumed exactly once; after redemption it leaves the active set.
type Grant struct {
	Code      string    `json:"code" firestore:"code"`
	Percent   int       `json:"percent" firestore:"percent"`
	Used      bool      `json:"used" firestore:"used"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

func New(code string, percent int, now time.Time) (Grant, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	g := Grant{
		Code:      strings.ToUpper(strings.TrimSpace(code)),
		Percent:   percent,
		Used:      false,
		CreatedAt: now.UTC(),
	}
	if err := g.Validate(); err != nil {
		return Grant{}, err
	}
	return g, nil
}

func (g Grant) Validate() error {
	if g.Code == "" {
		return ErrInvalidCode
	}
	if CodeRe != nil && !CodeRe.MatchString(g.Code) {
		return ErrInvalidCode
	}
	if g.Percent < MinPercent || g.Percent > MaxPercent {
		return ErrInvalidPercent
	}
	return nil
}

// Redeem marks the grant used. A used grant cannot be redeemed again.
func (g *Grant) Redeem() error {
	if g == nil {
		return ErrInvalidCode
	}
	if g.Used {
		return ErrAlreadyUsed
	}
	g.Used = true
	return nil
}

// Apply computes subtotal reduced by percent.
// Integer math, fractions rounded down (e.g. 1000 at 10% -> 900).
func Apply(subtotal, percent int) (int, error) {
	if percent < MinPercent || percent > MaxPercent {
		return 0, ErrInvalidPercent
	}
	if subtotal < 0 {
		return 0, ErrInvalidPercent
	}
	return subtotal - subtotal*percent/100, nil
}
