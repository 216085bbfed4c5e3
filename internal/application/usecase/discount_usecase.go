// internal/application/usecase/discount_usecase.go
package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"strings"

	discdom "patisserie/internal/domain/discount"
)

var (
	ErrDiscountInvalidArgument = errors.New("discount_usecase: invalid argument")
	ErrDiscountInvalidCode     = errors.New("discount_usecase: invalid or used code")
	ErrDiscountInvalidPercent  = errors.New("discount_usecase: percent must be within 0..100")
)

const grantCodeLength = 8

// code alphabet: unambiguous uppercase + digits
const grantCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// DiscountUsecase redeems one-time promotional codes and applies the
// percentage against a subtotal. The redeemed percentage is carried forward
// by the caller; it is not persisted on the Order (only the final total is).
type DiscountUsecase struct {
	repo  discdom.Repository
	clock Clock
}

func NewDiscountUsecase(repo discdom.Repository) *DiscountUsecase {
	return &DiscountUsecase{repo: repo, clock: systemClock{}}
}

func NewDiscountUsecaseWithClock(repo discdom.Repository, clock Clock) *DiscountUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	return &DiscountUsecase{repo: repo, clock: clock}
}

// CreateGrant mints a fresh single-use grant (promotional trigger, e.g. the
// loyalty wheel) and returns it with its code.
func (uc *DiscountUsecase) CreateGrant(ctx context.Context, percent int) (*discdom.Grant, error) {
	code, err := randomCode(grantCodeLength)
	if err != nil {
		return nil, err
	}
	g, err := discdom.New(code, percent, uc.clock.Now())
	if err != nil {
		if errors.Is(err, discdom.ErrInvalidPercent) {
			return nil, ErrDiscountInvalidPercent
		}
		return nil, err
	}
	if err := uc.repo.Create(ctx, &g); err != nil {
		return nil, err
	}
	return &g, nil
}

// Redeem consumes the code exactly once and returns its percentage.
// Unknown and already-used codes are indistinguishable to the caller.
func (uc *DiscountUsecase) Redeem(ctx context.Context, code string) (int, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if c == "" {
		return 0, ErrDiscountInvalidArgument
	}
	g, err := uc.repo.Redeem(ctx, c)
	if err != nil {
		if errors.Is(err, discdom.ErrInvalidCode) || errors.Is(err, discdom.ErrAlreadyUsed) {
			return 0, ErrDiscountInvalidCode
		}
		return 0, err
	}
	if g == nil {
		return 0, ErrDiscountInvalidCode
	}
	return g.Percent, nil
}

// Apply reduces subtotal by percent. Pure computation; see discount.Apply.
func (uc *DiscountUsecase) Apply(subtotal, percent int) (int, error) {
	total, err := discdom.Apply(subtotal, percent)
	if err != nil {
		return 0, ErrDiscountInvalidPercent
	}
	return total, nil
}

func randomCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = grantCodeAlphabet[int(b)%len(grantCodeAlphabet)]
	}
	return string(out), nil
}
