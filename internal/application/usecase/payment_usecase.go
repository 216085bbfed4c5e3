// internal/application/usecase/payment_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	paydom "patisserie/internal/domain/payment"
)

var (
	ErrPaymentInvalidArgument   = errors.New("payment_usecase: invalid argument")
	ErrPaymentCardNotRecognized = errors.New("payment_usecase: card not recognized")
)

// PaymentUsecase gates order progression behind a simulated credential
// check: card details are normalized and matched exactly against the stored
// verification records. No money moves and the order is untouched —
// completion is a separate admin action.
type PaymentUsecase struct {
	cards paydom.Repository
}

func NewPaymentUsecase(cards paydom.Repository) *PaymentUsecase {
	return &PaymentUsecase{cards: cards}
}

// VerifyCard normalizes the card number (whitespace stripped) and expiry
// (canonical YYYY-MM) and requires all four fields to match one stored
// record exactly.
func (uc *PaymentUsecase) VerifyCard(ctx context.Context, holderName, cardNumber, expiry, cvv string) error {
	holder := strings.TrimSpace(holderName)
	number := paydom.NormalizeCardNumber(cardNumber)
	code := strings.TrimSpace(cvv)
	if holder == "" || number == "" || code == "" {
		return ErrPaymentInvalidArgument
	}

	exp, err := paydom.NormalizeExpiry(expiry)
	if err != nil {
		return ErrPaymentCardNotRecognized
	}

	rec, err := uc.cards.FindMatch(ctx, holder, number, exp, code)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrPaymentCardNotRecognized
	}
	return nil
}
