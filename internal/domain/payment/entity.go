// internal/domain/payment/entity.go
package payment

import (
	"errors"
	"strings"
)

var (
	ErrCardNotRecognized = errors.New("payment: card not recognized")
	ErrInvalidCardNumber = errors.New("payment: invalid card number")
	ErrInvalidExpiry     = errors.New("payment: invalid expiry")
	ErrInvalidCVV        = errors.New("payment: invalid cvv")
	ErrInvalidHolderName = errors.New("payment: invalid holder name")
)

// CardRecord is a static credential used only to simulate payment approval.
// It is looked up, never mutated, by checkout. No real money moves.
type CardRecord struct {
	HolderName string `json:"holderName" firestore:"holderName"`
	CardNumber string `json:"cardNumber" firestore:"cardNumber"`
	// Expiry is stored canonical: "YYYY-MM".
	Expiry string `json:"expiry" firestore:"expiry"`
	CVV    string `json:"cvv" firestore:"cvv"`
}

func New(holderName, cardNumber, expiry, cvv string) (CardRecord, error) {
	rec := CardRecord{
		HolderName: strings.TrimSpace(holderName),
		CardNumber: NormalizeCardNumber(cardNumber),
		Expiry:     "",
		CVV:        strings.TrimSpace(cvv),
	}

	exp, err := NormalizeExpiry(expiry)
	if err != nil {
		return CardRecord{}, err
	}
	rec.Expiry = exp

	if err := rec.Validate(); err != nil {
		return CardRecord{}, err
	}
	return rec, nil
}

func (r CardRecord) Validate() error {
	if r.HolderName == "" {
		return ErrInvalidHolderName
	}
	if !isDigits(r.CardNumber) || len(r.CardNumber) < 12 || len(r.CardNumber) > 19 {
		return ErrInvalidCardNumber
	}
	if _, err := NormalizeExpiry(r.Expiry); err != nil {
		return ErrInvalidExpiry
	}
	if !isDigits(r.CVV) || len(r.CVV) < 3 || len(r.CVV) > 4 {
		return ErrInvalidCVV
	}
	return nil
}

// Matches reports whether all four fields match exactly after normalization.
func (r CardRecord) Matches(holderName, cardNumber, expiry, cvv string) bool {
	exp, err := NormalizeExpiry(expiry)
	if err != nil {
		return false
	}
	return r.HolderName == strings.TrimSpace(holderName) &&
		r.CardNumber == NormalizeCardNumber(cardNumber) &&
		r.Expiry == exp &&
		r.CVV == strings.TrimSpace(cvv)
}

// NormalizeCardNumber strips whitespace (spaces entered between digit groups).
func NormalizeCardNumber(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == ' ' || r == '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

// NormalizeExpiry reformats an expiry to the canonical "YYYY-MM".
// Accepted inputs: "YYYY-MM", "MM/YY", "MM/YYYY", "MM-YY", "MM-YYYY".
func NormalizeExpiry(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidExpiry
	}

	// Already canonical "YYYY-MM"?
	if len(s) == 7 && s[4] == '-' {
		y, m := s[:4], s[5:]
		if isDigits(y) && validMonth(m) {
			return y + "-" + m, nil
		}
		return "", ErrInvalidExpiry
	}

	sep := "/"
	if !strings.Contains(s, "/") {
		sep = "-"
	}
	parts := strings.Split(s, sep)
	if len(parts) != 2 {
		return "", ErrInvalidExpiry
	}

	m := strings.TrimSpace(parts[0])
	y := strings.TrimSpace(parts[1])
	if len(m) == 1 {
		m = "0" + m
	}
	if !validMonth(m) {
		return "", ErrInvalidExpiry
	}
	switch len(y) {
	case 2:
		y = "20" + y
	case 4:
		// ok
	default:
		return "", ErrInvalidExpiry
	}
	if !isDigits(y) {
		return "", ErrInvalidExpiry
	}
	return y + "-" + m, nil
}

func validMonth(m string) bool {
	if len(m) != 2 || !isDigits(m) {
		return false
	}
	return m >= "01" && m <= "12"
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
