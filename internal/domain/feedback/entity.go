// internal/domain/feedback/entity.go
package feedback

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound        = errors.New("feedback: not found")
	ErrInvalidID       = errors.New("feedback: invalid id")
	ErrInvalidCustomer = errors.New("feedback: invalid customer email")
	ErrInvalidText     = errors.New("feedback: invalid text")
)

var (
	MaxTextLength = 2000
)

// Feedback is a customer review. It is hidden until an admin approves it;
// rejection is a hard delete.
type Feedback struct {
	ID            string    `json:"id" firestore:"id"`
	CustomerEmail string    `json:"customerEmail" firestore:"customerEmail"`
	Text          string    `json:"text" firestore:"text"`
	ImagePath     string    `json:"imagePath" firestore:"imagePath"`
	Approved      bool      `json:"approved" firestore:"approved"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt"`
}

func New(id, customerEmail, text, imagePath string, now time.Time) (Feedback, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	f := Feedback{
		ID:            strings.TrimSpace(id),
		CustomerEmail: strings.TrimSpace(customerEmail),
		Text:          strings.TrimSpace(text),
		ImagePath:     strings.TrimSpace(imagePath),
		Approved:      false,
		CreatedAt:     now.UTC(),
	}
	if err := f.Validate(); err != nil {
		return Feedback{}, err
	}
	return f, nil
}

func (f Feedback) Validate() error {
	if f.ID == "" {
		return ErrInvalidID
	}
	if f.CustomerEmail == "" || !strings.Contains(f.CustomerEmail, "@") {
		return ErrInvalidCustomer
	}
	if f.Text == "" {
		return ErrInvalidText
	}
	if MaxTextLength > 0 && len([]rune(f.Text)) > MaxTextLength {
		return ErrInvalidText
	}
	return nil
}

func (f *Feedback) Approve() {
	f.Approved = true
}
