// internal/domain/inquiry/entity.go
package inquiry

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound       = errors.New("inquiry: not found")
	ErrInvalidID      = errors.New("inquiry: invalid id")
	ErrInvalidName    = errors.New("inquiry: invalid name")
	ErrInvalidEmail   = errors.New("inquiry: invalid email")
	ErrInvalidMessage = errors.New("inquiry: invalid message")
)

var (
	MaxMessageLength = 4000
)

// Inquiry is a contact-form message from a (possibly anonymous) visitor.
type Inquiry struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

func New(id, name, email, message string, now time.Time) (Inquiry, error) {
	if now.IsZero() {
		now = time.Now().UTC()
	}
	q := Inquiry{
		ID:        strings.TrimSpace(id),
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   strings.TrimSpace(message),
		CreatedAt: now.UTC(),
	}
	if err := q.Validate(); err != nil {
		return Inquiry{}, err
	}
	return q, nil
}

func (q Inquiry) Validate() error {
	if q.ID == "" {
		return ErrInvalidID
	}
	if q.Name == "" {
		return ErrInvalidName
	}
	if q.Email == "" || !strings.Contains(q.Email, "@") {
		return ErrInvalidEmail
	}
	if q.Message == "" {
		return ErrInvalidMessage
	}
	if MaxMessageLength > 0 && len([]rune(q.Message)) > MaxMessageLength {
		return ErrInvalidMessage
	}
	return nil
}
