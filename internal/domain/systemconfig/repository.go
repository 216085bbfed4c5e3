// internal/domain/systemconfig/repository.go
package systemconfig

import (
	"context"
	"errors"
)

var (
	ErrVacationModeNotConfigured = errors.New("systemconfig: vacation mode not configured")
)

// Repository exposes the named store-wide configuration records.
//
// Vacation mode is a single document, not an ambient global: it is created
// on first read if absent and updated by a single writer (the admin toggle).
type Repository interface {
	// GetVacationMode returns the current toggle, creating the document
	// (enabled=false) when it does not exist yet.
	GetVacationMode(ctx context.Context) (bool, error)

	SetVacationMode(ctx context.Context, enabled bool) error
}
