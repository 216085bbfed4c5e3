// internal/application/usecase/systemconfig_usecase.go
package usecase

import (
	"context"
	"errors"

	syscfg "patisserie/internal/domain/systemconfig"
)

var (
	ErrSystemConfigNotConfigured = errors.New("systemconfig_usecase: repository is not configured")
)

// SystemConfigUsecase exposes the store-wide vacation mode toggle.
type SystemConfigUsecase struct {
	repo syscfg.Repository
}

func NewSystemConfigUsecase(repo syscfg.Repository) *SystemConfigUsecase {
	return &SystemConfigUsecase{repo: repo}
}

func (uc *SystemConfigUsecase) VacationMode(ctx context.Context) (bool, error) {
	if uc.repo == nil {
		return false, ErrSystemConfigNotConfigured
	}
	return uc.repo.GetVacationMode(ctx)
}

func (uc *SystemConfigUsecase) SetVacationMode(ctx context.Context, enabled bool) error {
	if uc.repo == nil {
		return ErrSystemConfigNotConfigured
	}
	return uc.repo.SetVacationMode(ctx, enabled)
}
