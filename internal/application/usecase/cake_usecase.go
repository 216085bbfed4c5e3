// internal/application/usecase/cake_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	cakedom "patisserie/internal/domain/cake"
)

var (
	ErrCakeInvalidArgument = errors.New("cake_usecase: invalid argument")
	ErrCakeNotFound        = errors.New("cake_usecase: spec not found")
)

// CreateCakeSpecInput carries the cake configurator form.
type CreateCakeSpecInput struct {
	CustomerEmail string
	Event         string
	BaseType      string
	RequiredDate  time.Time
	Size          string
	Colors        []string
	Pickup        bool
	Toppings      []string
	Writing       string
	ImagePath     string
	Notes         string
	Price         int
}

// CakeUsecase records customer cake specifications as standalone entities;
// a spec exists before (possibly without ever) being ordered.
type CakeUsecase struct {
	repo  cakedom.Repository
	clock Clock
	newID func() string
}

func NewCakeUsecase(repo cakedom.Repository) *CakeUsecase {
	return &CakeUsecase{repo: repo, clock: systemClock{}, newID: uuid.NewString}
}

func NewCakeUsecaseWithClock(repo cakedom.Repository, clock Clock, newID func() string) *CakeUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &CakeUsecase{repo: repo, clock: clock, newID: newID}
}

func (uc *CakeUsecase) Create(ctx context.Context, in CreateCakeSpecInput) (*cakedom.Spec, error) {
	s, err := cakedom.New(
		uc.newID(),
		in.CustomerEmail,
		in.Event,
		in.BaseType,
		in.RequiredDate,
		in.Size,
		in.Colors,
		in.Pickup,
		in.Toppings,
		in.Writing,
		in.ImagePath,
		in.Notes,
		in.Price,
		uc.clock.Now(),
	)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (uc *CakeUsecase) Get(ctx context.Context, id string) (*cakedom.Spec, error) {
	sid := strings.TrimSpace(id)
	if sid == "" {
		return nil, ErrCakeInvalidArgument
	}
	s, err := uc.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, ErrCakeNotFound
	}
	return s, nil
}

func (uc *CakeUsecase) ListByCustomer(ctx context.Context, customerEmail string) ([]cakedom.Spec, error) {
	email := strings.TrimSpace(customerEmail)
	if email == "" {
		return nil, ErrCakeInvalidArgument
	}
	return uc.repo.ListByCustomer(ctx, email)
}

func (uc *CakeUsecase) Delete(ctx context.Context, id string) error {
	sid := strings.TrimSpace(id)
	if sid == "" {
		return ErrCakeInvalidArgument
	}
	return uc.repo.Delete(ctx, sid)
}
