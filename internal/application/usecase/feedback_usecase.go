// internal/application/usecase/feedback_usecase.go
package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	fbdom "patisserie/internal/domain/feedback"
)

var (
	ErrFeedbackInvalidArgument = errors.New("feedback_usecase: invalid argument")
	ErrFeedbackNotFound        = errors.New("feedback_usecase: not found")
)

// FeedbackUsecase covers customer feedback submission and the admin
// moderation surface. Approval exposes the entry on the storefront;
// rejection is a hard delete.
type FeedbackUsecase struct {
	repo  fbdom.Repository
	clock Clock
	newID func() string
}

func NewFeedbackUsecase(repo fbdom.Repository) *FeedbackUsecase {
	return &FeedbackUsecase{repo: repo, clock: systemClock{}, newID: uuid.NewString}
}

func NewFeedbackUsecaseWithClock(repo fbdom.Repository, clock Clock, newID func() string) *FeedbackUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &FeedbackUsecase{repo: repo, clock: clock, newID: newID}
}

func (uc *FeedbackUsecase) Create(ctx context.Context, customerEmail, text, imagePath string) (*fbdom.Feedback, error) {
	f, err := fbdom.New(uc.newID(), customerEmail, text, imagePath, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (uc *FeedbackUsecase) ListApproved(ctx context.Context) ([]fbdom.Feedback, error) {
	return uc.repo.ListApproved(ctx)
}

func (uc *FeedbackUsecase) ListAll(ctx context.Context) ([]fbdom.Feedback, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *FeedbackUsecase) Approve(ctx context.Context, id string) (*fbdom.Feedback, error) {
	fid := strings.TrimSpace(id)
	if fid == "" {
		return nil, ErrFeedbackInvalidArgument
	}
	f, err := uc.repo.SetApproved(ctx, fid, true)
	if err != nil {
		if errors.Is(err, fbdom.ErrNotFound) {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}
	return f, nil
}

func (uc *FeedbackUsecase) Delete(ctx context.Context, id string) error {
	fid := strings.TrimSpace(id)
	if fid == "" {
		return ErrFeedbackInvalidArgument
	}
	if err := uc.repo.Delete(ctx, fid); err != nil {
		if errors.Is(err, fbdom.ErrNotFound) {
			return ErrFeedbackNotFound
		}
		return err
	}
	return nil
}
