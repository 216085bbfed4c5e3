// internal/application/usecase/inquiry_usecase.go
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	inqdom "patisserie/internal/domain/inquiry"
)

var (
	ErrInquiryInvalidArgument = errors.New("inquiry_usecase: invalid argument")
	ErrInquiryNotFound        = errors.New("inquiry_usecase: not found")
)

// InquiryMailer is an outbound port for notifying the shop inbox about a
// new contact inquiry.
type InquiryMailer interface {
	NotifyInquiry(ctx context.Context, q inqdom.Inquiry) error
}

// InquiryUsecase records contact inquiries and notifies the shop inbox.
// Notification is best-effort: a mail failure never fails the inquiry.
type InquiryUsecase struct {
	repo   inqdom.Repository
	mailer InquiryMailer
	clock  Clock
	newID  func() string
}

func NewInquiryUsecase(repo inqdom.Repository, mailer InquiryMailer) *InquiryUsecase {
	return &InquiryUsecase{repo: repo, mailer: mailer, clock: systemClock{}, newID: uuid.NewString}
}

func NewInquiryUsecaseWithClock(repo inqdom.Repository, mailer InquiryMailer, clock Clock, newID func() string) *InquiryUsecase {
	if clock == nil {
		clock = systemClock{}
	}
	if newID == nil {
		newID = uuid.NewString
	}
	return &InquiryUsecase{repo: repo, mailer: mailer, clock: clock, newID: newID}
}

func (uc *InquiryUsecase) Create(ctx context.Context, name, email, message string) (*inqdom.Inquiry, error) {
	q, err := inqdom.New(uc.newID(), name, email, message, uc.clock.Now())
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, &q); err != nil {
		return nil, err
	}

	if uc.mailer != nil {
		if mErr := uc.mailer.NotifyInquiry(ctx, q); mErr != nil {
			log.Printf("[inquiry_uc] WARN: notify failed inquiryId=%s err=%v", q.ID, mErr)
		}
	}

	return &q, nil
}

func (uc *InquiryUsecase) ListAll(ctx context.Context) ([]inqdom.Inquiry, error) {
	return uc.repo.ListAll(ctx)
}

func (uc *InquiryUsecase) Delete(ctx context.Context, id string) error {
	qid := strings.TrimSpace(id)
	if qid == "" {
		return ErrInquiryInvalidArgument
	}
	if err := uc.repo.Delete(ctx, qid); err != nil {
		if errors.Is(err, inqdom.ErrNotFound) {
			return ErrInquiryNotFound
		}
		return fmt.Errorf("inquiry_usecase: delete failed: %w", err)
	}
	return nil
}
