package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inqdom "patisserie/internal/domain/inquiry"
)

var inquiryNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

type captureMailer struct {
	notified []inqdom.Inquiry
	err      error
}

func (m *captureMailer) NotifyInquiry(ctx context.Context, q inqdom.Inquiry) error {
	m.notified = append(m.notified, q)
	return m.err
}

func newInquiryForTest(mailer InquiryMailer) (*InquiryUsecase, *memInquiryRepo) {
	repo := newMemInquiryRepo()
	uc := NewInquiryUsecaseWithClock(repo, mailer, fixedClock{inquiryNow}, func() string { return "inq-1" })
	return uc, repo
}

func TestInquiryCreateNotifiesShop(t *testing.T) {
	mailer := &captureMailer{}
	uc, repo := newInquiryForTest(mailer)

	q, err := uc.Create(context.Background(), "Paul", "paul@example.com", "Do you ship nationwide?")
	require.NoError(t, err)
	assert.Equal(t, "inq-1", q.ID)

	require.Len(t, mailer.notified, 1)
	assert.Equal(t, "paul@example.com", mailer.notified[0].Email)
	assert.Len(t, repo.entries, 1)
}

func TestInquiryMailFailureIsBestEffort(t *testing.T) {
	mailer := &captureMailer{err: errors.New("sendgrid down")}
	uc, repo := newInquiryForTest(mailer)

	// the inquiry is stored even when the notification fails
	_, err := uc.Create(context.Background(), "Paul", "paul@example.com", "Hello")
	require.NoError(t, err)
	assert.Len(t, repo.entries, 1)
}

func TestInquiryCreateWithoutMailer(t *testing.T) {
	uc, repo := newInquiryForTest(nil)

	_, err := uc.Create(context.Background(), "Paul", "paul@example.com", "Hello")
	require.NoError(t, err)
	assert.Len(t, repo.entries, 1)
}

func TestInquiryValidation(t *testing.T) {
	uc, _ := newInquiryForTest(nil)

	_, err := uc.Create(context.Background(), "", "paul@example.com", "Hello")
	assert.ErrorIs(t, err, inqdom.ErrInvalidName)

	_, err = uc.Create(context.Background(), "Paul", "not-an-email", "Hello")
	assert.ErrorIs(t, err, inqdom.ErrInvalidEmail)

	_, err = uc.Create(context.Background(), "Paul", "paul@example.com", "  ")
	assert.ErrorIs(t, err, inqdom.ErrInvalidMessage)
}

func TestInquiryDelete(t *testing.T) {
	uc, _ := newInquiryForTest(nil)

	_, err := uc.Create(context.Background(), "Paul", "paul@example.com", "Hello")
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), "inq-1"))
	assert.ErrorIs(t, uc.Delete(context.Background(), "inq-1"), ErrInquiryNotFound)
	assert.ErrorIs(t, uc.Delete(context.Background(), "  "), ErrInquiryInvalidArgument)
}
