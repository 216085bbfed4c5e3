package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fbdom "patisserie/internal/domain/feedback"
)

var feedbackNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newFeedbackForTest() (*FeedbackUsecase, *memFeedbackRepo) {
	repo := newMemFeedbackRepo()
	uc := NewFeedbackUsecaseWithClock(repo, fixedClock{feedbackNow}, func() string { return "fb-1" })
	return uc, repo
}

func TestFeedbackModerationFlow(t *testing.T) {
	uc, _ := newFeedbackForTest()

	f, err := uc.Create(context.Background(), "marie@example.com", "Wonderful éclairs!", "feedback/fb-1.jpg")
	require.NoError(t, err)
	assert.False(t, f.Approved)

	// hidden from the storefront until approved
	visible, err := uc.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Empty(t, visible)

	all, err := uc.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)

	approved, err := uc.Approve(context.Background(), "fb-1")
	require.NoError(t, err)
	assert.True(t, approved.Approved)

	visible, err = uc.ListApproved(context.Background())
	require.NoError(t, err)
	assert.Len(t, visible, 1)
}

func TestFeedbackReject(t *testing.T) {
	uc, repo := newFeedbackForTest()

	_, err := uc.Create(context.Background(), "marie@example.com", "meh", "")
	require.NoError(t, err)

	// rejection is a hard delete
	require.NoError(t, uc.Delete(context.Background(), "fb-1"))
	assert.Empty(t, repo.entries)

	assert.ErrorIs(t, uc.Delete(context.Background(), "fb-1"), ErrFeedbackNotFound)
}

func TestFeedbackValidation(t *testing.T) {
	uc, _ := newFeedbackForTest()

	_, err := uc.Create(context.Background(), "not-an-email", "text", "")
	assert.ErrorIs(t, err, fbdom.ErrInvalidCustomer)

	_, err = uc.Create(context.Background(), "marie@example.com", "  ", "")
	assert.ErrorIs(t, err, fbdom.ErrInvalidText)

	_, err = uc.Approve(context.Background(), "no-such-feedback")
	assert.ErrorIs(t, err, ErrFeedbackNotFound)

	_, err = uc.Approve(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrFeedbackInvalidArgument)
}
