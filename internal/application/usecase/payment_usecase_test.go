package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paydom "patisserie/internal/domain/payment"
)

func TestVerifyCard(t *testing.T) {
	rec, err := paydom.New("Marie Dupont", "4111 2222 3333 4444", "12/27", "123")
	require.NoError(t, err)
	uc := NewPaymentUsecase(&memCardRepo{records: []paydom.CardRecord{rec}})

	// differently formatted but equivalent input is accepted
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334444", "2027-12", "123")
	assert.NoError(t, err)
	err = uc.VerifyCard(context.Background(), " Marie Dupont ", "4111 2222 3333 4444", "12-2027", "123")
	assert.NoError(t, err)

	// every mismatch kind collapses into the same rejection
	err = uc.VerifyCard(context.Background(), "Marie Dupond", "4111222233334444", "2027-12", "123")
	assert.ErrorIs(t, err, ErrPaymentCardNotRecognized)
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334445", "2027-12", "123")
	assert.ErrorIs(t, err, ErrPaymentCardNotRecognized)
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334444", "11/27", "123")
	assert.ErrorIs(t, err, ErrPaymentCardNotRecognized)
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334444", "2027-12", "999")
	assert.ErrorIs(t, err, ErrPaymentCardNotRecognized)

	// unparseable expiry is a rejection, not a server error
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334444", "not-a-date", "123")
	assert.ErrorIs(t, err, ErrPaymentCardNotRecognized)
}

func TestVerifyCardMissingFields(t *testing.T) {
	uc := NewPaymentUsecase(&memCardRepo{})

	err := uc.VerifyCard(context.Background(), "", "4111222233334444", "12/27", "123")
	assert.ErrorIs(t, err, ErrPaymentInvalidArgument)
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "  ", "12/27", "123")
	assert.ErrorIs(t, err, ErrPaymentInvalidArgument)
	err = uc.VerifyCard(context.Background(), "Marie Dupont", "4111222233334444", "12/27", "")
	assert.ErrorIs(t, err, ErrPaymentInvalidArgument)
}
