package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cakedom "patisserie/internal/domain/cake"
)

var cakeNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newCakeForTest() (*CakeUsecase, *memCakeRepo) {
	repo := newMemCakeRepo()
	uc := NewCakeUsecaseWithClock(repo, fixedClock{cakeNow}, func() string { return "cake-1" })
	return uc, repo
}

func configuratorInput() CreateCakeSpecInput {
	return CreateCakeSpecInput{
		CustomerEmail: "marie@example.com",
		Event:         "birthday",
		BaseType:      "chocolate",
		RequiredDate:  cakeNow.AddDate(0, 0, 7),
		Size:          "medium",
		Colors:        []string{"pink", "white"},
		Pickup:        true,
		Toppings:      []string{"strawberries"},
		Writing:       "Happy Birthday Léa",
		Notes:         "no nuts please",
		Price:         1500,
	}
}

func TestCakeCreate(t *testing.T) {
	uc, _ := newCakeForTest()

	s, err := uc.Create(context.Background(), configuratorInput())
	require.NoError(t, err)
	assert.Equal(t, "cake-1", s.ID)
	assert.Equal(t, 1500, s.Price)
	assert.Equal(t, []string{"pink", "white"}, s.Colors)
	assert.Equal(t, cakeNow, s.CreatedAt)

	got, err := uc.Get(context.Background(), "cake-1")
	require.NoError(t, err)
	assert.Equal(t, s.Event, got.Event)
}

func TestCakeCreateValidation(t *testing.T) {
	uc, _ := newCakeForTest()

	in := configuratorInput()
	in.CustomerEmail = ""
	_, err := uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, cakedom.ErrInvalidCustomer)

	in = configuratorInput()
	in.Price = -1
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, cakedom.ErrInvalidPrice)
}

func TestCakeListByCustomer(t *testing.T) {
	uc, repo := newCakeForTest()

	_, err := uc.Create(context.Background(), configuratorInput())
	require.NoError(t, err)

	specs, err := uc.ListByCustomer(context.Background(), "marie@example.com")
	require.NoError(t, err)
	assert.Len(t, specs, 1)

	specs, err = uc.ListByCustomer(context.Background(), "other@example.com")
	require.NoError(t, err)
	assert.Empty(t, specs)

	_, err = uc.ListByCustomer(context.Background(), " ")
	assert.ErrorIs(t, err, ErrCakeInvalidArgument)

	// abandoned specs simply stay around
	require.NoError(t, uc.Delete(context.Background(), "cake-1"))
	_, ok := repo.specs["cake-1"]
	assert.False(t, ok)
}

func TestCakeGetNotFound(t *testing.T) {
	uc, _ := newCakeForTest()

	_, err := uc.Get(context.Background(), "no-such-spec")
	assert.ErrorIs(t, err, ErrCakeNotFound)

	_, err = uc.Get(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCakeInvalidArgument)
}
