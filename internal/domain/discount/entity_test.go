package discount

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestNewGrant(t *testing.T) {
	g, err := New(" abc12345 ", 10, testNow)
	require.NoError(t, err)
	assert.Equal(t, "ABC12345", g.Code)
	assert.False(t, g.Used)

	_, err = New("", 10, testNow)
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = New("ab", 10, testNow) // too short for the code format
	assert.ErrorIs(t, err, ErrInvalidCode)

	_, err = New("ABC12345", 101, testNow)
	assert.ErrorIs(t, err, ErrInvalidPercent)

	_, err = New("ABC12345", -1, testNow)
	assert.ErrorIs(t, err, ErrInvalidPercent)
}

func TestGrantRedeemOnce(t *testing.T) {
	g, err := New("ABC12345", 10, testNow)
	require.NoError(t, err)

	require.NoError(t, g.Redeem())
	assert.True(t, g.Used)

	assert.ErrorIs(t, g.Redeem(), ErrAlreadyUsed)
}

func TestApply(t *testing.T) {
	cases := []struct {
		subtotal int
		percent  int
		want     int
	}{
		{1000, 10, 900},
		{999, 10, 900}, // fraction rounds down on the reduction
		{2700, 25, 2025},
		{100, 0, 100},
		{100, 100, 0},
		{0, 50, 0},
	}
	for _, tc := range cases {
		got, err := Apply(tc.subtotal, tc.percent)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "subtotal=%d percent=%d", tc.subtotal, tc.percent)
	}

	_, err := Apply(1000, 101)
	assert.ErrorIs(t, err, ErrInvalidPercent)
	_, err = Apply(-1, 10)
	assert.ErrorIs(t, err, ErrInvalidPercent)
}
