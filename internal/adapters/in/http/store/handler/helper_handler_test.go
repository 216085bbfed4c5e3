package storeHandler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCustomerIDResolution(t *testing.T) {
	// query param wins
	r := httptest.NewRequest("GET", "/cart?customerId=query@example.com", nil)
	r.Header.Set("X-Customer-Id", "header@example.com")
	assert.Equal(t, "query@example.com", customerID(r, "body@example.com"))

	// then the header
	r = httptest.NewRequest("GET", "/cart", nil)
	r.Header.Set("X-Customer-Id", "header@example.com")
	assert.Equal(t, "header@example.com", customerID(r, "body@example.com"))

	// then the body fallback
	r = httptest.NewRequest("GET", "/cart", nil)
	assert.Equal(t, "body@example.com", customerID(r, " body@example.com "))

	r = httptest.NewRequest("GET", "/cart", nil)
	assert.Equal(t, "", customerID(r, ""))
}

func TestLastPathSegment(t *testing.T) {
	assert.Equal(t, "ord-1", lastPathSegment("/payment/generate-invoice/ord-1"))
	assert.Equal(t, "ord-1", lastPathSegment("/payment/generate-invoice/ord-1/"))
	assert.Equal(t, "cart", lastPathSegment("/cart"))
	assert.Equal(t, "", lastPathSegment("/"))
}

func TestHasSuffixAny(t *testing.T) {
	assert.True(t, hasSuffixAny("/api/cart/add", "/cart/add"))
	assert.True(t, hasSuffixAny("/cart/add", "/cart/remove-item", "/cart/add"))
	assert.False(t, hasSuffixAny("/cart/add-cake", "/cart/add"))
	assert.False(t, hasSuffixAny("/cart/add", ""))
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 5, parseIntDefault("5", 1))
	assert.Equal(t, 1, parseIntDefault("", 1))
	assert.Equal(t, 1, parseIntDefault("abc", 1))
	assert.Equal(t, -2, parseIntDefault(" -2 ", 1))
}

func TestToRFC3339(t *testing.T) {
	assert.Equal(t, "", toRFC3339(time.Time{}))
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-01T10:00:00Z", toRFC3339(ts))
}
