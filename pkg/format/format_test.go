package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortenAddress(t *testing.T) {
	assert.Equal(t, "abcd...ghij", ShortenAddress("abcdefghij", 4))
	assert.Equal(t, "So11...1112", ShortenAddress("So11111111111111111111111111111111111111112", 4))

	// Short inputs pass through untouched.
	assert.Equal(t, "abcdefgh", ShortenAddress("abcdefgh", 4))
	assert.Equal(t, "abc", ShortenAddress("abc", 0))
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in       float64
		decimals int
		want     string
	}{
		{1500, 2, "1.50K"},
		{2500000, 2, "2.50M"},
		{999, 2, "999.00"},
		{3_000_000_000, 2, "3.00B"},
		{0, 2, "0.00"},
		{2500000, 1, "2.5M"},
		{1234, 0, "1K"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatNumber(tc.in, tc.decimals), "FormatNumber(%v, %d)", tc.in, tc.decimals)
	}
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "-3.46%", FormatPercent(-3.456))
	assert.Equal(t, "+0.00%", FormatPercent(0))
	assert.Equal(t, "+12.35%", FormatPercent(12.345))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.56", FormatCurrency(1234.56, "USD"))
	assert.Equal(t, "$0.99", FormatCurrency(0.99, "USD"))
	assert.Equal(t, "€2.00", FormatCurrency(2, "EUR"))

	// Unknown codes fall back to USD.
	assert.Equal(t, "$5.00", FormatCurrency(5, "???"))
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "10s ago", FormatTimeAgo(now.Add(-10*time.Second).UnixMilli()))
	assert.Equal(t, "3m ago", FormatTimeAgo(now.Add(-3*time.Minute-5*time.Second).UnixMilli()))
	assert.Equal(t, "5h ago", FormatTimeAgo(now.Add(-5*time.Hour-30*time.Minute).UnixMilli()))
	assert.Equal(t, "12d ago", FormatTimeAgo(now.Add(-12*24*time.Hour-time.Hour).UnixMilli()))

	// Future timestamps clamp to zero.
	assert.Equal(t, "0s ago", FormatTimeAgo(now.Add(time.Minute).UnixMilli()))
}
