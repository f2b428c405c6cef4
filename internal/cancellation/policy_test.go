package cancellation

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeQuoteTiers(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	price := decimal.NewFromInt(1000)

	tests := []struct {
		name        string
		until       time.Duration
		cancellable bool
		percentage  int64
		amount      string
	}{
		{"event in an hour", time.Hour, false, 0, "0"},
		{"just under a day", 23 * time.Hour, false, 0, "0"},
		{"exactly 24h", 24 * time.Hour, true, 50, "500"},
		{"36 hours out", 36 * time.Hour, true, 50, "500"},
		{"exactly 48h", 48 * time.Hour, true, 80, "800"},
		{"a week out", 7 * 24 * time.Hour, true, 80, "800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := ComputeQuote(price, now.Add(tt.until), now)
			assert.Equal(t, tt.cancellable, quote.Cancellable)
			assert.True(t, decimal.NewFromInt(tt.percentage).Equal(quote.Percentage),
				"percentage: want %d got %s", tt.percentage, quote.Percentage)
			assert.True(t, decimal.RequireFromString(tt.amount).Equal(quote.Amount),
				"amount: want %s got %s", tt.amount, quote.Amount)
		})
	}
}

func TestComputeQuoteRounding(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	start := now.Add(72 * time.Hour)

	// 80% of 333.33 is 266.664, which settles to 266.66.
	quote := ComputeQuote(decimal.RequireFromString("333.33"), start, now)
	assert.True(t, decimal.RequireFromString("266.66").Equal(quote.Amount), "got %s", quote.Amount)
}

func TestComputeQuotePastEvent(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	quote := ComputeQuote(decimal.NewFromInt(500), now.Add(-time.Hour), now)
	assert.False(t, quote.Cancellable)
	assert.NotEmpty(t, quote.Reason)
	assert.True(t, quote.Amount.IsZero())
}
