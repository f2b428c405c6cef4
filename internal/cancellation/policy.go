package cancellation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refund tiers by time remaining until the event starts:
// under 24 hours the ticket is not cancellable, between 24 and 48 hours
// half the price comes back, beyond 48 hours 80% does.
var (
	percentNone = decimal.Zero
	percentHalf = decimal.NewFromInt(50)
	percentMost = decimal.NewFromInt(80)

	hundred = decimal.NewFromInt(100)
)

const (
	cutoffNoRefund   = 24 * time.Hour
	cutoffHalfRefund = 48 * time.Hour
)

// ComputeQuote applies the refund policy for a ticket priced at price,
// for an event starting at eventStart, evaluated at now.
func ComputeQuote(price decimal.Decimal, eventStart, now time.Time) Quote {
	remaining := eventStart.Sub(now)

	if remaining < cutoffNoRefund {
		return Quote{
			Cancellable: false,
			Percentage:  percentNone,
			Amount:      decimal.Zero,
			Reason:      "tickets cannot be cancelled within 24 hours of the event",
		}
	}

	percentage := percentMost
	if remaining < cutoffHalfRefund {
		percentage = percentHalf
	}

	amount := price.Mul(percentage).Div(hundred).Round(2)
	return Quote{
		Cancellable: true,
		Percentage:  percentage,
		Amount:      amount,
	}
}
