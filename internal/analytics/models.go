package analytics

import "github.com/shopspring/decimal"

// EventStats is the live per-event operations summary shown on the
// console dashboard.
type EventStats struct {
	EventID string `json:"event_id"`

	// Ticket counts by lifecycle state.
	TotalTickets     int64 `json:"total_tickets"`
	ActiveTickets    int64 `json:"active_tickets"`
	CheckedInTickets int64 `json:"checked_in_tickets"`
	CancelledTickets int64 `json:"cancelled_tickets"`
	RefundedTickets  int64 `json:"refunded_tickets"`

	// CheckInRate is checked-in over total non-cancelled, 0 when no
	// tickets exist.
	CheckInRate float64 `json:"check_in_rate"`

	// Refund exposure.
	RefundsPending int64           `json:"refunds_pending"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
}

// statusCount is a scan target for the grouped ticket count query.
type statusCount struct {
	Status string
	Count  int64
}
