package cancellation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RefundStatus tracks the asynchronous payment-side processing of a
// refund. A ticket only moves to REFUNDED once this reaches COMPLETED.
type RefundStatus string

const (
	RefundPending    RefundStatus = "PENDING"
	RefundProcessing RefundStatus = "PROCESSING"
	RefundCompleted  RefundStatus = "COMPLETED"
	RefundFailed     RefundStatus = "FAILED"
)

func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundPending, RefundProcessing, RefundCompleted, RefundFailed:
		return true
	}
	return false
}

func (s RefundStatus) IsTerminal() bool {
	return s == RefundCompleted || s == RefundFailed
}

// Refund is the money side of a ticket cancellation.
type Refund struct {
	ID           uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TicketID     uuid.UUID       `gorm:"type:uuid;unique;not null" json:"ticket_id"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Percentage   decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	Status       RefundStatus    `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	RequestedAt  time.Time       `json:"requested_at"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty"`
	FailureNote  string          `json:"failure_note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// Quote is the computed outcome of the refund policy for one ticket at
// one instant, before anything is persisted.
type Quote struct {
	Cancellable bool            `json:"cancellable"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
	Reason      string          `json:"reason,omitempty"`
}

// TableName sets the table name for Refund
func (Refund) TableName() string {
	return "refunds"
}
