package tickets

import (
	"time"

	"github.com/shopspring/decimal"
)

// ViewKind discriminates the two ticket detail shapes. Admin views carry
// holder identity and order linkage; self-service views do not. Consumers
// switch on Kind instead of probing for fields.
type ViewKind string

const (
	KindAdmin ViewKind = "admin"
	KindUser  ViewKind = "user"
)

// SeatRef is the optional seat a ticket is assigned to. Absent for
// general admission.
type SeatRef struct {
	ID          string `json:"id"`
	SectionName string `json:"section_name"`
	RowName     string `json:"row_name"`
	SeatNumber  string `json:"seat_number"`
}

// TicketView is the single tagged shape both consoles render.
type TicketView struct {
	Kind ViewKind `json:"kind"`

	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	EventName      string     `json:"event_name"`
	TicketTypeName string     `json:"ticket_type_name"`
	Price          decimal.Decimal `json:"price"`
	Seat           *SeatRef   `json:"seat,omitempty"`
	Status         Status     `json:"status"`
	QRCode         string     `json:"qr_code"`
	PurchaseDate   time.Time  `json:"purchase_date"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
	CancelledAt    *time.Time `json:"cancelled_at,omitempty"`

	// Admin-only fields, zero-valued when Kind is user.
	HolderName  string `json:"holder_name,omitempty"`
	HolderEmail string `json:"holder_email,omitempty"`
	OrderRef    string `json:"order_ref,omitempty"`
}

// CheckInResult is the outcome of one check-in attempt. AlreadyCheckedIn
// distinguishes the benign duplicate-scan case from a fresh check-in.
type CheckInResult struct {
	Ticket           TicketView `json:"ticket"`
	Status           Status     `json:"status"`
	CheckedInAt      *time.Time `json:"checked_in_at,omitempty"`
	AlreadyCheckedIn bool       `json:"already_checked_in"`
	Message          string     `json:"message"`
}

// CancelResult is the outcome of a ticket cancellation, refund figures
// included.
type CancelResult struct {
	Ticket           TicketView      `json:"ticket"`
	Status           Status          `json:"status"`
	CancelledAt      *time.Time      `json:"cancelled_at,omitempty"`
	RefundAmount     decimal.Decimal `json:"refund_amount"`
	RefundPercentage decimal.Decimal `json:"refund_percentage"`
	RefundStatus     string          `json:"refund_status"`
	Message          string          `json:"message"`
}
