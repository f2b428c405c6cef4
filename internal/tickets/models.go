package tickets

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketType is a price class within an event (e.g. Early Bird, VIP).
// General-admission types have no assigned seats.
type TicketType struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID   uuid.UUID       `json:"event_id" gorm:"type:uuid;not null;index"`
	Name      string          `json:"name" gorm:"not null;size:100"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// Ticket is one admission. The QR code is its only external handle for
// check-in; it never changes after issuance.
type Ticket struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	EventID            uuid.UUID  `json:"event_id" gorm:"type:uuid;not null;index"`
	TicketTypeID       uuid.UUID  `json:"ticket_type_id" gorm:"type:uuid;not null"`
	OrderID            uuid.UUID  `json:"order_id" gorm:"type:uuid;not null;index"`
	UserID             uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index"`
	SeatID             *uuid.UUID `json:"seat_id" gorm:"type:uuid;index"`
	Status             Status     `json:"status" gorm:"type:varchar(20);default:'ACTIVE'"`
	QRCode             string     `json:"qr_code" gorm:"uniqueIndex;not null;size:64"`
	HolderName         string     `json:"holder_name" gorm:"size:255"`
	HolderEmail        string     `json:"holder_email" gorm:"size:255"`
	PurchaseDate       time.Time  `json:"purchase_date" gorm:"not null"`
	CheckedInAt        *time.Time `json:"checked_in_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	CancellationReason string     `json:"cancellation_reason,omitempty" gorm:"size:500"`
	CreatedAt          time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Ticket) TableName() string {
	return "tickets"
}

func (TicketType) TableName() string {
	return "ticket_types"
}
