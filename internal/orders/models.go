package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the purchase a ticket came from. Orders are created and paid
// through the storefront, which is outside this console; the console
// reads them to validate check-ins and to resolve refunds.
type Order struct {
	ID          uuid.UUID       `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	EventID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"event_id"`
	OrderRef    string          `gorm:"unique;not null" json:"order_ref"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	Currency    string          `gorm:"type:varchar(3);default:'INR'" json:"currency"`
	Status      Status          `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	CancelledAt *time.Time      `json:"cancelled_at,omitempty"`
}

type OrderResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	EventID     string          `json:"event_id"`
	OrderRef    string          `json:"order_ref"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

func (o *Order) ToResponse() OrderResponse {
	return OrderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID.String(),
		EventID:     o.EventID.String(),
		OrderRef:    o.OrderRef,
		TotalAmount: o.TotalAmount,
		Currency:    o.Currency,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
	}
}

// TableName specifies the table name for GORM
func (Order) TableName() string {
	return "orders"
}
