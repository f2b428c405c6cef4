package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a persisted record of a ticket lifecycle event,
// surfaced to the ticket holder in their activity feed.
type Notification struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TicketID  uuid.UUID  `gorm:"type:uuid;not null" json:"ticket_id"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null" json:"event_id"`
	Type      string     `gorm:"size:64;not null" json:"type"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
