package seats

import (
	"time"

	"github.com/google/uuid"
)

// SeatStatus is the occupancy of a seat in the context of one event.
// It is derived from tickets and orders at read time, never stored on
// the seat row itself.
type SeatStatus string

const (
	StatusAvailable SeatStatus = "AVAILABLE"
	StatusReserved  SeatStatus = "RESERVED"
	StatusSold      SeatStatus = "SOLD"
	StatusBlocked   SeatStatus = "BLOCKED"
)

// StatusCategory is the presentation bucket a status renders as.
// Unrecognized statuses get an explicit unknown bucket so a newer
// upstream enum value degrades visibly instead of breaking the map.
type StatusCategory string

const (
	CategoryAvailable StatusCategory = "available"
	CategoryReserved  StatusCategory = "reserved"
	CategorySold      StatusCategory = "sold"
	CategoryBlocked   StatusCategory = "blocked"
	CategoryUnknown   StatusCategory = "unknown"
)

func (s SeatStatus) IsValid() bool {
	switch s {
	case StatusAvailable, StatusReserved, StatusSold, StatusBlocked:
		return true
	default:
		return false
	}
}

// Category maps a status to its presentation bucket.
func (s SeatStatus) Category() StatusCategory {
	switch s {
	case StatusAvailable:
		return CategoryAvailable
	case StatusReserved:
		return CategoryReserved
	case StatusSold:
		return CategorySold
	case StatusBlocked:
		return CategoryBlocked
	default:
		return CategoryUnknown
	}
}

func (s SeatStatus) String() string {
	return string(s)
}

// Seat is one physical seat in a venue. Section and row are attributes
// of the seat, not separate tables; the nested seating view is derived.
type Seat struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	VenueID     uuid.UUID `json:"venue_id" gorm:"type:uuid;not null;index"`
	SectionName string    `json:"section_name" gorm:"not null;size:100"`
	RowName     string    `json:"row_name" gorm:"not null;size:50"`
	SeatNumber  string    `json:"seat_number" gorm:"not null;size:20"`
	IsBlocked   bool      `json:"is_blocked" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Seat) TableName() string {
	return "seats"
}
