package venues

import (
	"time"

	"github.com/google/uuid"
)

// Venue owns a flat collection of seats; section and row live on the
// seat rows themselves.
type Venue struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	Address   string    `json:"address" gorm:"size:500"`
	CityID    uuid.UUID `json:"city_id" gorm:"type:uuid;not null;index"`
	Capacity  int       `json:"capacity" gorm:"not null;default:0"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Venue) TableName() string {
	return "venues"
}
