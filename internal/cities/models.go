package cities

import (
	"time"

	"github.com/google/uuid"
)

// City is reference data: venues point at a city, and event browsing
// filters by it. Rows change rarely, so reads go through the cache.
type City struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:100;uniqueIndex:idx_city_name_state"`
	State     string    `json:"state" gorm:"size:100;uniqueIndex:idx_city_name_state"`
	Country   string    `json:"country" gorm:"not null;size:100;default:'India'"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (c *City) ToResponse() CityResponse {
	return CityResponse{
		ID:       c.ID.String(),
		Name:     c.Name,
		State:    c.State,
		Country:  c.Country,
		IsActive: c.IsActive,
	}
}

// TableName specifies the table name for GORM
func (City) TableName() string {
	return "cities"
}
