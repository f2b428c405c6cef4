package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID          uuid.UUID   `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name        string      `json:"name" gorm:"not null;size:255"`
	Description string      `json:"description" gorm:"type:text"`
	VenueID     uuid.UUID   `json:"venue_id" gorm:"type:uuid;not null;index"`
	CategoryID  *uuid.UUID  `json:"category_id" gorm:"type:uuid;index"`
	StartDate   time.Time   `json:"start_date" gorm:"not null;index"`
	EndDate     *time.Time  `json:"end_date"`
	Status      EventStatus `json:"status" gorm:"type:varchar(20);default:'UPCOMING'"`
	ImageURL    string      `json:"image_url" gorm:"size:500"`

	CreatedBy uuid.UUID  `json:"created_by" gorm:"type:uuid;not null"`
	UpdatedBy *uuid.UUID `json:"updated_by" gorm:"type:uuid"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

type EventResponse struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	VenueID     string      `json:"venue_id"`
	CategoryID  string      `json:"category_id,omitempty"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	Status      EventStatus `json:"status"`
	Phase       Phase       `json:"phase"`
	ImageURL    string      `json:"image_url"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type CreateEventRequest struct {
	Name        string     `json:"name" binding:"required,min=3,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	VenueID     string     `json:"venue_id" binding:"required,uuid"`
	CategoryID  string     `json:"category_id" binding:"omitempty,uuid"`
	StartDate   time.Time  `json:"start_date" binding:"required"`
	EndDate     *time.Time `json:"end_date"`
	ImageURL    string     `json:"image_url" binding:"omitempty,url"`
}

type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	VenueID     *string    `json:"venue_id" binding:"omitempty,uuid"`
	CategoryID  *string    `json:"category_id" binding:"omitempty,uuid"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status" binding:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
	ImageURL    *string    `json:"image_url" binding:"omitempty,url"`
}

type EventListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	VenueID  string `form:"venue_id" binding:"omitempty,uuid"`
	CityID   string `form:"city_id" binding:"omitempty,uuid"`
	Category string `form:"category_id" binding:"omitempty,uuid"`
	DateFrom string `form:"date_from"`
	DateTo   string `form:"date_to"`
	Status   string `form:"status" binding:"omitempty,oneof=UPCOMING ONGOING COMPLETED CANCELLED"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

// ToResponse converts an event row into its API shape. The phase is
// derived at call time so it tracks the clock.
func (e *Event) ToResponse(now time.Time) EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		Name:        e.Name,
		Description: e.Description,
		VenueID:     e.VenueID.String(),
		StartDate:   e.StartDate,
		EndDate:     e.EndDate,
		Status:      e.Status,
		Phase:       ClassifyPhase(&e.StartDate, e.EndDate, now),
		ImageURL:    e.ImageURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
	if e.CategoryID != nil {
		resp.CategoryID = e.CategoryID.String()
	}
	return resp
}

// TableName specifies the table name for GORM
func (Event) TableName() string {
	return "events"
}
