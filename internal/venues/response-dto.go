package venues

import "time"

type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CityID    string    `json:"city_id"`
	Capacity  int       `json:"capacity"`
	SeatCount int64     `json:"seat_count"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaginatedVenues struct {
	Venues     []VenueResponse `json:"venues"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func (v *Venue) ToResponse(seatCount int64) VenueResponse {
	return VenueResponse{
		ID:        v.ID.String(),
		Name:      v.Name,
		Address:   v.Address,
		CityID:    v.CityID.String(),
		Capacity:  v.Capacity,
		SeatCount: seatCount,
		IsActive:  v.IsActive,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}
