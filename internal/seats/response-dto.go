package seats

import "time"

type SeatResponse struct {
	ID          string    `json:"id"`
	VenueID     string    `json:"venue_id"`
	SectionName string    `json:"section_name"`
	RowName     string    `json:"row_name"`
	SeatNumber  string    `json:"seat_number"`
	IsBlocked   bool      `json:"is_blocked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s *Seat) ToResponse() SeatResponse {
	return SeatResponse{
		ID:          s.ID.String(),
		VenueID:     s.VenueID.String(),
		SectionName: s.SectionName,
		RowName:     s.RowName,
		SeatNumber:  s.SeatNumber,
		IsBlocked:   s.IsBlocked,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// SeatMapResponse is a built seating chart plus per-bucket totals.
// EventID is empty for a venue-level (topology only) fetch.
type SeatMapResponse struct {
	VenueID    string                 `json:"venue_id"`
	EventID    string                 `json:"event_id,omitempty"`
	Sections   []SectionGroup         `json:"sections"`
	TotalSeats int                    `json:"total_seats"`
	Counts     map[StatusCategory]int `json:"counts"`
}
