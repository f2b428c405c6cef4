package seats

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketops/internal/shared/apperr"
	"ticketops/internal/shared/constants"
	"ticketops/pkg/cache"
	"ticketops/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VenueChecker confirms a venue exists before seats are attached to it.
// Satisfied by the venues repository.
type VenueChecker interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type Service interface {
	CreateSeat(ctx context.Context, venueID uuid.UUID, req CreateSeatRequest) (*SeatResponse, error)
	BulkCreateSeats(ctx context.Context, venueID uuid.UUID, req BulkCreateSeatsRequest) ([]SeatResponse, error)
	GetSeatByID(ctx context.Context, id uuid.UUID) (*SeatResponse, error)
	UpdateSeat(ctx context.Context, id uuid.UUID, req UpdateSeatRequest) (*SeatResponse, error)
	DeleteSeat(ctx context.Context, id uuid.UUID) error

	// GetVenueSeatMap builds the seating chart for a venue. With a nil
	// eventID the map is topology only; with an event the statuses
	// reflect that event's sales.
	GetVenueSeatMap(ctx context.Context, venueID uuid.UUID, eventID *uuid.UUID) (*SeatMapResponse, error)
}

type service struct {
	repo   Repository
	venues VenueChecker
	cache  cache.Service
}

func NewService(repo Repository, venues VenueChecker, cacheService cache.Service) Service {
	return &service{repo: repo, venues: venues, cache: cacheService}
}

func (s *service) CreateSeat(ctx context.Context, venueID uuid.UUID, req CreateSeatRequest) (*SeatResponse, error) {
	if err := s.checkVenue(ctx, venueID); err != nil {
		return nil, err
	}

	section := strings.TrimSpace(req.SectionName)
	row := strings.TrimSpace(req.RowName)
	number := strings.TrimSpace(req.SeatNumber)

	existing, err := s.repo.GetByLocation(ctx, venueID, section, row, number)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing seat: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrSeatAlreadyExists
	}

	seat := &Seat{
		VenueID:     venueID,
		SectionName: section,
		RowName:     row,
		SeatNumber:  number,
	}
	if err := s.repo.Create(ctx, seat); err != nil {
		return nil, fmt.Errorf("failed to create seat: %w", err)
	}

	s.invalidateSeating(ctx, venueID)

	resp := seat.ToResponse()
	return &resp, nil
}

func (s *service) BulkCreateSeats(ctx context.Context, venueID uuid.UUID, req BulkCreateSeatsRequest) ([]SeatResponse, error) {
	if err := s.checkVenue(ctx, venueID); err != nil {
		return nil, err
	}

	// Reject duplicates within the batch before touching the database.
	seen := make(map[string]bool, len(req.Seats))
	batch := make([]Seat, 0, len(req.Seats))
	for _, item := range req.Seats {
		section := strings.TrimSpace(item.SectionName)
		row := strings.TrimSpace(item.RowName)
		number := strings.TrimSpace(item.SeatNumber)

		key := section + "\x00" + row + "\x00" + number
		if seen[key] {
			return nil, apperr.ErrSeatAlreadyExists.WithDetail(
				fmt.Sprintf("duplicate seat in batch: %s %s %s", section, row, number))
		}
		seen[key] = true

		batch = append(batch, Seat{
			VenueID:     venueID,
			SectionName: section,
			RowName:     row,
			SeatNumber:  number,
		})
	}

	if err := s.repo.CreateBulk(ctx, batch); err != nil {
		return nil, fmt.Errorf("failed to create seats: %w", err)
	}

	s.invalidateSeating(ctx, venueID)

	responses := make([]SeatResponse, 0, len(batch))
	for i := range batch {
		responses = append(responses, batch[i].ToResponse())
	}
	return responses, nil
}

func (s *service) GetSeatByID(ctx context.Context, id uuid.UUID) (*SeatResponse, error) {
	seat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}
	resp := seat.ToResponse()
	return &resp, nil
}

func (s *service) UpdateSeat(ctx context.Context, id uuid.UUID, req UpdateSeatRequest) (*SeatResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrSeatNotFound
		}
		return nil, fmt.Errorf("failed to get seat: %w", err)
	}

	updates := make(map[string]interface{})
	if req.SectionName != nil {
		updates["section_name"] = strings.TrimSpace(*req.SectionName)
	}
	if req.RowName != nil {
		updates["row_name"] = strings.TrimSpace(*req.RowName)
	}
	if req.SeatNumber != nil {
		updates["seat_number"] = strings.TrimSpace(*req.SeatNumber)
	}
	if req.IsBlocked != nil {
		updates["is_blocked"] = *req.IsBlocked
	}

	if len(updates) == 0 {
		resp := current.ToResponse()
		return &resp, nil
	}

	seat, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update seat: %w", err)
	}

	s.invalidateSeating(ctx, seat.VenueID)

	resp := seat.ToResponse()
	return &resp, nil
}

func (s *service) DeleteSeat(ctx context.Context, id uuid.UUID) error {
	seat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrSeatNotFound
		}
		return fmt.Errorf("failed to get seat: %w", err)
	}

	count, err := s.repo.CountTickets(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if count > 0 {
		return apperr.ErrSeatHasTickets
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete seat: %w", err)
	}

	s.invalidateSeating(ctx, seat.VenueID)
	return nil
}

func (s *service) GetVenueSeatMap(ctx context.Context, venueID uuid.UUID, eventID *uuid.UUID) (*SeatMapResponse, error) {
	if err := s.checkVenue(ctx, venueID); err != nil {
		return nil, err
	}

	eventKey := ""
	if eventID != nil {
		eventKey = eventID.String()
	}
	cacheKey := constants.BuildVenueSeatingKey(venueID.String(), eventKey)

	ttl := constants.TTL_SEMI_STATIC
	if eventID != nil {
		// Event maps go stale with every sale.
		ttl = constants.TTL_DYNAMIC_SHORT
	}

	var resp SeatMapResponse
	err := s.cache.GetOrSet(ctx, cacheKey, ttl, func() (interface{}, error) {
		return s.buildSeatMap(ctx, venueID, eventID)
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *service) buildSeatMap(ctx context.Context, venueID uuid.UUID, eventID *uuid.UUID) (*SeatMapResponse, error) {
	rows, err := s.repo.GetByVenue(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seats: %w", err)
	}

	var occupancy map[uuid.UUID]SeatStatus
	if eventID != nil {
		occupancy, err = s.repo.GetOccupancyForEvent(ctx, venueID, *eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to derive seat occupancy: %w", err)
		}
	}

	views := make([]SeatView, 0, len(rows))
	for _, seat := range rows {
		status := StatusAvailable
		if seat.IsBlocked {
			status = StatusBlocked
		} else if occupancy != nil {
			if derived, ok := occupancy[seat.ID]; ok {
				status = derived
			}
		}
		views = append(views, SeatView{
			ID:          seat.ID.String(),
			SectionName: seat.SectionName,
			RowName:     seat.RowName,
			SeatNumber:  seat.SeatNumber,
			Status:      status,
			Category:    status.Category(),
		})
	}

	sections := BuildSeatMap(views)

	resp := &SeatMapResponse{
		VenueID:    venueID.String(),
		Sections:   sections,
		TotalSeats: len(views),
		Counts:     CountByCategory(sections),
	}
	if eventID != nil {
		resp.EventID = eventID.String()
	}

	mode := "venue"
	if eventID != nil {
		mode = "event"
	}
	metrics.ObserveSeatMapSize(mode, len(views))

	return resp, nil
}

func (s *service) checkVenue(ctx context.Context, venueID uuid.UUID) error {
	exists, err := s.venues.Exists(ctx, venueID)
	if err != nil {
		return fmt.Errorf("failed to check venue: %w", err)
	}
	if !exists {
		return apperr.ErrVenueNotFound
	}
	return nil
}

func (s *service) invalidateSeating(ctx context.Context, venueID uuid.UUID) {
	_ = s.cache.DeletePattern(ctx, constants.CACHE_KEY_VENUE_SEATING+venueID.String()+"*")
}
