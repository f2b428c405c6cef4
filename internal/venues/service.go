package venues

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"ticketops/internal/shared/apperr"
	"ticketops/internal/shared/constants"
	"ticketops/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error)
	GetVenueByID(ctx context.Context, id uuid.UUID) (*VenueResponse, error)
	GetVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error)
	DeleteVenue(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateVenue(ctx context.Context, req CreateVenueRequest) (*VenueResponse, error) {
	cityID, err := uuid.Parse(req.CityID)
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithDetail("invalid city ID")
	}

	venue := &Venue{
		Name:     strings.TrimSpace(req.Name),
		Address:  strings.TrimSpace(req.Address),
		CityID:   cityID,
		Capacity: req.Capacity,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	s.invalidate(ctx)

	resp := venue.ToResponse(0)
	return &resp, nil
}

func (s *service) GetVenueByID(ctx context.Context, id uuid.UUID) (*VenueResponse, error) {
	var resp VenueResponse
	key := constants.BuildVenueDetailKey(id.String())

	err := s.cache.GetOrSet(ctx, key, constants.TTL_SEMI_STATIC, func() (interface{}, error) {
		venue, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		seatCount, err := s.repo.CountSeats(ctx, id)
		if err != nil {
			return nil, err
		}
		return venue.ToResponse(seatCount), nil
	}, &resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	return &resp, nil
}

func (s *service) GetVenues(ctx context.Context, query VenueListQuery) (*PaginatedVenues, error) {
	venues, totalCount, err := s.repo.GetAll(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list venues: %w", err)
	}

	responses := make([]VenueResponse, 0, len(venues))
	for i := range venues {
		seatCount, err := s.repo.CountSeats(ctx, venues[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count seats: %w", err)
		}
		responses = append(responses, venues[i].ToResponse(seatCount))
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	return &PaginatedVenues{
		Venues:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) UpdateVenue(ctx context.Context, id uuid.UUID, req UpdateVenueRequest) (*VenueResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		updates["address"] = strings.TrimSpace(*req.Address)
	}
	if req.CityID != nil {
		cityID, err := uuid.Parse(*req.CityID)
		if err != nil {
			return nil, apperr.ErrInvalidInput.WithDetail("invalid city ID")
		}
		updates["city_id"] = cityID
	}
	if req.Capacity != nil {
		updates["capacity"] = *req.Capacity
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return s.GetVenueByID(ctx, id)
	}

	venue, err := s.repo.Update(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrVenueNotFound
		}
		return nil, fmt.Errorf("failed to update venue: %w", err)
	}

	s.invalidate(ctx)

	seatCount, err := s.repo.CountSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count seats: %w", err)
	}

	resp := venue.ToResponse(seatCount)
	return &resp, nil
}

func (s *service) DeleteVenue(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrVenueNotFound
		}
		return fmt.Errorf("failed to get venue: %w", err)
	}

	eventCount, err := s.repo.CountEvents(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count events: %w", err)
	}
	if eventCount > 0 {
		return apperr.ErrInvalidInput.WithDetail("venue has events and cannot be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_VENUES_ALL)
}
