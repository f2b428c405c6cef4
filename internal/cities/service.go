package cities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ticketops/internal/shared/apperr"
	"ticketops/internal/shared/constants"
	"ticketops/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateCity(ctx context.Context, req CreateCityRequest) (*CityResponse, error)
	GetCityByID(ctx context.Context, id uuid.UUID) (*CityResponse, error)
	GetActiveCities(ctx context.Context) ([]CityResponse, error)
	GetAllCities(ctx context.Context) ([]CityResponse, error)
	UpdateCity(ctx context.Context, id uuid.UUID, req UpdateCityRequest) (*CityResponse, error)
	DeleteCity(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo  Repository
	cache cache.Service
}

func NewService(repo Repository, cacheService cache.Service) Service {
	return &service{repo: repo, cache: cacheService}
}

func (s *service) CreateCity(ctx context.Context, req CreateCityRequest) (*CityResponse, error) {
	city := &City{
		Name:     strings.TrimSpace(req.Name),
		State:    strings.TrimSpace(req.State),
		IsActive: true,
	}
	if req.Country != "" {
		city.Country = strings.TrimSpace(req.Country)
	}

	if err := s.repo.Create(city); err != nil {
		return nil, fmt.Errorf("failed to create city: %w", err)
	}

	s.invalidate(ctx)

	resp := city.ToResponse()
	return &resp, nil
}

func (s *service) GetCityByID(ctx context.Context, id uuid.UUID) (*CityResponse, error) {
	var resp CityResponse
	key := constants.BuildCityDetailKey(id.String())

	err := s.cache.GetOrSet(ctx, key, constants.TTL_STATIC_SHORT, func() (interface{}, error) {
		city, err := s.repo.GetByID(id)
		if err != nil {
			return nil, err
		}
		return city.ToResponse(), nil
	}, &resp)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrCityNotFound
		}
		return nil, fmt.Errorf("failed to get city: %w", err)
	}

	return &resp, nil
}

func (s *service) GetActiveCities(ctx context.Context) ([]CityResponse, error) {
	var responses []CityResponse

	err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_CITIES_ALL, constants.TTL_STATIC_SHORT, func() (interface{}, error) {
		cities, err := s.repo.GetActive()
		if err != nil {
			return nil, err
		}
		out := make([]CityResponse, 0, len(cities))
		for _, c := range cities {
			out = append(out, c.ToResponse())
		}
		return out, nil
	}, &responses)
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}

	return responses, nil
}

func (s *service) GetAllCities(ctx context.Context) ([]CityResponse, error) {
	cities, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get cities: %w", err)
	}
	responses := make([]CityResponse, 0, len(cities))
	for _, c := range cities {
		responses = append(responses, c.ToResponse())
	}
	return responses, nil
}

func (s *service) UpdateCity(ctx context.Context, id uuid.UUID, req UpdateCityRequest) (*CityResponse, error) {
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.State != nil {
		updates["state"] = strings.TrimSpace(*req.State)
	}
	if req.Country != nil {
		updates["country"] = strings.TrimSpace(*req.Country)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return s.GetCityByID(ctx, id)
	}

	city, err := s.repo.Update(id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrCityNotFound
		}
		return nil, fmt.Errorf("failed to update city: %w", err)
	}

	s.invalidate(ctx)

	resp := city.ToResponse()
	return &resp, nil
}

func (s *service) DeleteCity(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrCityNotFound
		}
		return fmt.Errorf("failed to get city: %w", err)
	}

	count, err := s.repo.CountVenues(id)
	if err != nil {
		return fmt.Errorf("failed to count venues: %w", err)
	}
	if count > 0 {
		return apperr.ErrInvalidInput.WithDetail("city has venues and cannot be deleted")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete city: %w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	_ = s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_CITIES_ALL)
}
