package events

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ticketops/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	CreateEvent(adminID uuid.UUID, req CreateEventRequest) (*EventResponse, error)
	GetEventByID(id uuid.UUID) (*EventResponse, error)
	GetEvents(query EventListQuery) (*PaginatedEvents, error)
	UpdateEvent(id uuid.UUID, adminID uuid.UUID, req UpdateEventRequest) (*EventResponse, error)
	CancelEvent(id uuid.UUID, adminID uuid.UUID) (*EventResponse, error)
	DeleteEvent(id uuid.UUID) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) CreateEvent(adminID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, apperr.ErrInvalidInput.WithDetail("invalid venue ID")
	}

	if req.EndDate != nil && req.EndDate.Before(req.StartDate) {
		return nil, apperr.ErrInvalidEventDate.WithDetail("end date is before start date")
	}

	event := &Event{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		VenueID:     venueID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Status:      StatusUpcoming,
		ImageURL:    req.ImageURL,
		CreatedBy:   adminID,
	}
	if req.CategoryID != "" {
		categoryID, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return nil, apperr.ErrInvalidInput.WithDetail("invalid category ID")
		}
		event.CategoryID = &categoryID
	}

	if err := s.repo.Create(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) GetEventByID(id uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) GetEvents(query EventListQuery) (*PaginatedEvents, error) {
	events, totalCount, err := s.repo.GetAll(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	now := s.now()
	responses := make([]EventResponse, 0, len(events))
	for i := range events {
		responses = append(responses, events[i].ToResponse(now))
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 10
	}

	return &PaginatedEvents{
		Events:     responses,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) UpdateEvent(id uuid.UUID, adminID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	updates := map[string]interface{}{
		"updated_by": adminID,
	}

	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.VenueID != nil {
		venueID, err := uuid.Parse(*req.VenueID)
		if err != nil {
			return nil, apperr.ErrInvalidInput.WithDetail("invalid venue ID")
		}
		updates["venue_id"] = venueID
	}
	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return nil, apperr.ErrInvalidInput.WithDetail("invalid category ID")
		}
		updates["category_id"] = categoryID
	}

	start := current.StartDate
	end := current.EndDate
	if req.StartDate != nil {
		start = *req.StartDate
		updates["start_date"] = start
	}
	if req.EndDate != nil {
		end = req.EndDate
		updates["end_date"] = *req.EndDate
	}
	if end != nil && end.Before(start) {
		return nil, apperr.ErrInvalidEventDate.WithDetail("end date is before start date")
	}

	if req.Status != nil {
		status := EventStatus(*req.Status)
		if !status.IsValid() {
			return nil, apperr.ErrInvalidInput.WithDetail("invalid event status")
		}
		updates["status"] = status
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}

	event, err := s.repo.Update(id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) CancelEvent(id uuid.UUID, adminID uuid.UUID) (*EventResponse, error) {
	current, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if current.Status == StatusCancelled {
		return nil, apperr.ErrInvalidInput.WithDetail("event is already cancelled")
	}
	if current.Status == StatusCompleted {
		return nil, apperr.ErrInvalidInput.WithDetail("completed events cannot be cancelled")
	}

	event, err := s.repo.Update(id, map[string]interface{}{
		"status":     StatusCancelled,
		"updated_by": adminID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel event: %w", err)
	}

	resp := event.ToResponse(s.now())
	return &resp, nil
}

func (s *service) DeleteEvent(id uuid.UUID) error {
	if _, err := s.repo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrEventNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}

	count, err := s.repo.CountTickets(id)
	if err != nil {
		return fmt.Errorf("failed to count tickets: %w", err)
	}
	if count > 0 {
		return apperr.ErrInvalidInput.WithDetail("event has tickets and cannot be deleted; cancel it instead")
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
