package analytics

import (
	"context"
	"errors"
	"fmt"

	"ticketops/internal/events"
	"ticketops/internal/shared/apperr"
	"ticketops/internal/shared/constants"
	"ticketops/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStats, error)
}

type service struct {
	repo         Repository
	eventRepo    events.Repository
	cacheService cache.Service
}

func NewService(repo Repository, eventRepo events.Repository, cacheService cache.Service) Service {
	return &service{repo: repo, eventRepo: eventRepo, cacheService: cacheService}
}

func (s *service) GetEventStats(ctx context.Context, eventID uuid.UUID) (*EventStats, error) {
	var stats EventStats
	key := constants.BuildEventStatsKey(eventID.String())

	err := s.cacheService.GetOrSet(ctx, key, constants.TTL_REALTIME, func() (interface{}, error) {
		return s.computeStats(ctx, eventID)
	}, &stats)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *service) computeStats(ctx context.Context, eventID uuid.UUID) (*EventStats, error) {
	if _, err := s.eventRepo.GetByID(eventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	counts, err := s.repo.CountTicketsByStatus(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count tickets: %w", err)
	}

	stats := &EventStats{
		EventID:          eventID.String(),
		ActiveTickets:    counts["ACTIVE"],
		CheckedInTickets: counts["USED"],
		CancelledTickets: counts["CANCELLED"],
		RefundedTickets:  counts["REFUNDED"],
	}
	for _, count := range counts {
		stats.TotalTickets += count
	}

	admitted := stats.ActiveTickets + stats.CheckedInTickets
	if admitted > 0 {
		stats.CheckInRate = float64(stats.CheckedInTickets) / float64(admitted)
	}

	stats.RefundsPending, err = s.repo.CountPendingRefunds(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count pending refunds: %w", err)
	}

	stats.RefundedAmount, err = s.repo.SumRefundedAmount(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum refunded amount: %w", err)
	}

	return stats, nil
}
