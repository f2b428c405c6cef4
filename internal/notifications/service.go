package notifications

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketops/internal/shared/apperr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service interface {
	ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*Notification, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) ListForUser(ctx context.Context, userID uuid.UUID, unreadOnly bool) ([]Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, userID, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *service) MarkRead(ctx context.Context, userID, id uuid.UUID) (*Notification, error) {
	notification, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotificationNotFound
		}
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}

	// Holders only see their own feed.
	if notification.UserID != userID {
		return nil, apperr.ErrNotificationNotFound
	}

	if notification.ReadAt == nil {
		at := s.now()
		if err := s.repo.MarkRead(ctx, id, at); err != nil {
			return nil, fmt.Errorf("failed to mark notification read: %w", err)
		}
		notification.ReadAt = &at
	}
	return notification, nil
}
