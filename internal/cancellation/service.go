package cancellation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketops/internal/shared/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Service quotes and records refunds. The actual money movement is a
// payment-provider concern; refund rows here track its progress.
type Service interface {
	QuoteForTicket(ctx context.Context, price decimal.Decimal, eventStart time.Time) Quote
	RecordRefund(ctx context.Context, ticketID uuid.UUID, quote Quote) (*Refund, error)
	GetRefundByTicketID(ctx context.Context, ticketID uuid.UUID) (*Refund, error)
	CompleteRefund(ctx context.Context, ticketID uuid.UUID) (*Refund, error)
	FailRefund(ctx context.Context, ticketID uuid.UUID, note string) (*Refund, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) QuoteForTicket(ctx context.Context, price decimal.Decimal, eventStart time.Time) Quote {
	return ComputeQuote(price, eventStart, s.now())
}

func (s *service) RecordRefund(ctx context.Context, ticketID uuid.UUID, quote Quote) (*Refund, error) {
	if !quote.Cancellable {
		return nil, apperr.ErrTicketNotCancellable.WithDetail(quote.Reason)
	}

	refund := &Refund{
		TicketID:    ticketID,
		Amount:      quote.Amount,
		Percentage:  quote.Percentage,
		Status:      RefundPending,
		RequestedAt: s.now(),
	}
	if err := s.repo.CreateRefund(ctx, refund); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}
	return refund, nil
}

func (s *service) GetRefundByTicketID(ctx context.Context, ticketID uuid.UUID) (*Refund, error) {
	refund, err := s.repo.GetRefundByTicketID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTicketNotFound.WithDetail("no refund recorded for ticket")
		}
		return nil, fmt.Errorf("failed to get refund: %w", err)
	}
	return refund, nil
}

func (s *service) CompleteRefund(ctx context.Context, ticketID uuid.UUID) (*Refund, error) {
	refund, err := s.GetRefundByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if refund.Status.IsTerminal() {
		return nil, apperr.ErrInvalidInput.WithDetail("refund is already settled")
	}

	if err := s.repo.MarkCompleted(ctx, refund.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to complete refund: %w", err)
	}
	return s.repo.GetRefundByTicketID(ctx, ticketID)
}

func (s *service) FailRefund(ctx context.Context, ticketID uuid.UUID, note string) (*Refund, error) {
	refund, err := s.GetRefundByTicketID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if refund.Status.IsTerminal() {
		return nil, apperr.ErrInvalidInput.WithDetail("refund is already settled")
	}

	if err := s.repo.MarkFailed(ctx, refund.ID, note); err != nil {
		return nil, fmt.Errorf("failed to fail refund: %w", err)
	}
	return s.repo.GetRefundByTicketID(ctx, ticketID)
}
