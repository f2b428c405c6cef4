package tickets

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"ticketops/internal/cancellation"
	"ticketops/internal/events"
	"ticketops/internal/orders"
	"ticketops/internal/seats"
	"ticketops/internal/shared/apperr"
	"ticketops/pkg/logger"
	"ticketops/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LifecycleEvent is published after a ticket transition commits, for the
// notifications pipeline.
type LifecycleEvent struct {
	Type       string    `json:"type"` // "ticket.checked_in" | "ticket.cancelled" | "ticket.refunded"
	TicketID   string    `json:"ticket_id"`
	EventID    string    `json:"event_id"`
	UserID     string    `json:"user_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Message    string    `json:"message"`
}

const (
	EventCheckedIn = "ticket.checked_in"
	EventCancelled = "ticket.cancelled"
	EventRefunded  = "ticket.refunded"
)

// EventPublisher hands lifecycle events to the notification pipeline.
// Publishing is best-effort; a broker outage never fails the transition.
type EventPublisher interface {
	PublishTicketEvent(ctx context.Context, event LifecycleEvent) error
}

type PaginatedTickets struct {
	Tickets    []TicketView `json:"tickets"`
	TotalCount int64        `json:"total_count"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int          `json:"total_pages"`
}

type Service interface {
	// GetByQRCode resolves a scanned or typed code to a full ticket view.
	GetByQRCode(ctx context.Context, code string, kind ViewKind) (*TicketView, error)

	// CheckInByQRCode drives the ACTIVE -> USED transition. A duplicate
	// scan of a USED ticket succeeds with AlreadyCheckedIn set and the
	// original timestamp; a CANCELLED or REFUNDED ticket is rejected.
	CheckInByQRCode(ctx context.Context, code, operatorID string) (*CheckInResult, error)

	// Cancel drives ACTIVE -> CANCELLED and records the refund the
	// policy quotes.
	Cancel(ctx context.Context, ticketID uuid.UUID, reason string) (*CancelResult, error)

	// SettleRefund moves a CANCELLED ticket to REFUNDED once the payment
	// provider confirms the refund landed.
	SettleRefund(ctx context.Context, ticketID uuid.UUID) (*TicketView, error)

	ListByEvent(ctx context.Context, eventID uuid.UUID, query TicketListQuery) (*PaginatedTickets, error)
}

type service struct {
	repo      Repository
	orderRepo orders.Repository
	eventRepo events.Repository
	seatRepo  seats.Repository
	refunds   cancellation.Service
	publisher EventPublisher
	log       *logger.Logger
	now       func() time.Time
}

func NewService(
	repo Repository,
	orderRepo orders.Repository,
	eventRepo events.Repository,
	seatRepo seats.Repository,
	refunds cancellation.Service,
	publisher EventPublisher,
	log *logger.Logger,
) Service {
	return &service{
		repo:      repo,
		orderRepo: orderRepo,
		eventRepo: eventRepo,
		seatRepo:  seatRepo,
		refunds:   refunds,
		publisher: publisher,
		log:       log,
		now:       time.Now,
	}
}

func (s *service) GetByQRCode(ctx context.Context, code string, kind ViewKind) (*TicketView, error) {
	ticket, err := s.lookupByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	view, err := s.buildView(ctx, ticket, kind)
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (s *service) CheckInByQRCode(ctx context.Context, code, operatorID string) (*CheckInResult, error) {
	started := s.now()

	ticket, err := s.lookupByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, ticket.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if !order.Status.IsCompleted() {
		s.log.LogCheckInRejected(ctx, ticket.QRCode, "order not completed")
		return nil, apperr.ErrOrderNotCompleted.WithDetail("order status is " + order.Status.String())
	}

	switch ticket.Status {
	case StatusUsed:
		// Benign duplicate: report the original check-in, change nothing.
		view, err := s.buildView(ctx, ticket, KindAdmin)
		if err != nil {
			return nil, err
		}
		metrics.RecordScanOutcome("already_checked_in")
		return &CheckInResult{
			Ticket:           *view,
			Status:           StatusUsed,
			CheckedInAt:      ticket.CheckedInAt,
			AlreadyCheckedIn: true,
			Message:          "Ticket was already checked in",
		}, nil
	case StatusCancelled, StatusRefunded:
		s.log.LogCheckInRejected(ctx, ticket.QRCode, "ticket is "+ticket.Status.String())
		metrics.RecordScanOutcome("not_valid")
		return nil, apperr.ErrTicketNotActive.WithDetail("ticket status is " + ticket.Status.String())
	}

	at := s.now()
	applied, err := s.repo.MarkCheckedIn(ctx, ticket.ID, at)
	if err != nil {
		return nil, fmt.Errorf("failed to check in ticket: %w", err)
	}
	if !applied {
		// Another scan won the race; re-read and report the duplicate.
		fresh, err := s.repo.GetByID(ctx, ticket.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload ticket: %w", err)
		}
		view, err := s.buildView(ctx, fresh, KindAdmin)
		if err != nil {
			return nil, err
		}
		metrics.RecordScanOutcome("already_checked_in")
		return &CheckInResult{
			Ticket:           *view,
			Status:           fresh.Status,
			CheckedInAt:      fresh.CheckedInAt,
			AlreadyCheckedIn: true,
			Message:          "Ticket was already checked in",
		}, nil
	}

	ticket.Status = StatusUsed
	ticket.CheckedInAt = &at

	view, err := s.buildView(ctx, ticket, KindAdmin)
	if err != nil {
		return nil, err
	}

	s.log.LogCheckIn(ctx, ticket.ID.String(), ticket.EventID.String(), operatorID)
	metrics.RecordScanOutcome("checked_in")
	metrics.ObserveCheckInDuration(s.now().Sub(started))

	s.publish(ctx, LifecycleEvent{
		Type:       EventCheckedIn,
		TicketID:   ticket.ID.String(),
		EventID:    ticket.EventID.String(),
		UserID:     ticket.UserID.String(),
		OccurredAt: at,
		Message:    "Ticket checked in",
	})

	return &CheckInResult{
		Ticket:      *view,
		Status:      StatusUsed,
		CheckedInAt: &at,
		Message:     "Checked in successfully",
	}, nil
}

func (s *service) Cancel(ctx context.Context, ticketID uuid.UUID, reason string) (*CancelResult, error) {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !ticket.Status.CanCancel() {
		return nil, apperr.ErrTicketNotCancellable.WithDetail("ticket status is " + ticket.Status.String())
	}

	event, err := s.eventRepo.GetByID(ticket.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	ticketType, err := s.repo.GetTypeByID(ctx, ticket.TicketTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTicketTypeNotFound
		}
		return nil, fmt.Errorf("failed to load ticket type: %w", err)
	}

	quote := s.refunds.QuoteForTicket(ctx, ticketType.Price, event.StartDate)
	if !quote.Cancellable {
		return nil, apperr.ErrTicketNotCancellable.WithDetail(quote.Reason)
	}

	at := s.now()
	applied, err := s.repo.MarkCancelled(ctx, ticketID, at, strings.TrimSpace(reason))
	if err != nil {
		return nil, fmt.Errorf("failed to cancel ticket: %w", err)
	}
	if !applied {
		// Lost a race with a check-in or another cancellation.
		fresh, err := s.repo.GetByID(ctx, ticketID)
		if err != nil {
			return nil, fmt.Errorf("failed to reload ticket: %w", err)
		}
		return nil, apperr.ErrTicketNotCancellable.WithDetail("ticket status is " + fresh.Status.String())
	}

	refund, err := s.refunds.RecordRefund(ctx, ticketID, quote)
	if err != nil {
		return nil, err
	}

	ticket.Status = StatusCancelled
	ticket.CancelledAt = &at
	ticket.CancellationReason = reason

	view, err := s.buildView(ctx, ticket, KindAdmin)
	if err != nil {
		return nil, err
	}

	s.log.LogTicketCancelled(ctx, ticket.ID.String(), ticket.UserID.String(), quote.Amount.InexactFloat64())
	metrics.RecordCancellation(quote.Percentage.String())

	s.publish(ctx, LifecycleEvent{
		Type:       EventCancelled,
		TicketID:   ticket.ID.String(),
		EventID:    ticket.EventID.String(),
		UserID:     ticket.UserID.String(),
		OccurredAt: at,
		Message:    "Ticket cancelled, refund of " + quote.Amount.String() + " pending",
	})

	return &CancelResult{
		Ticket:           *view,
		Status:           StatusCancelled,
		CancelledAt:      &at,
		RefundAmount:     refund.Amount,
		RefundPercentage: refund.Percentage,
		RefundStatus:     string(refund.Status),
		Message:          "Ticket cancelled successfully",
	}, nil
}

func (s *service) SettleRefund(ctx context.Context, ticketID uuid.UUID) (*TicketView, error) {
	ticket, err := s.repo.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrTicketNotFound
		}
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	if !ticket.Status.CanRefund() {
		return nil, apperr.ErrInvalidInput.WithDetail("ticket status is " + ticket.Status.String() + ", not CANCELLED")
	}

	if _, err := s.refunds.CompleteRefund(ctx, ticketID); err != nil {
		return nil, err
	}

	applied, err := s.repo.MarkRefunded(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark ticket refunded: %w", err)
	}
	if !applied {
		return nil, apperr.ErrInvalidInput.WithDetail("ticket is no longer CANCELLED")
	}

	ticket.Status = StatusRefunded

	s.publish(ctx, LifecycleEvent{
		Type:       EventRefunded,
		TicketID:   ticket.ID.String(),
		EventID:    ticket.EventID.String(),
		UserID:     ticket.UserID.String(),
		OccurredAt: s.now(),
		Message:    "Refund settled",
	})

	return s.buildView(ctx, ticket, KindAdmin)
}

func (s *service) ListByEvent(ctx context.Context, eventID uuid.UUID, query TicketListQuery) (*PaginatedTickets, error) {
	tickets, totalCount, err := s.repo.ListByEvent(ctx, eventID, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	views := make([]TicketView, 0, len(tickets))
	for i := range tickets {
		view, err := s.buildView(ctx, &tickets[i], KindAdmin)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	if query.Page == 0 {
		query.Page = 1
	}
	if query.Limit == 0 {
		query.Limit = 20
	}

	return &PaginatedTickets{
		Tickets:    views,
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(totalCount) / float64(query.Limit))),
	}, nil
}

func (s *service) lookupByCode(ctx context.Context, code string) (*Ticket, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, apperr.ErrInvalidInput.WithDetail("code is empty")
	}

	ticket, err := s.repo.GetByQRCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.RecordScanOutcome("not_found")
			return nil, apperr.ErrQRCodeNotFound
		}
		return nil, fmt.Errorf("failed to look up code: %w", err)
	}
	return ticket, nil
}

func (s *service) buildView(ctx context.Context, ticket *Ticket, kind ViewKind) (*TicketView, error) {
	event, err := s.eventRepo.GetByID(ticket.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to load event: %w", err)
	}

	ticketType, err := s.repo.GetTypeByID(ctx, ticket.TicketTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ticket type: %w", err)
	}

	view := &TicketView{
		Kind:           kind,
		ID:             ticket.ID.String(),
		EventID:        ticket.EventID.String(),
		EventName:      event.Name,
		TicketTypeName: ticketType.Name,
		Price:          ticketType.Price,
		Status:         ticket.Status,
		QRCode:         ticket.QRCode,
		PurchaseDate:   ticket.PurchaseDate,
		CheckedInAt:    ticket.CheckedInAt,
		CancelledAt:    ticket.CancelledAt,
	}

	if ticket.SeatID != nil {
		seat, err := s.seatRepo.GetByID(ctx, *ticket.SeatID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load seat: %w", err)
		}
		if seat != nil {
			view.Seat = &SeatRef{
				ID:          seat.ID.String(),
				SectionName: seat.SectionName,
				RowName:     seat.RowName,
				SeatNumber:  seat.SeatNumber,
			}
		}
	}

	if kind == KindAdmin {
		view.HolderName = ticket.HolderName
		view.HolderEmail = ticket.HolderEmail
		if order, err := s.orderRepo.GetByID(ctx, ticket.OrderID); err == nil {
			view.OrderRef = order.OrderRef
		}
	}

	return view, nil
}

func (s *service) publish(ctx context.Context, event LifecycleEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishTicketEvent(ctx, event); err != nil {
		s.log.WithError(err).Warn("failed to publish ticket lifecycle event",
			"ticket_id", event.TicketID, "type", event.Type)
	}
}
