package tickets

import (
	"context"
	"testing"
	"time"

	"ticketops/internal/cancellation"
	"ticketops/internal/events"
	"ticketops/internal/orders"
	"ticketops/internal/seats"
	"ticketops/internal/shared/apperr"
	"ticketops/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeTicketRepo struct {
	tickets map[uuid.UUID]*Ticket
	types   map[uuid.UUID]*TicketType
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{
		tickets: make(map[uuid.UUID]*Ticket),
		types:   make(map[uuid.UUID]*TicketType),
	}
}

func (f *fakeTicketRepo) Create(ctx context.Context, ticket *Ticket) error {
	f.tickets[ticket.ID] = ticket
	return nil
}

func (f *fakeTicketRepo) GetByID(ctx context.Context, id uuid.UUID) (*Ticket, error) {
	t, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (f *fakeTicketRepo) GetByQRCode(ctx context.Context, code string) (*Ticket, error) {
	for _, t := range f.tickets {
		if t.QRCode == code {
			copied := *t
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTicketRepo) ListByEvent(ctx context.Context, eventID uuid.UUID, query TicketListQuery) ([]Ticket, int64, error) {
	var out []Ticket
	for _, t := range f.tickets {
		if t.EventID == eventID {
			out = append(out, *t)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeTicketRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]Ticket, error) {
	var out []Ticket
	for _, t := range f.tickets {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTicketRepo) MarkCheckedIn(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	t, ok := f.tickets[id]
	if !ok || t.Status != StatusActive {
		return false, nil
	}
	t.Status = StatusUsed
	t.CheckedInAt = &at
	return true, nil
}

func (f *fakeTicketRepo) MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time, reason string) (bool, error) {
	t, ok := f.tickets[id]
	if !ok || t.Status != StatusActive {
		return false, nil
	}
	t.Status = StatusCancelled
	t.CancelledAt = &at
	t.CancellationReason = reason
	return true, nil
}

func (f *fakeTicketRepo) MarkRefunded(ctx context.Context, id uuid.UUID) (bool, error) {
	t, ok := f.tickets[id]
	if !ok || t.Status != StatusCancelled {
		return false, nil
	}
	t.Status = StatusRefunded
	return true, nil
}

func (f *fakeTicketRepo) CreateType(ctx context.Context, tt *TicketType) error {
	f.types[tt.ID] = tt
	return nil
}

func (f *fakeTicketRepo) GetTypeByID(ctx context.Context, id uuid.UUID) (*TicketType, error) {
	tt, ok := f.types[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return tt, nil
}

func (f *fakeTicketRepo) ListTypesByEvent(ctx context.Context, eventID uuid.UUID) ([]TicketType, error) {
	var out []TicketType
	for _, tt := range f.types {
		if tt.EventID == eventID {
			out = append(out, *tt)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*orders.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *orders.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*orders.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) GetByRef(ctx context.Context, ref string) (*orders.Order, error) {
	for _, o := range f.orders {
		if o.OrderRef == ref {
			return o, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeOrderRepo) GetByEvent(ctx context.Context, eventID uuid.UUID) ([]orders.Order, error) {
	return nil, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status orders.Status) error {
	f.orders[id].Status = status
	return nil
}

type fakeEventRepo struct {
	events map[uuid.UUID]*events.Event
}

func (f *fakeEventRepo) Create(event *events.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) GetByID(id uuid.UUID) (*events.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (f *fakeEventRepo) Update(id uuid.UUID, updates map[string]interface{}) (*events.Event, error) {
	return f.GetByID(id)
}

func (f *fakeEventRepo) Delete(id uuid.UUID) error { return nil }

func (f *fakeEventRepo) GetAll(query events.EventListQuery) ([]events.Event, int64, error) {
	return nil, 0, nil
}

func (f *fakeEventRepo) GetByStatus(status events.EventStatus) ([]events.Event, error) {
	return nil, nil
}

func (f *fakeEventRepo) CountTickets(eventID uuid.UUID) (int64, error) { return 0, nil }

func (f *fakeEventRepo) Exists(id uuid.UUID) (bool, error) {
	_, ok := f.events[id]
	return ok, nil
}

type fakeSeatRepo struct {
	seats map[uuid.UUID]*seats.Seat
}

func (f *fakeSeatRepo) Create(ctx context.Context, seat *seats.Seat) error {
	f.seats[seat.ID] = seat
	return nil
}

func (f *fakeSeatRepo) CreateBulk(ctx context.Context, batch []seats.Seat) error { return nil }

func (f *fakeSeatRepo) GetByID(ctx context.Context, id uuid.UUID) (*seats.Seat, error) {
	s, ok := f.seats[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return s, nil
}

func (f *fakeSeatRepo) GetByVenue(ctx context.Context, venueID uuid.UUID) ([]seats.Seat, error) {
	return nil, nil
}

func (f *fakeSeatRepo) GetByLocation(ctx context.Context, venueID uuid.UUID, section, row, number string) (*seats.Seat, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSeatRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*seats.Seat, error) {
	return f.GetByID(ctx, id)
}

func (f *fakeSeatRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeSeatRepo) CountTickets(ctx context.Context, seatID uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeSeatRepo) GetOccupancyForEvent(ctx context.Context, venueID, eventID uuid.UUID) (map[uuid.UUID]seats.SeatStatus, error) {
	return nil, nil
}

type fakeRefundRepo struct {
	refunds map[uuid.UUID]*cancellation.Refund
}

func (f *fakeRefundRepo) CreateRefund(ctx context.Context, refund *cancellation.Refund) error {
	if refund.ID == uuid.Nil {
		refund.ID = uuid.New()
	}
	f.refunds[refund.ID] = refund
	return nil
}

func (f *fakeRefundRepo) GetRefundByTicketID(ctx context.Context, ticketID uuid.UUID) (*cancellation.Refund, error) {
	for _, r := range f.refunds {
		if r.TicketID == ticketID {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefundRepo) GetPendingRefunds(ctx context.Context, limit int) ([]cancellation.Refund, error) {
	return nil, nil
}

func (f *fakeRefundRepo) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	f.refunds[id].Status = cancellation.RefundProcessing
	return nil
}

func (f *fakeRefundRepo) MarkCompleted(ctx context.Context, id uuid.UUID, processedAt time.Time) error {
	r, ok := f.refunds[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = cancellation.RefundCompleted
	r.ProcessedAt = &processedAt
	return nil
}

func (f *fakeRefundRepo) MarkFailed(ctx context.Context, id uuid.UUID, note string) error {
	r, ok := f.refunds[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = cancellation.RefundFailed
	r.FailureNote = note
	return nil
}

type capturingPublisher struct {
	published []LifecycleEvent
}

func (p *capturingPublisher) PublishTicketEvent(ctx context.Context, event LifecycleEvent) error {
	p.published = append(p.published, event)
	return nil
}

type fixture struct {
	svc       Service
	tickets   *fakeTicketRepo
	orders    *fakeOrderRepo
	publisher *capturingPublisher

	eventID      uuid.UUID
	ticketID     uuid.UUID
	orderID      uuid.UUID
	ticketTypeID uuid.UUID
}

// newFixture seeds one ACTIVE ticket for an event a week out, on a
// COMPLETED order, priced 1000.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	ticketRepo := newFakeTicketRepo()
	orderRepo := &fakeOrderRepo{orders: make(map[uuid.UUID]*orders.Order)}
	eventRepo := &fakeEventRepo{events: make(map[uuid.UUID]*events.Event)}
	seatRepo := &fakeSeatRepo{seats: make(map[uuid.UUID]*seats.Seat)}
	refundRepo := &fakeRefundRepo{refunds: make(map[uuid.UUID]*cancellation.Refund)}
	publisher := &capturingPublisher{}

	eventID := uuid.New()
	eventRepo.events[eventID] = &events.Event{
		ID:        eventID,
		Name:      "Summer Gala",
		StartDate: time.Now().Add(7 * 24 * time.Hour),
	}

	orderID := uuid.New()
	orderRepo.orders[orderID] = &orders.Order{
		ID:       orderID,
		EventID:  eventID,
		OrderRef: "ORD-1001",
		Status:   orders.StatusCompleted,
	}

	typeID := uuid.New()
	ticketRepo.types[typeID] = &TicketType{
		ID:      typeID,
		EventID: eventID,
		Name:    "General",
		Price:   decimal.NewFromInt(1000),
	}

	ticketID := uuid.New()
	ticketRepo.tickets[ticketID] = &Ticket{
		ID:           ticketID,
		EventID:      eventID,
		TicketTypeID: typeID,
		OrderID:      orderID,
		UserID:       uuid.New(),
		Status:       StatusActive,
		QRCode:       "QR-VALID-0001",
		HolderName:   "Asha Rao",
		HolderEmail:  "asha@example.com",
		PurchaseDate: time.Now().Add(-48 * time.Hour),
	}

	svc := NewService(ticketRepo, orderRepo, eventRepo, seatRepo,
		cancellation.NewService(refundRepo), publisher, logger.New())

	return &fixture{
		svc:          svc,
		tickets:      ticketRepo,
		orders:       orderRepo,
		publisher:    publisher,
		eventID:      eventID,
		ticketID:     ticketID,
		orderID:      orderID,
		ticketTypeID: typeID,
	}
}

func TestCheckInByQRCode(t *testing.T) {
	ctx := context.Background()

	t.Run("active ticket checks in", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-1")
		require.NoError(t, err)

		assert.Equal(t, StatusUsed, result.Status)
		assert.False(t, result.AlreadyCheckedIn)
		require.NotNil(t, result.CheckedInAt)
		assert.Equal(t, "Summer Gala", result.Ticket.EventName)

		require.Len(t, f.publisher.published, 1)
		assert.Equal(t, EventCheckedIn, f.publisher.published[0].Type)
	})

	t.Run("duplicate scan reports original check-in", func(t *testing.T) {
		f := newFixture(t)

		first, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-1")
		require.NoError(t, err)

		second, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-2")
		require.NoError(t, err)

		assert.True(t, second.AlreadyCheckedIn)
		assert.Equal(t, StatusUsed, second.Status)
		require.NotNil(t, second.CheckedInAt)
		assert.True(t, second.CheckedInAt.Equal(*first.CheckedInAt))

		// The duplicate publishes nothing.
		assert.Len(t, f.publisher.published, 1)
	})

	t.Run("unknown code is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckInByQRCode(ctx, "QR-UNKNOWN", "op-1")
		assert.ErrorIs(t, err, apperr.ErrQRCodeNotFound)
	})

	t.Run("cancelled ticket is rejected, not hidden", func(t *testing.T) {
		f := newFixture(t)
		f.tickets.tickets[f.ticketID].Status = StatusCancelled

		_, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-1")
		assert.ErrorIs(t, err, apperr.ErrTicketNotActive)
		assert.NotErrorIs(t, err, apperr.ErrQRCodeNotFound)
	})

	t.Run("refunded ticket is rejected", func(t *testing.T) {
		f := newFixture(t)
		f.tickets.tickets[f.ticketID].Status = StatusRefunded

		_, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-1")
		assert.ErrorIs(t, err, apperr.ErrTicketNotActive)
	})

	t.Run("pending order blocks check-in", func(t *testing.T) {
		f := newFixture(t)
		f.orders.orders[f.orderID].Status = orders.StatusPending

		_, err := f.svc.CheckInByQRCode(ctx, "QR-VALID-0001", "op-1")
		assert.ErrorIs(t, err, apperr.ErrOrderNotCompleted)
	})

	t.Run("blank code is invalid", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CheckInByQRCode(ctx, "   ", "op-1")
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("active ticket a week out refunds 80 percent", func(t *testing.T) {
		f := newFixture(t)

		result, err := f.svc.Cancel(ctx, f.ticketID, "cannot attend")
		require.NoError(t, err)

		assert.Equal(t, StatusCancelled, result.Status)
		require.NotNil(t, result.CancelledAt)
		assert.True(t, decimal.NewFromInt(800).Equal(result.RefundAmount))
		assert.True(t, decimal.NewFromInt(80).Equal(result.RefundPercentage))
		assert.Equal(t, string(cancellation.RefundPending), result.RefundStatus)

		stored := f.tickets.tickets[f.ticketID]
		assert.Equal(t, StatusCancelled, stored.Status)
		assert.Equal(t, "cannot attend", stored.CancellationReason)

		require.Len(t, f.publisher.published, 1)
		assert.Equal(t, EventCancelled, f.publisher.published[0].Type)
	})

	t.Run("already cancelled ticket cannot cancel again", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Cancel(ctx, f.ticketID, "first")
		require.NoError(t, err)

		_, err = f.svc.Cancel(ctx, f.ticketID, "second")
		assert.ErrorIs(t, err, apperr.ErrTicketNotCancellable)
	})

	t.Run("used ticket cannot cancel", func(t *testing.T) {
		f := newFixture(t)
		f.tickets.tickets[f.ticketID].Status = StatusUsed

		_, err := f.svc.Cancel(ctx, f.ticketID, "too late")
		assert.ErrorIs(t, err, apperr.ErrTicketNotCancellable)
	})

	t.Run("within 24 hours of start is not cancellable", func(t *testing.T) {
		f := newFixture(t)
		// Pull the event start inside the no-refund window.
		f.eventStart(t, time.Now().Add(6*time.Hour))

		_, err := f.svc.Cancel(ctx, f.ticketID, "late change of plans")
		assert.ErrorIs(t, err, apperr.ErrTicketNotCancellable)
		assert.Equal(t, StatusActive, f.tickets.tickets[f.ticketID].Status)
	})

	t.Run("unknown ticket is not found", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Cancel(ctx, uuid.New(), "whatever")
		assert.ErrorIs(t, err, apperr.ErrTicketNotFound)
	})
}

func TestSettleRefund(t *testing.T) {
	ctx := context.Background()

	t.Run("cancelled ticket settles to refunded", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Cancel(ctx, f.ticketID, "cannot attend")
		require.NoError(t, err)

		view, err := f.svc.SettleRefund(ctx, f.ticketID)
		require.NoError(t, err)

		assert.Equal(t, StatusRefunded, view.Status)
		assert.Equal(t, StatusRefunded, f.tickets.tickets[f.ticketID].Status)
	})

	t.Run("active ticket cannot settle", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.SettleRefund(ctx, f.ticketID)
		assert.ErrorIs(t, err, apperr.ErrInvalidInput)
	})
}

func TestGetByQRCodeViews(t *testing.T) {
	ctx := context.Background()

	t.Run("admin view carries holder and order", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.svc.GetByQRCode(ctx, "QR-VALID-0001", KindAdmin)
		require.NoError(t, err)

		assert.Equal(t, KindAdmin, view.Kind)
		assert.Equal(t, "Asha Rao", view.HolderName)
		assert.Equal(t, "asha@example.com", view.HolderEmail)
		assert.Equal(t, "ORD-1001", view.OrderRef)
	})

	t.Run("user view omits holder and order", func(t *testing.T) {
		f := newFixture(t)

		view, err := f.svc.GetByQRCode(ctx, "QR-VALID-0001", KindUser)
		require.NoError(t, err)

		assert.Equal(t, KindUser, view.Kind)
		assert.Empty(t, view.HolderName)
		assert.Empty(t, view.HolderEmail)
		assert.Empty(t, view.OrderRef)
		assert.Equal(t, "Summer Gala", view.EventName)
	})
}

// eventStart rewrites the fixture event's start time.
func (f *fixture) eventStart(t *testing.T, start time.Time) {
	t.Helper()
	svc := f.svc.(*service)
	repo := svc.eventRepo.(*fakeEventRepo)
	repo.events[f.eventID].StartDate = start
}
