package checkin

import (
	"context"
	"sync"
	"testing"
	"time"

	"ticketops/internal/shared/apperr"
	"ticketops/internal/tickets"
	"ticketops/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker simulates the ticket service: one ACTIVE ticket behind
// "QR-456", idempotent on repeat check-ins.
type fakeChecker struct {
	mu          sync.Mutex
	checkedInAt *time.Time
	calls       int
	block       chan struct{}
}

func (f *fakeChecker) CheckInByQRCode(ctx context.Context, code, operatorID string) (*tickets.CheckInResult, error) {
	f.mu.Lock()
	f.calls++
	block := f.block
	f.mu.Unlock()

	if block != nil {
		<-block
	}

	switch code {
	case "QR-456":
		f.mu.Lock()
		defer f.mu.Unlock()
		view := tickets.TicketView{
			Kind:   tickets.KindAdmin,
			QRCode: code,
			Status: tickets.StatusUsed,
		}
		if f.checkedInAt != nil {
			return &tickets.CheckInResult{
				Ticket:           view,
				Status:           tickets.StatusUsed,
				CheckedInAt:      f.checkedInAt,
				AlreadyCheckedIn: true,
				Message:          "Ticket was already checked in",
			}, nil
		}
		at := time.Now()
		f.checkedInAt = &at
		return &tickets.CheckInResult{
			Ticket:      view,
			Status:      tickets.StatusUsed,
			CheckedInAt: &at,
			Message:     "Checked in successfully",
		}, nil
	case "QR-CANCELLED":
		return nil, apperr.ErrTicketNotActive.WithDetail("ticket status is CANCELLED")
	default:
		return nil, apperr.ErrQRCodeNotFound
	}
}

type fakeSource struct {
	mu      sync.Mutex
	emit    func(code string)
	stopped int
}

func (f *fakeSource) Start(emit func(code string)) error {
	f.mu.Lock()
	f.emit = emit
	f.mu.Unlock()
	return nil
}

func (f *fakeSource) Stop() error {
	f.mu.Lock()
	f.stopped++
	f.mu.Unlock()
	return nil
}

func (f *fakeSource) decode(code string) {
	f.mu.Lock()
	emit := f.emit
	f.mu.Unlock()
	if emit != nil {
		emit(code)
	}
}

func (f *fakeSource) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

func newTestSession(checker Checker) *Session {
	// No debounce and no display delay unless a test dials them in.
	return NewSession(checker, "op-1", 0, 0, logger.New())
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code reports not found", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})

		result, err := session.Submit(ctx, "QR-123")
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotFound, result.Outcome)
	})

	t.Run("cancelled ticket is not valid, distinct from not found", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})

		result, err := session.Submit(ctx, "QR-CANCELLED")
		require.NoError(t, err)
		assert.Equal(t, OutcomeNotValid, result.Outcome)
		assert.Contains(t, result.Detail, "CANCELLED")
	})

	t.Run("active ticket checks in, repeat reports original time", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})

		first, err := session.Submit(ctx, "QR-456")
		require.NoError(t, err)
		assert.Equal(t, OutcomeCheckedIn, first.Outcome)
		require.NotNil(t, first.CheckedInAt)

		second, err := session.Submit(ctx, "QR-456")
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyCheckedIn, second.Outcome)
		require.NotNil(t, second.CheckedInAt)
		assert.True(t, second.CheckedInAt.Equal(*first.CheckedInAt))
	})

	t.Run("blank input is rejected before lookup", func(t *testing.T) {
		checker := &fakeChecker{}
		session := newTestSession(checker)

		_, err := session.Submit(ctx, "   ")
		assert.ErrorIs(t, err, ErrEmptyCode)
		assert.Equal(t, 0, checker.calls)
	})

	t.Run("debounce drops a just-seen code", func(t *testing.T) {
		checker := &fakeChecker{}
		session := NewSession(checker, "op-1", 2*time.Second, 0, logger.New())

		base := time.Now()
		session.now = func() time.Time { return base }

		_, err := session.Submit(ctx, "QR-123")
		require.NoError(t, err)

		_, err = session.Submit(ctx, "QR-123")
		assert.ErrorIs(t, err, ErrScanDebounced)
		assert.Equal(t, 1, checker.calls)

		// Outside the window the code goes through again.
		session.now = func() time.Time { return base.Add(3 * time.Second) }
		_, err = session.Submit(ctx, "QR-123")
		require.NoError(t, err)
		assert.Equal(t, 2, checker.calls)
	})

	t.Run("aged-out codes are evicted from the debounce window", func(t *testing.T) {
		checker := &fakeChecker{}
		session := NewSession(checker, "op-1", 2*time.Second, 0, logger.New())

		base := time.Now()
		session.now = func() time.Time { return base }

		_, err := session.Submit(ctx, "QR-123")
		require.NoError(t, err)
		_, err = session.Submit(ctx, "QR-OTHER")
		require.NoError(t, err)

		// Past the window only the newest code is remembered.
		session.now = func() time.Time { return base.Add(3 * time.Second) }
		_, err = session.Submit(ctx, "QR-456")
		require.NoError(t, err)

		session.mu.Lock()
		defer session.mu.Unlock()
		assert.Len(t, session.lastSeen, 1)
		assert.Contains(t, session.lastSeen, "QR-456")
	})

	t.Run("concurrent submission is rejected while one is in flight", func(t *testing.T) {
		checker := &fakeChecker{block: make(chan struct{})}
		session := newTestSession(checker)

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = session.Submit(ctx, "QR-456")
		}()

		// Wait for the first submission to take the guard.
		require.Eventually(t, func() bool {
			checker.mu.Lock()
			defer checker.mu.Unlock()
			return checker.calls == 1
		}, time.Second, 5*time.Millisecond)

		_, err := session.Submit(ctx, "QR-OTHER")
		assert.ErrorIs(t, err, ErrScanInFlight)

		close(checker.block)
		<-done
	})

	t.Run("cancellation discards the response", func(t *testing.T) {
		checker := &fakeChecker{block: make(chan struct{})}
		session := newTestSession(checker)

		cancelCtx, cancel := context.WithCancel(ctx)
		done := make(chan error, 1)
		go func() {
			_, err := session.Submit(cancelCtx, "QR-456")
			done <- err
		}()

		require.Eventually(t, func() bool {
			checker.mu.Lock()
			defer checker.mu.Unlock()
			return checker.calls == 1
		}, time.Second, 5*time.Millisecond)

		cancel()
		close(checker.block)

		err := <-done
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestScanningLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("failed lookup keeps scanning, success stops it", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})
		source := &fakeSource{}
		results := make(chan *Result, 4)

		require.NoError(t, session.StartScanning(ctx, source, results))

		source.decode("QR-123")
		result := <-results
		assert.Equal(t, OutcomeNotFound, result.Outcome)
		assert.Equal(t, 0, source.stopCount())

		source.decode("QR-456")
		result = <-results
		assert.Equal(t, OutcomeCheckedIn, result.Outcome)
		assert.Equal(t, 1, source.stopCount())
	})

	t.Run("starting a new source releases the previous one", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})
		first := &fakeSource{}
		second := &fakeSource{}

		require.NoError(t, session.StartScanning(ctx, first, nil))
		require.NoError(t, session.StartScanning(ctx, second, nil))

		assert.Equal(t, 1, first.stopCount())
		assert.Equal(t, 0, second.stopCount())
	})

	t.Run("close releases the source", func(t *testing.T) {
		session := newTestSession(&fakeChecker{})
		source := &fakeSource{}

		require.NoError(t, session.StartScanning(ctx, source, nil))
		session.Close()
		session.Close()

		assert.Equal(t, 1, source.stopCount())
	})
}
