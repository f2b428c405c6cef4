package checkin

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"ticketops/internal/shared/apperr"
	"ticketops/internal/tickets"
	"ticketops/pkg/logger"
	"ticketops/pkg/metrics"
)

// Outcome classifies one scan attempt. AlreadyCheckedIn is
// success-adjacent, NotValid and NotFound are rejections, and
// TransportError means the attempt itself could not complete. They are
// never conflated.
type Outcome string

const (
	OutcomeCheckedIn        Outcome = "CHECKED_IN"
	OutcomeAlreadyCheckedIn Outcome = "ALREADY_CHECKED_IN"
	OutcomeNotFound         Outcome = "NOT_FOUND"
	OutcomeNotValid         Outcome = "NOT_VALID"
	OutcomeTransportError   Outcome = "TRANSPORT_ERROR"
)

// Result is the terminal rendering of one scan attempt. Every submitted
// code ends in exactly one Result or one of the sentinel errors below.
type Result struct {
	Outcome     Outcome             `json:"outcome"`
	Ticket      *tickets.TicketView `json:"ticket,omitempty"`
	CheckedInAt *time.Time          `json:"checked_in_at,omitempty"`
	Message     string              `json:"message"`

	// Detail carries the verbatim error text for TransportError and
	// NotValid outcomes.
	Detail string `json:"detail,omitempty"`
}

var (
	// ErrScanInFlight rejects a submission while another attempt on the
	// same session has not finished.
	ErrScanInFlight = errors.New("a scan is already being processed")

	// ErrScanDebounced drops a code seen again within the debounce
	// window.
	ErrScanDebounced = errors.New("code was just scanned")

	// ErrEmptyCode rejects blank input before any lookup happens.
	ErrEmptyCode = errors.New("code is empty")
)

// Checker is the slice of the ticket service a session drives.
type Checker interface {
	CheckInByQRCode(ctx context.Context, code, operatorID string) (*tickets.CheckInResult, error)
}

// Session funnels every input source, manual entry and camera scans
// alike, through one submission sequence. At most one attempt is in
// flight; a successful check-in stops active scanning so a still-visible
// code cannot re-trigger, while a failed lookup leaves the scanner
// running.
type Session struct {
	checker      Checker
	operatorID   string
	log          *logger.Logger
	debounce     time.Duration
	displayDelay time.Duration
	now          func() time.Time

	mu       sync.Mutex
	inFlight bool
	lastSeen map[string]time.Time
	source   Source
}

func NewSession(checker Checker, operatorID string, debounce, displayDelay time.Duration, log *logger.Logger) *Session {
	return &Session{
		checker:      checker,
		operatorID:   operatorID,
		log:          log,
		debounce:     debounce,
		displayDelay: displayDelay,
		now:          time.Now,
		lastSeen:     make(map[string]time.Time),
	}
}

// Submit runs the single-shot sequence for one code. Duplicate
// submissions while an attempt is in flight return ErrScanInFlight, and
// a code re-seen inside the debounce window returns ErrScanDebounced;
// neither reaches the ticket service.
func (s *Session) Submit(ctx context.Context, code string) (*Result, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	if err := s.acquire(code); err != nil {
		return nil, err
	}
	defer s.release()

	// The delay lets the operator eyeball the code before the status
	// flips. Cancellation skips it without affecting correctness.
	if s.displayDelay > 0 {
		timer := time.NewTimer(s.displayDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		}
	}

	result, err := s.checker.CheckInByQRCode(ctx, code, s.operatorID)
	if ctx.Err() != nil {
		// The view moved on; discard whatever came back.
		return nil, ctx.Err()
	}
	if err != nil {
		return s.classifyError(err), nil
	}

	if result.AlreadyCheckedIn {
		return &Result{
			Outcome:     OutcomeAlreadyCheckedIn,
			Ticket:      &result.Ticket,
			CheckedInAt: result.CheckedInAt,
			Message:     result.Message,
		}, nil
	}

	// Fresh check-in: stop the camera so the same code on screen does
	// not fire again.
	s.stopSource()

	return &Result{
		Outcome:     OutcomeCheckedIn,
		Ticket:      &result.Ticket,
		CheckedInAt: result.CheckedInAt,
		Message:     result.Message,
	}, nil
}

func (s *Session) acquire(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrScanInFlight
	}

	now := s.now()
	if seen, ok := s.lastSeen[code]; ok && now.Sub(seen) < s.debounce {
		metrics.RecordScanDebounced()
		s.log.LogScanDebounced(context.Background(), code)
		return ErrScanDebounced
	}

	// Drop codes that have aged out so a long-lived gate session does
	// not retain every ticket it ever scanned.
	for seenCode, seen := range s.lastSeen {
		if now.Sub(seen) >= s.debounce {
			delete(s.lastSeen, seenCode)
		}
	}

	s.lastSeen[code] = now
	s.inFlight = true
	return nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Session) classifyError(err error) *Result {
	switch {
	case errors.Is(err, apperr.ErrQRCodeNotFound):
		return &Result{
			Outcome: OutcomeNotFound,
			Message: "Ticket not found",
		}
	case errors.Is(err, apperr.ErrTicketNotActive),
		errors.Is(err, apperr.ErrOrderNotCompleted):
		return &Result{
			Outcome: OutcomeNotValid,
			Message: "Ticket is not valid for entry",
			Detail:  err.Error(),
		}
	default:
		metrics.RecordScanOutcome("transport_error")
		return &Result{
			Outcome: OutcomeTransportError,
			Message: "Check-in could not be completed",
			Detail:  err.Error(),
		}
	}
}
