package events

import "time"

// EventStatus is the authoritative, admin-managed state of an event.
type EventStatus string

const (
	StatusUpcoming  EventStatus = "UPCOMING"
	StatusOngoing   EventStatus = "ONGOING"
	StatusCompleted EventStatus = "COMPLETED"
	StatusCancelled EventStatus = "CANCELLED"
)

func (s EventStatus) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s EventStatus) String() string {
	return string(s)
}

// Phase is the purely time-derived classification used for row styling
// in ticketing tables. It is computed fresh on every read and never
// written back; the admin-facing EventStatus above is a separate axis.
type Phase string

const (
	PhasePast    Phase = "past"
	PhaseCurrent Phase = "current"
	PhaseFuture  Phase = "future"
)

// ClassifyPhase derives the phase of an event from its start and end
// times relative to now. The rules, in order:
//
//   - no start date: future (it cannot have started)
//   - end date in the past: past
//   - no end date and start in the past: past (treated as a point event)
//   - started, and end absent or still ahead: current
//   - otherwise: future
//
// Every (start, end, now) combination lands in exactly one phase.
func ClassifyPhase(start, end *time.Time, now time.Time) Phase {
	if start == nil {
		return PhaseFuture
	}
	if end != nil && end.Before(now) {
		return PhasePast
	}
	if end == nil && start.Before(now) {
		return PhasePast
	}
	if !start.After(now) && (end == nil || !end.Before(now)) {
		return PhaseCurrent
	}
	return PhaseFuture
}
