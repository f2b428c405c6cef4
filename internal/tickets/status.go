package tickets

// Status is the lifecycle state of a ticket. ACTIVE is the only state
// with outgoing transitions: check-in moves it to USED, cancellation to
// CANCELLED, and a settled refund moves CANCELLED to REFUNDED.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusUsed      Status = "USED"
	StatusCancelled Status = "CANCELLED"
	StatusRefunded  Status = "REFUNDED"
)

// IsValid checks if the ticket status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUsed, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// CanCheckIn reports whether check-in is a legal transition.
func (s Status) CanCheckIn() bool {
	return s == StatusActive
}

// CanCancel reports whether cancellation is a legal transition.
func (s Status) CanCancel() bool {
	return s == StatusActive
}

// CanRefund reports whether the refund settlement transition is legal.
func (s Status) CanRefund() bool {
	return s == StatusCancelled
}

// IsTerminal reports whether the ticket can never be checked in again.
func (s Status) IsTerminal() bool {
	return s != StatusActive
}
