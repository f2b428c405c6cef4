package orders

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

// IsValid checks if the order status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled, StatusExpired:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsCompleted reports whether the order was paid for. Tickets are only
// checkable against a completed order.
func (s Status) IsCompleted() bool {
	return s == StatusCompleted
}

// HoldsSeats reports whether the order still keeps its seats reserved.
func (s Status) HoldsSeats() bool {
	return s == StatusPending || s == StatusCompleted
}
