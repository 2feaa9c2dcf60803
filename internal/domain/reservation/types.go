package reservation

// Status is the lifecycle state of a reservation.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusSeated    Status = "seated"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusSeated, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further lifecycle action may leave this state.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// DepositStatus tracks the prepaid deposit attached to a reservation.
type DepositStatus string

const (
	DepositNone        DepositStatus = "none"
	DepositPending     DepositStatus = "pending"
	DepositPaid        DepositStatus = "paid"
	DepositRefunded    DepositStatus = "refunded"
	DepositForfeited   DepositStatus = "forfeited"
	DepositTransferred DepositStatus = "transferred"
)

func (d DepositStatus) String() string {
	return string(d)
}

func (d DepositStatus) IsValid() bool {
	switch d {
	case DepositNone, DepositPending, DepositPaid, DepositRefunded, DepositForfeited, DepositTransferred:
		return true
	default:
		return false
	}
}
