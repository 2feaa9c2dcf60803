package commands

import (
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"

	"github.com/google/uuid"
)

// ActionResult is the envelope every lifecycle action returns on success.
// Failures are typed errors, never a Success=false result.
type ActionResult struct {
	Success     bool
	Reservation *reservation.Reservation
	Message     string
	Metadata    map[string]any
}

func newActionResult(res *reservation.Reservation, message string) *ActionResult {
	return &ActionResult{
		Success:     true,
		Reservation: res,
		Message:     message,
		Metadata:    map[string]any{},
	}
}

// SeatResult extends the common envelope with the payload specific to
// seating: the created order, whether the deposit moved onto it, and every
// table involved in the booking.
type SeatResult struct {
	ActionResult
	Order              *order.Order
	DepositTransferred bool
	TableIDs           []uuid.UUID
}

func (r *SeatResult) HasOrder() bool {
	return r.Order != nil
}
