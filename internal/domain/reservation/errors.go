package reservation

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrInvalidTimeWindow = errors.New("invalid time window")
	ErrInvalidGuestCount = errors.New("invalid guest count")
	ErrNegativeDeposit   = errors.New("deposit cannot be negative")
	ErrDepositNotPending = errors.New("deposit is not awaiting payment")
)

// InvalidTransitionError is returned when an action requests a status move
// that is not in the transition table.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid reservation transition from %s to %s", e.From, e.To)
}

// TableOccupiedError is returned by a seat attempt when a real active order
// belonging to another party already targets the table.
type TableOccupiedError struct {
	TableID uuid.UUID
	OrderID uuid.UUID
}

func (e *TableOccupiedError) Error() string {
	return fmt.Sprintf("table %s is occupied by active order %s", e.TableID, e.OrderID)
}

// ValidationError is returned when a business precondition blocks an action,
// carrying the ids of the orders that caused it when relevant.
type ValidationError struct {
	Reason         string
	UnpaidOrderIDs []uuid.UUID
}

func (e *ValidationError) Error() string {
	if len(e.UnpaidOrderIDs) == 0 {
		return e.Reason
	}
	return fmt.Sprintf("%s (%d unpaid orders)", e.Reason, len(e.UnpaidOrderIDs))
}
