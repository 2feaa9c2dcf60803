package reservation

import (
	"time"

	"github.com/google/uuid"
)

const noShowNoteTag = "No-show"

// Reservation is the aggregate root of the lifecycle engine. All status and
// deposit mutations go through the methods below, which enforce the
// transition table; repositories only persist what the methods produced.
type Reservation struct {
	id             uuid.UUID
	tableID        uuid.UUID
	linkedTableIDs []uuid.UUID
	guestName      string
	guestPhone     string
	guestCount     int
	reservedDate   time.Time
	window         TimeWindow
	status         Status

	deposit              Money
	depositStatus        DepositStatus
	depositTransferredTo *uuid.UUID

	cancellationReason *string
	notes              Note

	confirmedAt *time.Time
	seatedAt    *time.Time
	unseatedAt  *time.Time
	completedAt *time.Time
	cancelledAt *time.Time
	noShowAt    *time.Time

	confirmedBy *uuid.UUID
	seatedBy    *uuid.UUID
	cancelledBy *uuid.UUID

	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	tableID uuid.UUID,
	linkedTableIDs []uuid.UUID,
	guestName, guestPhone string,
	guestCount int,
	reservedDate time.Time,
	window TimeWindow,
	deposit Money,
	notes Note,
) (*Reservation, error) {
	if guestCount <= 0 {
		return nil, ErrInvalidGuestCount
	}
	if deposit.Cents() < 0 {
		return nil, ErrNegativeDeposit
	}

	depositStatus := DepositNone
	if deposit.Cents() > 0 {
		depositStatus = DepositPending
	}

	return &Reservation{
		id:             uuid.New(),
		tableID:        tableID,
		linkedTableIDs: linkedTableIDs,
		guestName:      guestName,
		guestPhone:     guestPhone,
		guestCount:     guestCount,
		reservedDate:   reservedDate,
		window:         window,
		status:         StatusPending,
		deposit:        deposit,
		depositStatus:  depositStatus,
		notes:          notes,
	}, nil
}

func ReconstructReservation(
	id, tableID uuid.UUID,
	linkedTableIDs []uuid.UUID,
	guestName, guestPhone string,
	guestCount int,
	reservedDate time.Time,
	window TimeWindow,
	status Status,
	deposit Money,
	depositStatus DepositStatus,
	depositTransferredTo *uuid.UUID,
	cancellationReason *string,
	notes Note,
	confirmedAt, seatedAt, unseatedAt, completedAt, cancelledAt, noShowAt *time.Time,
	confirmedBy, seatedBy, cancelledBy *uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:                   id,
		tableID:              tableID,
		linkedTableIDs:       linkedTableIDs,
		guestName:            guestName,
		guestPhone:           guestPhone,
		guestCount:           guestCount,
		reservedDate:         reservedDate,
		window:               window,
		status:               status,
		deposit:              deposit,
		depositStatus:        depositStatus,
		depositTransferredTo: depositTransferredTo,
		cancellationReason:   cancellationReason,
		notes:                notes,
		confirmedAt:          confirmedAt,
		seatedAt:             seatedAt,
		unseatedAt:           unseatedAt,
		completedAt:          completedAt,
		cancelledAt:          cancelledAt,
		noShowAt:             noShowAt,
		confirmedBy:          confirmedBy,
		seatedBy:             seatedBy,
		cancelledBy:          cancelledBy,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// Confirm moves a pending booking into the confirmed pool.
func (r *Reservation) Confirm(now time.Time, by uuid.UUID) error {
	if err := AssertTransition(r.status, StatusConfirmed); err != nil {
		return err
	}
	r.status = StatusConfirmed
	if r.confirmedAt == nil {
		t := now
		r.confirmedAt = &t
		if by != uuid.Nil {
			id := by
			r.confirmedBy = &id
		}
	}
	return nil
}

// Seat marks the party as physically at the table. seated_at is recorded on
// the first seating only; re-seats after an unseat keep the original time.
func (r *Reservation) Seat(now time.Time, by uuid.UUID) error {
	if err := AssertTransition(r.status, StatusSeated); err != nil {
		return err
	}
	r.status = StatusSeated
	if r.seatedAt == nil {
		t := now
		r.seatedAt = &t
		if by != uuid.Nil {
			id := by
			r.seatedBy = &id
		}
	}
	return nil
}

// Unseat returns the party to the confirmed pool. The booking itself was
// never un-confirmed, so the target is confirmed, not pending. unseated_at
// is deliberately overwritten on every cycle.
func (r *Reservation) Unseat(now time.Time) error {
	if err := AssertTransition(r.status, StatusConfirmed); err != nil {
		return err
	}
	r.status = StatusConfirmed
	t := now
	r.unseatedAt = &t
	return nil
}

func (r *Reservation) Complete(now time.Time) error {
	if err := AssertTransition(r.status, StatusCompleted); err != nil {
		return err
	}
	r.status = StatusCompleted
	t := now
	r.completedAt = &t
	return nil
}

func (r *Reservation) Cancel(now time.Time, reason string, by uuid.UUID) error {
	if err := AssertTransition(r.status, StatusCancelled); err != nil {
		return err
	}
	r.status = StatusCancelled
	t := now
	r.cancelledAt = &t
	if reason != "" {
		s := reason
		r.cancellationReason = &s
	}
	if by != uuid.Nil {
		id := by
		r.cancelledBy = &id
	}
	return nil
}

// MarkNoShow records that a confirmed party never arrived. A note, when
// supplied, is appended to the existing notes rather than replacing them.
func (r *Reservation) MarkNoShow(now time.Time, note string) error {
	if err := AssertTransition(r.status, StatusNoShow); err != nil {
		return err
	}
	r.status = StatusNoShow
	t := now
	r.noShowAt = &t
	if note != "" {
		r.notes = r.notes.AppendTagged(noShowNoteTag, note)
	}
	return nil
}

// RecordDepositPaid marks a pending deposit as collected.
func (r *Reservation) RecordDepositPaid() error {
	if r.depositStatus != DepositPending {
		return ErrDepositNotPending
	}
	r.depositStatus = DepositPaid
	return nil
}

// RefundDeposit applies the paid→refunded transition, reporting whether a
// refund actually happened.
func (r *Reservation) RefundDeposit() bool {
	next, ok := TryRefund(r.depositStatus)
	r.depositStatus = next
	return ok
}

func (r *Reservation) ForfeitDeposit() bool {
	next, ok := TryForfeit(r.depositStatus)
	r.depositStatus = next
	return ok
}

// TransferDeposit moves a paid deposit onto the dine-in order created at
// seating time.
func (r *Reservation) TransferDeposit(orderID uuid.UUID) bool {
	next, ok := TryTransfer(r.depositStatus, orderID)
	r.depositStatus = next
	if ok {
		id := orderID
		r.depositTransferredTo = &id
	}
	return ok
}

// TableIDs returns the main table followed by any linked tables of a
// multi-table booking.
func (r *Reservation) TableIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.linkedTableIDs)+1)
	ids = append(ids, r.tableID)
	ids = append(ids, r.linkedTableIDs...)
	return ids
}

func (r *Reservation) ID() uuid.UUID                       { return r.id }
func (r *Reservation) TableID() uuid.UUID                  { return r.tableID }
func (r *Reservation) LinkedTableIDs() []uuid.UUID         { return r.linkedTableIDs }
func (r *Reservation) GuestName() string                   { return r.guestName }
func (r *Reservation) GuestPhone() string                  { return r.guestPhone }
func (r *Reservation) GuestCount() int                     { return r.guestCount }
func (r *Reservation) ReservedDate() time.Time             { return r.reservedDate }
func (r *Reservation) Window() TimeWindow                  { return r.window }
func (r *Reservation) Status() Status                      { return r.status }
func (r *Reservation) Deposit() Money                      { return r.deposit }
func (r *Reservation) DepositStatus() DepositStatus        { return r.depositStatus }
func (r *Reservation) DepositTransferredTo() *uuid.UUID    { return r.depositTransferredTo }
func (r *Reservation) CancellationReason() *string         { return r.cancellationReason }
func (r *Reservation) Notes() Note                         { return r.notes }
func (r *Reservation) ConfirmedAt() *time.Time             { return r.confirmedAt }
func (r *Reservation) SeatedAt() *time.Time                { return r.seatedAt }
func (r *Reservation) UnseatedAt() *time.Time              { return r.unseatedAt }
func (r *Reservation) CompletedAt() *time.Time             { return r.completedAt }
func (r *Reservation) CancelledAt() *time.Time             { return r.cancelledAt }
func (r *Reservation) NoShowAt() *time.Time                { return r.noShowAt }
func (r *Reservation) ConfirmedBy() *uuid.UUID             { return r.confirmedBy }
func (r *Reservation) SeatedBy() *uuid.UUID                { return r.seatedBy }
func (r *Reservation) CancelledBy() *uuid.UUID             { return r.cancelledBy }
func (r *Reservation) CreatedAt() time.Time                { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time                { return r.updatedAt }
