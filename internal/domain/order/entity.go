package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrAlreadyClosed = errors.New("order is already closed")

type Status string

const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the order currently occupies its table.
func (s Status) IsActive() bool {
	return s == StatusOpen
}

// Order is the dine-in bill opened when a party is seated. Its line items are
// managed elsewhere; the lifecycle engine only reads totals and closes it.
type Order struct {
	id            uuid.UUID
	tableID       uuid.UUID
	reservationID *uuid.UUID
	status        Status
	guestCount    int
	totalCents    int64
	paidCents     int64
	openedBy      *uuid.UUID
	closedAt      *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

// NewForReservation opens an empty order on a table, carrying a weak
// back-reference to the reservation that seated it.
func NewForReservation(tableID, reservationID uuid.UUID, guestCount int, openedBy uuid.UUID) *Order {
	o := &Order{
		id:         uuid.New(),
		tableID:    tableID,
		status:     StatusOpen,
		guestCount: guestCount,
	}
	rid := reservationID
	o.reservationID = &rid
	if openedBy != uuid.Nil {
		uid := openedBy
		o.openedBy = &uid
	}
	return o
}

func ReconstructOrder(
	id, tableID uuid.UUID,
	reservationID *uuid.UUID,
	status Status,
	guestCount int,
	totalCents, paidCents int64,
	openedBy *uuid.UUID,
	closedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:            id,
		tableID:       tableID,
		reservationID: reservationID,
		status:        status,
		guestCount:    guestCount,
		totalCents:    totalCents,
		paidCents:     paidCents,
		openedBy:      openedBy,
		closedAt:      closedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (o *Order) IsFullyPaid() bool {
	return o.paidCents >= o.totalCents
}

// Close completes an open order. Closing an already-closed order is an error
// so the caller never silently rewrites closed_at.
func (o *Order) Close(now time.Time) error {
	if o.status != StatusOpen {
		return ErrAlreadyClosed
	}
	o.status = StatusCompleted
	t := now
	o.closedAt = &t
	return nil
}

func (o *Order) BelongsToReservation(reservationID uuid.UUID) bool {
	return o.reservationID != nil && *o.reservationID == reservationID
}

func (o *Order) ID() uuid.UUID             { return o.id }
func (o *Order) TableID() uuid.UUID        { return o.tableID }
func (o *Order) ReservationID() *uuid.UUID { return o.reservationID }
func (o *Order) Status() Status            { return o.status }
func (o *Order) GuestCount() int           { return o.guestCount }
func (o *Order) TotalCents() int64         { return o.totalCents }
func (o *Order) PaidCents() int64          { return o.paidCents }
func (o *Order) OpenedBy() *uuid.UUID      { return o.openedBy }
func (o *Order) ClosedAt() *time.Time      { return o.closedAt }
func (o *Order) CreatedAt() time.Time      { return o.createdAt }
func (o *Order) UpdatedAt() time.Time      { return o.updatedAt }
