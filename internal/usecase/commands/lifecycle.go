package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/errs"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound     = errs.New("reservation not found")
	ErrTableNotFound           = errs.New("table not found")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// SeatOptions control the side effects of seating. Zero value is NOT the
// default: use DefaultSeatOptions so createOrder/transferDeposit start true.
type SeatOptions struct {
	CreateOrder        bool
	TransferDeposit    bool
	GuestCountOverride *int
	ActorID            uuid.UUID
}

func DefaultSeatOptions(actorID uuid.UUID) SeatOptions {
	return SeatOptions{
		CreateOrder:     true,
		TransferDeposit: true,
		ActorID:         actorID,
	}
}

type UnseatOptions struct {
	Force   bool
	ActorID uuid.UUID
}

type CompleteOptions struct {
	Force bool
}

type CancelOptions struct {
	Reason        string
	RefundDeposit bool
	ActorID       uuid.UUID
}

func DefaultCancelOptions(actorID uuid.UUID) CancelOptions {
	return CancelOptions{
		RefundDeposit: true,
		ActorID:       actorID,
	}
}

type NoShowOptions struct {
	ForfeitDeposit bool
	Notes          string
	ActorID        uuid.UUID
}

// ReservationLifecycle is the engine's action layer: each method performs
// exactly one legal status transition plus its required side effects inside
// one transaction, or fails with a typed error leaving no state change.
type ReservationLifecycle interface {
	Confirm(ctx context.Context, id, actorID uuid.UUID) (*ActionResult, error)
	Seat(ctx context.Context, id uuid.UUID, opts SeatOptions) (*SeatResult, error)
	Unseat(ctx context.Context, id uuid.UUID, opts UnseatOptions) (*ActionResult, error)
	Complete(ctx context.Context, id uuid.UUID, opts CompleteOptions) (*ActionResult, error)
	Cancel(ctx context.Context, id uuid.UUID, opts CancelOptions) (*ActionResult, error)
	MarkNoShow(ctx context.Context, id uuid.UUID, opts NoShowOptions) (*ActionResult, error)
}

type lifecycleUseCase struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationLifecycle(uow shared.UnitOfWork, clock clock.Clock) ReservationLifecycle {
	return &lifecycleUseCase{
		uow:   uow,
		clock: clock,
	}
}

// unpaidOrderIDs collects the tied orders whose paid amount does not cover
// the total. Used by the unseat/complete guardrail.
func unpaidOrderIDs(orders []*order.Order) []uuid.UUID {
	var ids []uuid.UUID
	for _, o := range orders {
		if !o.IsFullyPaid() {
			ids = append(ids, o.ID())
		}
	}
	return ids
}

// freeTables resets the cached status flag of the main and linked tables.
func freeTables(ctx context.Context, tx shared.Tx, res *reservation.Reservation) error {
	for _, tableID := range res.TableIDs() {
		if err := tx.Tables().SaveStatus(ctx, tableID, table.StatusFree); err != nil {
			return err
		}
	}
	return nil
}
