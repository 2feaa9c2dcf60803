package commands

import (
	"context"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/errs"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrTableTooSmall = errs.New("table capacity is below the guest count")

type CreateReservationParams struct {
	TableID        uuid.UUID
	LinkedTableIDs []uuid.UUID
	GuestName      string
	GuestPhone     string
	GuestCount     int
	ReservedDate   time.Time
	TimeFrom       time.Time
	TimeTo         time.Time
	DepositCents   int64
	Notes          string
}

// ReservationIntake creates pending reservations. Slot-availability search
// stays outside this service; intake only validates the booking itself.
type ReservationIntake interface {
	CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
}

type intakeUseCase struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewReservationIntake(uow shared.UnitOfWork, clock clock.Clock) ReservationIntake {
	return &intakeUseCase{
		uow:   uow,
		clock: clock,
	}
}

func (u *intakeUseCase) CreateReservation(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	from, to := reservation.NormalizeOvernight(params.TimeFrom, params.TimeTo)
	window, err := reservation.NewTimeWindow(from, to)
	if err != nil {
		return nil, err
	}

	deposit, err := reservation.NewMoneyFromCents(params.DepositCents)
	if err != nil {
		return nil, reservation.ErrNegativeDeposit
	}

	var created *reservation.Reservation
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tbl, err := tx.Tables().FindForUpdate(ctx, params.TableID)
		if err != nil {
			return err
		}
		if !tbl.Fits(params.GuestCount) && len(params.LinkedTableIDs) == 0 {
			return ErrTableTooSmall
		}

		res, err := reservation.NewReservation(
			params.TableID,
			params.LinkedTableIDs,
			params.GuestName,
			params.GuestPhone,
			params.GuestCount,
			params.ReservedDate,
			window,
			deposit,
			reservation.NewNote(params.Notes),
		)
		if err != nil {
			return err
		}

		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
