package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// Unseat undoes the physical seating and returns the booking to the
// confirmed pool. Unpaid orders tied to the reservation block it unless the
// operator forces the override.
func (u *lifecycleUseCase) Unseat(ctx context.Context, id uuid.UUID, opts UnseatOptions) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.Unseat(u.clock.Now()); err != nil {
			return err
		}

		orders, err := tx.Orders().ByReservation(ctx, res.ID())
		if err != nil {
			return err
		}
		if unpaid := unpaidOrderIDs(orders); len(unpaid) > 0 && !opts.Force {
			return &reservation.ValidationError{
				Reason:         "cannot unseat: reservation has unpaid orders",
				UnpaidOrderIDs: unpaid,
			}
		}

		if err := freeTables(ctx, tx, res); err != nil {
			return err
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "guests unseated")
		result.Metadata["forced"] = opts.Force
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
