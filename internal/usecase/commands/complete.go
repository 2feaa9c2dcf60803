package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// Complete finishes the visit: closes every tied order still open, moves the
// reservation to completed and frees the tables. The only action that closes
// orders on the reservation's behalf; it never creates them.
func (u *lifecycleUseCase) Complete(ctx context.Context, id uuid.UUID, opts CompleteOptions) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		now := u.clock.Now()
		if err := res.Complete(now); err != nil {
			return err
		}

		orders, err := tx.Orders().ByReservation(ctx, res.ID())
		if err != nil {
			return err
		}
		if unpaid := unpaidOrderIDs(orders); len(unpaid) > 0 && !opts.Force {
			return &reservation.ValidationError{
				Reason:         "cannot complete: reservation has unpaid orders",
				UnpaidOrderIDs: unpaid,
			}
		}

		closed := 0
		for _, o := range orders {
			if o.Status() != order.StatusOpen {
				continue
			}
			if err := o.Close(now); err != nil {
				return err
			}
			if err := tx.Orders().Save(ctx, o); err != nil {
				return err
			}
			closed++
		}

		if err := freeTables(ctx, tx, res); err != nil {
			return err
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "reservation completed")
		result.Metadata["orders_closed"] = closed
		result.Metadata["forced"] = opts.Force
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
