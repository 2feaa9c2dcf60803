package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// Cancel voids a booking that has not been seated. A paid deposit is
// refunded only when asked; forfeiture is a distinct action (MarkNoShow),
// never implied by a plain cancel.
func (u *lifecycleUseCase) Cancel(ctx context.Context, id uuid.UUID, opts CancelOptions) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.Cancel(u.clock.Now(), opts.Reason, opts.ActorID); err != nil {
			return err
		}

		refunded := false
		if opts.RefundDeposit {
			refunded = res.RefundDeposit()
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "reservation cancelled")
		result.Metadata["deposit_refunded"] = refunded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
