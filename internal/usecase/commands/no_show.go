package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// MarkNoShow records that a confirmed party never arrived, optionally
// forfeiting their paid deposit.
func (u *lifecycleUseCase) MarkNoShow(ctx context.Context, id uuid.UUID, opts NoShowOptions) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.MarkNoShow(u.clock.Now(), opts.Notes); err != nil {
			return err
		}

		forfeited := false
		if opts.ForfeitDeposit {
			forfeited = res.ForfeitDeposit()
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "reservation marked as no-show")
		result.Metadata["deposit_forfeited"] = forfeited
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
