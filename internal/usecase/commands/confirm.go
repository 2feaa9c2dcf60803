package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

func (u *lifecycleUseCase) Confirm(ctx context.Context, id, actorID uuid.UUID) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.Confirm(u.clock.Now(), actorID); err != nil {
			return err
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "reservation confirmed")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
