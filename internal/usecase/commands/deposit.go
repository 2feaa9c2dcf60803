package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// DepositCommands records deposit payments ahead of the lifecycle actions
// that later refund, forfeit or transfer them.
type DepositCommands interface {
	MarkDepositPaid(ctx context.Context, id uuid.UUID, method string) (*ActionResult, error)
}

type depositUseCase struct {
	uow shared.UnitOfWork
}

func NewDepositCommands(uow shared.UnitOfWork) DepositCommands {
	return &depositUseCase{uow: uow}
}

func (u *depositUseCase) MarkDepositPaid(ctx context.Context, id uuid.UUID, method string) (*ActionResult, error) {
	var result *ActionResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.RecordDepositPaid(); err != nil {
			return err
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = newActionResult(res, "deposit recorded as paid")
		result.Metadata["payment_method"] = method
		result.Metadata["deposit_cents"] = res.Deposit().Cents()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
