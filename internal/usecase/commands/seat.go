package commands

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
)

// Seat moves the party to the table. Atomically: verifies the transition,
// reconciles the table's cached flag against the real active order, creates
// the dine-in order, flips every involved table to occupied and transfers a
// paid deposit onto the new order when asked to.
func (u *lifecycleUseCase) Seat(ctx context.Context, id uuid.UUID, opts SeatOptions) (*SeatResult, error) {
	var result *SeatResult

	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err := res.Seat(u.clock.Now(), opts.ActorID); err != nil {
			return err
		}

		tbl, err := tx.Tables().FindForUpdate(ctx, res.TableID())
		if err != nil {
			return err
		}

		// Ground truth beats the cached flag: only a real active order on
		// the table is a conflict. A stale occupied flag with no such order
		// is healed by the occupied write below.
		active, err := tx.Orders().ActiveByTable(ctx, res.TableID())
		if err != nil {
			return err
		}
		if active != nil && !active.BelongsToReservation(res.ID()) {
			return &reservation.TableOccupiedError{TableID: res.TableID(), OrderID: active.ID()}
		}
		staleHealed := active == nil && tbl.Status() == table.StatusOccupied

		var created *order.Order
		if opts.CreateOrder {
			guests := res.GuestCount()
			if opts.GuestCountOverride != nil {
				guests = *opts.GuestCountOverride
			}
			created = order.NewForReservation(res.TableID(), res.ID(), guests, opts.ActorID)
			if err := tx.Orders().Create(ctx, created); err != nil {
				return err
			}
		}

		for _, tableID := range res.TableIDs() {
			if err := tx.Tables().SaveStatus(ctx, tableID, table.StatusOccupied); err != nil {
				return err
			}
		}

		depositTransferred := false
		if opts.TransferDeposit && created != nil {
			depositTransferred = res.TransferDeposit(created.ID())
		}

		if err := tx.Reservations().Save(ctx, res); err != nil {
			return err
		}

		result = &SeatResult{
			ActionResult:       *newActionResult(res, "guests seated"),
			Order:              created,
			DepositTransferred: depositTransferred,
			TableIDs:           res.TableIDs(),
		}
		result.Metadata["stale_occupancy_healed"] = staleHealed
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
