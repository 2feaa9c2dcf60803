//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"
	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/clock"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIntakeFixture(t *testing.T) (*stubTx, commands.ReservationIntake) {
	t.Helper()

	tx := &stubTx{
		reservations: new(mockReservationRepo),
		tables:       new(mockTableRepo),
		orders:       new(mockOrderRepo),
	}
	mockClock := clock.NewMockClock(time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC))
	intake := commands.NewReservationIntake(&stubUoW{tx: tx}, mockClock)
	return tx, intake
}

func validParams(tableID uuid.UUID) commands.CreateReservationParams {
	from := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	return commands.CreateReservationParams{
		TableID:      tableID,
		GuestName:    "Anna Petrova",
		GuestPhone:   "+7 900 123-45-67",
		GuestCount:   4,
		ReservedDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		TimeFrom:     from,
		TimeTo:       from.Add(2 * time.Hour),
		DepositCents: 5000,
		Notes:        "window seat",
	}
}

func TestCreateReservation(t *testing.T) {
	t.Run("persists a pending reservation", func(t *testing.T) {
		tx, intake := newIntakeFixture(t)
		tableID := uuid.New()

		tx.tables.On("FindForUpdate", mock.Anything, tableID).
			Return(table.ReconstructTable(tableID, 5, "hall", 6, table.StatusFree), nil)
		tx.reservations.On("Create", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).Return(nil)

		res, err := intake.CreateReservation(context.Background(), validParams(tableID))
		require.NoError(t, err)

		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, reservation.DepositPending, res.DepositStatus())
		assert.Equal(t, tableID, res.TableID())
		tx.reservations.AssertExpectations(t)
	})

	t.Run("overnight window rolls past midnight", func(t *testing.T) {
		tx, intake := newIntakeFixture(t)
		tableID := uuid.New()

		tx.tables.On("FindForUpdate", mock.Anything, tableID).
			Return(table.ReconstructTable(tableID, 5, "hall", 6, table.StatusFree), nil)
		tx.reservations.On("Create", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).Return(nil)

		params := validParams(tableID)
		params.TimeFrom = time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
		params.TimeTo = time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)

		res, err := intake.CreateReservation(context.Background(), params)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), res.Window().To())
	})

	t.Run("invalid window fails before the transaction", func(t *testing.T) {
		tx, intake := newIntakeFixture(t)

		params := validParams(uuid.New())
		params.TimeTo = params.TimeFrom

		_, err := intake.CreateReservation(context.Background(), params)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
		tx.tables.AssertNotCalled(t, "FindForUpdate", mock.Anything, mock.Anything)
	})

	t.Run("negative deposit is rejected", func(t *testing.T) {
		_, intake := newIntakeFixture(t)

		params := validParams(uuid.New())
		params.DepositCents = -100

		_, err := intake.CreateReservation(context.Background(), params)
		assert.ErrorIs(t, err, reservation.ErrNegativeDeposit)
	})

	t.Run("party larger than the sole table is refused", func(t *testing.T) {
		tx, intake := newIntakeFixture(t)
		tableID := uuid.New()

		tx.tables.On("FindForUpdate", mock.Anything, tableID).
			Return(table.ReconstructTable(tableID, 5, "hall", 2, table.StatusFree), nil)

		params := validParams(tableID)
		params.GuestCount = 4

		_, err := intake.CreateReservation(context.Background(), params)
		assert.ErrorIs(t, err, commands.ErrTableTooSmall)
		tx.reservations.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("linked tables lift the capacity guard", func(t *testing.T) {
		tx, intake := newIntakeFixture(t)
		tableID := uuid.New()

		tx.tables.On("FindForUpdate", mock.Anything, tableID).
			Return(table.ReconstructTable(tableID, 5, "hall", 2, table.StatusFree), nil)
		tx.reservations.On("Create", mock.Anything, mock.AnythingOfType("*reservation.Reservation")).Return(nil)

		params := validParams(tableID)
		params.GuestCount = 8
		params.LinkedTableIDs = []uuid.UUID{uuid.New()}

		res, err := intake.CreateReservation(context.Background(), params)
		require.NoError(t, err)
		assert.Len(t, res.TableIDs(), 2)
	})
}

func TestMarkDepositPaid(t *testing.T) {
	t.Run("moves a pending deposit to paid", func(t *testing.T) {
		tx := &stubTx{
			reservations: new(mockReservationRepo),
			tables:       new(mockTableRepo),
			orders:       new(mockOrderRepo),
		}
		deposits := commands.NewDepositCommands(&stubUoW{tx: tx})
		res := buildReservation(t, reservation.StatusConfirmed, 5000, reservation.DepositPending)

		tx.reservations.On("FindForUpdate", mock.Anything, res.ID()).Return(res, nil)
		tx.reservations.On("Save", mock.Anything, res).Return(nil)

		result, err := deposits.MarkDepositPaid(context.Background(), res.ID(), "card")
		require.NoError(t, err)

		assert.Equal(t, reservation.DepositPaid, result.Reservation.DepositStatus())
		assert.Equal(t, "card", result.Metadata["payment_method"])
		assert.Equal(t, int64(5000), result.Metadata["deposit_cents"])
	})

	t.Run("already paid deposit is refused", func(t *testing.T) {
		tx := &stubTx{
			reservations: new(mockReservationRepo),
			tables:       new(mockTableRepo),
			orders:       new(mockOrderRepo),
		}
		deposits := commands.NewDepositCommands(&stubUoW{tx: tx})
		res := buildReservation(t, reservation.StatusConfirmed, 5000, reservation.DepositPaid)

		tx.reservations.On("FindForUpdate", mock.Anything, res.ID()).Return(res, nil)

		_, err := deposits.MarkDepositPaid(context.Background(), res.ID(), "cash")
		assert.ErrorIs(t, err, reservation.ErrDepositNotPending)
		tx.reservations.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
