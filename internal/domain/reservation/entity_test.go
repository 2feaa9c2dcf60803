//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReservation(t *testing.T, depositCents int64) *reservation.Reservation {
	t.Helper()

	from := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	window, err := reservation.NewTimeWindow(from, from.Add(2*time.Hour))
	require.NoError(t, err)

	res, err := reservation.NewReservation(
		uuid.New(),
		nil,
		"Anna Petrova",
		"+7 900 123-45-67",
		4,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		window,
		reservation.NewMoney(depositCents),
		reservation.NewNote("window seat"),
	)
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	t.Run("starts pending with pending deposit", func(t *testing.T) {
		res := newTestReservation(t, 5000)
		assert.Equal(t, reservation.StatusPending, res.Status())
		assert.Equal(t, reservation.DepositPending, res.DepositStatus())
		assert.NotEqual(t, uuid.Nil, res.ID())
	})

	t.Run("zero deposit means no sub-ledger", func(t *testing.T) {
		res := newTestReservation(t, 0)
		assert.Equal(t, reservation.DepositNone, res.DepositStatus())
	})

	t.Run("rejects non-positive guest count", func(t *testing.T) {
		window, err := reservation.NewTimeWindow(
			time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 14, 21, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)

		_, err = reservation.NewReservation(
			uuid.New(), nil, "Anna", "", 0,
			time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			window, reservation.NewMoney(0), reservation.Note{},
		)
		assert.ErrorIs(t, err, reservation.ErrInvalidGuestCount)
	})
}

func TestConfirm(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	manager := uuid.New()

	t.Run("records timestamp and actor on first confirm", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Confirm(now, manager))

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		require.NotNil(t, res.ConfirmedAt())
		assert.Equal(t, now, *res.ConfirmedAt())
		require.NotNil(t, res.ConfirmedBy())
		assert.Equal(t, manager, *res.ConfirmedBy())
	})

	t.Run("re-confirm after unseat keeps the original stamp", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Confirm(now, manager))
		require.NoError(t, res.Seat(now.Add(time.Hour), manager))
		require.NoError(t, res.Unseat(now.Add(2*time.Hour)))

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, now, *res.ConfirmedAt())
	})

	t.Run("confirm from terminal state fails", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Cancel(now, "guest called", manager))

		err := res.Confirm(now, manager)
		var transitionErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, reservation.StatusCancelled, transitionErr.From)
	})
}

func TestSeatUnseatCycle(t *testing.T) {
	base := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	waiter := uuid.New()

	t.Run("walk-in seats straight from pending", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Seat(base, waiter))
		assert.Equal(t, reservation.StatusSeated, res.Status())
	})

	t.Run("seated_at survives the unseat round trip, unseated_at does not", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Seat(base, waiter))
		firstSeated := *res.SeatedAt()

		require.NoError(t, res.Unseat(base.Add(10*time.Minute)))
		firstUnseated := *res.UnseatedAt()

		require.NoError(t, res.Seat(base.Add(20*time.Minute), waiter))
		require.NoError(t, res.Unseat(base.Add(30*time.Minute)))

		assert.Equal(t, firstSeated, *res.SeatedAt())
		assert.NotEqual(t, firstUnseated, *res.UnseatedAt())
		assert.Equal(t, base.Add(30*time.Minute), *res.UnseatedAt())
	})

	t.Run("unseat lands in confirmed, not pending", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Seat(base, waiter))
		require.NoError(t, res.Unseat(base.Add(time.Minute)))
		assert.Equal(t, reservation.StatusConfirmed, res.Status())
	})

	t.Run("unseat requires seated", func(t *testing.T) {
		res := newTestReservation(t, 0)
		err := res.Unseat(base)
		var transitionErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
	})
}

func TestComplete(t *testing.T) {
	base := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
	waiter := uuid.New()

	res := newTestReservation(t, 0)
	require.NoError(t, res.Seat(base, waiter))
	require.NoError(t, res.Complete(base.Add(2*time.Hour)))

	assert.Equal(t, reservation.StatusCompleted, res.Status())
	require.NotNil(t, res.CompletedAt())
	assert.Equal(t, base.Add(2*time.Hour), *res.CompletedAt())

	err := res.Seat(base.Add(3*time.Hour), waiter)
	var transitionErr *reservation.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	manager := uuid.New()

	t.Run("records reason and actor", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Cancel(now, "guest called to cancel", manager))

		assert.Equal(t, reservation.StatusCancelled, res.Status())
		require.NotNil(t, res.CancellationReason())
		assert.Equal(t, "guest called to cancel", *res.CancellationReason())
		require.NotNil(t, res.CancelledBy())
		assert.Equal(t, manager, *res.CancelledBy())
	})

	t.Run("empty reason stays nil", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Cancel(now, "", manager))
		assert.Nil(t, res.CancellationReason())
	})

	t.Run("seated guests cannot cancel", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Seat(now, manager))

		err := res.Cancel(now, "changed mind", manager)
		var transitionErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
	})
}

func TestMarkNoShow(t *testing.T) {
	now := time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	manager := uuid.New()

	t.Run("only from confirmed", func(t *testing.T) {
		res := newTestReservation(t, 0)
		err := res.MarkNoShow(now, "")
		var transitionErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
	})

	t.Run("appends a tagged note", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Confirm(now.Add(-time.Hour), manager))
		require.NoError(t, res.MarkNoShow(now, "waited 30 minutes"))

		assert.Equal(t, reservation.StatusNoShow, res.Status())
		assert.Equal(t, "window seat\n[No-show] waited 30 minutes", res.Notes().String())
		require.NotNil(t, res.NoShowAt())
	})

	t.Run("empty note leaves notes untouched", func(t *testing.T) {
		res := newTestReservation(t, 0)
		require.NoError(t, res.Confirm(now.Add(-time.Hour), manager))
		require.NoError(t, res.MarkNoShow(now, ""))
		assert.Equal(t, "window seat", res.Notes().String())
	})
}

func TestDepositLifecycleOnEntity(t *testing.T) {
	t.Run("record paid requires pending", func(t *testing.T) {
		res := newTestReservation(t, 5000)
		require.NoError(t, res.RecordDepositPaid())
		assert.Equal(t, reservation.DepositPaid, res.DepositStatus())

		assert.ErrorIs(t, res.RecordDepositPaid(), reservation.ErrDepositNotPending)
	})

	t.Run("refund applies once", func(t *testing.T) {
		res := newTestReservation(t, 5000)
		require.NoError(t, res.RecordDepositPaid())

		assert.True(t, res.RefundDeposit())
		assert.Equal(t, reservation.DepositRefunded, res.DepositStatus())
		assert.False(t, res.RefundDeposit())
	})

	t.Run("forfeit without payment is a no-op", func(t *testing.T) {
		res := newTestReservation(t, 5000)
		assert.False(t, res.ForfeitDeposit())
		assert.Equal(t, reservation.DepositPending, res.DepositStatus())
	})

	t.Run("transfer records the target order", func(t *testing.T) {
		res := newTestReservation(t, 5000)
		require.NoError(t, res.RecordDepositPaid())

		orderID := uuid.New()
		assert.True(t, res.TransferDeposit(orderID))
		assert.Equal(t, reservation.DepositTransferred, res.DepositStatus())
		require.NotNil(t, res.DepositTransferredTo())
		assert.Equal(t, orderID, *res.DepositTransferredTo())
	})
}

func TestTableIDs(t *testing.T) {
	mainTable := uuid.New()
	linked := []uuid.UUID{uuid.New(), uuid.New()}

	window, err := reservation.NewTimeWindow(
		time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)

	res, err := reservation.NewReservation(
		mainTable, linked, "Big party", "", 10,
		time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		window, reservation.NewMoney(0), reservation.Note{},
	)
	require.NoError(t, err)

	got := res.TableIDs()
	require.Len(t, got, 3)
	assert.Equal(t, mainTable, got[0])
	assert.Equal(t, linked, got[1:])
}
