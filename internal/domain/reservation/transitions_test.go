//go:build unit

package reservation_test

import (
	"testing"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct {
		from reservation.Status
		to   reservation.Status
	}{
		{reservation.StatusPending, reservation.StatusConfirmed},
		{reservation.StatusPending, reservation.StatusSeated},
		{reservation.StatusPending, reservation.StatusCancelled},
		{reservation.StatusConfirmed, reservation.StatusSeated},
		{reservation.StatusConfirmed, reservation.StatusCancelled},
		{reservation.StatusConfirmed, reservation.StatusNoShow},
		{reservation.StatusSeated, reservation.StatusConfirmed},
		{reservation.StatusSeated, reservation.StatusCompleted},
	}

	for _, tt := range allowed {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.True(t, reservation.CanTransition(tt.from, tt.to))
		})
	}

	denied := []struct {
		from reservation.Status
		to   reservation.Status
	}{
		{reservation.StatusPending, reservation.StatusCompleted},
		{reservation.StatusPending, reservation.StatusNoShow},
		{reservation.StatusConfirmed, reservation.StatusPending},
		{reservation.StatusSeated, reservation.StatusCancelled},
		{reservation.StatusSeated, reservation.StatusNoShow},
		{reservation.StatusSeated, reservation.StatusPending},
		{reservation.StatusCompleted, reservation.StatusSeated},
		{reservation.StatusCompleted, reservation.StatusConfirmed},
		{reservation.StatusCancelled, reservation.StatusConfirmed},
		{reservation.StatusCancelled, reservation.StatusPending},
		{reservation.StatusNoShow, reservation.StatusConfirmed},
		{reservation.StatusNoShow, reservation.StatusSeated},
	}

	for _, tt := range denied {
		t.Run(string(tt.from)+"_to_"+string(tt.to)+"_denied", func(t *testing.T) {
			assert.False(t, reservation.CanTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalStatusesHaveNoExits(t *testing.T) {
	terminals := []reservation.Status{
		reservation.StatusCompleted,
		reservation.StatusCancelled,
		reservation.StatusNoShow,
	}
	all := []reservation.Status{
		reservation.StatusPending,
		reservation.StatusConfirmed,
		reservation.StatusSeated,
		reservation.StatusCompleted,
		reservation.StatusCancelled,
		reservation.StatusNoShow,
	}

	for _, from := range terminals {
		assert.True(t, from.IsTerminal())
		for _, to := range all {
			assert.False(t, reservation.CanTransition(from, to),
				"terminal status %s must not transition to %s", from, to)
		}
	}
}

func TestAssertTransition(t *testing.T) {
	t.Run("allowed transition returns nil", func(t *testing.T) {
		require.NoError(t, reservation.AssertTransition(
			reservation.StatusPending, reservation.StatusConfirmed))
	})

	t.Run("denied transition returns typed error", func(t *testing.T) {
		err := reservation.AssertTransition(
			reservation.StatusCompleted, reservation.StatusSeated)
		require.Error(t, err)

		var transitionErr *reservation.InvalidTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, reservation.StatusCompleted, transitionErr.From)
		assert.Equal(t, reservation.StatusSeated, transitionErr.To)
	})
}
