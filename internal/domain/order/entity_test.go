//go:build unit

package order_test

import (
	"testing"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewForReservation(t *testing.T) {
	tableID := uuid.New()
	reservationID := uuid.New()
	waiter := uuid.New()

	o := order.NewForReservation(tableID, reservationID, 4, waiter)

	assert.Equal(t, order.StatusOpen, o.Status())
	assert.True(t, o.Status().IsActive())
	assert.Equal(t, tableID, o.TableID())
	assert.True(t, o.BelongsToReservation(reservationID))
	assert.False(t, o.BelongsToReservation(uuid.New()))
	require.NotNil(t, o.OpenedBy())
	assert.Equal(t, waiter, *o.OpenedBy())
}

func TestClose(t *testing.T) {
	now := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)

	t.Run("closes an open order", func(t *testing.T) {
		o := order.NewForReservation(uuid.New(), uuid.New(), 2, uuid.Nil)
		require.NoError(t, o.Close(now))

		assert.Equal(t, order.StatusCompleted, o.Status())
		assert.False(t, o.Status().IsActive())
		require.NotNil(t, o.ClosedAt())
		assert.Equal(t, now, *o.ClosedAt())
	})

	t.Run("double close fails", func(t *testing.T) {
		o := order.NewForReservation(uuid.New(), uuid.New(), 2, uuid.Nil)
		require.NoError(t, o.Close(now))
		assert.ErrorIs(t, o.Close(now.Add(time.Minute)), order.ErrAlreadyClosed)
		assert.Equal(t, now, *o.ClosedAt())
	})
}

func TestIsFullyPaid(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		paid  int64
		want  bool
	}{
		{"empty order counts as paid", 0, 0, true},
		{"unpaid", 12000, 0, false},
		{"partially paid", 12000, 6000, false},
		{"exactly paid", 12000, 12000, true},
		{"overpaid", 12000, 15000, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := order.ReconstructOrder(
				uuid.New(), uuid.New(), nil,
				order.StatusOpen, 2,
				tt.total, tt.paid,
				nil, nil,
				time.Now(), time.Now(),
			)
			assert.Equal(t, tt.want, o.IsFullyPaid())
		})
	}
}
