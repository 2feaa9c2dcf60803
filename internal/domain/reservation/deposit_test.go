//go:build unit

package reservation_test

import (
	"testing"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTryRefund(t *testing.T) {
	tests := []struct {
		name    string
		current reservation.DepositStatus
		want    reservation.DepositStatus
		applied bool
	}{
		{"paid refunds", reservation.DepositPaid, reservation.DepositRefunded, true},
		{"none is a no-op", reservation.DepositNone, reservation.DepositNone, false},
		{"pending is a no-op", reservation.DepositPending, reservation.DepositPending, false},
		{"refunded stays refunded", reservation.DepositRefunded, reservation.DepositRefunded, false},
		{"forfeited stays forfeited", reservation.DepositForfeited, reservation.DepositForfeited, false},
		{"transferred stays transferred", reservation.DepositTransferred, reservation.DepositTransferred, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := reservation.TryRefund(tt.current)
			assert.Equal(t, tt.want, next)
			assert.Equal(t, tt.applied, ok)
		})
	}
}

func TestTryForfeit(t *testing.T) {
	tests := []struct {
		name    string
		current reservation.DepositStatus
		want    reservation.DepositStatus
		applied bool
	}{
		{"paid forfeits", reservation.DepositPaid, reservation.DepositForfeited, true},
		{"none is a no-op", reservation.DepositNone, reservation.DepositNone, false},
		{"pending is a no-op", reservation.DepositPending, reservation.DepositPending, false},
		{"refunded stays refunded", reservation.DepositRefunded, reservation.DepositRefunded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := reservation.TryForfeit(tt.current)
			assert.Equal(t, tt.want, next)
			assert.Equal(t, tt.applied, ok)
		})
	}
}

func TestTryTransfer(t *testing.T) {
	orderID := uuid.New()

	t.Run("paid transfers onto an order", func(t *testing.T) {
		next, ok := reservation.TryTransfer(reservation.DepositPaid, orderID)
		assert.True(t, ok)
		assert.Equal(t, reservation.DepositTransferred, next)
	})

	t.Run("nil order id blocks the transfer", func(t *testing.T) {
		next, ok := reservation.TryTransfer(reservation.DepositPaid, uuid.Nil)
		assert.False(t, ok)
		assert.Equal(t, reservation.DepositPaid, next)
	})

	t.Run("unpaid deposit never transfers", func(t *testing.T) {
		for _, current := range []reservation.DepositStatus{
			reservation.DepositNone,
			reservation.DepositPending,
			reservation.DepositRefunded,
			reservation.DepositForfeited,
			reservation.DepositTransferred,
		} {
			next, ok := reservation.TryTransfer(current, orderID)
			assert.False(t, ok, "transfer must not apply from %s", current)
			assert.Equal(t, current, next)
		}
	})
}
