//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	from := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)

	t.Run("valid window", func(t *testing.T) {
		w, err := reservation.NewTimeWindow(from, from.Add(2*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, from, w.From())
		assert.Equal(t, 2*time.Hour, w.Duration())
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(from, from.Add(-time.Hour))
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})

	t.Run("zero-length window", func(t *testing.T) {
		_, err := reservation.NewTimeWindow(from, from)
		assert.ErrorIs(t, err, reservation.ErrInvalidTimeWindow)
	})
}

func TestNormalizeOvernight(t *testing.T) {
	t.Run("end past midnight rolls to next day", func(t *testing.T) {
		from := time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)

		gotFrom, gotTo := reservation.NormalizeOvernight(from, to)
		assert.Equal(t, from, gotFrom)
		assert.Equal(t, time.Date(2026, 3, 15, 1, 0, 0, 0, time.UTC), gotTo)
	})

	t.Run("normal window untouched", func(t *testing.T) {
		from := time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)
		to := from.Add(2 * time.Hour)

		gotFrom, gotTo := reservation.NormalizeOvernight(from, to)
		assert.Equal(t, from, gotFrom)
		assert.Equal(t, to, gotTo)
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative cents rejected", func(t *testing.T) {
		_, err := reservation.NewMoneyFromCents(-1)
		assert.Error(t, err)
	})

	t.Run("zero is zero", func(t *testing.T) {
		m, err := reservation.NewMoneyFromCents(0)
		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("positive amount", func(t *testing.T) {
		m, err := reservation.NewMoneyFromCents(5000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), m.Cents())
		assert.False(t, m.IsZero())
	})
}

func TestNoteAppendTagged(t *testing.T) {
	t.Run("empty note gets the entry alone", func(t *testing.T) {
		n := reservation.Note{}.AppendTagged("No-show", "waited 30 minutes")
		assert.Equal(t, "[No-show] waited 30 minutes", n.String())
	})

	t.Run("existing note gets a new line", func(t *testing.T) {
		n := reservation.NewNote("birthday cake at 9").AppendTagged("No-show", "never arrived")
		assert.Equal(t, "birthday cake at 9\n[No-show] never arrived", n.String())
	})
}
