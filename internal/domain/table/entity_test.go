//go:build unit

package table_test

import (
	"testing"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTable(t *testing.T) {
	t.Run("starts free", func(t *testing.T) {
		tbl, err := table.NewTable(12, "terrace", 4)
		require.NoError(t, err)
		assert.Equal(t, table.StatusFree, tbl.Status())
		assert.Equal(t, 12, tbl.Number())
	})

	t.Run("rejects non-positive capacity", func(t *testing.T) {
		_, err := table.NewTable(1, "hall", 0)
		assert.ErrorIs(t, err, table.ErrInvalidCapacity)
	})
}

func TestFits(t *testing.T) {
	tbl, err := table.NewTable(3, "hall", 4)
	require.NoError(t, err)

	assert.True(t, tbl.Fits(4))
	assert.True(t, tbl.Fits(1))
	assert.False(t, tbl.Fits(5))
}

func TestStatusFlips(t *testing.T) {
	tbl, err := table.NewTable(7, "hall", 2)
	require.NoError(t, err)

	tbl.MarkOccupied()
	assert.Equal(t, table.StatusOccupied, tbl.Status())

	tbl.MarkFree()
	assert.Equal(t, table.StatusFree, tbl.Status())
}
