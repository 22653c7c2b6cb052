package matrix_test

import (
	"testing"

	"github.com/chaitanyabirla/transportcost/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMaskAllOpen checks the initial state and dimension guard.
func TestNewMaskAllOpen(t *testing.T) {
	_, err := matrix.NewMask(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewMask(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 0, m.Closed())
	for i := 0; i < 2; i++ {
		assert.Equal(t, 3, m.RowOpen(i))
		for j := 0; j < 3; j++ {
			assert.True(t, m.Open(i, j))
		}
	}
	for j := 0; j < 3; j++ {
		assert.Equal(t, 2, m.ColOpen(j))
	}
}

// TestMaskCloseLines verifies counters stay consistent when rows and
// columns overlap.
func TestMaskCloseLines(t *testing.T) {
	m, err := matrix.NewMask(3, 3)
	require.NoError(t, err)

	require.NoError(t, m.CloseCol(1))
	assert.Equal(t, 0, m.ColOpen(1))
	assert.Equal(t, 2, m.RowOpen(0))

	require.NoError(t, m.CloseRow(0))
	assert.Equal(t, 0, m.RowOpen(0))
	assert.Equal(t, 2, m.ColOpen(0))
	assert.Equal(t, 2, m.ColOpen(2))
	assert.Equal(t, 5, m.Closed()) // 3 (col) + 2 new (row)

	// Idempotent: closing again changes nothing.
	require.NoError(t, m.CloseRow(0))
	require.NoError(t, m.Close(0, 0))
	assert.Equal(t, 5, m.Closed())

	assert.False(t, m.Open(0, 2))
	assert.True(t, m.Open(2, 2))
}

// TestMaskOutOfRange ensures no panics on bad indices.
func TestMaskOutOfRange(t *testing.T) {
	m, err := matrix.NewMask(2, 2)
	require.NoError(t, err)

	assert.ErrorIs(t, m.CloseRow(2), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.CloseCol(-1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Close(0, 5), matrix.ErrOutOfRange)
	assert.False(t, m.Open(-1, 0))
	assert.Equal(t, 0, m.RowOpen(9))
	assert.Equal(t, 0, m.ColOpen(9))
}

// TestMaskClone ensures clones do not share state.
func TestMaskClone(t *testing.T) {
	m, err := matrix.NewMask(2, 2)
	require.NoError(t, err)
	cp := m.Clone()

	require.NoError(t, cp.CloseRow(0))
	assert.True(t, m.Open(0, 0))
	assert.Equal(t, 2, m.RowOpen(0))
	assert.False(t, cp.Open(0, 0))
}
