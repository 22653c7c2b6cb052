// Package matrix_test contains unit tests for the Dense cost grid.
package matrix_test

import (
	"testing"

	"github.com/chaitanyabirla/transportcost/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 789))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 789, val)
}

// TestSetNegativePolicy checks that negative costs are rejected by default
// and accepted once the policy is relaxed.
func TestSetNegativePolicy(t *testing.T) {
	strict, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, -1), matrix.ErrNegativeCost)

	relaxed, err := matrix.NewDense(1, 1, matrix.WithAllowNegative())
	require.NoError(t, err)
	require.NoError(t, relaxed.Set(0, 0, -1))

	// Later options win.
	again, err := matrix.NewDense(1, 1, matrix.WithAllowNegative(), matrix.WithValidateNonNegative())
	require.NoError(t, err)
	require.ErrorIs(t, again.Set(0, 0, -1), matrix.ErrNegativeCost)
}

// TestNewDenseFrom covers copy semantics and input errors.
func TestNewDenseFrom(t *testing.T) {
	src := [][]int{{8, 6, 10}, {9, 12, 13}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	require.Equal(t, src, m.ToSlices())

	src[0][0] = 99 // caller mutation must not leak in
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 8, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]int{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrRagged)
	require.ErrorContains(t, err, "NewDenseFrom: ValidateRectangular: row 1")

	_, err = matrix.NewDenseFrom([][]int{{1, -2}})
	require.ErrorIs(t, err, matrix.ErrNegativeCost)
}

// TestCloneIndependence ensures Clone produces an independent buffer.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))

	v, _ := m.At(0, 0)
	require.Equal(t, 1, v)
	v, _ = cp.At(0, 0)
	require.Equal(t, 42, v)
}

// TestRow checks the copying row accessor.
func TestRow(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, row)
	row[0] = 100
	v, _ := m.At(1, 0)
	require.Equal(t, 4, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Row(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestDoStopsEarly verifies row-major order and early exit.
func TestDoStopsEarly(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

// TestString checks the diagnostic dump.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}
