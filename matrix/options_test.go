// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaitanyabirla/transportcost/matrix"
)

// 1) TestDefaultOptions_Documented verifies the default policy rejects negatives.
func TestDefaultOptions_Documented(t *testing.T) {
	require.True(t, matrix.DefaultValidateNonNegative)

	_, err := matrix.NewDenseFrom([][]int{{1, -1}})
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	d, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, d.Set(0, 0, -3), matrix.ErrNegativeCost)
}

// 2) TestWithAllowNegative lifts the policy for the grid it builds.
func TestWithAllowNegative(t *testing.T) {
	d, err := matrix.NewDenseFrom([][]int{{1, -1}}, matrix.WithAllowNegative())
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, -7))

	v, _ := d.At(0, 0)
	assert.Equal(t, -7, v)

	// The policy travels with clones.
	require.NoError(t, d.Clone().Set(0, 1, -2))
}

// 3) TestOptions_LastWins applies setters in order; nil setters are skipped.
func TestOptions_LastWins(t *testing.T) {
	_, err := matrix.NewDenseFrom([][]int{{-1}}, matrix.WithAllowNegative(), nil, matrix.WithValidateNonNegative())
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	_, err = matrix.NewDenseFrom([][]int{{-1}}, matrix.WithValidateNonNegative(), matrix.WithAllowNegative())
	require.NoError(t, err)
}
