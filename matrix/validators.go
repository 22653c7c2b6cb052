// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for shape checks shared by the solvers.
//   - Return sentinel errors wrapped with a validator tag; callers match with errors.Is.
//
// Note:
//   - All checks are pure and deterministic.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures rows is a non-empty, non-ragged [][]int.
//
// Errors: ErrInvalidDimensions, ErrRagged.
// Complexity: O(r).
func ValidateRectangular(rows [][]int) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	want := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != want {
			return validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrRagged)
		}
	}

	return nil
}

// ValidateShape ensures g has exactly rows×cols cells.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateShape(g Grid, rows, cols int) error {
	if g == nil {
		return validatorErrorf("ValidateShape", ErrNilMatrix)
	}
	if g.Rows() != rows {
		return validatorErrorf("ValidateShape: Rows", ErrDimensionMismatch)
	}
	if g.Cols() != cols {
		return validatorErrorf("ValidateShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative ensures every cell of g is >= 0.
//
// Errors: ErrNilMatrix, ErrNegativeCost (with coordinates).
// Complexity: O(r*c).
func ValidateNonNegative(g Grid) error {
	if g == nil {
		return validatorErrorf("ValidateNonNegative", ErrNilMatrix)
	}
	var (
		i, j, v int
		err     error
	)
	for i = 0; i < g.Rows(); i++ {
		for j = 0; j < g.Cols(); j++ {
			if v, err = g.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegativeCost)
			}
		}
	}

	return nil
}
