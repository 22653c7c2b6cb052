// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every error returned by this package is one of these sentinels, either
// bare or wrapped with fmt.Errorf("...: %w"). Callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set/IsOpen/Close*) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged indicates that the rows of a [][]int input differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a mask whose shape differs from its cost grid.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativeCost signals a cost below zero where only non-negative
	// costs are allowed.
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrNilMatrix indicates that a nil *Dense, *Mask or *Costs was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
