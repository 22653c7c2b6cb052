// SPDX-License-Identifier: MIT

// Package matrix: read-only view shared by Dense and Costs.
package matrix

// Grid is the read-only surface the solvers need from a cost grid.
//
// Complexity notes: every method is O(1).
type Grid interface {
	// Rows returns the number of supply rows.
	Rows() int

	// Cols returns the number of demand columns.
	Cols() int

	// At retrieves the cost at (i, j).
	// Returns ErrOutOfRange if i or j is outside the grid.
	At(i, j int) (int, error)
}

// Compile-time assertions.
var (
	_ Grid = (*Dense)(nil)
	_ Grid = (*Costs)(nil)
)
