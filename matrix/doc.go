// SPDX-License-Identifier: MIT

// Package matrix provides the integer cost grid and the open/closed route
// mask used by the transportation solvers.
//
// What lives here:
//
//   - Dense - a row-major n×m grid of int costs with safe At/Set accessors,
//     deep Clone, row/column copies and a readable String dump.
//   - Mask  - one open/closed flag per cell. A closed cell is never offered
//     to a solver; rows and columns are closed as a whole with CloseRow and
//     CloseCol. The mask replaces the "very large cost means no route"
//     sentinel so legitimate large costs can never be confused with it.
//   - Costs - a Dense bundled with the routes that are closed from the start
//     (forbidden shipping lanes). A nil mask means every route is open.
//
// Conventions:
//
//   - Rows index supply points, columns index demand points.
//   - Public accessors never panic on user input; they return the sentinel
//     errors from errors.go, wrapped with coordinates where useful.
//   - All loops run in fixed index order, so every result is deterministic.
//
// Complexity quicksheet:
//
//	NewDense/NewMask: O(n·m); At/Set/IsOpen: O(1); CloseRow: O(m); CloseCol: O(n);
//	Clone: O(n·m).
package matrix
