// SPDX-License-Identifier: MIT

// Package matrix - Dense cost storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce the non-negative cost policy from a single place (Set and NewDenseFrom).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone/ToSlices: O(r*c); Row: O(c); Col: O(r).
package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps a sentinel with the Dense method name and coordinates.
// The sentinel survives via %w, so errors.Is keeps working.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major grid of int costs.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNonNegative rejects negative values in Set (policy from options.go).
type Dense struct {
	r, c                int   // row and column counts (>0)
	data                []int // contiguous row-major storage (len == r*c)
	validateNonNegative bool  // cost guard: reject v<0 in Set when true
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero grid.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:                   rows,
		c:                   cols,
		data:                make([]int, rows*cols), // make() zero-fills deterministically
		validateNonNegative: o.validateNonNegative,
	}, nil
}

// NewDenseFrom copies a [][]int (row slices) into a new Dense.
// The input is never retained; later changes to rows do not leak in.
//
// Errors:
//   - ErrInvalidDimensions for zero rows or an empty first row.
//   - ErrRagged when a row length differs from the first row.
//   - ErrNegativeCost (wrapped with coordinates) under the non-negative policy.
//
// Complexity: O(r*c).
func NewDenseFrom(rows [][]int, opts ...Option) (*Dense, error) {
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFrom, err)
	}
	m, err := NewDense(len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, err
	}

	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if m.validateNonNegative && rows[i][j] < 0 {
				return nil, denseErrorf(ctxFrom, i, j, ErrNegativeCost)
			}
			m.data[base+j] = rows[i][j]
		}
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and returns the flat offset.
// It returns the bare ErrOutOfRange; public methods add context.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the cost at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds.
//   - ErrNegativeCost when v<0 and the non-negative policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNonNegative && v < 0 {
		return denseErrorf(ctxSet, row, col, ErrNegativeCost)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same cost policy).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:                   m.r,
		c:                   m.c,
		data:                cp,
		validateNonNegative: m.validateNonNegative,
	}
}

// Row returns a copy of row i, or ErrOutOfRange.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToSlices exports the grid as fresh row slices.
// Complexity: O(r*c).
func (m *Dense) ToSlices() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Do calls f for every cell in row-major order until f returns false.
func (m *Dense) Do(f func(i, j int, v int) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders the grid row by row for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
