// SPDX-License-Identifier: MIT

// Package matrix - open/closed route mask.
//
// A Mask holds one flag per cell of an n×m grid. Solvers close whole rows
// (supply exhausted) or whole columns (demand satisfied); callers may also
// close single cells up front to forbid a route. Per-line open counters are
// maintained on every close, so "does this line still have an open cell" is
// O(1).
package matrix

import "fmt"

// maskErrorf wraps a sentinel with the Mask method name and index.
func maskErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Mask.%s(%d): %w", method, idx, err)
}

// Mask tracks which cells of a grid are still open.
type Mask struct {
	r, c    int
	closed  []bool // row-major, true == closed
	rowOpen []int  // open cells per row
	colOpen []int  // open cells per column
}

// NewMask returns an r×c mask with every cell open.
//
// Errors: ErrInvalidDimensions when rows<=0 or cols<=0.
func NewMask(rows, cols int) (*Mask, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	m := &Mask{
		r:       rows,
		c:       cols,
		closed:  make([]bool, rows*cols),
		rowOpen: make([]int, rows),
		colOpen: make([]int, cols),
	}
	for i := range m.rowOpen {
		m.rowOpen[i] = cols
	}
	for j := range m.colOpen {
		m.colOpen[j] = rows
	}

	return m, nil
}

// Rows returns the row count.
func (m *Mask) Rows() int { return m.r }

// Cols returns the column count.
func (m *Mask) Cols() int { return m.c }

// Open reports whether cell (i, j) is open. Out-of-range cells are
// reported as closed, never as a panic.
func (m *Mask) Open(i, j int) bool {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return false
	}

	return !m.closed[i*m.c+j]
}

// RowOpen returns the number of open cells in row i (0 when out of range).
func (m *Mask) RowOpen(i int) int {
	if i < 0 || i >= m.r {
		return 0
	}

	return m.rowOpen[i]
}

// ColOpen returns the number of open cells in column j (0 when out of range).
func (m *Mask) ColOpen(j int) int {
	if j < 0 || j >= m.c {
		return 0
	}

	return m.colOpen[j]
}

// close marks a single in-range cell closed and updates both counters.
func (m *Mask) close(i, j int) {
	off := i*m.c + j
	if m.closed[off] {
		return
	}
	m.closed[off] = true
	m.rowOpen[i]--
	m.colOpen[j]--
}

// Close closes the single cell (i, j). Closing a closed cell is a no-op.
//
// Errors: ErrOutOfRange.
func (m *Mask) Close(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return fmt.Errorf("Mask.Close(%d,%d): %w", i, j, ErrOutOfRange)
	}
	m.close(i, j)

	return nil
}

// CloseRow closes every cell of row i.
// Complexity: O(c).
func (m *Mask) CloseRow(i int) error {
	if i < 0 || i >= m.r {
		return maskErrorf("CloseRow", i, ErrOutOfRange)
	}
	for j := 0; j < m.c; j++ {
		m.close(i, j)
	}

	return nil
}

// CloseCol closes every cell of column j.
// Complexity: O(r).
func (m *Mask) CloseCol(j int) error {
	if j < 0 || j >= m.c {
		return maskErrorf("CloseCol", j, ErrOutOfRange)
	}
	for i := 0; i < m.r; i++ {
		m.close(i, j)
	}

	return nil
}

// Closed returns the number of closed cells.
func (m *Mask) Closed() int {
	n := 0
	for _, open := range m.rowOpen {
		n += m.c - open
	}

	return n
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	cp := &Mask{
		r:       m.r,
		c:       m.c,
		closed:  make([]bool, len(m.closed)),
		rowOpen: make([]int, len(m.rowOpen)),
		colOpen: make([]int, len(m.colOpen)),
	}
	copy(cp.closed, m.closed)
	copy(cp.rowOpen, m.rowOpen)
	copy(cp.colOpen, m.colOpen)

	return cp
}
