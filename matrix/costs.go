// SPDX-License-Identifier: MIT

// Package matrix - cost grid with forbidden routes.
package matrix

// Costs couples a Dense cost grid with the routes that are closed before
// any solving starts. The zero number of forbidden routes is the common
// case and costs nothing: the mask is only allocated on the first Forbid.
type Costs struct {
	grid      *Dense
	forbidden *Mask // nil == every route open
}

// NewCostsFrom builds Costs from row slices (see NewDenseFrom for errors).
func NewCostsFrom(rows [][]int, opts ...Option) (*Costs, error) {
	d, err := NewDenseFrom(rows, opts...)
	if err != nil {
		return nil, err
	}

	return &Costs{grid: d}, nil
}

// Rows returns the number of supply rows.
func (c *Costs) Rows() int { return c.grid.Rows() }

// Cols returns the number of demand columns.
func (c *Costs) Cols() int { return c.grid.Cols() }

// At returns the cost at (i, j). Forbidden routes keep their stored cost
// (zero unless set); use Allowed to tell them apart.
func (c *Costs) At(i, j int) (int, error) { return c.grid.At(i, j) }

// Grid returns a copy of the underlying cost grid.
func (c *Costs) Grid() *Dense { return c.grid.Clone() }

// Forbid closes route (i, j) for every solver run on c.
//
// Errors: ErrOutOfRange.
func (c *Costs) Forbid(i, j int) error {
	if c.forbidden == nil {
		m, err := NewMask(c.grid.Rows(), c.grid.Cols())
		if err != nil {
			return err
		}
		c.forbidden = m
	}

	return c.forbidden.Close(i, j)
}

// Allowed reports whether route (i, j) exists and is not forbidden.
func (c *Costs) Allowed(i, j int) bool {
	if i < 0 || i >= c.grid.Rows() || j < 0 || j >= c.grid.Cols() {
		return false
	}
	if c.forbidden == nil {
		return true
	}

	return c.forbidden.Open(i, j)
}

// Forbidden returns the number of forbidden routes.
func (c *Costs) Forbidden() int {
	if c.forbidden == nil {
		return 0
	}

	return c.forbidden.Closed()
}

// Routes returns a fresh working mask: forbidden routes closed, the rest
// open. Each call allocates a new mask, so solver runs never share state.
func (c *Costs) Routes() *Mask {
	if c.forbidden != nil {
		return c.forbidden.Clone()
	}
	m, _ := NewMask(c.grid.Rows(), c.grid.Cols()) // dims already validated by the grid

	return m
}
