package vam

import "errors"

var (
	// ErrShapeMismatch is returned when the cost grid is not len(supply) ×
	// len(demand), or when the problem is empty.
	ErrShapeMismatch = errors.New("vam: cost matrix shape does not match supply/demand")

	// ErrUnbalancedProblem is returned when total supply differs from total demand.
	ErrUnbalancedProblem = errors.New("vam: total supply does not equal total demand")

	// ErrNegativeQuantity is returned for a supply or demand entry below zero.
	ErrNegativeQuantity = errors.New("vam: negative supply or demand")

	// ErrNegativeCost is returned for a route cost below zero.
	ErrNegativeCost = errors.New("vam: negative cost")

	// ErrInfeasible is returned when the open routes cannot carry the whole
	// supply to the demand points.
	ErrInfeasible = errors.New("vam: open routes cannot satisfy demand")

	// ErrOverflow is returned when the quantity totals, or the largest cost
	// times the total quantity, do not fit in an int.
	ErrOverflow = errors.New("vam: totals overflow int")
)

// Allocation records one step of the plan: Quantity units shipped from
// supply point Supply to demand point Demand at UnitCost each.
// Quantity may be zero for a degenerate step.
type Allocation struct {
	Supply   int `json:"supply" yaml:"supply"`
	Demand   int `json:"demand" yaml:"demand"`
	Quantity int `json:"quantity" yaml:"quantity"`
	UnitCost int `json:"unitCost" yaml:"unitCost"`
}

// Cost returns Quantity*UnitCost.
func (a Allocation) Cost() int { return a.Quantity * a.UnitCost }

// Result is the outcome of a solver run.
type Result struct {
	// TotalCost is the sum of Quantity*UnitCost over Allocations.
	TotalCost int

	// Allocations in the order they were made.
	Allocations []Allocation

	// Rows and Cols echo the problem shape.
	Rows, Cols int
}

// Shipments folds the allocations into an n×m quantity grid.
func (r Result) Shipments() [][]int {
	out := make([][]int, r.Rows)
	for i := range out {
		out[i] = make([]int, r.Cols)
	}
	for _, a := range r.Allocations {
		out[a.Supply][a.Demand] += a.Quantity
	}

	return out
}

// Line tells whether a step operated on (or closed) a row or a column.
type Line int

const (
	// Row is a supply point.
	Row Line = iota
	// Column is a demand point.
	Column
)

// String implements fmt.Stringer.
func (l Line) String() string {
	if l == Column {
		return "column"
	}

	return "row"
}

// Step is the snapshot handed to a WithTrace observer after every allocation.
type Step struct {
	Index      int        // 0-based step number
	Chosen     Line       // line selected by penalty
	ChosenAt   int        // its index
	Penalty    Penalty    // its penalty
	Allocation Allocation // the allocation made
	Closed     Line       // line closed by the reduction
	ClosedAt   int        // its index
	Supply     []int      // remaining supply after the step (copy)
	Demand     []int      // remaining demand after the step (copy)
}
