package problem

import (
	"fmt"

	"github.com/chaitanyabirla/transportcost/matrix"
	"github.com/chaitanyabirla/transportcost/vam"
)

// DummyLabel names the point added by Balance.
const DummyLabel = "Dummy"

// Problem is a parsed transportation problem.
type Problem struct {
	// Sources and Destinations are optional labels; when empty the
	// default names S1.. and D1.. are used.
	Sources      []string
	Destinations []string

	Supply []int
	Demand []int
	Costs  *matrix.Costs
}

// New checks that costs is len(supply) × len(demand) and builds a Problem.
//
// Errors: ErrEmpty, ErrCountMismatch.
func New(supply, demand []int, costs *matrix.Costs) (*Problem, error) {
	if len(supply) == 0 || len(demand) == 0 || costs == nil {
		return nil, fmt.Errorf("%w: need supply, demand and costs", ErrEmpty)
	}
	if err := matrix.ValidateShape(costs, len(supply), len(demand)); err != nil {
		return nil, fmt.Errorf("%w: %dx%d cost grid for %d supply and %d demand points",
			ErrCountMismatch, costs.Rows(), costs.Cols(), len(supply), len(demand))
	}

	return &Problem{Supply: supply, Demand: demand, Costs: costs}, nil
}

// Rows returns the number of supply points.
func (p *Problem) Rows() int { return len(p.Supply) }

// Cols returns the number of demand points.
func (p *Problem) Cols() int { return len(p.Demand) }

// SourceName returns the label of supply point i.
func (p *Problem) SourceName(i int) string {
	if i < len(p.Sources) && p.Sources[i] != "" {
		return p.Sources[i]
	}

	return fmt.Sprintf("S%d", i+1)
}

// DestinationName returns the label of demand point j.
func (p *Problem) DestinationName(j int) string {
	if j < len(p.Destinations) && p.Destinations[j] != "" {
		return p.Destinations[j]
	}

	return fmt.Sprintf("D%d", j+1)
}

// CheckCounts compares declared point counts with the parsed data. A
// declared count of zero is not checked.
//
// Errors: ErrCountMismatch.
func (p *Problem) CheckCounts(n, m int) error {
	if n > 0 && p.Rows() != n {
		return fmt.Errorf("%w: %d supply entries for %d supply points", ErrCountMismatch, p.Rows(), n)
	}
	if m > 0 && p.Cols() != m {
		return fmt.Errorf("%w: %d demand entries for %d demand points", ErrCountMismatch, p.Cols(), m)
	}

	return nil
}

// Totals returns total supply and total demand.
func (p *Problem) Totals() (supply, demand int) {
	for _, s := range p.Supply {
		supply += s
	}
	for _, d := range p.Demand {
		demand += d
	}

	return supply, demand
}

// Balance pads an unbalanced problem with a zero-cost dummy point: a
// destination when supply exceeds demand, a source otherwise. Forbidden
// routes are kept; the dummy's routes are all open. It reports whether a
// point was added.
func (p *Problem) Balance() (bool, error) {
	supply, demand := p.Totals()
	if supply == demand {
		return false, nil
	}

	n, m := p.Rows(), p.Cols()
	grid := p.Costs.Grid().ToSlices()
	sources := names(n, p.SourceName)
	destinations := names(m, p.DestinationName)

	if supply > demand {
		for i := range grid {
			grid[i] = append(grid[i], 0)
		}
		p.Demand = append(append([]int(nil), p.Demand...), supply-demand)
		destinations = append(destinations, DummyLabel)
	} else {
		grid = append(grid, make([]int, m))
		p.Supply = append(append([]int(nil), p.Supply...), demand-supply)
		sources = append(sources, DummyLabel)
	}

	costs, err := matrix.NewCostsFrom(grid)
	if err != nil {
		return false, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if !p.Costs.Allowed(i, j) {
				if err = costs.Forbid(i, j); err != nil {
					return false, err
				}
			}
		}
	}
	p.Costs = costs
	p.Sources, p.Destinations = sources, destinations

	return true, nil
}

// names materializes the labels of size points.
func names(size int, name func(int) string) []string {
	out := make([]string, size)
	for k := range out {
		out[k] = name(k)
	}

	return out
}

// Solve runs the VAM solver on p.
func (p *Problem) Solve(opts ...vam.Option) (vam.Result, error) {
	return vam.SolveMatrix(p.Costs, p.Supply, p.Demand, opts...)
}
