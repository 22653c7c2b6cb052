package vam

import (
	"fmt"

	"github.com/unixpickle/essentials"

	"github.com/chaitanyabirla/transportcost/flow"
	"github.com/chaitanyabirla/transportcost/matrix"
)

// Solve runs VAM on a plain cost grid where every route is open.
//
// costs must be len(supply) × len(demand) with non-negative entries, and
// the totals of supply and demand must match. None of the arguments is
// modified.
//
// Quantities and costs are ints: the supply total and the largest cost
// times that total must both fit, otherwise ErrOverflow.
//
// Errors: ErrShapeMismatch, ErrNegativeCost, ErrNegativeQuantity,
// ErrOverflow, ErrUnbalancedProblem. On error the Result is empty.
func Solve(costs [][]int, supply, demand []int, opts ...Option) (Result, error) {
	if err := validateRows(costs, supply, demand); err != nil {
		return Result{}, err
	}
	c, err := matrix.NewCostsFrom(costs)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	return run(c, supply, demand, gatherOptions(opts...))
}

// SolveMatrix runs VAM on c, honoring its forbidden routes. When c has
// forbidden routes and the feasibility check is on, a max-flow pass
// first proves the open routes can carry the whole supply.
//
// Errors: those of Solve plus ErrInfeasible, and flow.ErrUnknownAlgorithm
// for a bad WithFlowAlgorithm value.
func SolveMatrix(c *matrix.Costs, supply, demand []int, opts ...Option) (Result, error) {
	if err := validateCosts(c, supply, demand); err != nil {
		return Result{}, err
	}
	o := gatherOptions(opts...)

	if c.Forbidden() > 0 && o.feasibility {
		fo := flow.DefaultOptions()
		fo.Logger = o.logger.WithName("flow")
		fo.Algorithm = o.flowAlg
		shippable, err := flow.TransportFeasible(supply, demand, c.Allowed, fo)
		if err != nil {
			return Result{}, err
		}
		if total := sum(supply); shippable < total {
			return Result{}, fmt.Errorf("%w: only %d of %d units can be routed", ErrInfeasible, shippable, total)
		}
	}

	return run(c, supply, demand, o)
}

// state is the private working copy of one run.
type state struct {
	cost   [][]int
	routes *matrix.Mask
	supply []int
	demand []int
	n, m   int
}

// run executes the VAM loop on validated input.
func run(c *matrix.Costs, supply, demand []int, o options) (Result, error) {
	s := &state{
		cost:   c.Grid().ToSlices(),
		routes: c.Routes(),
		supply: append([]int(nil), supply...),
		demand: append([]int(nil), demand...),
		n:      len(supply),
		m:      len(demand),
	}
	res := Result{Rows: s.n, Cols: s.m}
	log := o.logger.WithName("vam")

	for step := 0; !s.done(); step++ {
		chosen, at, pen, ok := s.selectLine()
		if !ok {
			log.V(1).Info("no open route left", "step", step, "supplyLeft", sum(s.supply), "demandLeft", sum(s.demand))

			return Result{}, fmt.Errorf("%w: stuck after %d steps with %d units left", ErrInfeasible, step, sum(s.supply))
		}

		i, j := at, pen.At
		if chosen == Column {
			i, j = pen.At, at
		}
		q := essentials.MinInt(s.supply[i], s.demand[j])
		a := Allocation{Supply: i, Demand: j, Quantity: q, UnitCost: s.cost[i][j]}
		res.Allocations = append(res.Allocations, a)
		res.TotalCost += a.Cost()
		s.supply[i] -= q
		s.demand[j] -= q

		// Reduction: exactly one line per step, column first.
		closed, closedAt := Row, i
		if s.demand[j] == 0 {
			closed, closedAt = Column, j
			_ = s.routes.CloseCol(j)
		} else {
			_ = s.routes.CloseRow(i)
		}

		log.V(1).Info("allocated",
			"step", step, "line", chosen.String(), "index", at, "penalty", pen.String(),
			"supply", i, "demand", j, "quantity", q, "unitCost", a.UnitCost,
			"closed", closed.String(), "closedIndex", closedAt)

		if o.trace != nil {
			o.trace(Step{
				Index:      step,
				Chosen:     chosen,
				ChosenAt:   at,
				Penalty:    pen,
				Allocation: a,
				Closed:     closed,
				ClosedAt:   closedAt,
				Supply:     append([]int(nil), s.supply...),
				Demand:     append([]int(nil), s.demand...),
			})
		}
	}

	log.V(1).Info("solved", "totalCost", res.TotalCost, "steps", len(res.Allocations))

	return res, nil
}

// done reports whether every supply and demand entry is zero.
func (s *state) done() bool {
	for _, v := range s.supply {
		if v != 0 {
			return false
		}
	}
	for _, v := range s.demand {
		if v != 0 {
			return false
		}
	}

	return true
}

// selectLine finds the best row and best column penalty (first index wins
// ties within each) and applies the row bias between them. ok is false
// when no line has an open cell.
func (s *state) selectLine() (chosen Line, at int, pen Penalty, ok bool) {
	bestRow, rowAt, rowOK := s.best(s.n, s.rowPenalty)
	bestCol, colAt, colOK := s.best(s.m, s.colPenalty)

	switch {
	case rowOK && (!colOK || bestRow.Compare(bestCol) >= 0):
		return Row, rowAt, bestRow, true
	case colOK:
		return Column, colAt, bestCol, true
	default:
		return Row, -1, Penalty{}, false
	}
}

// best returns the first line with the highest penalty.
func (s *state) best(lines int, penaltyOf func(int) (Penalty, bool)) (best Penalty, at int, ok bool) {
	at = -1
	for k := 0; k < lines; k++ {
		p, open := penaltyOf(k)
		if !open {
			continue
		}
		if !ok || p.Compare(best) > 0 {
			best, at, ok = p, k, true
		}
	}

	return best, at, ok
}

func (s *state) rowPenalty(i int) (Penalty, bool) {
	if s.routes.RowOpen(i) == 0 {
		return Penalty{}, false
	}

	return linePenalty(s.m,
		func(j int) int { return s.cost[i][j] },
		func(j int) bool { return s.routes.Open(i, j) })
}

func (s *state) colPenalty(j int) (Penalty, bool) {
	if s.routes.ColOpen(j) == 0 {
		return Penalty{}, false
	}

	return linePenalty(s.n,
		func(i int) int { return s.cost[i][j] },
		func(i int) bool { return s.routes.Open(i, j) })
}

func sum(v []int) int {
	total := 0
	for _, x := range v {
		total += x
	}

	return total
}
