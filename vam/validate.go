package vam

import (
	"fmt"
	"math"

	"github.com/chaitanyabirla/transportcost/matrix"
)

// validateRows checks a [][]int cost grid against the vector lengths.
// Order: shape -> negative cost -> negative quantity -> overflow -> balance.
func validateRows(costs [][]int, supply, demand []int) error {
	n, m := len(supply), len(demand)
	if n == 0 || m == 0 {
		return fmt.Errorf("%w: %d supply and %d demand points", ErrShapeMismatch, n, m)
	}
	if len(costs) != n {
		return fmt.Errorf("%w: %d cost rows for %d supply points", ErrShapeMismatch, len(costs), n)
	}
	var i, j int
	for i = 0; i < n; i++ {
		if len(costs[i]) != m {
			return fmt.Errorf("%w: cost row %d has %d entries for %d demand points", ErrShapeMismatch, i, len(costs[i]), m)
		}
	}
	maxCost := 0
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if costs[i][j] < 0 {
				return fmt.Errorf("%w: cost[%d][%d] = %d", ErrNegativeCost, i, j, costs[i][j])
			}
			if costs[i][j] > maxCost {
				maxCost = costs[i][j]
			}
		}
	}

	return validateVectors(supply, demand, maxCost)
}

// validateCosts is validateRows for a matrix.Costs.
func validateCosts(c *matrix.Costs, supply, demand []int) error {
	n, m := len(supply), len(demand)
	if c == nil || n == 0 || m == 0 {
		return fmt.Errorf("%w: empty problem", ErrShapeMismatch)
	}
	if err := matrix.ValidateShape(c, n, m); err != nil {
		return fmt.Errorf("%w: %dx%d costs for %d supply and %d demand points", ErrShapeMismatch, c.Rows(), c.Cols(), n, m)
	}
	if err := matrix.ValidateNonNegative(c); err != nil {
		return fmt.Errorf("%w: %v", ErrNegativeCost, err)
	}
	maxCost := 0
	c.Grid().Do(func(_, _ int, v int) bool {
		if v > maxCost {
			maxCost = v
		}
		return true
	})

	return validateVectors(supply, demand, maxCost)
}

// validateVectors rejects negative entries, totals that overflow and
// unbalanced totals. No plan costs more than maxCost per unit shipped, so
// maxCost·total bounds TotalCost.
func validateVectors(supply, demand []int, maxCost int) error {
	var totalSupply, totalDemand int
	var ok bool
	for i, s := range supply {
		if s < 0 {
			return fmt.Errorf("%w: supply[%d] = %d", ErrNegativeQuantity, i, s)
		}
		if totalSupply, ok = addInt(totalSupply, s); !ok {
			return fmt.Errorf("%w: supply total at index %d", ErrOverflow, i)
		}
	}
	for j, d := range demand {
		if d < 0 {
			return fmt.Errorf("%w: demand[%d] = %d", ErrNegativeQuantity, j, d)
		}
		if totalDemand, ok = addInt(totalDemand, d); !ok {
			return fmt.Errorf("%w: demand total at index %d", ErrOverflow, j)
		}
	}
	if totalSupply != totalDemand {
		return fmt.Errorf("%w: supply %d, demand %d", ErrUnbalancedProblem, totalSupply, totalDemand)
	}
	if maxCost > 0 && totalSupply > math.MaxInt/maxCost {
		return fmt.Errorf("%w: %d units at up to %d per unit", ErrOverflow, totalSupply, maxCost)
	}

	return nil
}

// addInt adds two non-negative ints, reporting false on overflow.
func addInt(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}

	return a + b, true
}
