// Package vam computes a basic feasible solution of a balanced
// transportation problem with Vogel's Approximation Method.
//
// 🚚 What is VAM?
//
//	Given n supply points, m demand points and a cost per unit on every
//	route, VAM repeatedly looks at the "penalty" of each row and column
//	(second-cheapest open cost minus cheapest open cost), serves the line
//	with the largest penalty through its cheapest open route, and closes
//	whichever side that allocation exhausted. The result satisfies every
//	supply and demand; it is a good starting point, not a proven optimum.
//
// ✨ Behavioral contract:
//   - Rows win ties: the row with the best penalty is used whenever its
//     penalty is >= the best column penalty.
//   - Within a line, the first index wins every tie (best line, cheapest cell).
//   - A line with a single open route has a forced penalty that ranks above
//     every ordinary penalty; two forced lines rank by their lone cost,
//     cheaper first.
//   - Exactly one line is closed per step. When supply and demand reach zero
//     together, the column is closed and the row stays open; it is settled by
//     a later zero-quantity (degenerate) allocation.
//   - At most n+m-1 steps for a balanced problem.
//   - Inputs are never mutated; every call works on private copies, so
//     concurrent calls need no locking.
//
// ⚙️ Usage:
//
//	res, err := vam.Solve(
//	  [][]int{{8, 6, 10, 9}, {9, 12, 13, 7}, {14, 9, 16, 5}},
//	  []int{20, 30, 50},
//	  []int{10, 40, 30, 20},
//	)
//	// res.TotalCost == 880
//
// Closed lanes go through matrix.Costs and SolveMatrix; before solving, a
// max-flow check (package flow) rejects instances whose open lanes cannot
// carry the whole supply.
//
// Errors: ErrShapeMismatch, ErrNegativeCost, ErrNegativeQuantity,
// ErrOverflow, ErrUnbalancedProblem, ErrInfeasible - all detected before any allocation
// except the rare greedy dead end on instances with closed lanes.
//
// Complexity: O((n+m)·n·m) time, O(n·m) memory.
package vam
