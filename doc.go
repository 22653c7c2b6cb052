// Package transportcost computes a basic feasible solution of a balanced
// transportation problem with Vogel's Approximation Method (VAM).
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit that goes from raw input to a report:
//		• matrix/  - integer cost grid, open/closed route mask, validators
//		• flow/    - Dinic max-flow, used to prove closed routes still leave a feasible plan
//		• vam/     - the solver: penalties, selection, allocation and reduction
//		• problem/ - parse comma/newline text, load YAML, JSON or CSV problem files
//		• report/  - render a plan as text, json, yaml or csv
//		• cli/     - the vogel command (cobra, viper, zap)
//
// ✨ Guarantees
//
//   - Deterministic – the same input always yields the same allocation sequence
//   - Inputs untouched – the solver works on private copies
//   - No panics on user input – every failure is a sentinel error
//
// Quick example:
//
//	res, err := vam.Solve(
//		[][]int{{8, 6, 10, 9}, {9, 12, 13, 7}, {14, 9, 16, 5}},
//		[]int{20, 30, 50},
//		[]int{10, 40, 30, 20},
//	)
//	// res.TotalCost == 880
//
// See cmd/vogel for the command line and examples/ for a runnable program.
package transportcost
