// Package problem turns user input into a transportation problem the vam
// solver can run.
//
// Inputs come in two shapes:
//
//   - free text, as typed into a form: a comma-separated supply list, a
//     comma-separated demand list and a cost grid with one row per line
//     (ParseVector, ParseMatrix, ParseText);
//   - documents: YAML or JSON with supply, demand and costs keys, or a CSV
//     sheet with a label column, one row per source and a closing demand
//     row (Decode, Load).
//
// A cost cell may be written as x, - or inf (any case) to close the route.
//
// The package also hosts the caller-side helpers the solver refuses to do
// itself: checking declared point counts against the data (CheckCounts)
// and padding an unbalanced problem with a zero-cost dummy point (Balance).
package problem
