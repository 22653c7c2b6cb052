// Package report renders a solved transportation problem.
//
// Four formats are supported: a human-readable text report (input
// confirmation, allocation plan, average unit cost and the final cost
// line), and machine-readable json, yaml and csv.
package report
