// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for grid construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Every flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNonNegative rejects negative costs on ingestion and Set.
	// Transportation costs are non-negative; turn this off only for grids
	// that are not fed to a solver (e.g. reduced-cost tables).
	DefaultValidateNonNegative = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNonNegative bool // DefaultValidateNonNegative
}

// WithValidateNonNegative enables the non-negative cost policy (default).
func WithValidateNonNegative() Option {
	return func(o *Options) { o.validateNonNegative = true }
}

// WithAllowNegative disables the non-negative cost policy for new grids.
// Existing grids keep the policy they were created with.
func WithAllowNegative() Option {
	return func(o *Options) { o.validateNonNegative = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{validateNonNegative: DefaultValidateNonNegative}
}

// gatherOptions applies opts in order over the defaults.
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
