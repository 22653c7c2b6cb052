package vam

import (
	"github.com/go-logr/logr"

	"github.com/chaitanyabirla/transportcost/flow"
)

// DefaultFeasibilityCheck runs the max-flow check when closed routes exist.
const DefaultFeasibilityCheck = true

// Option configures a solver run.
type Option func(*options)

type options struct {
	logger      logr.Logger
	trace       func(Step)
	feasibility bool
	flowAlg     flow.Algorithm
}

// WithLogger routes step-level tracing to l at V(1) and the feasibility
// check's augmentations at V(2). The default discards.
func WithLogger(l logr.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTrace calls fn after every step. fn receives copies and may keep them.
func WithTrace(fn func(Step)) Option {
	return func(o *options) { o.trace = fn }
}

// WithFeasibilityCheck toggles the up-front max-flow check for instances
// with closed routes. Without it, an infeasible instance is only detected
// when the greedy run gets stuck.
func WithFeasibilityCheck(on bool) Option {
	return func(o *options) { o.feasibility = on }
}

// WithFlowAlgorithm picks the max-flow routine of the feasibility check.
// The default is flow.AlgorithmDinic.
func WithFlowAlgorithm(a flow.Algorithm) Option {
	return func(o *options) { o.flowAlg = a }
}

func gatherOptions(opts ...Option) options {
	o := options{logger: logr.Discard(), feasibility: DefaultFeasibilityCheck}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
