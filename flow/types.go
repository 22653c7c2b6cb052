package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
)

var (
	// ErrInvalidNodes is returned when a network is created with no nodes.
	ErrInvalidNodes = errors.New("flow: network needs at least one node")

	// ErrNodeOutOfRange is returned when an edge, source or sink index is
	// outside 0..N-1.
	ErrNodeOutOfRange = errors.New("flow: node index out of range")

	// ErrSourceIsSink is returned when source and sink are the same node.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrUnknownAlgorithm is returned for an Algorithm outside the known set.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// Algorithm selects the max-flow routine behind TransportFeasible.
type Algorithm int

const (
	// AlgorithmDinic is the default: level graph + blocking flows.
	AlgorithmDinic Algorithm = iota
	// AlgorithmEdmondsKarp augments along BFS shortest paths.
	AlgorithmEdmondsKarp
)

// String returns the flag spelling of a.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDinic:
		return "dinic"
	case AlgorithmEdmondsKarp:
		return "edmonds-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dinic" and "edmonds-karp" (also "ek") to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "dinic":
		return AlgorithmDinic, nil
	case "edmonds-karp", "edmonds_karp", "ek":
		return AlgorithmEdmondsKarp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To int
	Cap      int
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// FlowOptions configures the max-flow run.
//   - Ctx: cancellation; nil means context.Background().
//   - LevelRebuildInterval: rebuild the level graph every N augmentations (0 = only when blocked).
//   - Logger: receives one V(2) line per augmentation; the zero Logger discards.
//   - Algorithm: routine used by TransportFeasible; Dinic and EdmondsKarp ignore it.
type FlowOptions struct {
	Ctx                  context.Context
	LevelRebuildInterval int
	Logger               logr.Logger
	Algorithm            Algorithm
}

// DefaultOptions returns FlowOptions with a background context.
func DefaultOptions() FlowOptions {
	return FlowOptions{Ctx: context.Background(), Logger: logr.Discard()}
}

// normalize fills unset fields with defaults.
func (o *FlowOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.LevelRebuildInterval < 0 {
		o.LevelRebuildInterval = 0
	}
}
