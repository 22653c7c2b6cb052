package flow

import "fmt"

// TransportFeasible returns how much of the total supply can reach the
// demand points when only the routes for which allowed(i, j) is true may
// be used. A balanced problem is feasible iff the result equals the total
// supply.
//
// Network layout: node 0 is the source, 1..n are supply points, n+1..n+m
// are demand points and n+m+1 is the sink. Source arcs carry supply[i],
// sink arcs carry demand[j], route arcs carry min(supply[i], demand[j]).
//
// opts.Algorithm picks Dinic or EdmondsKarp; Ctx and Logger are passed on.
//
// Errors: EdgeError for a negative supply or demand entry,
// ErrUnknownAlgorithm, ctx.Err() on cancellation.
func TransportFeasible(supply, demand []int, allowed func(i, j int) bool, opts FlowOptions) (int, error) {
	n, m := len(supply), len(demand)
	if n == 0 || m == 0 {
		return 0, nil
	}
	source, sink := 0, n+m+1
	net, err := NewNetwork(n + m + 2)
	if err != nil {
		return 0, err
	}

	var i, j int
	for i = 0; i < n; i++ {
		if err = net.AddEdge(source, 1+i, supply[i]); err != nil {
			return 0, err
		}
	}
	for j = 0; j < m; j++ {
		if err = net.AddEdge(1+n+j, sink, demand[j]); err != nil {
			return 0, err
		}
	}
	for i = 0; i < n; i++ {
		for j = 0; j < m; j++ {
			if !allowed(i, j) {
				continue
			}
			c := supply[i]
			if demand[j] < c {
				c = demand[j]
			}
			if c == 0 {
				continue
			}
			if err = net.AddEdge(1+i, 1+n+j, c); err != nil {
				return 0, err
			}
		}
	}

	var maxFlow int
	switch opts.Algorithm {
	case AlgorithmDinic:
		maxFlow, _, err = Dinic(net, source, sink, opts)
	case AlgorithmEdmondsKarp:
		maxFlow, _, err = EdmondsKarp(net, source, sink, opts)
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, opts.Algorithm)
	}

	return maxFlow, err
}
