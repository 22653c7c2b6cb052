package flow

import "math"

// EdmondsKarp computes the maximum flow from source to sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow  : total flow value
//   - residual : a clone of g holding the remaining capacities
//   - err      : ErrNodeOutOfRange, ErrSourceIsSink, or the context error
//
// LevelRebuildInterval is ignored; every augmentation starts a fresh BFS.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp(g *Network, source, sink int, opts FlowOptions) (maxFlow int, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if g == nil || source < 0 || source >= g.n || sink < 0 || sink >= g.n {
		return 0, nil, ErrNodeOutOfRange
	}
	if source == sink {
		return 0, nil, ErrSourceIsSink
	}

	residual = g.Clone()
	parentArc := make([]int, residual.n)

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		bottle := residual.augmentingPath(source, sink, parentArc)
		if bottle == 0 {
			break
		}
		// Walk the path back from sink, moving bottle units onto the twins.
		for v := sink; v != source; {
			e := parentArc[v]
			residual.edges[e].cap -= bottle
			residual.edges[e^1].cap += bottle
			v = residual.edges[e^1].to
		}
		maxFlow += bottle
		opts.Logger.V(2).Info("edmonds-karp augmentation", "pushed", bottle, "total", maxFlow)
	}

	return maxFlow, residual, nil
}

// augmentingPath runs a BFS over arcs with remaining capacity, records in
// parentArc the arc used to reach each node, and returns the bottleneck of
// the source→sink path, or 0 when the sink is unreachable.
func (g *Network) augmentingPath(source, sink int, parentArc []int) int {
	for i := range parentArc {
		parentArc[i] = -1
	}
	bottleneck := make([]int, g.n)
	bottleneck[source] = math.MaxInt
	visited := make([]bool, g.n)
	visited[source] = true

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, e := range g.adj[u] {
			arc := g.edges[e]
			if arc.cap <= 0 || visited[arc.to] {
				continue
			}
			visited[arc.to] = true
			parentArc[arc.to] = e
			bottleneck[arc.to] = min(bottleneck[u], arc.cap)
			if arc.to == sink {
				return bottleneck[sink]
			}
			queue = append(queue, arc.to)
		}
	}

	return 0
}
