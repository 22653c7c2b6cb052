package flow

import "math"

// Dinic computes the maximum flow from source to sink using Dinic's
// algorithm (level graph + blocking flows).
//
// It returns:
//   - maxFlow  : the total integral flow value
//   - residual : a clone of g holding the remaining capacities; g itself is
//     left untouched
//   - err      : ErrNodeOutOfRange, ErrSourceIsSink, or the context error
//
// Steps:
//  1. Normalize options and validate source/sink (O(1)).
//  2. Clone g into the residual network (O(V + E)).
//  3. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from source to assign levels (O(V + E)).
//     c. DFS blocking flow along level+1 arcs, with per-node iterators so
//     each arc is abandoned at most once per phase; optionally break out
//     every LevelRebuildInterval augmentations.
//
// Complexity:
//
//	Time:   O(V²·E) worst case.
//	Memory: O(V + E).
func Dinic(g *Network, source, sink int, opts FlowOptions) (maxFlow int, residual *Network, err error) {
	opts.normalize()
	ctx := opts.Ctx

	if g == nil || source < 0 || source >= g.n || sink < 0 || sink >= g.n {
		return 0, nil, ErrNodeOutOfRange
	}
	if source == sink {
		return 0, nil, ErrSourceIsSink
	}

	residual = g.Clone()
	level := make([]int, residual.n)
	iter := make([]int, residual.n)
	queue := make([]int, 0, residual.n)
	augmentCount := 0

	for {
		if err = ctx.Err(); err != nil {
			return maxFlow, nil, err
		}

		// BFS levels.
		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for k := 0; k < len(queue); k++ {
			u := queue[k]
			for _, e := range residual.adj[u] {
				arc := residual.edges[e]
				if arc.cap > 0 && level[arc.to] < 0 {
					level[arc.to] = level[u] + 1
					queue = append(queue, arc.to)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		// Blocking flow.
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return maxFlow, nil, err
			}
			pushed := residual.push(level, iter, source, sink, math.MaxInt)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.V(2).Info("dinic augmentation", "pushed", pushed, "total", maxFlow)
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	return maxFlow, residual, nil
}

// push sends up to available units from u toward sink along the level
// graph and returns the amount actually sent.
func (g *Network) push(level, iter []int, u, sink, available int) int {
	if u == sink {
		return available
	}
	for ; iter[u] < len(g.adj[u]); iter[u]++ {
		e := g.adj[u][iter[u]]
		arc := g.edges[e]
		if arc.cap <= 0 || level[arc.to] != level[u]+1 {
			continue
		}
		send := available
		if arc.cap < send {
			send = arc.cap
		}
		if pushed := g.push(level, iter, arc.to, sink, send); pushed > 0 {
			g.edges[e].cap -= pushed
			g.edges[e^1].cap += pushed

			return pushed
		}
	}

	return 0
}
