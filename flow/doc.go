// Package flow computes integral maximum flows on small, index-based
// networks. Its main client is the transportation solver, which asks one
// question before it starts: can the open routes carry the whole supply?
//
// Two algorithms share the same Network and FlowOptions:
//
//   - Dinic: BFS level graph + DFS blocking flows, O(V²·E) worst case; far
//     less on the bipartite networks built by TransportFeasible
//     (V = n+m+2, E = n+m+open routes). TransportFeasible runs it by default.
//   - EdmondsKarp: BFS shortest augmenting paths, O(V·E²). Selected with
//     FlowOptions.Algorithm = AlgorithmEdmondsKarp.
//
// Both use O(V + E) memory.
//
// # Network model
//
// Nodes are dense integers 0..N-1. Each AddEdge stores a forward edge and its
// zero-capacity reverse twin next to each other, so residual updates are O(1)
// and iteration order is exactly insertion order: runs are deterministic.
//
// # API
//
//	net, _ := flow.NewNetwork(4)
//	_ = net.AddEdge(0, 1, 5)
//	_ = net.AddEdge(1, 3, 4)
//	maxFlow, residual, err := flow.Dinic(net, 0, 3, flow.DefaultOptions())
//
//	opts := flow.DefaultOptions()
//	opts.Algorithm = flow.AlgorithmEdmondsKarp
//	shippable, err := flow.TransportFeasible(supply, demand, allowed, opts)
//
// Cancellation: FlowOptions.Ctx is checked before every BFS phase and every
// augmentation; a cancelled run returns the flow pushed so far and ctx.Err().
package flow
