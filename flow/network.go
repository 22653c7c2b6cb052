package flow

// edge is one residual arc. Forward and reverse arcs are stored at indices
// 2k and 2k+1, so the twin of arc e is e^1.
type edge struct {
	to  int
	cap int // remaining capacity
}

// Network is a directed, integer-capacity flow network over nodes 0..N-1.
type Network struct {
	n     int
	edges []edge
	adj   [][]int // node -> arc indices, insertion order
}

// NewNetwork returns an empty network with n nodes.
//
// Errors: ErrInvalidNodes when n <= 0.
func NewNetwork(n int) (*Network, error) {
	if n <= 0 {
		return nil, ErrInvalidNodes
	}

	return &Network{n: n, adj: make([][]int, n)}, nil
}

// Nodes returns the node count.
func (g *Network) Nodes() int { return g.n }

// AddEdge adds a directed arc from→to with the given capacity, plus its
// zero-capacity reverse twin. Parallel arcs are allowed and add up.
// Self-loops are accepted and ignored, since they can never carry flow.
//
// Errors: ErrNodeOutOfRange, EdgeError (negative capacity).
func (g *Network) AddEdge(from, to, capacity int) error {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return ErrNodeOutOfRange
	}
	if capacity < 0 {
		return EdgeError{From: from, To: to, Cap: capacity}
	}
	if from == to {
		return nil
	}
	g.adj[from] = append(g.adj[from], len(g.edges))
	g.edges = append(g.edges, edge{to: to, cap: capacity})
	g.adj[to] = append(g.adj[to], len(g.edges))
	g.edges = append(g.edges, edge{to: from, cap: 0})

	return nil
}

// Residual returns the remaining capacity summed over all arcs from→to.
// Out-of-range nodes yield 0.
func (g *Network) Residual(from, to int) int {
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return 0
	}
	total := 0
	for _, e := range g.adj[from] {
		if g.edges[e].to == to {
			total += g.edges[e].cap
		}
	}

	return total
}

// Clone returns an independent copy of the network.
func (g *Network) Clone() *Network {
	cp := &Network{
		n:     g.n,
		edges: make([]edge, len(g.edges)),
		adj:   make([][]int, g.n),
	}
	copy(cp.edges, g.edges)
	for u := range g.adj {
		cp.adj[u] = append([]int(nil), g.adj[u]...)
	}

	return cp
}
