package propagation

// Edge is one directed, weighted connection in a propagation Graph.
// Sequence is assigned at insertion time and used only to break ties
// among multiple edges contributing equal pressure to the same target:
// ties are broken by edge insertion order, since a naive Go map would
// iterate in an unspecified order otherwise.
//
// The adjacency-list shape and Edge naming follow the same
// weighted-connection idiom used for spatial topology, re-expressed for
// propagation-rate rather than spatial-distance semantics.
type Edge struct {
	From, To string
	Rate     float32 // transmission weight, [0,1]
	sequence int
}

// Graph is a directed weighted graph, immutable during a step; mutation
// is allowed between ticks only.
type Graph struct {
	edges   []Edge
	incoming map[string][]Edge
}

// NewGraph builds a Graph from an edge list, in insertion order, stamping
// each edge with its sequence number for tie-breaking.
func NewGraph(edges []Edge) *Graph {
	g := &Graph{incoming: make(map[string][]Edge)}
	for i, e := range edges {
		e.sequence = i
		g.edges = append(g.edges, e)
		g.incoming[e.To] = append(g.incoming[e.To], e)
	}
	return g
}

// Nodes returns every node referenced by at least one edge, in first
// appearance order.
func (g *Graph) Nodes() []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range g.edges {
		for _, n := range [2]string{e.From, e.To} {
			if !seen[n] {
				seen[n] = true
				out = append(out, n)
			}
		}
	}
	return out
}

// Incoming returns the edges terminating at node, in insertion order.
func (g *Graph) Incoming(node string) []Edge {
	return g.incoming[node]
}
