package propagation

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic is the graph-propagation Mechanic, parameterized by a
// Policy. A linear propagation setup is expressed here as
// Mechanic[LinearPropagation].
type Mechanic[P Policy] struct {
	Policy P
	Graph  *Graph
}

// Execution reports this mechanic's scheduling hints. Unlike the local
// contagion step, propagation reads every node's severity to compute
// each node's pressure, so it is not parallel-safe across nodes sharing
// a graph: the scheduler must run it as a single system over the whole
// graph, not once per entity.
func (Mechanic[P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: false, PreferredPhase: mechanic.Logic}
}

// Step computes per-node pressure over g's incoming edges, then for
// every node currently at severity 0 whose pressure crosses the
// policy's trigger, emits a Spread event from the argmax contributing
// edge, ties broken by edge insertion order.
func (m Mechanic[P]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	pressures := make(map[string]float32)

	for _, node := range m.Graph.Nodes() {
		var total float32
		for _, e := range m.Graph.Incoming(node) {
			total += m.Policy.Pressure(float32(in.NodeSeverity[e.From]), e.Rate)
		}
		pressures[node] = total
	}
	state.Pressure = pressures

	for _, node := range m.Graph.Nodes() {
		if in.NodeSeverity[node] != 0 {
			continue
		}
		total := pressures[node]
		if !m.Policy.ShouldTrigger(total, cfg) {
			continue
		}

		best, ok := argmaxEdge(m.Graph.Incoming(node), in.NodeSeverity, m.Policy)
		if !ok {
			continue
		}

		emit.Emit(Event{
			Kind:        EventSpread,
			From:        best.From,
			To:          node,
			Pressure:    total,
			NewSeverity: m.Policy.InitialSeverity(total, cfg),
		})
	}
}

// argmaxEdge returns the incoming edge contributing the most pressure to
// its target, ties broken by the lowest insertion sequence number.
func argmaxEdge(edges []Edge, severity map[string]uint32, policy Policy) (Edge, bool) {
	var best Edge
	var bestPressure float32
	found := false

	for _, e := range edges {
		p := policy.Pressure(float32(severity[e.From]), e.Rate)
		if !found || p > bestPressure || (p == bestPressure && e.sequence < best.sequence) {
			best = e
			bestPressure = p
			found = true
		}
	}
	return best, found
}
