package spatial

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a TopologyPolicy and a DistancePolicy over one
// graph.
type Mechanic[T TopologyPolicy, D DistancePolicy] struct {
	Topology T
	Distance D
}

func (Mechanic[T, D]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: false, PreferredPhase: mechanic.Logic}
}

// Neighbors answers a direct topology query; it does not mutate state
// and emits nothing.
func (m Mechanic[T, D]) Neighbors(g *Graph, node NodeID) []NodeID {
	return m.Topology.Neighbors(g, node)
}

// DistanceBetween answers a direct distance query.
func (m Mechanic[T, D]) DistanceBetween(g *Graph, from, to NodeID) (float32, bool) {
	return m.Distance.Distance(g, from, to)
}

// Step evaluates one movement query against the graph's current
// occupancy, updating occupancy on an allowed move.
func (m Mechanic[T, D]) Step(cfg Config, g *Graph, q Query, emit mechanic.Emitter[Event]) {
	if !m.Topology.CanMove(g, q.From, q.To, cfg) {
		emit.Emit(Event{Kind: MoveBlocked, Node: q.To})
		return
	}

	emit.Emit(Event{Kind: MoveAllowed, Node: q.To})

	if from := g.Occupancy(q.From); from > 0 {
		g.SetOccupancy(q.From, from-1)
	}
	g.SetOccupancy(q.To, g.Occupancy(q.To)+1)
	emit.Emit(Event{Kind: OccupancyChanged, Node: q.To})
}
