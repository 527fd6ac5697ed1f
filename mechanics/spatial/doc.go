// Package spatial implements a spatial mechanic: topology
// and distance policies over a named-node graph, answering Neighbors,
// Distance, and CanMove queries and emitting occupancy events.
//
// The graph here is a named-node weighted-connection model, deliberately
// domain-agnostic rather than grid-of-rooms shaped, so it composes with
// any topology a host assembles (rooms, regions, trade routes, ...).
package spatial
