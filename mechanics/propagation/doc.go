// Package propagation implements the graph-propagation
// algorithm: per-node infection pressure accumulated over a directed,
// weighted graph, and the argmax-edge initial-infection trigger.
//
// It is deliberately independent of mechanics/contagion's local spread
// logic: the two compose only through the entities and messages a
// scheduler system threads between them.
package propagation
