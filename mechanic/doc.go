// Package mechanic defines the central abstraction of the simulation
// core: the Mechanic contract every gameplay system implements.
//
// A Mechanic is not a Go interface implemented by a single concrete type;
// it is a convention each mechanic package follows: a Config type
// (immutable per-world), a State type (per-entity, mutable), an Input
// type (ephemeral per-call), an Event type (emitted during the call),
// and a single pure function
//
//	Step(cfg Config, state *State, in Input, emit Emitter[Event])
//
// parameterized by orthogonal policy interfaces chosen at mechanic
// instantiation (e.g. mechanics/contagion.Mechanic[S SpreadPolicy, P
// ProgressionPolicy]). Go generics stand in for compile-time static
// dispatch: there is no runtime branching on policy identity inside Step.
//
// This package holds only the pieces every mechanic shares: the Emitter
// sink contract and the Execution hint type mechanics use to tell the
// scheduler how they may be run.
package mechanic
