package statemachine

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic is the statemachine Mechanic, parameterized by a
// TransitionPolicy. It defaults to parallel-safe, since one entity's
// lifecycle never reads another's.
type Mechanic[T TransitionPolicy] struct {
	Policy T
}

// Execution reports this mechanic's scheduling hints.
func (Mechanic[T]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step advances state by one time delta, applying the Policy's
// AdvanceTime then TransitionState, and emits a TimeAdvanced event
// every call plus a StateTransition event whenever a stage boundary is
// crossed.
func (m Mechanic[T]) Step(cfg Config, state *InfectionState, in Input, emit mechanic.Emitter[Event]) {
	before := state.Stage

	advanced := m.Policy.AdvanceTime(*state, in.TimeDelta)
	next := m.Policy.TransitionState(advanced, cfg)

	*state = next

	emit.Emit(Event{Kind: EventTimeAdvanced, Stage: next.Stage, Elapsed: next.Elapsed})
	if next.Stage != before {
		emit.Emit(Event{Kind: EventStateTransition, From: before, To: next.Stage})
	}
}

// Reinfect transitions a Plain, reinfection-eligible state back to
// Incubating. Reinfect is a separate entry point rather than folded
// into Step because it is triggered by an external transmission event,
// not by the passage of time.
func (m Mechanic[T]) Reinfect(cfg Config, state *InfectionState, emit mechanic.Emitter[Event]) bool {
	if !m.Policy.CanReinfect(*state, cfg) {
		return false
	}
	before := state.Stage
	*state = NewIncubating(cfg.IncubationDuration)
	emit.Emit(Event{Kind: EventReinfection, From: before, To: state.Stage})
	return true
}
