package contagion

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic is the basic contagion Mechanic, parameterized by a
// SpreadPolicy and a ProgressionPolicy ("ContagionMechanic
// is generic over two policies"). A named composition like
// Mechanic[ExponentialSpread, ThresholdProgression] is a Preset, e.g.
// "ZombieVirus".
type Mechanic[S SpreadPolicy, P ProgressionPolicy] struct {
	Spread   S
	Progress P
}

// Execution reports this mechanic's scheduling hints: parallel-safe,
// since one entity's local infection check never reads another's.
func (Mechanic[S, P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step runs the local-step algorithm: compute the effective rate from
// density, consult rng against rate * resistance_factor to decide
// infection, advance severity via the ProgressionPolicy, and emit
// Progressed whenever a threshold is crossed.
func (m Mechanic[S, P]) Step(cfg Config, state *SimpleSeverity, in Input, emit mechanic.Emitter[Event]) {
	rate := m.Spread.Rate(cfg.BaseRate, in.Density)

	if in.Rng < rate*ResistanceFactor(in.Resistance) {
		emit.Emit(Event{Kind: EventInfected})
	}

	next, crossed := m.Progress.Progress(*state, cfg)
	*state = next

	if crossed {
		emit.Emit(Event{Kind: EventProgressed, NewSeverity: next.Severity})
	}
}
