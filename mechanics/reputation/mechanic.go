package reputation

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a ChangePolicy, DecayPolicy, and ClampPolicy over a
// bounded scalar.
type Mechanic[C ChangePolicy, D DecayPolicy, K ClampPolicy] struct {
	Change C
	Decay  D
	Clamp  K
}

// Execution reports this mechanic's scheduling hints: parallel-safe,
// since one entity's reputation never reads another's.
func (Mechanic[C, D, K]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step applies the input delta, decays over elapsed time, passes the
// result through the ClampPolicy with cfg.Min and cfg.Max (HardClamp
// enforces both bounds; ZeroClamp and NoClamp do not), and emits a
// Crossed event for every configured threshold moved past this call.
func (m Mechanic[C, D, K]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	before := state.Value

	changed := m.Change.Apply(state.Value, in.Delta)
	decayed := m.Decay.Decay(changed, in.ElapsedTime, cfg.DecayRate)
	state.Value = m.Clamp.Clamp(decayed, cfg.Min, cfg.Max)

	for _, t := range cfg.Thresholds {
		if (before < t) != (state.Value < t) {
			emit.Emit(Event{Threshold: t, Value: state.Value})
		}
	}
}
