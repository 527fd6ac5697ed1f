package perception

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a PerceptionPolicy over one observer.
type Mechanic[P PerceptionPolicy] struct {
	Policy P
}

func (Mechanic[P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step decays alert over the elapsed time, rolls for detection of this
// turn's signal (and, failing that, for an ambient false positive), and
// raises AlarmRaised only on the turn alert level first crosses the
// configured threshold.
func (m Mechanic[P]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	wasAlarmed := state.IsAlarmed
	state.AlertLevel = m.Policy.AlertDecay(state.AlertLevel, in.ElapsedTime, cfg)

	chance := m.Policy.DetectionChance(in.SignalStrength, in.Distance, in.Concealment, in.Attention, cfg)
	if m.Policy.RollDetects(chance, in.Rng) {
		state.AlertLevel += m.Policy.AlertGain(in.SignalStrength, cfg)
		emit.Emit(Event{Kind: SignalDetected, AlertLevel: state.AlertLevel})
	} else {
		fpChance := m.Policy.FalsePositiveChance(in.AmbientNoise, cfg)
		if m.Policy.RollDetects(fpChance, 1-in.Rng) {
			state.AlertLevel += m.Policy.AlertGain(in.AmbientNoise, cfg) * 0.5
			emit.Emit(Event{Kind: FalsePositiveDetected, AlertLevel: state.AlertLevel})
		}
	}

	state.IsAlarmed = m.Policy.ShouldAlarm(state.AlertLevel, cfg)
	if state.IsAlarmed && !wasAlarmed {
		emit.Emit(Event{Kind: AlarmRaised, AlertLevel: state.AlertLevel})
	}
}
