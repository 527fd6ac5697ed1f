package evolution

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a DirectionPolicy, EnvironmentalPolicy, and
// RateCalculationPolicy over a bounded scalar.
type Mechanic[D DirectionPolicy, En EnvironmentalPolicy, R RateCalculationPolicy] struct {
	Direction   D
	Environment En
	Rate        R
}

// Execution reports this mechanic's scheduling hints: parallel-safe,
// since one entity's evolving value never reads another's.
func (Mechanic[D, En, R]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step advances state.Value by delta = rate(...) * time_delta, clamps it
// into [cfg.Min, cfg.Max], and emits a Crossed event for every
// configured threshold the value moved past this call.
func (m Mechanic[D, En, R]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	before := state.Value

	direction := m.Direction.Direction(state.Value, cfg.Min, cfg.Max, state.ElapsedTime)
	environmental := m.Environment.Multiplier(in.Environment)
	rate := m.Rate.Rate(cfg.BaseRate, state.Value, cfg.Min, cfg.Max, direction, environmental)

	next := state.Value + rate*in.TimeDelta
	clamped := clamp(next, cfg.Min, cfg.Max)
	if clamped != next {
		emit.Emit(Event{Kind: EventClamped, Value: clamped})
	}

	state.Value = clamped
	state.ElapsedTime += in.TimeDelta

	for _, t := range cfg.Thresholds {
		if crossedThreshold(before, clamped, t) {
			emit.Emit(Event{Kind: EventThresholdCrossed, Threshold: t, Value: clamped})
		}
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func crossedThreshold(before, after, threshold float32) bool {
	return (before < threshold) != (after < threshold)
}
