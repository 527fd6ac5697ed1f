package statemachine

// StandardTransition is the standard four-stage TransitionPolicy:
// Incubating -> Active -> Recovered -> (Plain | Recovered-indefinite),
// one stage boundary crossed per call.
type StandardTransition struct{}

// AdvanceTime adds delta to state's elapsed timer; a unit mismatch
// between delta and state.Elapsed is a no-op advance per Duration.Add.
func (StandardTransition) AdvanceTime(state InfectionState, delta Duration) InfectionState {
	state.Elapsed = state.Elapsed.Add(delta)
	return state
}

// TransitionState crosses at most one stage boundary: Incubating moves
// to Active once elapsed reaches the incubation duration, Active to
// Recovered once elapsed reaches the active duration, and Recovered to
// Plain once elapsed reaches the immunity duration and reinfection is
// allowed. A Recovered state with reinfection disabled stays Recovered
// indefinitely. Plain has no further transition.
func (StandardTransition) TransitionState(state InfectionState, cfg Config) InfectionState {
	switch state.Stage {
	case Incubating:
		if state.Elapsed.AtLeast(cfg.IncubationDuration) {
			return InfectionState{Stage: Active, Elapsed: Duration{Unit: cfg.ActiveDuration.Unit}, Total: cfg.ActiveDuration}
		}
	case Active:
		if state.Elapsed.AtLeast(cfg.ActiveDuration) {
			return InfectionState{Stage: Recovered, Elapsed: Duration{Unit: cfg.ImmunityDuration.Unit}, Total: cfg.ImmunityDuration}
		}
	case Recovered:
		if state.Elapsed.AtLeast(cfg.ImmunityDuration) && cfg.AllowReinfection {
			return InfectionState{Stage: Plain}
		}
	case Plain:
	}
	return state
}

// CanReinfect allows reinfection only from Plain, and only when the
// config permits it.
func (StandardTransition) CanReinfect(state InfectionState, cfg Config) bool {
	return state.Stage == Plain && cfg.AllowReinfection
}
