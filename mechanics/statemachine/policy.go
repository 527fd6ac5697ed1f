package statemachine

// TransitionPolicy determines how an InfectionState advances and
// transitions between stages. Every method is a pure
// static operation, total over its documented domain
// policy contract.
type TransitionPolicy interface {
	// AdvanceTime returns state with delta added to its elapsed timer.
	AdvanceTime(state InfectionState, delta Duration) InfectionState

	// TransitionState returns the next stage if state has satisfied its
	// current stage's duration, or state unchanged otherwise.
	TransitionState(state InfectionState, cfg Config) InfectionState

	// CanReinfect reports whether state is eligible for reinfection.
	CanReinfect(state InfectionState, cfg Config) bool
}
