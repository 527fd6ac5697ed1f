package statemachine_test

import (
	"testing"

	"github.com/fenwick-games/simcore/mechanic"
	"github.com/fenwick-games/simcore/mechanics/statemachine"
	"github.com/stretchr/testify/suite"
)

type StateMachineTestSuite struct {
	suite.Suite
}

func TestStateMachineTestSuite(t *testing.T) {
	suite.Run(t, new(StateMachineTestSuite))
}

func (s *StateMachineTestSuite) config() statemachine.Config {
	return statemachine.Config{
		IncubationDuration: statemachine.NewTurns(3),
		ActiveDuration:     statemachine.NewTurns(5),
		ImmunityDuration:   statemachine.NewTurns(10),
		AllowReinfection:   true,
	}
}

// TestIncubatingToActiveOnDurationReached exercises the boundary
// transition once elapsed time reaches the stage duration.
func (s *StateMachineTestSuite) TestIncubatingToActiveOnDurationReached() {
	cfg := s.config()
	state := statemachine.NewIncubating(cfg.IncubationDuration)
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	var e mechanic.SliceEmitter[statemachine.Event]
	m.Step(cfg, &state, statemachine.Input{TimeDelta: statemachine.NewTurns(3)}, &e)

	s.Equal(statemachine.Active, state.Stage)
	s.Equal(statemachine.NewTurns(0), state.Elapsed)
	s.Equal(statemachine.NewTurns(5), state.Total)

	s.Require().Len(e.Events, 2)
	s.Equal(statemachine.EventTimeAdvanced, e.Events[0].Kind)
	s.Equal(statemachine.EventStateTransition, e.Events[1].Kind)
	s.Equal(statemachine.Incubating, e.Events[1].From)
	s.Equal(statemachine.Active, e.Events[1].To)
}

// TestNoTransitionBeforeDurationReached covers the negative case: time
// short of the stage duration advances the timer but crosses no stage
// boundary.
func (s *StateMachineTestSuite) TestNoTransitionBeforeDurationReached() {
	cfg := s.config()
	state := statemachine.NewIncubating(cfg.IncubationDuration)
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	var e mechanic.SliceEmitter[statemachine.Event]
	m.Step(cfg, &state, statemachine.Input{TimeDelta: statemachine.NewTurns(1)}, &e)

	s.Equal(statemachine.Incubating, state.Stage)
	s.Equal(statemachine.NewTurns(1), state.Elapsed)
	s.Require().Len(e.Events, 1)
	s.Equal(statemachine.EventTimeAdvanced, e.Events[0].Kind)
}

// TestFullLifecycleIsMonotonicWithNoSkippedStage covers the monotonic
// lifecycle: Incubating -> Active -> Recovered, no stage skipped, no
// backward transition without explicit reinfection.
func (s *StateMachineTestSuite) TestFullLifecycleIsMonotonicWithNoSkippedStage() {
	cfg := statemachine.Config{
		IncubationDuration: statemachine.NewTurns(1),
		ActiveDuration:     statemachine.NewTurns(1),
		ImmunityDuration:   statemachine.NewTurns(1),
		AllowReinfection:   false,
	}
	state := statemachine.NewIncubating(cfg.IncubationDuration)
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	var stages []statemachine.Stage
	for i := 0; i < 4; i++ {
		var e mechanic.SliceEmitter[statemachine.Event]
		m.Step(cfg, &state, statemachine.Input{TimeDelta: statemachine.NewTurns(1)}, &e)
		stages = append(stages, state.Stage)
	}

	s.Equal([]statemachine.Stage{
		statemachine.Active,
		statemachine.Recovered,
		statemachine.Recovered,
		statemachine.Recovered,
	}, stages, "reinfection disabled: Recovered persists indefinitely, never reaching Plain")
}

// TestReinfectionDisabledStaysRecoveredIndefinitely covers the
// "Recovered with reinfection disabled stays Recovered" branch
// explicitly.
func (s *StateMachineTestSuite) TestReinfectionDisabledStaysRecoveredIndefinitely() {
	cfg := statemachine.Config{
		IncubationDuration: statemachine.NewTurns(1),
		ActiveDuration:     statemachine.NewTurns(1),
		ImmunityDuration:   statemachine.NewTurns(1),
		AllowReinfection:   false,
	}
	state := statemachine.InfectionState{Stage: statemachine.Recovered, Elapsed: statemachine.NewTurns(1), Total: statemachine.NewTurns(1)}
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	var e mechanic.SliceEmitter[statemachine.Event]
	m.Step(cfg, &state, statemachine.Input{TimeDelta: statemachine.NewTurns(5)}, &e)

	s.Equal(statemachine.Recovered, state.Stage)
}

// TestReinfectionFromPlain exercises reinfection from the Plain stage.
func (s *StateMachineTestSuite) TestReinfectionFromPlain() {
	cfg := s.config()
	state := statemachine.InfectionState{Stage: statemachine.Plain}
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	var e mechanic.SliceEmitter[statemachine.Event]
	ok := m.Reinfect(cfg, &state, &e)

	s.True(ok)
	s.Equal(statemachine.Incubating, state.Stage)
	s.Equal(cfg.IncubationDuration, state.Total)
	s.Require().Len(e.Events, 1)
	s.Equal(statemachine.EventReinfection, e.Events[0].Kind)
	s.Equal(statemachine.Plain, e.Events[0].From)
	s.Equal(statemachine.Incubating, e.Events[0].To)
}

// TestReinfectionRefusedWhenNotPlainOrDisallowed covers the negative
// reinfection contract: reinfection is only possible from Plain, and
// only when configured to allow it.
func (s *StateMachineTestSuite) TestReinfectionRefusedWhenNotPlainOrDisallowed() {
	m := statemachine.Mechanic[statemachine.StandardTransition]{}

	active := statemachine.InfectionState{Stage: statemachine.Active}
	var e1 mechanic.SliceEmitter[statemachine.Event]
	s.False(m.Reinfect(s.config(), &active, &e1))
	s.Empty(e1.Events)

	cfg := s.config()
	cfg.AllowReinfection = false
	plain := statemachine.InfectionState{Stage: statemachine.Plain}
	var e2 mechanic.SliceEmitter[statemachine.Event]
	s.False(m.Reinfect(cfg, &plain, &e2))
	s.Empty(e2.Events)
}

// TestStepPurity exercises Step's purity: identical state and input
// produce identical output and emitted events.
func (s *StateMachineTestSuite) TestStepPurity() {
	cfg := s.config()
	m := statemachine.Mechanic[statemachine.StandardTransition]{}
	in := statemachine.Input{TimeDelta: statemachine.NewTurns(2)}

	stateA := statemachine.NewIncubating(cfg.IncubationDuration)
	stateB := stateA

	var eA, eB mechanic.SliceEmitter[statemachine.Event]
	m.Step(cfg, &stateA, in, &eA)
	m.Step(cfg, &stateB, in, &eB)

	s.Equal(stateA, stateB)
	s.Equal(eA.Events, eB.Events)
}
