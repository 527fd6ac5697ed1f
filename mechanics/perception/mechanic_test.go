package perception_test

import (
	"testing"

	"github.com/fenwick-games/simcore/mechanic"
	"github.com/fenwick-games/simcore/mechanics/perception"
	"github.com/stretchr/testify/suite"
)

type PerceptionTestSuite struct {
	suite.Suite
}

func TestPerceptionTestSuite(t *testing.T) {
	suite.Run(t, new(PerceptionTestSuite))
}

func (s *PerceptionTestSuite) TestStrongNearbySignalDetected() {
	cfg := perception.DefaultConfig()
	state := perception.State{}
	m := perception.Mechanic[perception.DistanceAttenuated]{}

	var e mechanic.SliceEmitter[perception.Event]
	m.Step(cfg, &state, perception.Input{SignalStrength: 1, Distance: 1, Attention: 1, Rng: 0.01}, &e)

	s.Require().NotEmpty(e.Events)
	s.Equal(perception.SignalDetected, e.Events[0].Kind)
	s.Greater(state.AlertLevel, float32(0))
}

func (s *PerceptionTestSuite) TestFarSignalUndetected() {
	cfg := perception.DefaultConfig()
	state := perception.State{}
	m := perception.Mechanic[perception.DistanceAttenuated]{}

	var e mechanic.SliceEmitter[perception.Event]
	m.Step(cfg, &state, perception.Input{SignalStrength: 0.1, Distance: 100, Attention: 1, AmbientNoise: 0, Rng: 0.99}, &e)

	s.Empty(e.Events)
}

func (s *PerceptionTestSuite) TestAlarmRaisedOnlyOnThresholdCrossing() {
	cfg := perception.Config{BaseRange: 10, AlertDecayRate: 0, AlarmThreshold: 0.2, AlertGainScale: 1.0}
	state := perception.State{}
	m := perception.Mechanic[perception.DistanceAttenuated]{}
	in := perception.Input{SignalStrength: 1, Distance: 1, Attention: 1, Rng: 0.01}

	var e1 mechanic.SliceEmitter[perception.Event]
	m.Step(cfg, &state, in, &e1)
	s.True(state.IsAlarmed)
	alarmCount := 0
	for _, ev := range e1.Events {
		if ev.Kind == perception.AlarmRaised {
			alarmCount++
		}
	}
	s.Equal(1, alarmCount)

	var e2 mechanic.SliceEmitter[perception.Event]
	m.Step(cfg, &state, in, &e2)
	for _, ev := range e2.Events {
		s.NotEqual(perception.AlarmRaised, ev.Kind)
	}
}

// TestStepPurity exercises 1.
func (s *PerceptionTestSuite) TestStepPurity() {
	cfg := perception.DefaultConfig()
	m := perception.Mechanic[perception.DistanceAttenuated]{}
	in := perception.Input{SignalStrength: 0.6, Distance: 5, Concealment: 0.2, Attention: 0.8, Rng: 0.3}

	a := perception.State{AlertLevel: 0.1}
	b := a

	var eA, eB mechanic.SliceEmitter[perception.Event]
	m.Step(cfg, &a, in, &eA)
	m.Step(cfg, &b, in, &eB)

	s.Equal(a, b)
	s.Equal(eA.Events, eB.Events)
}
