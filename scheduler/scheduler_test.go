package scheduler_test

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/fenwick-games/simcore/events"
	"github.com/fenwick-games/simcore/mechanic"
	"github.com/fenwick-games/simcore/scheduler"
	"github.com/fenwick-games/simcore/world"
	"github.com/stretchr/testify/suite"
)

type severity struct{ Value int }
type label struct{ Name string }

type SchedulerTestSuite struct {
	suite.Suite
	world *world.World
	bus   *events.Bus
}

func (s *SchedulerTestSuite) SetupTest() {
	s.world = world.New()
	s.bus = events.NewBus()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

// TestPhasesRunInFixedOrder covers phase-ordering property:
// one system per phase each appends its phase name, and the recorded
// order must be exactly Input, Logic, PostLogic, Visual regardless of
// registration order.
func (s *SchedulerTestSuite) TestPhasesRunInFixedOrder() {
	var mu sync.Mutex
	var seen []mechanic.Phase

	sched := scheduler.New(s.world, s.bus)
	record := func(p mechanic.Phase) func(scheduler.Context) error {
		return func(scheduler.Context) error {
			mu.Lock()
			defer mu.Unlock()
			seen = append(seen, p)
			return nil
		}
	}

	s.Require().NoError(sched.Register(&scheduler.System{Name: "visual", Phase: mechanic.Visual, Run: record(mechanic.Visual)}))
	s.Require().NoError(sched.Register(&scheduler.System{Name: "input", Phase: mechanic.Input, Run: record(mechanic.Input)}))
	s.Require().NoError(sched.Register(&scheduler.System{Name: "postlogic", Phase: mechanic.PostLogic, Run: record(mechanic.PostLogic)}))
	s.Require().NoError(sched.Register(&scheduler.System{Name: "logic", Phase: mechanic.Logic, Run: record(mechanic.Logic)}))

	s.Require().NoError(sched.Tick(context.Background()))

	s.Equal([]mechanic.Phase{mechanic.Input, mechanic.Logic, mechanic.PostLogic, mechanic.Visual}, seen)
}

// TestOrderingHintBreaksTiesWithinAPhase covers intra-phase
// ordering contract: systems in the same phase run in OrderingHint
// order.
func (s *SchedulerTestSuite) TestOrderingHintBreaksTiesWithinAPhase() {
	var mu sync.Mutex
	var order []string

	sched := scheduler.New(s.world, s.bus)
	record := func(name string) func(scheduler.Context) error {
		return func(scheduler.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}

	s.Require().NoError(sched.Register(&scheduler.System{Name: "third", Phase: mechanic.Logic, OrderingHint: 3, Run: record("third")}))
	s.Require().NoError(sched.Register(&scheduler.System{Name: "first", Phase: mechanic.Logic, OrderingHint: 1, Run: record("first")}))
	s.Require().NoError(sched.Register(&scheduler.System{Name: "second", Phase: mechanic.Logic, OrderingHint: 2, Run: record("second")}))

	s.Require().NoError(sched.Tick(context.Background()))

	s.Equal([]string{"first", "second", "third"}, order)
}

// TestRegisterAfterBuildIsRejected covers the scheduler
// caches its per-phase order once at build time and rejects further
// registration.
func (s *SchedulerTestSuite) TestRegisterAfterBuildIsRejected() {
	sched := scheduler.New(s.world, s.bus)
	s.Require().NoError(sched.Register(&scheduler.System{Name: "a", Phase: mechanic.Logic, Run: func(scheduler.Context) error { return nil }}))
	s.Require().NoError(sched.Build())

	err := sched.Register(&scheduler.System{Name: "b", Phase: mechanic.Logic, Run: func(scheduler.Context) error { return nil }})
	s.Error(err)
}

// TestConflictingSystemsNeverRunConcurrently covers borrow
// contract: two parallel-safe systems whose write sets overlap must not
// be batched together, even though both individually opt in to
// parallel execution.
func (s *SchedulerTestSuite) TestConflictingSystemsNeverRunConcurrently() {
	var mu sync.Mutex
	var inFlight []string
	var observedOverlap bool

	severityType := reflect.TypeOf(severity{})

	run := func(name string) func(scheduler.Context) error {
		return func(scheduler.Context) error {
			mu.Lock()
			if len(inFlight) > 0 {
				observedOverlap = true
			}
			inFlight = append(inFlight, name)
			mu.Unlock()

			mu.Lock()
			for i, n := range inFlight {
				if n == name {
					inFlight = append(inFlight[:i], inFlight[i+1:]...)
					break
				}
			}
			mu.Unlock()
			return nil
		}
	}

	sched := scheduler.New(s.world, s.bus)
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "writer-a", Phase: mechanic.Logic, ParallelSafe: true,
		WriteSet: []reflect.Type{severityType}, Run: run("writer-a"),
	}))
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "writer-b", Phase: mechanic.Logic, ParallelSafe: true,
		WriteSet: []reflect.Type{severityType}, Run: run("writer-b"),
	}))

	s.Require().NoError(sched.Tick(context.Background()))
	s.False(observedOverlap, "conflicting writers must never run concurrently")
}

// TestDisjointParallelSafeSystemsMayOverlap covers the companion case:
// two parallel-safe systems with disjoint read/write sets are eligible
// to run concurrently (the scheduler may still choose not to; this only
// asserts no conflict blocks them and the tick still completes both).
func (s *SchedulerTestSuite) TestDisjointParallelSafeSystemsMayOverlap() {
	var calls sync.Map

	sched := scheduler.New(s.world, s.bus)
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "writer-severity", Phase: mechanic.Logic, ParallelSafe: true,
		WriteSet: []reflect.Type{reflect.TypeOf(severity{})},
		Run: func(scheduler.Context) error {
			calls.Store("severity", true)
			return nil
		},
	}))
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "writer-label", Phase: mechanic.Logic, ParallelSafe: true,
		WriteSet: []reflect.Type{reflect.TypeOf(label{})},
		Run: func(scheduler.Context) error {
			calls.Store("label", true)
			return nil
		},
	}))

	s.Require().NoError(sched.Tick(context.Background()))

	_, sawSeverity := calls.Load("severity")
	_, sawLabel := calls.Load("label")
	s.True(sawSeverity)
	s.True(sawLabel)
}

// TestPanicIsIsolatedAndReportedAsDiagnostic covers panic
// isolation contract: a panicking system does not abort the tick, and
// its sibling in the same phase still runs; the panic surfaces as a
// Diagnostic event.
func (s *SchedulerTestSuite) TestPanicIsIsolatedAndReportedAsDiagnostic() {
	ranAfterPanic := false

	sched := scheduler.New(s.world, s.bus)
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "panics", Phase: mechanic.Logic, OrderingHint: 1,
		Run: func(scheduler.Context) error { panic("boom") },
	}))
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "survives", Phase: mechanic.Logic, OrderingHint: 2,
		Run: func(scheduler.Context) error { ranAfterPanic = true; return nil },
	}))

	s.Require().NoError(sched.Tick(context.Background()))
	s.True(ranAfterPanic, "a system after a panicking one must still run")

	diagnostics := events.Reader[scheduler.Diagnostic](s.bus)
	s.Require().Len(diagnostics, 1)
	s.Equal("panics", diagnostics[0].System)
	s.Contains(diagnostics[0].Message, "boom")
}

// TestChannelOverflowSurfacesAsDiagnostic covers overflow
// contract end to end: a system that publishes past a channel's
// capacity causes Dispatch to report a drop, which the scheduler
// surfaces as a Diagnostic. That Diagnostic is published after the
// tick's Dispatch, so it is readable after the following tick.
func (s *SchedulerTestSuite) TestChannelOverflowSurfacesAsDiagnostic() {
	type tinyEvent struct{ N int }
	events.Register[tinyEvent](s.bus, 1)

	sched := scheduler.New(s.world, s.bus)
	s.Require().NoError(sched.Register(&scheduler.System{
		Name: "spammer", Phase: mechanic.Logic,
		Run: func(scheduler.Context) error {
			_ = events.Publish(s.bus, tinyEvent{N: 1})
			_ = events.Publish(s.bus, tinyEvent{N: 2})
			return nil
		},
	}))

	s.Require().NoError(sched.Tick(context.Background()))
	s.Require().NoError(sched.Tick(context.Background()))

	diagnostics := events.Reader[scheduler.Diagnostic](s.bus)
	s.Require().Len(diagnostics, 1)
	s.Contains(diagnostics[0].Message, "overflow")
}
