package scheduler

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/fenwick-games/simcore/events"
	"github.com/fenwick-games/simcore/mechanic"
	"github.com/fenwick-games/simcore/rpgerr"
	"github.com/fenwick-games/simcore/world"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Diagnostic is published on the bus whenever a system panics or a
// channel overflows during a tick. It is registered automatically the
// first time a Scheduler is built.
type Diagnostic struct {
	Tick    uint64
	Phase   mechanic.Phase
	System  string
	Message string
}

// batch is a run of systems from the same phase that may execute
// concurrently: all are ParallelSafe and pairwise non-conflicting.
type batch struct {
	systems []*System
}

// Scheduler runs the fixed Input/Logic/PostLogic/Visual phases over a
// World and Bus, once per Tick call, in that order, followed by a
// single Bus.Dispatch.
type Scheduler struct {
	mu         sync.Mutex
	registered []*System
	built      bool
	order      map[mechanic.Phase][]batch
	maxWorkers int64

	world *world.World
	bus   *events.Bus
	tick  uint64
}

// New creates a Scheduler over the given World and Bus. The Bus must
// already exist; the Scheduler registers its own Diagnostic channel on
// it the first time Build runs.
func New(w *world.World, bus *events.Bus) *Scheduler {
	return &Scheduler{
		world:      w,
		bus:        bus,
		maxWorkers: int64(runtime.GOMAXPROCS(0)),
	}
}

// Register adds a system. Register after Build returns an error: the
// scheduler computes and caches its per-phase execution order once, at
// Build time.
func (s *Scheduler) Register(sys *System) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return rpgerr.New(rpgerr.CodePolicyPreconditionViolation,
			fmt.Sprintf("cannot register system %q after Build", sys.Name))
	}
	if sys.Run == nil {
		return rpgerr.New(rpgerr.CodeInvalidArgument,
			fmt.Sprintf("system %q has a nil Run function", sys.Name))
	}
	s.registered = append(s.registered, sys)
	return nil
}

// Build computes the execution order for every phase: systems are
// sorted by OrderingHint with registration order as the tie-break, then
// partitioned into sequential steps and parallel-safe, non-conflicting
// batches. Build is idempotent; subsequent Register calls fail once
// Build has run.
func (s *Scheduler) Build() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.built {
		return nil
	}

	events.Register[Diagnostic](s.bus, events.DefaultChannelCapacity)

	order := make(map[mechanic.Phase][]batch, len(mechanic.Phases))
	for _, phase := range mechanic.Phases {
		var phaseSystems []*System
		for _, sys := range s.registered {
			if sys.Phase == phase {
				phaseSystems = append(phaseSystems, sys)
			}
		}
		order[phase] = buildBatches(phaseSystems)
	}

	s.order = order
	s.built = true
	return nil
}

// buildBatches sorts systems by OrderingHint (registration order breaks
// ties, since sort.SliceStable preserves the input order of equal
// elements) and groups consecutive parallel-safe, non-conflicting
// systems into a single batch. A non-parallel-safe system, or one that
// conflicts with its predecessor, starts a new batch of its own.
func buildBatches(systems []*System) []batch {
	sort.SliceStable(systems, func(i, j int) bool {
		return systems[i].OrderingHint < systems[j].OrderingHint
	})

	var batches []batch
	for _, sys := range systems {
		if len(batches) > 0 && sys.ParallelSafe {
			last := &batches[len(batches)-1]
			if last.parallelSafe() && !last.conflictsWith(sys) {
				last.systems = append(last.systems, sys)
				continue
			}
		}
		batches = append(batches, batch{systems: []*System{sys}})
	}
	return batches
}

func (b *batch) parallelSafe() bool {
	for _, sys := range b.systems {
		if !sys.ParallelSafe {
			return false
		}
	}
	return true
}

func (b *batch) conflictsWith(sys *System) bool {
	for _, existing := range b.systems {
		if existing.conflicts(sys) {
			return true
		}
	}
	return false
}

// Tick runs one full phase cycle — Input, Logic, PostLogic, Visual — in
// that order, then dispatches the bus exactly once. Build is called
// automatically on the first Tick if it has not already run.
//
// A system that panics during its Run call is recovered, reported as a
// Diagnostic event, and the tick continues with the remaining systems
// in its batch and phase. A
// channel overflow reported by Bus.Dispatch is likewise surfaced as a
// Diagnostic, not returned as an error; that Diagnostic is published
// after the swap, so it becomes readable after the next tick's Dispatch.
func (s *Scheduler) Tick(ctx context.Context) error {
	s.mu.Lock()
	if !s.built {
		s.mu.Unlock()
		if err := s.Build(); err != nil {
			return err
		}
		s.mu.Lock()
	}
	order := s.order
	s.tick++
	tickNum := s.tick
	s.mu.Unlock()

	for _, phase := range mechanic.Phases {
		for _, b := range order[phase] {
			if err := s.runBatch(ctx, tickNum, phase, b); err != nil {
				return err
			}
		}
	}

	dropped := s.bus.Dispatch()
	for topic, n := range dropped {
		if n == 0 {
			continue
		}
		events.Publish(s.bus, Diagnostic{
			Tick:    tickNum,
			Message: rpgerr.ChannelOverflow(topic, int(n)).Error(),
		})
	}
	return nil
}

func (s *Scheduler) runBatch(ctx context.Context, tick uint64, phase mechanic.Phase, b batch) error {
	if len(b.systems) == 1 {
		s.runSystem(ctx, tick, phase, b.systems[0])
		return nil
	}

	sem := semaphore.NewWeighted(s.maxWorkers)
	g, gctx := errgroup.WithContext(ctx)
	for _, sys := range b.systems {
		sys := sys
		g.Go(func() error {
			if err := sem.Acquire(gctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)
			s.runSystem(ctx, tick, phase, sys)
			return nil
		})
	}
	return g.Wait()
}

// runSystem invokes sys.Run with panic recovery; a recovered panic is
// turned into a Diagnostic event rather than propagated, so one
// misbehaving system never aborts the tick for its siblings.
func (s *Scheduler) runSystem(ctx context.Context, tick uint64, phase mechanic.Phase, sys *System) {
	defer func() {
		if r := recover(); r != nil {
			perr := rpgerr.SystemPanic(sys.Name, r)
			events.Publish(s.bus, Diagnostic{
				Tick:    tick,
				Phase:   phase,
				System:  sys.Name,
				Message: perr.Error(),
			})
		}
	}()

	if err := sys.Run(Context{World: s.world, Bus: s.bus, Tick: tick, Phase: phase}); err != nil {
		events.Publish(s.bus, Diagnostic{
			Tick:    tick,
			Phase:   phase,
			System:  sys.Name,
			Message: err.Error(),
		})
	}

	_ = ctx
}
