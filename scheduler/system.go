package scheduler

import (
	"reflect"

	"github.com/fenwick-games/simcore/events"
	"github.com/fenwick-games/simcore/mechanic"
	"github.com/fenwick-games/simcore/world"
)

// System is one unit of per-tick work registered with a Scheduler. It
// wraps a mechanic's Step call (or a batch of them) behind a single Run
// closure, plus the metadata the scheduler needs to place it: which
// phase it belongs to, whether it may run concurrently with its phase
// siblings, a tie-break ordering hint, and the component types it reads
// and writes (used to detect conflicts between otherwise parallel-safe
// systems).
type System struct {
	// Name identifies the system in diagnostics and panic reports.
	Name string

	// Phase is the fixed window this system runs in.
	Phase mechanic.Phase

	// ParallelSafe mirrors mechanic.Execution.ParallelSafe: a hint that
	// this system may run concurrently with other parallel-safe systems
	// in the same phase, provided their declared ReadSet/WriteSet do not
	// conflict. The scheduler may still choose to run it sequentially.
	ParallelSafe bool

	// OrderingHint breaks ties between systems in the same phase with no
	// other declared ordering relationship. Lower runs first.
	OrderingHint int

	// ReadSet and WriteSet name the component types this system touches.
	// Two systems conflict, and are never batched together, if either's
	// WriteSet intersects the other's ReadSet or WriteSet.
	ReadSet  []reflect.Type
	WriteSet []reflect.Type

	// Run performs the system's work for one tick. Run must not retain
	// the Bus or World beyond the call, matching the Emitter contract
	// mechanics follow.
	Run func(tick Context) error
}

// Context is the per-tick handle a System's Run function receives. It
// carries everything a system is allowed to touch during its call:
// nothing beyond what's passed here is threaded across ticks.
type Context struct {
	World *world.World
	Bus   *events.Bus
	Tick  uint64
	Phase mechanic.Phase
}

// conflicts reports whether s and other may not safely run concurrently.
func (s *System) conflicts(other *System) bool {
	for _, w := range s.WriteSet {
		for _, r := range other.ReadSet {
			if w == r {
				return true
			}
		}
		for _, w2 := range other.WriteSet {
			if w == w2 {
				return true
			}
		}
	}
	for _, w := range other.WriteSet {
		for _, r := range s.ReadSet {
			if w == r {
				return true
			}
		}
	}
	return false
}
