package mechanic

// Phase is one of the four fixed execution windows in a tick.
type Phase int

const (
	// Input systems consume external inputs and publish command messages.
	Input Phase = iota
	// Logic systems read command messages, mutate state, and publish
	// state-change messages.
	Logic
	// PostLogic systems aggregate, derive, and clean up after Logic.
	PostLogic
	// Visual systems are read-only and produce presentation artifacts.
	Visual
)

// Phases is the fixed, ordered phase sequence for one tick.
var Phases = []Phase{Input, Logic, PostLogic, Visual}

// String renders the phase name for diagnostics and registration errors.
func (p Phase) String() string {
	switch p {
	case Input:
		return "Input"
	case Logic:
		return "Logic"
	case PostLogic:
		return "PostLogic"
	case Visual:
		return "Visual"
	default:
		return "Unknown"
	}
}

// Execution carries the scheduling hints a mechanic declares about its
// own Step function: whether it is safe to run in parallel with other
// systems in the same phase, which phase it prefers to run in, and a
// tie-break hint used when two systems in the same phase have no
// declared ordering dependency between them.
//
// Execution hints are hints: the scheduler may run a parallel_safe
// system sequentially, but must never run a non-parallel-safe system in
// parallel.
type Execution struct {
	ParallelSafe   bool
	PreferredPhase Phase
	OrderingHint   int
}
