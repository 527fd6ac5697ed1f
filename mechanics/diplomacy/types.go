package diplomacy

// Config tunes one negotiation.
type Config struct {
	// Difficulty scales down every argument's effect before it is
	// applied to agreement progress.
	Difficulty float32
	// MaxPatience is the patience an entity starts a negotiation with.
	MaxPatience uint32
	// AgreementThreshold is the agreement_progress value at which the
	// negotiation concludes successfully.
	AgreementThreshold float32
}

// DefaultConfig returns a negotiation with moderate difficulty and
// patience.
func DefaultConfig() Config {
	return Config{Difficulty: 1.0, MaxPatience: 5, AgreementThreshold: 100.0}
}

// ArgumentType classifies one negotiation attempt.
type ArgumentType int

const (
	Logic ArgumentType = iota
	Emotion
	Bribe
	Intimidation
)

// State is the per-negotiation record.
type State struct {
	AgreementProgress float32
	Patience          uint32
	RelationshipScore float32
	IsFinished        bool
}

// Input is one turn's negotiation attempt.
type Input struct {
	ArgumentStrength float32
	ArgumentType     ArgumentType
	TargetResistance float32
}

// EventKind enumerates the observable outcomes of one negotiation step.
type EventKind int

const (
	ProgressMade EventKind = iota
	ArgumentRejected
	PatienceLost
	AgreementReached
	NegotiationFailed
)

// Event carries the per-kind payload for one negotiation step.
type Event struct {
	Kind              EventKind
	Amount            float32
	Current           float32
	PatienceRemaining uint32
}
