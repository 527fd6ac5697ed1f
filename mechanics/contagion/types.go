package contagion

import (
	"github.com/fenwick-games/simcore/dice"
	"github.com/fenwick-games/simcore/mechanics/statemachine"
	"github.com/google/uuid"
)

// SimpleSeverity is the basic contagion variant's per-entity State: a
// single bounded counter with no stage machine.
type SimpleSeverity struct {
	Severity uint32
}

// Config carries the base spread rate every SpreadPolicy reads.
// Resistance scaling is fixed in ResistanceFactor, not configured here.
type Config struct {
	BaseRate float32
}

// Input is the per-call ephemeral aggregate a system builds immediately
// before Step. Density is clamped into [0, 1] by the SpreadPolicy before
// use, never rejected: out-of-range values are a caller bug, not a
// reason to panic. Rng is compared as given and is not clamped.
type Input struct {
	Density    float32 // [0, 1]
	Resistance uint32
	Rng        float32 // [0, 1)
}

// NewInput builds an Input for one entity, drawing Rng from src rather
// than asking a caller to supply a raw float. Density and resistance
// still come from the caller, since those are per-entity world state a
// system reads, not random draws. A world holds one dice.FloatSource as
// a resource (see world.InsertResource); a system looks it up with
// world.Resource and passes it here rather than rolling its own.
func NewInput(density float32, resistance uint32, src *dice.FloatSource) Input {
	return Input{
		Density:    density,
		Resistance: resistance,
		Rng:        float32(src.Float64()),
	}
}

// EventKind tags which of the local-step event shapes an Event carries.
type EventKind int

const (
	EventInfected EventKind = iota
	EventProgressed
)

// Event is the single emitted type for the local contagion step,
// covering both "Infected" and "Progressed{new_severity}".
type Event struct {
	Kind        EventKind
	NewSeverity uint32
}

// ContagionContent is the mutable payload an Infection carries beyond
// its lifecycle stage: a free-form label plus a credibility score used
// by information-contagion variants.
type ContagionContent struct {
	Label       string
	Credibility float32
}

// Infection is the advanced, per-entity contagion aggregate: a stable
// identity, a four-stage lifecycle (delegated to
// mechanics/statemachine.InfectionState), mutable content, and an
// optional lineage pointer to the infection it mutated from.
type Infection struct {
	ID                uuid.UUID
	State             statemachine.InfectionState
	Content           ContagionContent
	OriginNode        string
	OriginInfectionID uuid.UUID // zero value: not a mutation
}

// NewInfection starts a fresh, non-mutated infection at a node.
func NewInfection(originNode string, content ContagionContent, incubation statemachine.Duration) Infection {
	return Infection{
		ID:         uuid.New(),
		State:      statemachine.NewIncubating(incubation),
		Content:    content,
		OriginNode: originNode,
	}
}
