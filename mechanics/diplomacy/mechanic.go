package diplomacy

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a NegotiationPolicy over one negotiation.
type Mechanic[N NegotiationPolicy] struct {
	Negotiation N
}

func (Mechanic[N]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step applies one argument to an ongoing negotiation. A negotiation
// that has already finished is a no-op, keeping Step pure even once
// AgreementReached or NegotiationFailed has been emitted.
func (m Mechanic[N]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	if state.IsFinished {
		return
	}

	progressDelta, relationshipDelta, rejected := m.Negotiation.Evaluate(in, state.RelationshipScore, cfg)
	state.RelationshipScore += relationshipDelta

	if rejected {
		emit.Emit(Event{Kind: ArgumentRejected})

		if state.Patience > 0 {
			state.Patience--
		}
		emit.Emit(Event{Kind: PatienceLost, PatienceRemaining: state.Patience})

		if state.Patience == 0 {
			state.IsFinished = true
			emit.Emit(Event{Kind: NegotiationFailed})
		}
		return
	}

	state.AgreementProgress += progressDelta
	emit.Emit(Event{Kind: ProgressMade, Amount: progressDelta, Current: state.AgreementProgress})

	if state.AgreementProgress >= cfg.AgreementThreshold {
		state.IsFinished = true
		emit.Emit(Event{Kind: AgreementReached})
	}
}
