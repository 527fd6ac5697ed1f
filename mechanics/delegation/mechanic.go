package delegation

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a DelegationPolicy over one principal-agent
// relationship.
type Mechanic[P DelegationPolicy] struct {
	Policy P
}

func (Mechanic[P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step evaluates one delegation attempt or outcome. A revoked
// relationship accepts no further attempts. An attempted task is
// rejected outright if the policy refuses it; otherwise its outcome
// moves trust and authority and may trigger revocation.
func (m Mechanic[P]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	if state.IsRevoked {
		return
	}

	if in.Attempted {
		if !m.Policy.CanDelegate(state.Trust, in.TaskRisk, cfg) {
			emit.Emit(Event{Kind: DelegationRejected})
			return
		}
		emit.Emit(Event{Kind: TaskDelegated})
		return
	}

	var trustDelta float32
	if in.Success {
		trustDelta = m.Policy.TrustGain(in.TaskRisk, in.OutcomeQuality)
	} else {
		trustDelta = -m.Policy.TrustLoss(in.TaskRisk)
	}
	state.Trust = m.Policy.ClampTrust(state.Trust+trustDelta, cfg)
	emit.Emit(Event{Kind: TrustChanged, Value: state.Trust})

	state.Authority = m.Policy.AuthorityLevel(state.Trust, cfg)
	emit.Emit(Event{Kind: AuthorityGranted, Value: state.Authority})

	if m.Policy.ShouldRevoke(state.Trust, cfg) {
		state.IsRevoked = true
		emit.Emit(Event{Kind: Revoked})
	}
}
