package organization

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes an OrganizationPolicy over one organization.
type Mechanic[P OrganizationPolicy] struct {
	Policy P
}

func (Mechanic[P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: false, PreferredPhase: mechanic.Logic}
}

// Step applies one action to the organization's membership, cohesion,
// and leadership, emitting Dissolved and halting further effects once
// the organization has dissolved.
func (m Mechanic[P]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	if state.IsDissolved {
		return
	}

	switch in.Action {
	case ActionJoin:
		state.MemberCount = uint32(int32(state.MemberCount) + m.Policy.MembershipDelta(in.Action))
		emit.Emit(Event{Kind: MemberJoined})
	case ActionLeave:
		delta := m.Policy.MembershipDelta(in.Action)
		if int32(state.MemberCount)+delta < 0 {
			state.MemberCount = 0
		} else {
			state.MemberCount = uint32(int32(state.MemberCount) + delta)
		}
		emit.Emit(Event{Kind: MemberLeft})
	case ActionChallengeLeadership:
		if m.Policy.ChallengeSucceeds(in.ChallengerScore, state.LeaderScore, cfg) {
			state.LeaderScore = in.ChallengerScore
			emit.Emit(Event{Kind: LeadershipChanged})
		}
		return
	}

	cohesionDelta := m.Policy.CohesionDelta(in.Action, in.ContributionValue, cfg)
	state.Cohesion = m.Policy.ClampCohesion(state.Cohesion+cohesionDelta, cfg)
	emit.Emit(Event{Kind: CohesionChanged, Cohesion: state.Cohesion})

	if in.Action == ActionContribute {
		state.LeaderScore += m.Policy.ContributionToLeadership(in.ContributionValue)
	}

	if m.Policy.ShouldDissolve(*state, cfg) {
		state.IsDissolved = true
		emit.Emit(Event{Kind: Dissolved})
	}
}
