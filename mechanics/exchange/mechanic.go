package exchange

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a ValuationPolicy and an ExecutionPolicy over one
// trade attempt.
type Mechanic[V ValuationPolicy, X ExecutionPolicy] struct {
	Valuation V
	Execution X
}

// HintExecution reports this mechanic's scheduling hints, named to avoid
// colliding with the Execution policy field.
func (Mechanic[V, X]) HintExecution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: false, PreferredPhase: mechanic.Logic}
}

// Step evaluates one trade attempt: the ExecutionPolicy gates whether it
// proceeds at all, the ValuationPolicy computes the fair value and fee
// for an accepted trade, and the entity's reputation moves per the
// ExecutionPolicy's reputation-change formula.
func (m Mechanic[V, X]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	rejection := m.Execution.ShouldExecute(in.OfferedValue, in.RequestedValue, in.Urgency, state.Reputation, state.IsLocked, cfg)
	if rejection != RejectionNone {
		emit.Emit(Event{Kind: EventTradeRejected, Rejection: rejection})

		change := m.Execution.ReputationChange(in.OfferedValue, in.RequestedValue, false)
		state.Reputation += change
		emit.Emit(Event{Kind: EventReputationChanged, ReputationChange: change})
		return
	}

	fairValue := m.Valuation.FairValue(in.OfferedValue, in.RequestedValue, in.MarketLiquidity, state.Reputation, cfg)
	fee := m.Valuation.Fee(fairValue, cfg)
	emit.Emit(Event{Kind: EventTradeAccepted, FairValue: fairValue, Fee: fee})

	change := m.Execution.ReputationChange(in.OfferedValue, in.RequestedValue, true)
	state.Reputation += change
	emit.Emit(Event{Kind: EventReputationChanged, ReputationChange: change})
}
