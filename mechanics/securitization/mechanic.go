package securitization

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes a CollateralPolicy and an IssuancePolicy over one
// issuer.
type Mechanic[C CollateralPolicy, I IssuancePolicy] struct {
	Collateral C
	Issuance   I
}

func (Mechanic[C, I]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step deposits any new collateral and then attempts the requested
// issuance, rejecting it outright rather than partially filling it if
// it would exceed the issuer's backing capacity.
func (m Mechanic[C, I]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	if in.NewCollateral > 0 {
		state.CollateralValue += m.Collateral.BackingValue(in.NewCollateral, cfg)
		emit.Emit(Event{Kind: CollateralDeposited, Amount: in.NewCollateral})
	}

	if in.RequestedIssuance <= 0 {
		return
	}

	max := m.Issuance.MaxIssuance(state.CollateralValue, cfg)
	if state.OutstandingIssuance+in.RequestedIssuance > max {
		emit.Emit(Event{Kind: IssuanceRejected, Amount: in.RequestedIssuance})
		return
	}

	state.OutstandingIssuance += in.RequestedIssuance
	emit.Emit(Event{Kind: InstrumentIssued, Amount: in.RequestedIssuance})
}
