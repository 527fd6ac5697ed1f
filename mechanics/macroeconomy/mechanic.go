package macroeconomy

import "github.com/fenwick-games/simcore/mechanic"

// Mechanic composes an EconomicPolicy over one market (// Macroeconomy mechanic).
type Mechanic[P EconomicPolicy] struct {
	Policy P
}

func (Mechanic[P]) Execution() mechanic.Execution {
	return mechanic.Execution{ParallelSafe: true, PreferredPhase: mechanic.Logic}
}

// Step advances one market by a turn: supply and demand respond to the
// current price and this turn's shocks, price moves to narrow the
// resulting gap, and inflation is measured off that price move.
func (m Mechanic[P]) Step(cfg Config, state *State, in Input, emit mechanic.Emitter[Event]) {
	oldPrice := state.Price

	state.Supply = m.Policy.SupplyResponse(state.Supply, state.Price, in.SupplyShock, cfg)
	state.Demand = m.Policy.DemandResponse(state.Demand, state.Price, in.Income, in.DemandShock, cfg)
	state.Price = m.Policy.PriceAdjustment(state.Price, state.Supply, state.Demand, cfg)
	emit.Emit(Event{Kind: PriceChanged, Price: state.Price})

	state.Inflation = m.Policy.InflationRate(oldPrice, state.Price)
	if cfg.MaxInflation > 0 && (state.Inflation >= cfg.MaxInflation || state.Inflation <= -cfg.MaxInflation) {
		emit.Emit(Event{Kind: InflationSpiked})
	}

	if m.Policy.ShouldIntervene(state.Inflation, cfg) {
		emit.Emit(Event{Kind: MarketIntervention})
	}
}
