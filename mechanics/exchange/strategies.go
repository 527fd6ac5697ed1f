package exchange

// SimpleValuation returns the conservative minimum of offered and
// requested value, rejecting trades below the minimum threshold or
// outside the fairness band.
type SimpleValuation struct{}

func (SimpleValuation) FairValue(offered, requested, _, _ float32, cfg Config) float32 {
	if offered < cfg.MinimumValueThreshold {
		return 0
	}

	ratio := ratioOf(offered, requested)
	if ratio == 0 || ratio < cfg.FairnessThreshold || ratio > 1/cfg.FairnessThreshold {
		return 0
	}

	if offered < requested {
		return offered
	}
	return requested
}

func (SimpleValuation) Fee(fairValue float32, cfg Config) float32 {
	return fairValue * cfg.TransactionFeeRate
}

// FairTradeExecution only accepts trades that clear the minimum value
// threshold and fall within the fairness band, and only for an unlocked
// entity.
type FairTradeExecution struct{}

func (FairTradeExecution) ShouldExecute(offered, requested, _, _ float32, isLocked bool, cfg Config) RejectionReason {
	if isLocked {
		return RejectionEntityLocked
	}
	if offered < cfg.MinimumValueThreshold {
		return RejectionInsufficientValue
	}

	ratio := ratioOf(offered, requested)
	if ratio == 0 {
		return RejectionInsufficientValue
	}
	if ratio < cfg.FairnessThreshold || ratio > 1/cfg.FairnessThreshold {
		return RejectionUnfairTrade
	}
	return RejectionNone
}

func (FairTradeExecution) ReputationChange(offered, requested float32, success bool) float32 {
	if !success {
		return -0.05
	}
	ratio := ratioOf(offered, requested)
	if ratio >= 0.9 && ratio <= 1.1 {
		return 0.02
	}
	return 0.01
}

func ratioOf(offered, requested float32) float32 {
	if requested <= 0 {
		return 0
	}
	return offered / requested
}
