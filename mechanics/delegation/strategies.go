package delegation

// RiskAdjustedDelegation implements the straightforward reading of a
// DelegationPolicy: a task may be delegated once trust exceeds its
// risk, trust moves proportionally to outcome quality or risk, and
// authority and oversight both scale linearly with trust.
type RiskAdjustedDelegation struct{}

func (RiskAdjustedDelegation) CanDelegate(trust, taskRisk float32, cfg Config) bool {
	if taskRisk > cfg.DelegationRiskCap {
		return false
	}
	return trust >= taskRisk
}

func (RiskAdjustedDelegation) TrustGain(taskRisk, outcomeQuality float32) float32 {
	return taskRisk * outcomeQuality * 0.2
}

func (RiskAdjustedDelegation) TrustLoss(taskRisk float32) float32 {
	return taskRisk * 0.3
}

func (RiskAdjustedDelegation) AuthorityLevel(trust float32, cfg Config) float32 {
	return trust
}

func (RiskAdjustedDelegation) OversightFrequency(trust float32, cfg Config) float32 {
	span := cfg.MaxTrust - cfg.MinTrust
	if span <= 0 {
		return 0
	}
	return 1 - (trust-cfg.MinTrust)/span
}

func (RiskAdjustedDelegation) ShouldRevoke(trust float32, cfg Config) bool {
	return trust <= cfg.RevocationTrust
}

func (RiskAdjustedDelegation) ClampTrust(trust float32, cfg Config) float32 {
	if trust < cfg.MinTrust {
		return cfg.MinTrust
	}
	if trust > cfg.MaxTrust {
		return cfg.MaxTrust
	}
	return trust
}
