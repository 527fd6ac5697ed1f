package delegation

// DelegationPolicy governs whether a task may be delegated, how trust
// and authority move with its outcome, and when the relationship is
// revoked.
type DelegationPolicy interface {
	// CanDelegate decides whether the current trust level clears the
	// risk of the task being delegated.
	CanDelegate(trust, taskRisk float32, cfg Config) bool
	// TrustGain returns the trust accrued from a successful task.
	TrustGain(taskRisk, outcomeQuality float32) float32
	// TrustLoss returns the trust lost from a failed task.
	TrustLoss(taskRisk float32) float32
	// AuthorityLevel maps the current trust to an authority scope.
	AuthorityLevel(trust float32, cfg Config) float32
	// OversightFrequency reports how closely the principal should
	// monitor the agent at the current trust level, in checks per
	// task; it does not gate execution.
	OversightFrequency(trust float32, cfg Config) float32
	// ShouldRevoke reports whether trust has fallen too far to
	// continue the delegation.
	ShouldRevoke(trust float32, cfg Config) bool
	// ClampTrust keeps trust within the configured bounds.
	ClampTrust(trust float32, cfg Config) float32
}
