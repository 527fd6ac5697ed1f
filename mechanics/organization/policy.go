package organization

// OrganizationPolicy governs membership, cohesion, leadership, and
// dissolution for one organization.
type OrganizationPolicy interface {
	// MembershipDelta returns how MemberCount should change for a join
	// or leave action.
	MembershipDelta(action ActionKind) int32
	// CohesionDelta returns how Cohesion should change for one action.
	CohesionDelta(action ActionKind, contribution float32, cfg Config) float32
	// ChallengeSucceeds decides whether a leadership challenge
	// replaces the incumbent.
	ChallengeSucceeds(challengerScore, incumbentScore float32, cfg Config) bool
	// ContributionToLeadership converts a contribution into leadership
	// score for the contributing member.
	ContributionToLeadership(contribution float32) float32
	// ShouldDissolve reports whether the organization's cohesion has
	// fallen too far to continue.
	ShouldDissolve(state State, cfg Config) bool
	// ClampCohesion keeps Cohesion within the configured bounds.
	ClampCohesion(cohesion float32, cfg Config) float32
}
