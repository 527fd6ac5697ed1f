// Package delegation implements a delegation mechanic:
// a principal assigning authority to an agent, tracked as trust that
// accrues with successful task completion and decays on failure,
// driven by a DelegationPolicy.
package delegation
