// Package exchange implements a trade mechanic: a
// valuation policy (is this trade fair, and what's the fair value) and
// an execution policy (should it proceed, and how does it move
// reputation) composed over a single trade attempt.
package exchange
