// Package diplomacy implements a negotiation mechanic: per-turn
// agreement progress gated by a patience counter, emitting
// ProgressMade, AgreementReached, or NegotiationFailed.
package diplomacy
