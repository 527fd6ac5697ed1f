// Package contagion implements the local-spread half of a
// per-entity infection check (SpreadPolicy) and severity progression
// (ProgressionPolicy), plus the Infection aggregate that carries a
// mechanics/statemachine.InfectionState through its lifecycle.
//
// Graph-based propagation across neighboring nodes lives in
// mechanics/propagation; the two mechanics compose through messages, not
// direct calls, design note that propagation is
// "decoupled from infection-local logic."
package contagion
