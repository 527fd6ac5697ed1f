// Package statemachine implements the generic four-stage lifecycle
// mechanic: Incubating -> Active -> Recovered -> (Plain |
// Recovered-indefinite).
//
// It is deliberately independent of mechanics/contagion's local spread
// logic, kept in its own package so the same lifecycle shape can back
// infection, rumor-spread, or any other staged-duration content.
// contagion composes this package's InfectionState rather than
// duplicating it.
package statemachine
