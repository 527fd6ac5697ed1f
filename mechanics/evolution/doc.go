// Package evolution implements an evolution mechanic: a
// scalar value that moves within [min, max] under the composition of a
// DirectionPolicy (which way it's headed), an EnvironmentalPolicy (how
// ambient conditions scale that movement), and a RateCalculationPolicy
// (how the two combine with a base rate into a per-tick delta).
package evolution
