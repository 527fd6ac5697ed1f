package evolution

// DirectionPolicy determines the sign and magnitude of movement,
// independent of rate.
type DirectionPolicy interface {
	Direction(currentValue, min, max, elapsedTime float32) float32
}

// EnvironmentalPolicy scales movement by ambient conditions.
type EnvironmentalPolicy interface {
	Multiplier(env Environment) float32
}

// RateCalculationPolicy combines a base rate with the direction and
// environmental multipliers into a per-tick delta.
type RateCalculationPolicy interface {
	Rate(baseRate, currentValue, min, max, direction, environmental float32) float32
}
