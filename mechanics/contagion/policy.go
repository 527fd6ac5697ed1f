package contagion

// SpreadPolicy computes the effective infection rate from a base rate
// and the local population density. Total on density outside [0,1]:
// the built-in strategies clamp density into [0,1] before using it.
type SpreadPolicy interface {
	Rate(baseRate, density float32) float32
}

// ProgressionPolicy advances a SimpleSeverity's counter and reports
// whether a threshold was crossed this call.
type ProgressionPolicy interface {
	Progress(state SimpleSeverity, cfg Config) (next SimpleSeverity, crossed bool)
}

// MutationPolicy applies mutation_rate-gated content drift on a Spread
// event.
type MutationPolicy interface {
	Mutate(content ContagionContent, rng float32) (next ContagionContent, mutated bool)
}

// CredibilityPolicy decays an information-contagion variant's
// credibility score with a floor.
type CredibilityPolicy interface {
	Decay(credibility, floor float32) float32
}

// ResistanceFactor converts a saturating resistance counter into a
// multiplicative dampening factor in (0, 1], shared by every
// SpreadPolicy implementation. Resistance overflow saturates rather
// than wraps.
func ResistanceFactor(resistance uint32) float32 {
	const saturationPoint = 100
	r := resistance
	if r > saturationPoint {
		r = saturationPoint
	}
	return 1.0 - float32(r)/float32(saturationPoint)*0.9
}

func clampDensity(d float32) float32 {
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}
