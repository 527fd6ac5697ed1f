package contagion

import "github.com/fenwick-games/simcore/core"

// ZombieVirus is named example Preset: exponential spread with
// threshold progression. The alias does not fix the threshold; it is
// set through the Progress field's Threshold.
type ZombieVirus = Mechanic[ExponentialSpread, ThresholdProgression]

// SeasonalFlu is a gentler preset: linear spread against the same
// threshold shape, for contact-based rather than airborne diseases.
type SeasonalFlu = Mechanic[LinearSpread, ThresholdProgression]

// ZombieVirusRef and SeasonalFluRef are the structured names under which
// the presets above are registered with the rest of the simulation: a
// scenario file or a registry lookup refers to "contagion:preset:zombie_virus"
// rather than a bare Go type name, which survives renaming the type
// alias and is stable across a save/load boundary.
var (
	ZombieVirusRef = core.MustNewRef(core.RefInput{Module: "contagion", Type: "preset", Value: "zombie_virus"})
	SeasonalFluRef = core.MustNewRef(core.RefInput{Module: "contagion", Type: "preset", Value: "seasonal_flu"})
)

// PresetRefs lists every named preset's Ref, for a registry that needs
// to enumerate what's available (a scenario editor, a CLI "list
// presets" command) without reflecting over the type aliases directly.
var PresetRefs = []*core.Ref{ZombieVirusRef, SeasonalFluRef}

// EventRef names the Event type this package emits, for registration
// against a bus with RegisterRef so diagnostics report
// "contagion:event:local_step" instead of a Go type name.
var EventRef = core.MustNewRef(core.RefInput{Module: "contagion", Type: "event", Value: "local_step"})

// NoMutation is a MutationPolicy that never mutates content, the
// default for presets that don't compose mutation behavior.
type NoMutation struct{}

func (NoMutation) Mutate(content ContagionContent, _ float32) (ContagionContent, bool) {
	return content, false
}

// RandomMutation mutates content whenever rng falls under Rate,
// appending a mutation marker to the label.
type RandomMutation struct {
	Rate float32
}

func (m RandomMutation) Mutate(content ContagionContent, rng float32) (ContagionContent, bool) {
	if rng >= m.Rate {
		return content, false
	}
	content.Label += "'"
	return content, true
}

// FloorCredibilityDecay multiplies credibility by Factor each call,
// never letting it fall below Floor.
type FloorCredibilityDecay struct {
	Factor float32
}

func (d FloorCredibilityDecay) Decay(credibility, floor float32) float32 {
	next := credibility * d.Factor
	if next < floor {
		return floor
	}
	return next
}
