// Package dice provides the random-number primitives the simulation
// core's mechanics draw on: a Roller abstraction with a
// cryptographically secure production implementation, a deterministic
// test double, and a FloatSource adapter that turns either into the
// uniform [0,1) stream every policy's rng input expects.
//
// Purpose:
// A mechanic that consults chance takes a bare float as input rather
// than rolling dice notation itself — contagion's local spread check is
// the current consumer, via contagion.NewInput. dice is the one place
// that float is actually produced, so swapping in a deterministic
// source for a test never touches mechanic code.
//
// Scope:
//   - Roller: Roll and RollN against a die size, with CryptoRoller and
//     MockRoller implementations
//   - FloatSource: adapts a Roller into a [0,1) float stream
//
// Non-Goals:
//   - Dice notation parsing ("3d6+2"): no mechanic in this simulation
//     consumes dice-notation strings, only a uniform float
//   - Modifier/pool/lazy-evaluation layers: no caller needs cached or
//     composed roll results, only the next float
//
// Integration:
// A world holds exactly one FloatSource as a resource (see
// world.InsertResource); a system looks it up with world.Resource and
// passes it to a mechanic's Input constructor (e.g.
// contagion.NewInput) rather than supplying a raw float itself.
//
// Example:
//
//	roller := dice.NewRoller()
//	src := dice.NewFloatSource(roller)
//	world.InsertResource(w, *src)
//
//	fs, _ := world.Resource[dice.FloatSource](w)
//	in := contagion.NewInput(density, resistance, fs)
package dice
