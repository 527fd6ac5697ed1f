// Package core provides the structured naming scheme used to refer to
// mechanics, presets, and registered message types by a stable string
// rather than a bare Go identifier.
//
// Purpose:
// A Ref is a "module:type:value" triple — e.g. "contagion:preset:zombie_virus"
// or "propagation:event:spread" — that names something defined by a
// mechanic package without coupling callers to its Go type. Scenario
// files, registries, and diagnostic output all refer to mechanics this
// way, so renaming a Go type alias doesn't break a saved scenario or a
// log line.
//
// Scope:
//   - Ref: the module:type:value identifier, with parsing and validation
//   - TypedRef[T]: a Ref paired with a compile-time type parameter, for
//     call sites that want both the stable name and type safety
//   - Topic: a typed routing key for pub/sub-style lookups
//   - Source/SourcedRef: provenance metadata for a Ref (which mechanic or
//     scenario introduced it)
//
// Non-Goals:
//   - World state: entities, components, and resources belong to world
//   - Message delivery: publish/subscribe belongs to events
//   - Mechanic algorithms: belong to their own mechanics/* packages
//
// Integration:
// core has no dependency on any other package in this module, keeping
// it at the base of the dependency graph. mechanics/contagion uses Ref
// to name its presets (ZombieVirusRef, SeasonalFluRef) and its event
// type, and events.RegisterRef accepts a *Ref so a bus's diagnostic
// output reports a stable name instead of a Go reflect.Type string.
//
// Example:
//
//	ref := core.MustNewRef(core.RefInput{Module: "contagion", Type: "preset", Value: "zombie_virus"})
//	ref.String() // "contagion:preset:zombie_virus"
package core
