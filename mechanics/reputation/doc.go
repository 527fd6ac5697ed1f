// Package reputation implements a reputation mechanic: a
// bounded scalar evolved by a Change policy (how a delta is applied), a
// Decay policy (how the value drifts without input), and a Clamp policy
// (how out-of-range results are handled), emitting threshold-crossing
// events. Typical uses include NPC favorability, item durability, and
// skill-progression tracking.
package reputation
