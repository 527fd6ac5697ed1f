// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

// Package events provides the double-buffered message bus that underpins
// all inter-mechanic communication in the simulation core.
//
// Purpose:
// Mechanics never call each other directly. A mechanic's step function
// writes typed events through an Emitter; the scheduler routes those
// events into the bus, and other systems read them back out through typed
// readers. This keeps mechanics decoupled from one another and from the
// scheduler's execution order.
//
// Scope:
//   - Per-type channel registration (Register)
//   - Publish into the current tick's back buffer (Publish)
//   - Non-destructive iteration of the current tick's front buffer (Reader)
//   - Destructive, one-shot consumption of the front buffer (Drain)
//   - A single buffer swap per tick (Dispatch)
//   - Bounded backlog per channel with oldest-drop overflow and a drop
//     counter surfaced as a diagnostic
//
// Non-Goals:
//   - Long-lived subscriptions or handler chains: this is a per-tick
//     scratchpad, not a general pub/sub system. Events published in tick N
//     become readable after the Dispatch that ends tick N and are cleared
//     by the Dispatch after that.
//   - In-place event mutation: events are immutable once published.
//   - Cross-tick event persistence or replay.
//
// Integration:
// The scheduler calls Dispatch exactly once, at the end of each tick,
// after the Visual phase completes. Systems in any phase may Publish or
// Reader/Drain during the tick; Drain should be reserved for systems that
// own exclusive consumption of an event type (e.g. a command queue), since
// other readers in the same tick will no longer see drained events.
//
// Example:
//
//	bus := events.NewBus()
//	events.Register[propagation.Event](bus, 4096)
//	events.Publish(bus, propagation.Event{Kind: propagation.EventSpread, From: "a", To: "b"})
//	for _, e := range events.Reader[propagation.Event](bus) {
//	    // observe e: published during the previous tick, not the one above
//	}
//	bus.Dispatch() // called once by the scheduler, at tick end
package events
