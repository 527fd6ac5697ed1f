// Copyright (C) 2024 Kirk Diggler
// SPDX-License-Identifier: GPL-3.0-or-later

package events

import (
	"reflect"
	"sync"

	"github.com/fenwick-games/simcore/core"
	"github.com/fenwick-games/simcore/rpgerr"
)

// DefaultChannelCapacity is the backlog cap applied to a channel that is
// registered without an explicit capacity.
const DefaultChannelCapacity = 4096

// channel holds one event type's double buffer: front is readable this
// tick, back accumulates this tick's publishes until the next Dispatch.
type channel struct {
	mu       sync.Mutex
	front    []any
	back     []any
	capacity int
	dropped  uint64
}

func newChannel(capacity int) *channel {
	if capacity <= 0 {
		capacity = DefaultChannelCapacity
	}
	return &channel{capacity: capacity}
}

func (c *channel) publish(e any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.back) >= c.capacity {
		// Oldest-drop overflow policy.
		c.back = c.back[1:]
		c.dropped++
	}
	c.back = append(c.back, e)
}

func (c *channel) reader() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]any, len(c.front))
	copy(out, c.front)
	return out
}

func (c *channel) drain() []any {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := c.front
	c.front = nil
	return out
}

// dispatch swaps front/back and returns the drop count accumulated since
// the previous dispatch.
func (c *channel) dispatch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	dropped := c.dropped
	c.dropped = 0
	c.front = c.back
	c.back = nil
	return dropped
}

// Bus is the double-buffered, per-tick typed message bus. It is safe
// for concurrent use by multiple systems within a phase.
type Bus struct {
	mu       sync.RWMutex
	channels map[reflect.Type]*channel
	names    map[reflect.Type]string
}

// NewBus creates an empty bus. Event types must be registered via
// Register before Publish/Reader/Drain are called against them, though
// Publish will auto-register an unknown type rather than panic (see
// Publish's doc comment).
func NewBus() *Bus {
	return &Bus{
		channels: make(map[reflect.Type]*channel),
		names:    make(map[reflect.Type]string),
	}
}

func typeOf[E any]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}

// Register allocates a channel for event type E with the given backlog
// capacity. Idempotent: registering an already-registered type is a
// no-op and does not reset its buffers. A capacity of 0 or less applies
// DefaultChannelCapacity.
func Register[E any](b *Bus, capacity int) {
	t := typeOf[E]()

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.channels[t]; ok {
		return
	}
	b.channels[t] = newChannel(capacity)
}

// RegisterRef is Register plus a stable diagnostic name for type E,
// drawn from ref rather than Go's reflect.Type.String(). Dispatch's
// returned drop-count map keys named channels by ref.String() instead
// of the type name, so operators reading a diagnostic stream see
// "contagion:event:local_step" rather than "contagion.Event". Idempotent
// the same way Register is: re-registering an already-registered type
// is a no-op, including its name.
func RegisterRef[E any](b *Bus, capacity int, ref *core.Ref) {
	t := typeOf[E]()

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.channels[t]; ok {
		return
	}
	b.channels[t] = newChannel(capacity)
	if ref != nil {
		b.names[t] = ref.String()
	}
}

func (b *Bus) nameFor(t reflect.Type) string {
	if name, ok := b.names[t]; ok {
		return name
	}
	return t.String()
}

func (b *Bus) channelFor(t reflect.Type) (*channel, bool) {
	b.mu.RLock()
	ch, ok := b.channels[t]
	b.mu.RUnlock()
	return ch, ok
}

// Publish appends e to type E's back buffer for the current tick.
// Publishing against an unregistered type auto-registers it at
// DefaultChannelCapacity and returns an UnknownEventType diagnostic; the
// core itself registers every mechanic's event types at world
// construction, so this path is reached only when an adapter publishes a
// type it never registered.
func Publish[E any](b *Bus, e E) error {
	t := typeOf[E]()

	ch, ok := b.channelFor(t)
	if !ok {
		Register[E](b, DefaultChannelCapacity)
		ch, _ = b.channelFor(t)
		ch.publish(e)
		return rpgerr.UnknownEventType(t.String())
	}

	ch.publish(e)
	return nil
}

// Reader returns the events of type E visible in the current tick,
// without consuming them. Many readers may call Reader for the same type
// within a tick; publishes made during the tick go to the back buffer
// and are not observed until the next Dispatch.
func Reader[E any](b *Bus) []E {
	t := typeOf[E]()

	ch, ok := b.channelFor(t)
	if !ok {
		return nil
	}

	raw := ch.reader()
	out := make([]E, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(E))
	}
	return out
}

// Drain takes ownership of the current tick's front buffer for type E,
// removing the events from the bus. Other readers invoked later in the
// same tick will not observe drained events. Use for systems that own
// exclusive consumption of an event type (e.g. a command queue); use
// Reader when multiple systems need to observe the same events.
func Drain[E any](b *Bus) []E {
	t := typeOf[E]()

	ch, ok := b.channelFor(t)
	if !ok {
		return nil
	}

	raw := ch.drain()
	out := make([]E, 0, len(raw))
	for _, v := range raw {
		out = append(out, v.(E))
	}
	return out
}

// Dispatch swaps every registered channel's front and back buffers,
// clearing the prior front buffer. Called exactly once per tick, by the
// scheduler, after the Visual phase completes. Returns drop counts
// accumulated since the previous Dispatch, keyed by event type name, for
// the caller to fold into a diagnostic stream.
func (b *Bus) Dispatch() map[string]uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()

	dropped := make(map[string]uint64)
	for t, ch := range b.channels {
		if n := ch.dispatch(); n > 0 {
			dropped[b.nameFor(t)] = n
		}
	}
	return dropped
}

// Reset clears every channel's buffers and drop counters. Intended for
// test isolation between scenarios, not for production use mid-run.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.channels {
		ch.mu.Lock()
		ch.front = nil
		ch.back = nil
		ch.dropped = 0
		ch.mu.Unlock()
	}
}
