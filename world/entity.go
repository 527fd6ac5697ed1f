package world

import "fmt"

// Entity is an opaque, generational reference to a spawned thing in a
// World. The zero value is never returned by Spawn and never refers to a
// live entity; it is useful as an explicit "no entity" sentinel.
type Entity struct {
	index      uint32
	generation uint32
}

// Index returns the entity's slot index. Exposed for diagnostics and
// deterministic test fixtures; callers should otherwise treat Entity as
// opaque.
func (e Entity) Index() uint32 { return e.index }

// Generation returns the entity's generation. Two entities with the same
// index but different generations never refer to the same slot
// simultaneously; a stale Entity's generation will not match the slot's
// current generation once it has been despawned and reused.
func (e Entity) Generation() uint32 { return e.generation }

// IsZero reports whether e is the zero Entity (never a live handle).
func (e Entity) IsZero() bool { return e.index == 0 && e.generation == 0 }

// String renders the entity as "index:generation" for diagnostics.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.index, e.generation)
}
