// Package world implements the entity-component-resource store: the
// single legitimate route to shared simulation state.
//
// Purpose:
// Mechanics never hold direct references to each other's data. A system
// reads Input for a mechanic's step out of the World (components,
// resources, and drained/read messages), calls step, and writes the
// resulting State and emitted events back through the World and the
// message bus.
//
// Scope:
//   - Entity: an opaque generational index (index + generation), detecting
//     use-after-despawn without bare pointers.
//   - Component: a value of a registered type attached to at most one
//     entity at a time; the World is the sole owner.
//   - Resource: a process-wide singleton value of a registered type, with
//     a lifetime spanning World creation to teardown.
//   - Query: typed iteration over entities holding a given component
//     combination, snapshotted at call time so entities spawned mid-
//     iteration are not observed.
//
// Non-Goals:
//   - Serialization or persistence of World state; left to adapters.
//   - Cross-World references; an Entity is only meaningful within the
//     World that spawned it.
//
// Because Go forbids adding type parameters to methods, component and
// resource access are free generic functions (Attach[C], Get[C],
// Resource[R], ...) parameterized over the World receiver, following the
// same "generic free function over a concrete receiver" shape
// events.Register[E] and events.Publish[E] already use.
package world
