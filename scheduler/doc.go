// Package scheduler drives one tick of a World through the four fixed
// phases described in Input, Logic, PostLogic, Visual,
// followed by a single message-bus Dispatch.
//
// Purpose:
// Systems are registered with metadata — phase, parallel-safety,
// ordering hint, and component read/write sets — once, before the
// scheduler is built. Build computes a per-phase execution order and
// partitions each phase into sequential steps and parallel-safe batches;
// registration after Build is rejected, "the
// scheduler computes a per-phase topological order once at build time
// and caches it; registration after build is forbidden."
//
// Scope:
//   - Phase ordering: Input -> Logic -> PostLogic -> Visual -> Dispatch,
//     strictly in that order, every tick.
//   - Deterministic intra-phase ordering: systems sorted by OrderingHint,
//     ties broken by registration order.
//   - Parallel execution of disjoint, parallel-safe systems within a
//     phase, bounded by a worker semaphore (golang.org/x/sync).
//   - Panic isolation: a system that panics is caught at the system
//     boundary, reported as a Diagnostic event, and the tick continues.
//
// Non-Goals:
//   - Cross-tick scheduling, suspension, or cancellation ("no
//     in-tick cancellation... no rollback").
//   - Distributing systems across processes.
package scheduler
