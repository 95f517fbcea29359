// Package engine implements the six-stage per-step transition pipeline of
// spec.md §4.7: enumerate every potential transition out of a state,
// filter by the committed-location rule, enable each candidate by
// evaluating its guards and translating its clock constraints into DBM
// operations, fire its updates and resets, apply post-fire location
// semantics (time delay and invariants), and publish the result.
//
// The engine is single-threaded and cooperative (spec.md §5): Transitions
// enumerates every valid outcome of one step without mutating its input
// State, and Fire/Step pick one of those outcomes to actually publish.
// Parallel exploration is the caller's responsibility, driven by taking
// disjoint State.Copy results and stepping each independently.
package engine
