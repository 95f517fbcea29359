// Package state implements the scoped program state a running simulation
// carries alongside its DBM: three tiers of named variables (global,
// per-instance, and a stack of local block scopes), path-qualified lookup,
// and the copy/rebind discipline that lets references survive a state
// snapshot used for backtracking.
package state
