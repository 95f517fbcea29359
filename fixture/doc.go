// Package fixture builds model.System values programmatically, standing in
// for the out-of-scope XML loader (spec.md §1). It mirrors the teacher's
// builder package: one orchestrator, New, resolves a set of functional
// options deterministically and validates the result before returning it.
package fixture
