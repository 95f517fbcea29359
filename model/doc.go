// Package model holds the object graph a loaded Uppaal system is made of:
// System, Template, Location, Edge, and the label types attached to them
// (invariants, guards, updates, resets, selects, synchronizations,
// parameters). The XML loader and grammar/parser that would normally
// populate this graph are out of scope (spec.md §1) — fixture builds one
// programmatically instead.
//
// Guard and assignment classification (clock vs. variable, update vs.
// reset) happens once, at load time, per spec.md §4.5: a guard is a clock
// guard iff its AST references at least one name declared with type clock
// in the containing scope, and an assignment is a reset iff its left-hand
// side root name is a clock. The template-parameter-shadows-a-clock-name
// case that spec.md leaves open is resolved here by classifying against
// the clock set as resolved *after* parameter binding — a template
// parameter always wins over a global/earlier clock of the same name,
// since it is the innermost declaration in scope at the point the guard
// text was written.
package model
