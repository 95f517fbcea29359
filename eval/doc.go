// Package eval walks a uast.Node tree against a state.Program, implementing
// the expression, statement, and declaration semantics of spec.md §4.4.
//
// Evaluation of an expression-position node yields a value.Value. A
// statement-position node yields (value.Value, bool, error): the bool
// reports whether a return propagated out of the statement, mirroring the
// original's (result, did_return) pair, and true unwinds every enclosing
// StatementBlock/loop until a function-call frame catches it.
//
// Dispatch is a Go type switch over concrete uast node types rather than a
// string-keyed handler table, so an unhandled node type is a compile-time
// gap in the switch, not a runtime map miss — the switch's default arm
// still returns *Error with KindUnknownNode for node types the grammar
// can produce that evaluation deliberately does not support (uast.Double).
package eval
