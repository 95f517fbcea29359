// Package uprint renders the subset of uast.Node the engine actually
// produces and consumes back into Uppaal-like C syntax. It stands in for
// the pretty-printer collaborator that spec.md §1 names out of scope
// (no grammar/parser is implemented, so there is no reparse direction):
// label text is derived from AST, never the other way around.
package uprint
