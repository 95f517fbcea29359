package model

import "github.com/ntasim/ntasim/uast"

// Query is a temporal-logic query: parsed and stored but never evaluated
// (spec.md §1 Non-goals — "model checking of temporal-logic queries").
type Query struct {
	Text string
	AST  uast.Node
}
