package model

import "github.com/ntasim/ntasim/uast"

// Parameter is a template formal parameter. IsRef marks a by-reference
// parameter (spec.md §4.4/§4.6 "reference parameters capture argument
// variable paths; value parameters deep-copy").
type Parameter struct {
	Name  string
	IsRef bool
	Type  uast.Node
}
