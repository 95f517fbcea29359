package model

import (
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/uprint"
)

// Label pairs an AST with its rendered textual form. Setting the AST (the
// only supported direction, since the grammar/parser is out of scope) keeps
// Text in sync via uprint.
type Label struct {
	AST  uast.Node
	Text string
}

// NewLabel wraps ast, deriving Text immediately so callers never see a
// Label with a stale or empty Text.
func NewLabel(ast uast.Node) Label {
	return Label{AST: ast, Text: uprint.Print(ast)}
}

// Select binds Var to each value Type ranges over, once per enabled
// transition (spec.md §4.6).
type Select struct {
	Var  string
	Type uast.Node
}

// Sync is an edge's synchronization label: `chan!` or `chan?`.
type Sync struct {
	Channel uast.Node
	Op      uast.SyncOp
	Text    string
}

// NewSync wraps a channel expression and direction, deriving Text.
func NewSync(channel uast.Node, op uast.SyncOp) Sync {
	s := uast.Sync{Channel: channel, Op: op}
	return Sync{Channel: channel, Op: op, Text: uprint.Print(s)}
}
