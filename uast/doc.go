// Package uast defines the tagged-union AST that the evaluator walks and
// the transition engine inspects when classifying guards and updates.
//
// Every concrete node type implements Node, whose ASTType method returns
// the same canonical string tag a textual parser/pretty-printer contract
// would use, so a future real parser can hand the engine wire-compatible
// trees without either side depending on the other's concrete Go types.
// There is no dynamic dispatch table: callers type-switch over Node. Go
// does not check these switches for exhaustiveness; a kind a switch does
// not list falls through to its default branch.
package uast
