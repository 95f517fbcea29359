package model

import "github.com/ntasim/ntasim/uast"

// names collects every Variable name referenced anywhere in n, recursing
// through expression nodes. A Dot/ArrayAccess chain contributes only its
// root variable, since that is the name whose declared type matters for
// clock-vs-variable classification.
func names(n uast.Node) []string {
	if n == nil {
		return nil
	}
	switch v := n.(type) {
	case uast.Variable:
		return []string{v.Name}
	case uast.Integer, uast.Double, uast.Boolean:
		return nil
	case uast.BinaryExpr:
		if v.Op == uast.OpDot || v.Op == uast.OpArrayAccess {
			return names(v.Left)
		}
		return append(names(v.Left), names(v.Right)...)
	case uast.UnaryExpr:
		return names(v.Expr)
	case uast.TernaryExpr:
		out := names(v.Left)
		out = append(out, names(v.Middle)...)
		out = append(out, names(v.Right)...)
		return out
	case uast.AssignExpr:
		out := names(v.Left)
		return append(out, names(v.Right)...)
	case uast.IncrDecrExpr:
		return names(v.Expr)
	case uast.FuncCallExpr:
		var out []string
		for _, a := range v.Args {
			out = append(out, names(a)...)
		}
		return out
	default:
		return nil
	}
}

// rootName extracts the base variable name of an lvalue-shaped node
// (Variable, or a Dot/ArrayAccess chain rooted at one).
func rootName(n uast.Node) (string, bool) {
	switch v := n.(type) {
	case uast.Variable:
		return v.Name, true
	case uast.BinaryExpr:
		if v.Op == uast.OpDot || v.Op == uast.OpArrayAccess {
			return rootName(v.Left)
		}
	}
	return "", false
}

// isClockExpr reports whether expr references at least one name declared
// with type clock in clocks, the classification rule of spec.md §4.5.
func isClockExpr(expr uast.Node, clocks map[string]struct{}) bool {
	for _, nm := range names(expr) {
		if _, ok := clocks[nm]; ok {
			return true
		}
	}
	return false
}

// isClockAssignment reports whether assignExpr's left-hand side root name
// is a clock, distinguishing a reset from a plain update.
func isClockAssignment(assignExpr uast.Node, clocks map[string]struct{}) bool {
	var lhs uast.Node
	switch v := assignExpr.(type) {
	case uast.AssignExpr:
		lhs = v.Left
	case uast.IncrDecrExpr:
		lhs = v.Expr
	default:
		return false
	}
	root, ok := rootName(lhs)
	if !ok {
		return false
	}
	_, isClock := clocks[root]
	return isClock
}
