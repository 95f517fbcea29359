package engine

import (
	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// relToken maps a comparison operator tag to the DBM relation string
// dbm.Conjugate understands. NotEqual has no single-constraint DBM
// representation and is intentionally absent.
func relToken(op string) (string, bool) {
	switch op {
	case uast.OpLessThan:
		return "<", true
	case uast.OpLessEqual:
		return "<=", true
	case uast.OpEqual:
		return "==", true
	case uast.OpGreaterEqual:
		return ">=", true
	case uast.OpGreaterThan:
		return ">", true
	default:
		return "", false
	}
}

// flipRel swaps a relation's sense for moving its clock operand from the
// right-hand side of a comparison to the left (`k < x` becomes `x > k`).
func flipRel(rel string) string {
	switch rel {
	case "<":
		return ">"
	case "<=":
		return ">="
	case ">":
		return "<"
	case ">=":
		return "<="
	default:
		return rel
	}
}

// intOf extracts a plain int64 from an int-like value, as eval.intOf does
// internally; engine needs its own copy since that helper is unexported.
func intOf(v value.Value) (int64, bool) {
	switch t := v.(type) {
	case *value.Int:
		return int64(t.V), true
	case *value.BoundedInt:
		return int64(t.V), true
	default:
		return 0, false
	}
}

// clockRef evaluates n and reports its DBM column name if it is a clock.
func clockRef(ev *eval.Evaluator, prog *state.Program, n uast.Node) (string, bool) {
	v, err := ev.Eval(n, prog)
	if err != nil {
		return "", false
	}
	c, ok := v.(*value.Clock)
	if !ok {
		return "", false
	}
	return c.Name, true
}

// clockDiff recognizes n as either a `c1 - c2` clock difference or a bare
// clock (implicitly `c1 - T0_REF`), returning the two DBM column names.
func clockDiff(ev *eval.Evaluator, prog *state.Program, n uast.Node) (clock1, clock2 string, ok bool) {
	if be, isBinary := n.(uast.BinaryExpr); isBinary && be.Op == uast.OpSub {
		if c1, ok1 := clockRef(ev, prog, be.Left); ok1 {
			if c2, ok2 := clockRef(ev, prog, be.Right); ok2 {
				return c1, c2, true
			}
		}
		return "", "", false
	}
	if c1, ok1 := clockRef(ev, prog, n); ok1 {
		return c1, dbm.RefClock, true
	}
	return "", "", false
}

// translateClockConstraint recognizes a clock-classified guard or
// invariant AST in one of the three forms spec.md §4.7 names
// (`c1 - c2 ⋈ k`, `c1 ⋈ k`, `k ⋈ c1`) and returns the equivalent
// dbm.Conjugate arguments.
func translateClockConstraint(ev *eval.Evaluator, prog *state.Program, ast uast.Node) (clock1, clock2, rel string, val int64, err error) {
	be, ok := ast.(uast.BinaryExpr)
	if !ok {
		return "", "", "", 0, ErrBadClockGuard
	}
	relTok, ok := relToken(be.Op)
	if !ok {
		return "", "", "", 0, ErrBadClockGuard
	}

	if c1, c2, ok := clockDiff(ev, prog, be.Left); ok {
		kv, err := ev.Eval(be.Right, prog)
		if err != nil {
			return "", "", "", 0, err
		}
		k, ok := intOf(kv)
		if !ok {
			return "", "", "", 0, ErrBadClockGuard
		}
		return c1, c2, relTok, k, nil
	}

	kv, err := ev.Eval(be.Left, prog)
	if err == nil {
		if k, ok := intOf(kv); ok {
			if c1, c2, ok := clockDiff(ev, prog, be.Right); ok {
				return c1, c2, flipRel(relTok), k, nil
			}
		}
	}
	return "", "", "", 0, ErrBadClockGuard
}

// translateReset recognizes a clock-classified assignment as `clock = k`
// and returns the equivalent dbm.ResetOp.
func translateReset(ev *eval.Evaluator, prog *state.Program, ast uast.Node) (dbm.ResetOp, error) {
	ae, ok := ast.(uast.AssignExpr)
	if !ok || ae.Op != uast.OpAssign {
		return dbm.ResetOp{}, ErrBadReset
	}
	lhs, err := ev.Eval(ae.Left, prog)
	if err != nil {
		return dbm.ResetOp{}, err
	}
	clk, ok := lhs.(*value.Clock)
	if !ok {
		return dbm.ResetOp{}, ErrBadReset
	}
	rhs, err := ev.Eval(ae.Right, prog)
	if err != nil {
		return dbm.ResetOp{}, err
	}
	val, ok := intOf(rhs)
	if !ok {
		return dbm.ResetOp{}, ErrBadReset
	}
	return dbm.ResetOp{Clock: clk.Name, Val: val}, nil
}
