package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

func (e *Evaluator) evalAssign(n uast.AssignExpr, prog *state.Program) (value.Value, error) {
	target, err := e.resolveLValue(n.Left, prog)
	if err != nil {
		return nil, err
	}
	rhs, err := e.Eval(n.Right, prog)
	if err != nil {
		return nil, err
	}
	if n.Op != uast.OpAssign {
		cur, err := deref(target.val)
		if err != nil {
			return nil, badOperand(uast.TagAssignExpr, err)
		}
		rhs, err = cur.ApplyBinary(compoundOp(n.Op), rhs)
		if err != nil {
			return nil, badOperand(uast.TagAssignExpr, err)
		}
	}
	if err := target.assign(rhs); err != nil {
		return nil, badOperand(uast.TagAssignExpr, err)
	}
	return deref(target.val)
}

// compoundOp strips the trailing "Assign" from a compound-assignment
// operator tag to get the underlying binary operator, e.g. AddAssign ->
// Add.
func compoundOp(op string) string {
	switch op {
	case uast.OpAddAssign:
		return uast.OpAdd
	case uast.OpSubAssign:
		return uast.OpSub
	case uast.OpMultAssign:
		return uast.OpMult
	case uast.OpDivAssign:
		return uast.OpDiv
	case uast.OpModAssign:
		return uast.OpMod
	case uast.OpLShiftAssign:
		return uast.OpLShift
	case uast.OpRShiftAssign:
		return uast.OpRShift
	case uast.OpBitAndAssign:
		return uast.OpBitAnd
	case uast.OpBitOrAssign:
		return uast.OpBitOr
	case uast.OpBitXorAssign:
		return uast.OpBitXor
	default:
		return op
	}
}

// evalIncrDecr implements the four post-/pre- increment/decrement forms by
// adding +1 or -1 through ApplyBinary and storing the result via Assign, so
// a BoundedInt's range check still applies uniformly.
func (e *Evaluator) evalIncrDecr(n uast.IncrDecrExpr, prog *state.Program) (value.Value, error) {
	target, err := e.resolveLValue(n.Expr, prog)
	if err != nil {
		return nil, err
	}
	cur, err := deref(target.val)
	if err != nil {
		return nil, badOperand(uast.TagIncrDecrExpr, err)
	}
	old := cur.Copy()
	delta := int32(1)
	if !n.Incr {
		delta = -1
	}
	step := uast.OpAdd
	updated, err := cur.ApplyBinary(step, &value.Int{V: delta})
	if err != nil {
		return nil, badOperand(uast.TagIncrDecrExpr, err)
	}
	if err := target.assign(updated); err != nil {
		return nil, badOperand(uast.TagIncrDecrExpr, err)
	}
	if n.Pre {
		return deref(target.val)
	}
	return old, nil
}
