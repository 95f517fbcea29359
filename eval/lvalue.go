package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// lvalue is the target of an assignment: the live value.Value to mutate,
// plus the root state.Variable it ultimately belongs to (used only to
// enforce const, since spec.md §4.3 only tracks constness at the variable
// level, not per field/element).
type lvalue struct {
	val  value.Value
	root *state.Variable
}

// assign applies src to the lvalue, rejecting the attempt if its root
// variable is const.
func (lv lvalue) assign(src value.Value) error {
	if lv.root != nil && lv.root.Const {
		return state.ErrConstAssign
	}
	return lv.val.Assign(src)
}

// resolveLValue walks a Variable/Dot/ArrayAccess chain to the value.Value
// it addresses and the root state.Variable that owns it. Any other node
// type is not an lvalue.
func (e *Evaluator) resolveLValue(node uast.Node, prog *state.Program) (lvalue, error) {
	switch n := node.(type) {
	case uast.Variable:
		v, err := prog.Lookup(n.Name)
		if err != nil {
			return lvalue{}, badOperand(uast.TagVariable, err)
		}
		target, err := deref(v.Val)
		if err != nil {
			return lvalue{}, badOperand(uast.TagVariable, err)
		}
		return lvalue{val: target, root: v}, nil

	case uast.BinaryExpr:
		switch n.Op {
		case uast.OpDot:
			base, err := e.resolveLValue(n.Left, prog)
			if err != nil {
				return lvalue{}, err
			}
			rhsVar, ok := n.Right.(uast.Variable)
			if !ok {
				return lvalue{}, badOperand(uast.TagBinaryExpr, value.ErrUndefinedMember)
			}
			st, ok := base.val.(*value.Struct)
			if !ok {
				return lvalue{}, badOperand(uast.TagBinaryExpr, value.ErrTypeMismatch)
			}
			f, err := st.Field(rhsVar.Name)
			if err != nil {
				return lvalue{}, badOperand(uast.TagBinaryExpr, err)
			}
			return lvalue{val: f, root: base.root}, nil

		case uast.OpArrayAccess:
			base, err := e.resolveLValue(n.Left, prog)
			if err != nil {
				return lvalue{}, err
			}
			idxVal, err := e.Eval(n.Right, prog)
			if err != nil {
				return lvalue{}, err
			}
			idx, err := intOf(idxVal)
			if err != nil {
				return lvalue{}, badOperand(uast.TagBinaryExpr, err)
			}
			arr, ok := base.val.(*value.Array)
			if !ok {
				return lvalue{}, badOperand(uast.TagBinaryExpr, value.ErrTypeMismatch)
			}
			elem, err := arr.At(int(idx))
			if err != nil {
				return lvalue{}, badOperand(uast.TagBinaryExpr, err)
			}
			return lvalue{val: elem, root: base.root}, nil
		}
	}
	return lvalue{}, badOperand(node.ASTType(), value.ErrBadOp)
}

// resolvePath computes the stable value.Path of an lvalue-shaped node,
// used to bind a by-reference function parameter without evaluating the
// argument (spec.md §4.4 "Parameter binding").
func (e *Evaluator) resolvePath(node uast.Node, prog *state.Program) (value.Path, error) {
	switch n := node.(type) {
	case uast.Variable:
		v, err := prog.Lookup(n.Name)
		if err != nil {
			return value.Path{}, badOperand(uast.TagVariable, err)
		}
		return v.Path, nil

	case uast.BinaryExpr:
		switch n.Op {
		case uast.OpDot:
			base, err := e.resolvePath(n.Left, prog)
			if err != nil {
				return value.Path{}, err
			}
			rhsVar, ok := n.Right.(uast.Variable)
			if !ok {
				return value.Path{}, badOperand(uast.TagBinaryExpr, value.ErrUndefinedMember)
			}
			return base.Child(value.FieldSegment(rhsVar.Name)), nil

		case uast.OpArrayAccess:
			base, err := e.resolvePath(n.Left, prog)
			if err != nil {
				return value.Path{}, err
			}
			idxVal, err := e.Eval(n.Right, prog)
			if err != nil {
				return value.Path{}, err
			}
			idx, err := intOf(idxVal)
			if err != nil {
				return value.Path{}, badOperand(uast.TagBinaryExpr, err)
			}
			return base.Child(value.IndexSegment(int(idx))), nil
		}
	}
	return value.Path{}, badOperand(node.ASTType(), value.ErrBadOp)
}

// ResolvePath is the exported form of resolvePath. The instantiate package
// uses it to bind a template's by-reference parameters against the
// argument expression's path rather than its evaluated value (spec.md
// §4.6, mirroring the by-reference branch of Call's parameter binding).
func (e *Evaluator) ResolvePath(node uast.Node, prog *state.Program) (value.Path, error) {
	return e.resolvePath(node, prog)
}
