package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// Evaluator walks uast.Node trees against a state.Program. It holds no
// state of its own: every method takes the program explicitly, which is
// what lets the engine pass a fresh copy per transition candidate and
// what breaks the mutually recursive state/evaluator dependency flagged
// by REDESIGN FLAGS §9 — Function values carry their body AST, not an
// Evaluator reference; the caller supplies one at the call site.
type Evaluator struct{}

// New returns a ready-to-use Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Eval evaluates an expression-position node, returning its value.
func (e *Evaluator) Eval(node uast.Node, prog *state.Program) (value.Value, error) {
	switch n := node.(type) {
	case uast.Integer:
		return &value.Int{V: int32(n.Val)}, nil
	case uast.Boolean:
		return &value.Bool{V: n.Val}, nil
	case uast.Double:
		return nil, unknownNode(uast.TagDouble)
	case uast.Variable:
		return e.evalVariable(n, prog)
	case uast.BinaryExpr:
		return e.evalBinary(n, prog)
	case uast.UnaryExpr:
		return e.evalUnary(n, prog)
	case uast.TernaryExpr:
		return e.evalTernary(n, prog)
	case uast.AssignExpr:
		return e.evalAssign(n, prog)
	case uast.IncrDecrExpr:
		return e.evalIncrDecr(n, prog)
	case uast.FuncCallExpr:
		return e.evalFuncCall(n, prog)
	case uast.ForAll:
		return e.evalForAll(n, prog)
	case uast.Exists:
		return e.evalExists(n, prog)
	case uast.Sum:
		return e.evalSum(n, prog)
	default:
		return nil, unknownNode(node.ASTType())
	}
}

// evalVariable resolves a name against the active scope chain,
// auto-dereferencing a Reference (spec.md §4.3 "lookup... auto-dereferences
// references").
func (e *Evaluator) evalVariable(n uast.Variable, prog *state.Program) (value.Value, error) {
	v, err := prog.Lookup(n.Name)
	if err != nil {
		return nil, badOperand(uast.TagVariable, err)
	}
	return deref(v.Val)
}

// deref follows a Reference to its pointee; any other value passes
// through unchanged.
func deref(v value.Value) (value.Value, error) {
	if ref, ok := v.(*value.Reference); ok {
		return ref.Deref()
	}
	return v, nil
}

func (e *Evaluator) evalTernary(n uast.TernaryExpr, prog *state.Program) (value.Value, error) {
	cond, err := e.Eval(n.Left, prog)
	if err != nil {
		return nil, err
	}
	b, err := asBool(cond)
	if err != nil {
		return nil, badOperand(uast.TagTernaryExpr, err)
	}
	if b {
		return e.Eval(n.Middle, prog)
	}
	return e.Eval(n.Right, prog)
}

func (e *Evaluator) evalUnary(n uast.UnaryExpr, prog *state.Program) (value.Value, error) {
	v, err := e.Eval(n.Expr, prog)
	if err != nil {
		return nil, err
	}
	res, err := v.ApplyUnary(opToken(n.Op))
	if err != nil {
		return nil, badOperand(uast.TagUnaryExpr, err)
	}
	return res, nil
}

func (e *Evaluator) evalBinary(n uast.BinaryExpr, prog *state.Program) (value.Value, error) {
	switch n.Op {
	case uast.OpDot:
		return e.evalDot(n, prog)
	case uast.OpArrayAccess:
		return e.evalArrayAccess(n, prog)
	case uast.OpLogAnd, uast.OpLogOr, uast.OpLogImply:
		return e.evalShortCircuit(n, prog)
	}
	left, err := e.Eval(n.Left, prog)
	if err != nil {
		return nil, err
	}
	right, err := e.Eval(n.Right, prog)
	if err != nil {
		return nil, err
	}
	res, err := left.ApplyBinary(opToken(n.Op), right)
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	return res, nil
}

// evalShortCircuit implements &&, ||, and imply without evaluating the
// right operand when the left already decides the result (spec.md §4.4's
// "short-circuit logical ops"): `a imply b` is `!a || b`, so a false left
// operand yields true without touching the right operand at all.
func (e *Evaluator) evalShortCircuit(n uast.BinaryExpr, prog *state.Program) (value.Value, error) {
	left, err := e.Eval(n.Left, prog)
	if err != nil {
		return nil, err
	}
	lb, err := asBool(left)
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	if n.Op == uast.OpLogAnd && !lb {
		return &value.Bool{V: false}, nil
	}
	if n.Op == uast.OpLogOr && lb {
		return &value.Bool{V: true}, nil
	}
	if n.Op == uast.OpLogImply && !lb {
		return &value.Bool{V: true}, nil
	}
	right, err := e.Eval(n.Right, prog)
	if err != nil {
		return nil, err
	}
	rb, err := asBool(right)
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	return &value.Bool{V: rb}, nil
}

func (e *Evaluator) evalDot(n uast.BinaryExpr, prog *state.Program) (value.Value, error) {
	left, err := e.Eval(n.Left, prog)
	if err != nil {
		return nil, err
	}
	rhsVar, ok := n.Right.(uast.Variable)
	if !ok {
		return nil, badOperand(uast.TagBinaryExpr, value.ErrUndefinedMember)
	}
	st, ok := left.(*value.Struct)
	if !ok {
		return nil, badOperand(uast.TagBinaryExpr, value.ErrTypeMismatch)
	}
	f, err := st.Field(rhsVar.Name)
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	return f, nil
}

func (e *Evaluator) evalArrayAccess(n uast.BinaryExpr, prog *state.Program) (value.Value, error) {
	left, err := e.Eval(n.Left, prog)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.Eval(n.Right, prog)
	if err != nil {
		return nil, err
	}
	idx, err := intOf(idxVal)
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	arr, ok := left.(*value.Array)
	if !ok {
		return nil, badOperand(uast.TagBinaryExpr, value.ErrTypeMismatch)
	}
	elem, err := arr.At(int(idx))
	if err != nil {
		return nil, badOperand(uast.TagBinaryExpr, err)
	}
	return elem, nil
}

// asBool coerces a value to bool using the same int!=0/bool rule as the
// value package's binary operators.
func asBool(v value.Value) (bool, error) {
	switch t := v.(type) {
	case *value.Bool:
		return t.V, nil
	case *value.Int:
		return t.V != 0, nil
	case *value.BoundedInt:
		return t.V != 0, nil
	case *value.Scalar:
		return t.V != 0, nil
	default:
		return false, value.ErrTypeMismatch
	}
}

// intOf extracts a plain int64 from an int-like value, used for array
// indices and fold bounds.
func intOf(v value.Value) (int64, error) {
	switch t := v.(type) {
	case *value.Int:
		return int64(t.V), nil
	case *value.BoundedInt:
		return int64(t.V), nil
	default:
		return 0, value.ErrTypeMismatch
	}
}

// opToken maps a uast operator tag to the value package's operator token.
// Both packages use the same canonical strings (spec.md §6.1), so this is
// the identity today; it exists as the single seam to adjust if the two
// token sets ever diverge.
func opToken(op string) string { return op }
