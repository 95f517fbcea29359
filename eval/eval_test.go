package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

func TestEval_Arithmetic(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	node := uast.BinaryExpr{Op: uast.OpAdd, Left: uast.Integer{Val: 2}, Right: uast.Integer{Val: 3}}
	v, err := e.Eval(node, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.(*value.Int).V)
}

func TestEval_ShortCircuitAnd_SkipsRight(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("x", &value.Int{V: 0}, false)
	require.NoError(t, err)

	// false && (1/x) would divide by zero if evaluated; short-circuit must
	// skip it.
	node := uast.BinaryExpr{
		Op:   uast.OpLogAnd,
		Left: uast.Boolean{Val: false},
		Right: uast.BinaryExpr{
			Op:    uast.OpDiv,
			Left:  uast.Integer{Val: 1},
			Right: uast.Variable{Name: "x"},
		},
	}
	v, err := e.Eval(node, prog)
	require.NoError(t, err)
	assert.False(t, v.(*value.Bool).V)
}

func TestEval_ShortCircuitImply_SkipsRightWhenLeftFalse(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("x", &value.Int{V: 0}, false)
	require.NoError(t, err)

	// false imply (1/x) would divide by zero if evaluated; short-circuit
	// must yield true without touching the right operand.
	node := uast.BinaryExpr{
		Op:   uast.OpLogImply,
		Left: uast.Boolean{Val: false},
		Right: uast.BinaryExpr{
			Op:    uast.OpDiv,
			Left:  uast.Integer{Val: 1},
			Right: uast.Variable{Name: "x"},
		},
	}
	v, err := e.Eval(node, prog)
	require.NoError(t, err)
	assert.True(t, v.(*value.Bool).V)
}

func TestEval_Imply_EvaluatesRightWhenLeftTrue(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	node := uast.BinaryExpr{Op: uast.OpLogImply, Left: uast.Boolean{Val: true}, Right: uast.Boolean{Val: false}}
	v, err := e.Eval(node, prog)
	require.NoError(t, err)
	assert.False(t, v.(*value.Bool).V)
}

func TestEval_AssignAndCompoundAssign(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("x", &value.Int{V: 1}, false)
	require.NoError(t, err)

	_, err = e.Eval(uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: "x"}, Right: uast.Integer{Val: 10}}, prog)
	require.NoError(t, err)

	v, err := e.Eval(uast.AssignExpr{Op: uast.OpAddAssign, Left: uast.Variable{Name: "x"}, Right: uast.Integer{Val: 5}}, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(15), v.(*value.Int).V)
}

func TestEval_AssignToConstFails(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("N", &value.Int{V: 3}, true)
	require.NoError(t, err)

	_, err = e.Eval(uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: "N"}, Right: uast.Integer{Val: 4}}, prog)
	require.ErrorIs(t, err, state.ErrConstAssign)
}

func TestEval_IncrDecr(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("x", &value.Int{V: 5}, false)
	require.NoError(t, err)

	pre, err := e.Eval(uast.IncrDecrExpr{Expr: uast.Variable{Name: "x"}, Pre: true, Incr: true}, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(6), pre.(*value.Int).V)

	post, err := e.Eval(uast.IncrDecrExpr{Expr: uast.Variable{Name: "x"}, Pre: false, Incr: false}, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(6), post.(*value.Int).V)

	v, err := prog.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int32(5), v.Val.(*value.Int).V)
}

func TestEval_ArrayAndStructAccess(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	st := value.NewStruct([]string{"count"}, []value.Value{&value.Int{V: 0}})
	arr := value.NewArray(2, st)
	_, err := prog.Add("data", arr, false)
	require.NoError(t, err)

	assignNode := uast.AssignExpr{
		Op: uast.OpAssign,
		Left: uast.BinaryExpr{
			Op:   uast.OpDot,
			Left: uast.BinaryExpr{Op: uast.OpArrayAccess, Left: uast.Variable{Name: "data"}, Right: uast.Integer{Val: 1}},
			Right: uast.Variable{Name: "count"},
		},
		Right: uast.Integer{Val: 7},
	}
	_, err = e.Eval(assignNode, prog)
	require.NoError(t, err)

	readNode := uast.BinaryExpr{
		Op:   uast.OpDot,
		Left: uast.BinaryExpr{Op: uast.OpArrayAccess, Left: uast.Variable{Name: "data"}, Right: uast.Integer{Val: 1}},
		Right: uast.Variable{Name: "count"},
	}
	v, err := e.Eval(readNode, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v.(*value.Int).V)
}

func TestEval_ForAllExistsSum(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	boundedType := uast.BoundedIntType{Lower: uast.Integer{Val: 0}, Upper: uast.Integer{Val: 2}}

	allPositive := uast.ForAll{
		Var:   "i",
		Bound: boundedType,
		Body:  uast.BinaryExpr{Op: uast.OpGreaterEqual, Left: uast.Variable{Name: "i"}, Right: uast.Integer{Val: 0}},
	}
	v, err := e.Eval(allPositive, prog)
	require.NoError(t, err)
	assert.True(t, v.(*value.Bool).V)

	existsTwo := uast.Exists{
		Var:   "i",
		Bound: boundedType,
		Body:  uast.BinaryExpr{Op: uast.OpEqual, Left: uast.Variable{Name: "i"}, Right: uast.Integer{Val: 2}},
	}
	v, err = e.Eval(existsTwo, prog)
	require.NoError(t, err)
	assert.True(t, v.(*value.Bool).V)

	sum := uast.Sum{
		Var:   "i",
		Bound: boundedType,
		Body:  uast.Variable{Name: "i"},
	}
	v, err = e.Eval(sum, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(3), v.(*value.Int).V) // 0 + 1 + 2
}

func TestCall_ValueParameter(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	fn := &value.Function{
		Name: "inc",
		Params: []uast.Node{
			uast.Parameter{Type: uast.CustomType{Name: "int"}, VarData: uast.VariableID{VarName: "n"}},
		},
		Body: uast.StatementBlock{Stmts: []uast.Node{
			uast.Return{Expr: uast.BinaryExpr{Op: uast.OpAdd, Left: uast.Variable{Name: "n"}, Right: uast.Integer{Val: 1}}},
		}},
		ReturnType: uast.CustomType{Name: "int"},
	}

	res, err := e.Call(fn, []uast.Node{uast.Integer{Val: 41}}, prog)
	require.NoError(t, err)
	assert.Equal(t, int32(42), res.(*value.Int).V)
}

func TestCall_ReferenceParameterMutatesCaller(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()
	_, err := prog.Define("counter", &value.Int{V: 0}, false)
	require.NoError(t, err)

	fn := &value.Function{
		Name: "bump",
		Params: []uast.Node{
			uast.Parameter{IsRef: true, Type: uast.CustomType{Name: "int"}, VarData: uast.VariableID{VarName: "r"}},
		},
		Body: uast.StatementBlock{Stmts: []uast.Node{
			uast.ExprStmt{Expr: uast.AssignExpr{
				Op:    uast.OpAddAssign,
				Left:  uast.Variable{Name: "r"},
				Right: uast.Integer{Val: 1},
			}},
		}},
		ReturnType: uast.CustomType{Name: "void"},
	}

	_, err = e.Call(fn, []uast.Node{uast.Variable{Name: "counter"}}, prog)
	require.NoError(t, err)

	v, err := prog.Lookup("counter")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v.Val.(*value.Int).V)
}

func TestEval_VariableDeclsWithInitializer(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	decl := uast.VariableDecls{
		Type: uast.Type{Prefixes: nil, TypeID: uast.CustomType{Name: "int"}},
		VarData: []uast.VariableID{
			{VarName: "x", InitData: uast.Integer{Val: 9}},
		},
	}
	_, _, err := e.EvalStmt(decl, prog)
	require.NoError(t, err)

	v, err := prog.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int32(9), v.Val.(*value.Int).V)
}

func TestEval_UnknownNode(t *testing.T) {
	t.Parallel()

	e := eval.New()
	prog := state.NewProgram()

	_, err := e.Eval(uast.Double{Val: 1.5}, prog)
	var evalErr *eval.Error
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, eval.KindUnknownNode, evalErr.Kind)
}
