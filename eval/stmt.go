package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// EvalStmt evaluates a statement-position node. The returned bool reports
// whether a Return propagated out of it; a true value unwinds through
// every enclosing block/loop until a function-call frame catches it
// (spec.md §4.4).
func (e *Evaluator) EvalStmt(node uast.Node, prog *state.Program) (value.Value, bool, error) {
	switch n := node.(type) {
	case uast.StatementBlock:
		return e.evalBlock(n, prog)
	case uast.EmptyStmt:
		return nil, false, nil
	case uast.ExprStmt:
		v, err := e.Eval(n.Expr, prog)
		return v, false, err
	case uast.If:
		return e.evalIf(n, prog)
	case uast.For:
		return e.evalFor(n, prog)
	case uast.While:
		return e.evalWhile(n, prog)
	case uast.DoWhile:
		return e.evalDoWhile(n, prog)
	case uast.Iteration:
		return e.evalIteration(n, prog)
	case uast.Return:
		if n.Expr == nil {
			return nil, true, nil
		}
		v, err := e.Eval(n.Expr, prog)
		return v, true, err
	case uast.VariableDecls:
		err := e.evalVariableDecls(n, prog)
		return nil, false, err
	case uast.FunctionDef:
		err := e.evalFunctionDef(n, prog)
		return nil, false, err
	default:
		return nil, false, unknownNode(node.ASTType())
	}
}

func (e *Evaluator) evalBlock(n uast.StatementBlock, prog *state.Program) (value.Value, bool, error) {
	prog.PushLocal("")
	defer prog.PopLocal()

	for _, stmt := range n.Stmts {
		res, didReturn, err := e.EvalStmt(stmt, prog)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return res, true, nil
		}
	}
	return nil, false, nil
}

func (e *Evaluator) evalIf(n uast.If, prog *state.Program) (value.Value, bool, error) {
	cond, err := e.Eval(n.Cond, prog)
	if err != nil {
		return nil, false, err
	}
	b, err := asBool(cond)
	if err != nil {
		return nil, false, badOperand(uast.TagIf, err)
	}
	if b {
		return e.EvalStmt(n.Then, prog)
	}
	if n.Else != nil {
		return e.EvalStmt(n.Else, prog)
	}
	return nil, false, nil
}

func (e *Evaluator) evalFor(n uast.For, prog *state.Program) (value.Value, bool, error) {
	prog.PushLocal("")
	defer prog.PopLocal()

	if n.Init != nil {
		if _, _, err := e.EvalStmt(n.Init, prog); err != nil {
			return nil, false, err
		}
	}
	for {
		if n.Cond != nil {
			cond, err := e.Eval(n.Cond, prog)
			if err != nil {
				return nil, false, err
			}
			b, err := asBool(cond)
			if err != nil {
				return nil, false, badOperand(uast.TagFor, err)
			}
			if !b {
				break
			}
		}
		res, didReturn, err := e.EvalStmt(n.Body, prog)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return res, true, nil
		}
		if n.Post != nil {
			if _, err := e.Eval(n.Post, prog); err != nil {
				return nil, false, err
			}
		}
	}
	return nil, false, nil
}

func (e *Evaluator) evalWhile(n uast.While, prog *state.Program) (value.Value, bool, error) {
	for {
		cond, err := e.Eval(n.Cond, prog)
		if err != nil {
			return nil, false, err
		}
		b, err := asBool(cond)
		if err != nil {
			return nil, false, badOperand(uast.TagWhile, err)
		}
		if !b {
			return nil, false, nil
		}
		res, didReturn, err := e.EvalStmt(n.Body, prog)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return res, true, nil
		}
	}
}

func (e *Evaluator) evalDoWhile(n uast.DoWhile, prog *state.Program) (value.Value, bool, error) {
	for {
		res, didReturn, err := e.EvalStmt(n.Body, prog)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return res, true, nil
		}
		cond, err := e.Eval(n.Cond, prog)
		if err != nil {
			return nil, false, err
		}
		b, err := asBool(cond)
		if err != nil {
			return nil, false, badOperand(uast.TagDoWhile, err)
		}
		if !b {
			return nil, false, nil
		}
	}
}

// evalIteration implements "for (x : T) body", binding x to each value a
// declared type ranges over (spec.md §4.4). Only bounded-int and scalar
// types have a well-defined range.
func (e *Evaluator) evalIteration(n uast.Iteration, prog *state.Program) (value.Value, bool, error) {
	domain, err := e.typeDomain(n.Type, prog)
	if err != nil {
		return nil, false, badOperand(uast.TagIteration, err)
	}
	if len(domain) == 0 {
		return nil, false, nil
	}
	prog.PushLocal("")
	defer prog.PopLocal()

	if _, err := prog.Define(n.Var, domain[0].Copy(), false); err != nil {
		return nil, false, badOperand(uast.TagIteration, err)
	}
	for _, val := range domain {
		if err := prog.Assign(n.Var, val); err != nil {
			return nil, false, badOperand(uast.TagIteration, err)
		}
		res, didReturn, err := e.EvalStmt(n.Body, prog)
		if err != nil {
			return nil, false, err
		}
		if didReturn {
			return res, true, nil
		}
	}
	return nil, false, nil
}
