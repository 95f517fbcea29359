package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

func (e *Evaluator) evalFuncCall(n uast.FuncCallExpr, prog *state.Program) (value.Value, error) {
	v, err := prog.Lookup(n.Name)
	if err != nil {
		return nil, badOperand(uast.TagFuncCallExpr, err)
	}
	fn, ok := v.Val.(*value.Function)
	if !ok {
		return nil, badOperand(uast.TagFuncCallExpr, value.ErrTypeMismatch)
	}
	return e.Call(fn, n.Args, prog)
}

// Call pushes a fresh local scope, binds fn's parameters against argAsts
// (evaluated in the caller's current scope, per spec.md §4.4's "Parameter
// binding": reference parameters snapshot the argument's path instead of
// its value), evaluates the body, and coerces the result to fn's declared
// return type — or discards it if void.
func (e *Evaluator) Call(fn *value.Function, argASTs []uast.Node, prog *state.Program) (value.Value, error) {
	if len(argASTs) != len(fn.Params) {
		return nil, badOperand(uast.TagFuncCallExpr, value.ErrTypeMismatch)
	}

	prog.PushLocal(fn.Name)
	defer prog.PopLocal()

	for i, paramNode := range fn.Params {
		param, ok := paramNode.(uast.Parameter)
		if !ok {
			return nil, badOperand(uast.TagParameter, value.ErrBadOp)
		}
		if param.IsRef {
			path, err := e.resolvePath(argASTs[i], prog)
			if err != nil {
				return nil, err
			}
			ref := value.NewReference(path)
			if err := ref.Bind(prog.Resolve); err != nil {
				return nil, badOperand(uast.TagParameter, err)
			}
			if _, err := prog.Add(param.VarData.VarName, ref, false); err != nil {
				return nil, badOperand(uast.TagParameter, err)
			}
			continue
		}
		argVal, err := e.Eval(argASTs[i], prog)
		if err != nil {
			return nil, err
		}
		ti, err := e.evalType(param.Type, prog)
		if err != nil {
			return nil, err
		}
		slot := ti.zero()
		if err := slot.Assign(argVal); err != nil {
			return nil, badOperand(uast.TagParameter, err)
		}
		if _, err := prog.Add(param.VarData.VarName, slot, isConst(ti.prefixes)); err != nil {
			return nil, badOperand(uast.TagParameter, err)
		}
	}

	res, _, err := e.EvalStmt(fn.Body, prog)
	if err != nil {
		return nil, err
	}

	retType, err := e.evalType(fn.ReturnType, prog)
	if err != nil {
		return nil, err
	}
	if _, isVoid := retType.zero().(value.Void); isVoid {
		return value.Void{}, nil
	}
	if res == nil {
		return value.Void{}, nil
	}
	out := retType.zero()
	if err := out.Assign(res); err != nil {
		return nil, badOperand(uast.TagFuncCallExpr, err)
	}
	return out, nil
}

// evalForAll implements the "forall (x:T) expr" bounded universal quantifier.
func (e *Evaluator) evalForAll(n uast.ForAll, prog *state.Program) (value.Value, error) {
	domain, err := e.typeDomain(n.Bound, prog)
	if err != nil {
		return nil, badOperand(uast.TagForAll, err)
	}
	if len(domain) == 0 {
		return &value.Bool{V: true}, nil // vacuously true over an empty domain
	}
	prog.PushLocal("")
	defer prog.PopLocal()

	if _, err := prog.Define(n.Var, domain[0].Copy(), false); err != nil {
		return nil, badOperand(uast.TagForAll, err)
	}
	for _, val := range domain {
		if err := prog.Assign(n.Var, val); err != nil {
			return nil, badOperand(uast.TagForAll, err)
		}
		res, err := e.Eval(n.Body, prog)
		if err != nil {
			return nil, err
		}
		b, err := asBool(res)
		if err != nil {
			return nil, badOperand(uast.TagForAll, err)
		}
		if !b {
			return &value.Bool{V: false}, nil
		}
	}
	return &value.Bool{V: true}, nil
}

// evalExists implements the "exists (x:T) expr" bounded existential quantifier.
func (e *Evaluator) evalExists(n uast.Exists, prog *state.Program) (value.Value, error) {
	domain, err := e.typeDomain(n.Bound, prog)
	if err != nil {
		return nil, badOperand(uast.TagExists, err)
	}
	if len(domain) == 0 {
		return &value.Bool{V: false}, nil
	}
	prog.PushLocal("")
	defer prog.PopLocal()

	if _, err := prog.Define(n.Var, domain[0].Copy(), false); err != nil {
		return nil, badOperand(uast.TagExists, err)
	}
	for _, val := range domain {
		if err := prog.Assign(n.Var, val); err != nil {
			return nil, badOperand(uast.TagExists, err)
		}
		res, err := e.Eval(n.Body, prog)
		if err != nil {
			return nil, err
		}
		b, err := asBool(res)
		if err != nil {
			return nil, badOperand(uast.TagExists, err)
		}
		if b {
			return &value.Bool{V: true}, nil
		}
	}
	return &value.Bool{V: false}, nil
}

// evalSum implements the "sum (x:T) expr" bounded fold, accumulating as
// Int regardless of the body expression's own kind (spec.md §4.4).
func (e *Evaluator) evalSum(n uast.Sum, prog *state.Program) (value.Value, error) {
	domain, err := e.typeDomain(n.Bound, prog)
	if err != nil {
		return nil, badOperand(uast.TagSum, err)
	}
	if len(domain) == 0 {
		return &value.Int{V: 0}, nil
	}
	prog.PushLocal("")
	defer prog.PopLocal()

	if _, err := prog.Define(n.Var, domain[0].Copy(), false); err != nil {
		return nil, badOperand(uast.TagSum, err)
	}
	total := &value.Int{V: 0}
	for _, val := range domain {
		if err := prog.Assign(n.Var, val); err != nil {
			return nil, badOperand(uast.TagSum, err)
		}
		res, err := e.Eval(n.Body, prog)
		if err != nil {
			return nil, err
		}
		sum, err := total.ApplyBinary(uast.OpAdd, res)
		if err != nil {
			return nil, badOperand(uast.TagSum, err)
		}
		total = sum.(*value.Int)
	}
	return total, nil
}
