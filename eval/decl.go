package eval

import (
	"fmt"

	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// isConst reports whether a prefix list marks a declaration const or meta
// (spec.md §4.4 treats both as non-assignable).
func isConst(prefixes []string) bool {
	for _, p := range prefixes {
		if p == "const" || p == "meta" {
			return true
		}
	}
	return false
}

// evalVariableDecls declares one or more variables sharing a base type,
// wrapping each in its declared array dimensions and assigning its
// initializer if present (spec.md §4.4).
func (e *Evaluator) evalVariableDecls(n uast.VariableDecls, prog *state.Program) error {
	ti, err := e.evalType(n.Type, prog)
	if err != nil {
		return err
	}
	for _, decl := range n.VarData {
		zero := e.wrapArrayDims(ti.zero, decl.ArrayDecl, prog)
		newVal := zero()

		isClockOrChan := false
		switch newVal.(type) {
		case *value.Clock, *value.Chan:
			isClockOrChan = true
		}
		if isClockOrChan {
			qualifyClockOrChan(newVal, instanceQualifiedName(prog, decl.VarName), ti.prefixes)
		}

		if !isClockOrChan && decl.InitData != nil {
			initVal, err := e.Eval(decl.InitData, prog)
			if err != nil {
				return err
			}
			if err := newVal.Assign(initVal); err != nil {
				return badOperand(uast.TagVariableDecls, err)
			}
		}

		constFlag := isClockOrChan || isConst(ti.prefixes)
		if _, err := prog.Add(decl.VarName, newVal, constFlag); err != nil {
			return badOperand(uast.TagVariableDecls, err)
		}
	}
	return nil
}

// instanceQualifiedName prefixes name with the active instance, if any, so
// that two instances of the same template get distinct clock/channel
// identities (spec.md §4.6). Global declarations are unprefixed since a
// system has only one global scope.
func instanceQualifiedName(prog *state.Program, name string) string {
	if inst := prog.ActiveInstance(); inst != "" {
		return inst + "." + name
	}
	return name
}

// qualifyClockOrChan stamps base as the DBM column / channel identity of
// every Clock or Chan leaf in v, walking array layers and appending an
// index suffix per dimension so that e.g. `clock x[2]` yields "x[0]",
// "x[1]" rather than two columns sharing one name. Chan leaves also pick
// up the broadcast/urgent prefixes from the declaration's type (spec.md
// §3's Channel type, §4.7's broadcast/binary pairing rules).
func qualifyClockOrChan(v value.Value, base string, prefixes []string) {
	switch t := v.(type) {
	case *value.Clock:
		t.Name = base
	case *value.Chan:
		t.Name = base
		t.Broadcast = hasPrefix(prefixes, "broadcast")
		t.Urgent = hasPrefix(prefixes, "urgent")
	case *value.Array:
		for i := 0; i < t.Len(); i++ {
			elem, err := t.At(i)
			if err != nil {
				continue
			}
			qualifyClockOrChan(elem, fmt.Sprintf("%s[%d]", base, i), prefixes)
		}
	}
}

func hasPrefix(prefixes []string, want string) bool {
	for _, p := range prefixes {
		if p == want {
			return true
		}
	}
	return false
}

// evalFunctionDef wraps a FunctionDef into a value.Function and installs
// it as a const binding in the active scope (spec.md §4.4).
func (e *Evaluator) evalFunctionDef(n uast.FunctionDef, prog *state.Program) error {
	params := make([]uast.Node, len(n.Params))
	for i, p := range n.Params {
		params[i] = p
	}
	fn := &value.Function{Name: n.Name, Params: params, Body: n.Body, ReturnType: n.Type}
	if _, err := prog.Add(n.Name, fn, true); err != nil {
		return badOperand(uast.TagFunctionDef, err)
	}
	return nil
}
