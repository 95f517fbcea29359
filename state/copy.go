package state

import "github.com/ntasim/ntasim/value"

// Copy returns a deep copy of the variable tier: every Variable's Value is
// duplicated via Value.Copy, and every Reference discovered in the new
// tree is rebound against the copy via Resolve, so the copy's aliasing
// relationships match the original's but no pointer crosses between the
// two programs (spec.md §4.3, §9 "References via captured paths").
//
// Local frames are copied too, though in practice Copy is only ever called
// between simulation steps, when the local stack is empty: the engine
// never holds a state snapshot mid-statement.
func (p *Program) Copy() *Program {
	out := &Program{
		globalConst:     copyScope(p.globalConst),
		globalVar:       copyScope(p.globalVar),
		instanceConst:   make(map[string]map[string]*Variable, len(p.instanceConst)),
		instanceVar:     make(map[string]map[string]*Variable, len(p.instanceVar)),
		activeInstance:  p.activeInstance,
		accessInstances: p.accessInstances,
	}
	for name, scope := range p.instanceConst {
		out.instanceConst[name] = copyScope(scope)
	}
	for name, scope := range p.instanceVar {
		out.instanceVar[name] = copyScope(scope)
	}
	out.local = make([]localFrame, len(p.local))
	for i, frame := range p.local {
		out.local[i] = localFrame{Name: frame.Name, Vars: copyScope(frame.Vars)}
	}

	rebindAll(out.globalConst, out)
	rebindAll(out.globalVar, out)
	for _, scope := range out.instanceConst {
		rebindAll(scope, out)
	}
	for _, scope := range out.instanceVar {
		rebindAll(scope, out)
	}
	for _, frame := range out.local {
		rebindAll(frame.Vars, out)
	}
	return out
}

func copyScope(scope map[string]*Variable) map[string]*Variable {
	out := make(map[string]*Variable, len(scope))
	for name, v := range scope {
		out[name] = &Variable{Name: v.Name, Val: v.Val.Copy(), Path: v.Path, Const: v.Const}
	}
	return out
}

// rebindAll walks every variable's value tree and rebinds any Reference it
// finds against the given (already-copied) program.
func rebindAll(scope map[string]*Variable, prog *Program) {
	for _, v := range scope {
		rebindValue(v.Val, prog)
	}
}

func rebindValue(v value.Value, prog *Program) {
	switch t := v.(type) {
	case *value.Reference:
		_ = t.Bind(prog.Resolve) // a dangling path is reported when the reference is next dereferenced
	case *value.Array:
		for _, e := range t.Elems {
			rebindValue(e, prog)
		}
	case *value.Struct:
		for _, name := range t.FieldNames() {
			f, err := t.Field(name)
			if err == nil {
				rebindValue(f, prog)
			}
		}
	}
}
