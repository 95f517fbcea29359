package state

import "github.com/ntasim/ntasim/value"

// scopeMap returns the concrete variable map a Path's section/scope
// segment addresses.
func (p *Program) scopeMap(sec value.Section, sc value.Scope) (map[string]*Variable, error) {
	switch sc.Kind {
	case value.ScopeGlobal:
		if sec == value.SectionConst {
			return p.globalConst, nil
		}
		return p.globalVar, nil
	case value.ScopeInstance:
		m := p.instanceVar
		if sec == value.SectionConst {
			m = p.instanceConst
		}
		scope, ok := m[sc.Instance]
		if !ok {
			return nil, ErrUnknownInstance
		}
		return scope, nil
	case value.ScopeLocal:
		if sc.Frame < 0 || sc.Frame >= len(p.local) {
			return nil, ErrUndefinedName
		}
		return p.local[sc.Frame].Vars, nil
	default:
		return nil, ErrUndefinedName
	}
}

// Resolve walks a Path to the Value it addresses: the named variable,
// then each field/index segment of its chain in order. It is the
// value.Resolver every Reference in this program is bound with.
func (p *Program) Resolve(path value.Path) (value.Value, error) {
	scope, err := p.scopeMap(path.Section, path.Scope)
	if err != nil {
		return nil, stateErrorf("Resolve", err)
	}
	v, ok := scope[path.Name]
	if !ok {
		return nil, stateErrorf("Resolve", ErrUndefinedName)
	}
	cur := v.Val
	for _, seg := range path.Chain {
		if seg.IsIndex {
			arr, ok := cur.(*value.Array)
			if !ok {
				return nil, stateErrorf("Resolve", value.ErrTypeMismatch)
			}
			cur, err = arr.At(seg.Index)
			if err != nil {
				return nil, stateErrorf("Resolve", err)
			}
		} else {
			st, ok := cur.(*value.Struct)
			if !ok {
				return nil, stateErrorf("Resolve", value.ErrTypeMismatch)
			}
			cur, err = st.Field(seg.Field)
			if err != nil {
				return nil, stateErrorf("Resolve", err)
			}
		}
	}
	return cur, nil
}
