package state

import "github.com/ntasim/ntasim/value"

// localFrame is one named scope on the local stack, pushed and popped by
// blocks, function calls, and comprehension-style loops.
type localFrame struct {
	Name string
	Vars map[string]*Variable
}

// Program is the three-tier scoped variable store of spec.md §4.3: a
// global const/var pair, one const/var pair per instantiated template, and
// a stack of local frames. Exactly one of the global or an instance scope
// is "active" at a time; new Define/Add calls land there while no local
// frame is pushed, and in the innermost local frame otherwise.
type Program struct {
	globalConst map[string]*Variable
	globalVar   map[string]*Variable

	instanceConst map[string]map[string]*Variable
	instanceVar   map[string]map[string]*Variable

	local []localFrame

	activeInstance  string // "" means the global scope is active
	accessInstances bool
}

// NewProgram returns an empty Program with the global scope active.
func NewProgram() *Program {
	return &Program{
		globalConst:   make(map[string]*Variable),
		globalVar:     make(map[string]*Variable),
		instanceConst: make(map[string]map[string]*Variable),
		instanceVar:   make(map[string]map[string]*Variable),
	}
}

// ActivateGlobal makes the global scope active and records the
// accessInstances flag (carried across Copy). Lookup does not consult the
// flag: instance names never resolve as pseudo-variables.
func (p *Program) ActivateGlobal(accessInstances bool) {
	p.activeInstance = ""
	p.accessInstances = accessInstances
}

// ActivateInstance makes the named instance scope active, disabling
// cross-instance pseudo-access.
func (p *Program) ActivateInstance(name string) error {
	if _, ok := p.instanceConst[name]; !ok {
		return stateErrorf("ActivateInstance", ErrUnknownInstance)
	}
	p.activeInstance = name
	p.accessInstances = false
	return nil
}

// ActiveInstance returns the active instance name, or "" if the global
// scope is active.
func (p *Program) ActiveInstance() string { return p.activeInstance }

// NewInstanceScope allocates an empty const/var pair for a new instance.
func (p *Program) NewInstanceScope(name string) error {
	if _, ok := p.instanceConst[name]; ok {
		return stateErrorf("NewInstanceScope", ErrDuplicateInstance)
	}
	p.instanceConst[name] = make(map[string]*Variable)
	p.instanceVar[name] = make(map[string]*Variable)
	return nil
}

// activeScope returns the scope map that Define/Add/Set currently target,
// along with the Path prefix new variables in it should carry.
func (p *Program) activeScope(const_ bool) (map[string]*Variable, value.Path, error) {
	if n := len(p.local); n > 0 {
		frame := p.local[n-1]
		return frame.Vars, value.Path{
			Section: value.SectionVar,
			Scope:   value.Scope{Kind: value.ScopeLocal, Frame: n - 1},
		}, nil
	}
	section := value.SectionVar
	if const_ {
		section = value.SectionConst
	}
	if p.activeInstance != "" {
		m := p.instanceVar[p.activeInstance]
		if const_ {
			m = p.instanceConst[p.activeInstance]
		}
		return m, value.Path{Section: section, Scope: value.Scope{Kind: value.ScopeInstance, Instance: p.activeInstance}}, nil
	}
	m := p.globalVar
	if const_ {
		m = p.globalConst
	}
	return m, value.Path{Section: section, Scope: value.Scope{Kind: value.ScopeGlobal}}, nil
}

// Define allocates a new variable of zero value zero in the active scope,
// failing ErrRedefined on a name collision.
func (p *Program) Define(name string, zero value.Value, const_ bool) (*Variable, error) {
	scope, pathPrefix, err := p.activeScope(const_)
	if err != nil {
		return nil, stateErrorf("Define", err)
	}
	if _, ok := scope[name]; ok {
		return nil, stateErrorf("Define", ErrRedefined)
	}
	pathPrefix.Name = name
	v := &Variable{Name: name, Val: zero, Path: pathPrefix, Const: const_}
	scope[name] = v
	return v, nil
}

// Add inserts an already-constructed variable into the active scope (used
// for parameters, functions, and type bindings), failing ErrRedefined on a
// name collision.
func (p *Program) Add(name string, val value.Value, const_ bool) (*Variable, error) {
	scope, pathPrefix, err := p.activeScope(const_)
	if err != nil {
		return nil, stateErrorf("Add", err)
	}
	if _, ok := scope[name]; ok {
		return nil, stateErrorf("Add", ErrRedefined)
	}
	pathPrefix.Name = name
	v := &Variable{Name: name, Val: val, Path: pathPrefix, Const: const_}
	scope[name] = v
	return v, nil
}

// Set replaces or inserts a variable in the active scope, bypassing the
// ErrRedefined check Add performs.
func (p *Program) Set(name string, val value.Value, const_ bool) (*Variable, error) {
	scope, pathPrefix, err := p.activeScope(const_)
	if err != nil {
		return nil, stateErrorf("Set", err)
	}
	pathPrefix.Name = name
	v := &Variable{Name: name, Val: val, Path: pathPrefix, Const: const_}
	scope[name] = v
	return v, nil
}

// Lookup resolves name following the order of spec.md §3: innermost local
// to outermost local, then active instance (const, then var), then global
// (const, then var).
func (p *Program) Lookup(name string) (*Variable, error) {
	for i := len(p.local) - 1; i >= 0; i-- {
		if v, ok := p.local[i].Vars[name]; ok {
			return v, nil
		}
	}
	if p.activeInstance != "" {
		if v, ok := p.instanceConst[p.activeInstance][name]; ok {
			return v, nil
		}
		if v, ok := p.instanceVar[p.activeInstance][name]; ok {
			return v, nil
		}
	}
	if v, ok := p.globalConst[name]; ok {
		return v, nil
	}
	if v, ok := p.globalVar[name]; ok {
		return v, nil
	}
	return nil, stateErrorf("Lookup", ErrUndefinedName)
}

// Assign resolves name and assigns val to it via Variable.Assign.
func (p *Program) Assign(name string, val value.Value) error {
	v, err := p.Lookup(name)
	if err != nil {
		return stateErrorf("Assign", err)
	}
	return v.Assign(val)
}

// PushLocal pushes a new named local frame.
func (p *Program) PushLocal(name string) {
	p.local = append(p.local, localFrame{Name: name, Vars: make(map[string]*Variable)})
}

// PopLocal pops the innermost local frame, failing ErrStackUnderflow if
// the stack is empty.
func (p *Program) PopLocal() error {
	if len(p.local) == 0 {
		return stateErrorf("PopLocal", ErrStackUnderflow)
	}
	p.local = p.local[:len(p.local)-1]
	return nil
}

// LocalDepth reports how many local frames are currently pushed.
func (p *Program) LocalDepth() int { return len(p.local) }

// InstanceNames returns every instantiated instance's name, in no
// particular order.
func (p *Program) InstanceNames() []string {
	names := make([]string, 0, len(p.instanceConst))
	for n := range p.instanceConst {
		names = append(names, n)
	}
	return names
}

// ScopeValues returns every variable's current Value declared directly in
// the named scope (instance == "" for the global scope), both const and
// var bindings, in no particular order. instantiate uses it to discover
// which declarations are clocks once evaluation has stamped their DBM
// column names onto them (spec.md §4.6).
func (p *Program) ScopeValues(instance string) []value.Value {
	constM, varM := p.globalConst, p.globalVar
	if instance != "" {
		constM, varM = p.instanceConst[instance], p.instanceVar[instance]
	}
	out := make([]value.Value, 0, len(constM)+len(varM))
	for _, v := range constM {
		out = append(out, v.Val)
	}
	for _, v := range varM {
		out = append(out, v.Val)
	}
	return out
}
