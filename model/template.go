package model

import "github.com/ntasim/ntasim/uast"

// Template is a parameterized automaton blueprint: locations, edges, its
// own local declaration, and the initial location instances start in
// (spec.md §4.5).
type Template struct {
	ID         string
	Name       string
	Parameters []Parameter
	Decls      []uast.Node
	Locations  map[string]*Location
	Edges      map[string]*Edge
	Initial    string
}

// NewTemplate returns an empty Template with the given id and name.
func NewTemplate(id, name string) *Template {
	return &Template{
		Name:      name,
		ID:        id,
		Locations: make(map[string]*Location),
		Edges:     make(map[string]*Edge),
	}
}

// AddLocation registers loc, rejecting a duplicate id.
func (t *Template) AddLocation(loc *Location) error {
	if _, exists := t.Locations[loc.ID]; exists {
		return modelErrorf("AddLocation", ErrDuplicateLocation)
	}
	t.Locations[loc.ID] = loc
	return nil
}

// AddEdge registers e, rejecting a duplicate id or an endpoint that does
// not resolve to a location already in the template.
func (t *Template) AddEdge(e *Edge) error {
	if _, exists := t.Edges[e.ID]; exists {
		return modelErrorf("AddEdge", ErrDuplicateEdge)
	}
	if _, ok := t.Locations[e.Source]; !ok {
		return modelErrorf("AddEdge", ErrDanglingEdge)
	}
	if _, ok := t.Locations[e.Target]; !ok {
		return modelErrorf("AddEdge", ErrDanglingEdge)
	}
	t.Edges[e.ID] = e
	return nil
}

// ClockNames returns the set of names declared with type clock in this
// template's parameters and local declaration, the "containing scope" that
// spec.md §4.5 classifies guards against. Per the Open Question decision
// recorded in DESIGN.md, a parameter name always shadows a same-named
// clock from the declaration.
func (t *Template) ClockNames() map[string]struct{} {
	clocks := make(map[string]struct{})
	collectClockNames(t.Decls, clocks)
	for _, p := range t.Parameters {
		if isClockType(p.Type) {
			clocks[p.Name] = struct{}{}
		} else {
			delete(clocks, p.Name)
		}
	}
	return clocks
}

func isClockType(n uast.Node) bool {
	switch v := n.(type) {
	case uast.Type:
		return isClockType(v.TypeID)
	case uast.CustomType:
		return v.Name == "clock"
	default:
		return false
	}
}

func collectClockNames(decls []uast.Node, clocks map[string]struct{}) {
	for _, d := range decls {
		vd, ok := d.(uast.VariableDecls)
		if !ok || !isClockType(vd.Type) {
			continue
		}
		for _, id := range vd.VarData {
			clocks[id.VarName] = struct{}{}
		}
	}
}

// Validate checks the structural invariants fixture relies on: at least
// one location, a resolvable initial location, and no dangling edges
// (already enforced incrementally by AddEdge, re-checked here for a
// template assembled by direct field access).
func (t *Template) Validate() error {
	if len(t.Locations) == 0 {
		return modelErrorf("Validate", ErrNoInitialLocation)
	}
	if _, ok := t.Locations[t.Initial]; !ok {
		return modelErrorf("Validate", ErrNoInitialLocation)
	}
	for _, e := range t.Edges {
		if _, ok := t.Locations[e.Source]; !ok {
			return modelErrorf("Validate", ErrDanglingEdge)
		}
		if _, ok := t.Locations[e.Target]; !ok {
			return modelErrorf("Validate", ErrDanglingEdge)
		}
	}
	return nil
}
