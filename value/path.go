package value

import "strconv"

// Section names which top-level declaration table a path starts from
// (spec.md §3.1).
type Section int

const (
	SectionConst Section = iota
	SectionVar
)

func (s Section) String() string {
	if s == SectionConst {
		return "const"
	}
	return "var"
}

// ScopeKind tags which of the three scope tiers a path's scope segment
// names (spec.md §3.2).
type ScopeKind int

const (
	ScopeGlobal ScopeKind = iota
	ScopeInstance
	ScopeLocal
)

// Scope identifies one scope-tier location: the global tier carries no
// extra data, instance carries the instance's name, and local carries the
// index of a frame on the local scope stack.
type Scope struct {
	Kind     ScopeKind
	Instance string
	Frame    int
}

// PathSegment is one step of a reference's field/index chain: either a
// struct field name or an array index, never both.
type PathSegment struct {
	Field string
	Index int
	// IsIndex distinguishes a zero-value Index (a real index 0) from a
	// Field-only segment.
	IsIndex bool
}

// FieldSegment builds a struct-field path segment.
func FieldSegment(name string) PathSegment { return PathSegment{Field: name} }

// IndexSegment builds an array-index path segment.
func IndexSegment(i int) PathSegment { return PathSegment{Index: i, IsIndex: true} }

// Path is the stable address of a leaf variable: a section, a scope, a
// declared name within that scope, and a chain of field/index steps into
// that variable's value (spec.md §3.1, §3.3). Paths are plain data — they
// survive a state.Program.Copy() unchanged, which is what lets a Reference
// re-resolve its pointee in the copy.
type Path struct {
	Section Section
	Scope   Scope
	Name    string
	Chain   []PathSegment
}

// Child returns a new Path extending the receiver with one more segment.
func (p Path) Child(seg PathSegment) Path {
	chain := make([]PathSegment, len(p.Chain)+1)
	copy(chain, p.Chain)
	chain[len(p.Chain)] = seg
	return Path{Section: p.Section, Scope: p.Scope, Name: p.Name, Chain: chain}
}

// String renders a path for diagnostics, e.g. "var/instance(P1)/data[0].x".
func (p Path) String() string {
	s := p.Section.String() + "/"
	switch p.Scope.Kind {
	case ScopeGlobal:
		s += "global"
	case ScopeInstance:
		s += "instance(" + p.Scope.Instance + ")"
	case ScopeLocal:
		s += "local"
	}
	s += "/" + p.Name
	for _, seg := range p.Chain {
		if seg.IsIndex {
			s += "[" + strconv.Itoa(seg.Index) + "]"
		} else {
			s += "." + seg.Field
		}
	}
	return s
}
