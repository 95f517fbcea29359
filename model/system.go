package model

import "github.com/ntasim/ntasim/uast"

// System is the top-level loaded model: the global declaration, the
// system declaration (instantiations plus the composition list), the
// named templates, and any stored queries (spec.md §4.5).
type System struct {
	Decls      []uast.Node
	SystemDecl []uast.Node
	Templates  map[string]*Template
	Queries    []Query
}

// NewSystem returns an empty System.
func NewSystem() *System {
	return &System{Templates: make(map[string]*Template)}
}

// AddTemplate registers tmpl, rejecting a duplicate name.
func (s *System) AddTemplate(tmpl *Template) error {
	if _, exists := s.Templates[tmpl.Name]; exists {
		return modelErrorf("AddTemplate", ErrDuplicateTemplate)
	}
	s.Templates[tmpl.Name] = tmpl
	return nil
}

// Template looks up a template by name.
func (s *System) Template(name string) (*Template, error) {
	t, ok := s.Templates[name]
	if !ok {
		return nil, modelErrorf("Template", ErrTemplateNotFound)
	}
	return t, nil
}
