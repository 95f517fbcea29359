package model

import "github.com/ntasim/ntasim/uast"

// Location is a template's vertex: a name, urgency/commitment flags, and
// its invariants. Urgent and committed are mutually exclusive — setting
// one clears the other (spec.md §4.5).
type Location struct {
	ID         string
	Name       string
	Urgent     bool
	Committed  bool
	Invariants []Label
	View       map[string]any
}

// NewLocation returns a Location with the given id and name and no labels.
func NewLocation(id, name string) *Location {
	return &Location{ID: id, Name: name}
}

// SetUrgent sets or clears the urgent flag, clearing committed when set.
func (l *Location) SetUrgent(urgent bool) {
	l.Urgent = urgent
	if urgent {
		l.Committed = false
	}
}

// SetCommitted sets or clears the committed flag, clearing urgent when set.
func (l *Location) SetCommitted(committed bool) {
	l.Committed = committed
	if committed {
		l.Urgent = false
	}
}

// AddInvariant appends ast as a new invariant label.
func (l *Location) AddInvariant(ast uast.Node) {
	l.Invariants = append(l.Invariants, NewLabel(ast))
}
