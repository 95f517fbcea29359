package model

import "github.com/ntasim/ntasim/uast"

// Edge connects a source location to a target location, carrying the
// guard/update/reset/select/sync labels that govern when and how it may
// fire (spec.md §4.5).
type Edge struct {
	ID     string
	Source string
	Target string

	ClockGuards    []Label
	VariableGuards []Label
	Updates        []Label
	Resets         []Label
	Selects        []Select
	Sync           *Sync
}

// NewEdge returns an Edge with the given id and endpoints and no labels.
func NewEdge(id, source, target string) *Edge {
	return &Edge{ID: id, Source: source, Target: target}
}

// AddGuard classifies ast as a clock or variable guard against clocks and
// appends it to the matching list (spec.md §4.5's classification rule).
func (e *Edge) AddGuard(ast uast.Node, clocks map[string]struct{}) {
	label := NewLabel(ast)
	if isClockExpr(ast, clocks) {
		e.ClockGuards = append(e.ClockGuards, label)
	} else {
		e.VariableGuards = append(e.VariableGuards, label)
	}
}

// AddAssignment classifies ast as a reset or a plain update against clocks
// and appends it to the matching list (spec.md §4.5: "assignment whose LHS
// is a clock ⇒ reset").
func (e *Edge) AddAssignment(ast uast.Node, clocks map[string]struct{}) {
	label := NewLabel(ast)
	if isClockAssignment(ast, clocks) {
		e.Resets = append(e.Resets, label)
	} else {
		e.Updates = append(e.Updates, label)
	}
}

// AddSelect appends a select label.
func (e *Edge) AddSelect(varName string, typeNode uast.Node) {
	e.Selects = append(e.Selects, Select{Var: varName, Type: typeNode})
}

// SetSync sets the edge's synchronization label.
func (e *Edge) SetSync(channel uast.Node, op uast.SyncOp) {
	s := NewSync(channel, op)
	e.Sync = &s
}
