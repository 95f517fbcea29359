package state

import "github.com/ntasim/ntasim/value"

// Variable owns a value and the path that identifies its storage location
// (spec.md §3). Paths propagate into nested values: an array element or
// struct field variable is never materialized separately, but a Path
// pointing at one is built by appending a segment to the owning
// Variable's Path (see value.Path.Child).
type Variable struct {
	Name  string
	Val   value.Value
	Path  value.Path
	Const bool
}

// Assign overwrites the variable's value via value.Value.Assign, rejecting
// the attempt outright if the variable is const (spec.md §4.3).
func (v *Variable) Assign(src value.Value) error {
	if v.Const {
		return stateErrorf("Variable.Assign", ErrConstAssign)
	}
	if err := v.Val.Assign(src); err != nil {
		return stateErrorf("Variable.Assign", err)
	}
	return nil
}
