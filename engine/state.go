package engine

import (
	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/state"
)

// State is a complete simulation snapshot: the loaded system, the scoped
// variable tree, the DBM over every discovered clock, and the instance
// list with each instance's current active location (spec.md §3's
// SystemState).
type State struct {
	Sys       *model.System
	Prog      *state.Program
	DBM       *dbm.DBM
	Instances []*instantiate.Instance
}

// NewState wraps the output of instantiate.Materialize into a State ready
// to step.
func NewState(sys *model.System, prog *state.Program, d *dbm.DBM, instances []*instantiate.Instance) *State {
	return &State{Sys: sys, Prog: prog, DBM: d, Instances: instances}
}

// Copy returns an independent deep copy: a fresh Program (references
// rebound against it), a fresh DBM, and fresh Instance records. Sys and
// each Instance's Template are immutable after load and are shared, not
// copied (spec.md §5's "function-body ASTs are shared" extends to the
// whole static model).
func (s *State) Copy() *State {
	instances := make([]*instantiate.Instance, len(s.Instances))
	for i, inst := range s.Instances {
		instances[i] = &instantiate.Instance{Name: inst.Name, Template: inst.Template, Active: inst.Active}
	}
	return &State{
		Sys:       s.Sys,
		Prog:      s.Prog.Copy(),
		DBM:       s.DBM.Copy(),
		Instances: instances,
	}
}

// instance looks up an instance by name, or nil if absent.
func (s *State) instance(name string) *instantiate.Instance {
	for _, inst := range s.Instances {
		if inst.Name == name {
			return inst
		}
	}
	return nil
}

// activeLocation resolves an instance's current Location.
func (s *State) activeLocation(inst *instantiate.Instance) *model.Location {
	return inst.Template.Locations[inst.Active]
}
