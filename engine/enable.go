package engine

import (
	"sort"

	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/value"
)

// filterCommitted implements Stage 2: if any instance's current active
// location is committed, every potential transition none of whose
// candidates fires out of a committed location is dropped.
func filterCommitted(s *State, potentials []potential) []potential {
	committed := false
	for _, inst := range s.Instances {
		if s.activeLocation(inst).Committed {
			committed = true
			break
		}
	}
	if !committed {
		return potentials
	}

	out := make([]potential, 0, len(potentials))
	for _, p := range potentials {
		for _, c := range p.Candidates {
			if s.activeLocation(c.Instance).Committed {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// withCandidateScope activates c's instance on target, pushes a local
// frame binding c's select valuation, runs fn, then unconditionally pops
// and deactivates — the scope every guard/update/reset evaluation for c
// runs under.
func (e *Engine) withCandidateScope(target *State, c candidate, fn func() error) error {
	if err := target.Prog.ActivateInstance(c.Instance.Name); err != nil {
		return err
	}
	target.Prog.PushLocal("")
	defer func() {
		_ = target.Prog.PopLocal()
		target.Prog.ActivateGlobal(false)
	}()
	for name, v := range c.Select {
		if _, err := target.Prog.Define(name, v.Copy(), false); err != nil {
			return err
		}
	}
	return fn()
}

func boolOf(v value.Value) (bool, bool) {
	b, ok := v.(*value.Bool)
	if !ok {
		return false, false
	}
	return b.V, true
}

// evalVariableGuards evaluates c's variable guards (spec.md §4.7 Stage
// 3.2) under c's scope, AND-ing them together. An evaluation error or a
// non-boolean result is reported as a non-nil err (pass is then not
// meaningful); the caller treats a non-nil err, like pass=false, as a
// candidate-local discard.
func (e *Engine) evalVariableGuards(target *State, c candidate) (pass bool, err error) {
	pass = true
	err = e.withCandidateScope(target, c, func() error {
		for _, g := range c.Edge.VariableGuards {
			v, evalErr := e.ev.Eval(g.AST, target.Prog)
			if evalErr != nil {
				return evalErr
			}
			b, ok := boolOf(v)
			if !ok {
				return ErrBadClockGuard
			}
			if !b {
				pass = false
				return nil
			}
		}
		return nil
	})
	return pass, err
}

// translateClockGuards translates c's clock guards (Stage 3.3) into a
// flat ConstraintOp sequence under c's scope.
func (e *Engine) translateClockGuards(target *State, c candidate) (dbm.OpLog, error) {
	var ops dbm.OpLog
	err := e.withCandidateScope(target, c, func() error {
		for _, g := range c.Edge.ClockGuards {
			clock1, clock2, rel, val, err := translateClockConstraint(e.ev, target.Prog, g.AST)
			if err != nil {
				return err
			}
			ops = append(ops, dbm.GenerateConstraint(clock1, clock2, rel, val)...)
		}
		return nil
	})
	return ops, err
}

// fireUpdates evaluates c's non-clock updates (Stage 4) under c's scope
// for their side effects against target.
func (e *Engine) fireUpdates(target *State, c candidate) error {
	return e.withCandidateScope(target, c, func() error {
		for _, u := range c.Edge.Updates {
			if _, err := e.ev.Eval(u.AST, target.Prog); err != nil {
				return err
			}
		}
		return nil
	})
}

// fireResets translates c's clock resets (Stage 4) into ResetOps under
// c's scope.
func (e *Engine) fireResets(target *State, c candidate) (dbm.OpLog, error) {
	var ops dbm.OpLog
	err := e.withCandidateScope(target, c, func() error {
		for _, r := range c.Edge.Resets {
			op, err := translateReset(e.ev, target.Prog, r.AST)
			if err != nil {
				return err
			}
			ops = append(ops, op)
		}
		return nil
	})
	return ops, err
}

// invariantConstraintsSorted translates every active location's
// invariants (Stage 5) into a flat ConstraintOp sequence, in
// instance-name order.
func (e *Engine) invariantConstraintsSorted(target *State) (dbm.OpLog, error) {
	names := make([]string, len(target.Instances))
	for i, inst := range target.Instances {
		names[i] = inst.Name
	}
	sort.Strings(names)

	var ops dbm.OpLog
	for _, name := range names {
		inst := target.instance(name)
		loc := target.activeLocation(inst)
		if len(loc.Invariants) == 0 {
			continue
		}
		if err := target.Prog.ActivateInstance(inst.Name); err != nil {
			return nil, err
		}
		for _, inv := range loc.Invariants {
			clock1, clock2, rel, val, err := translateClockConstraint(e.ev, target.Prog, inv.AST)
			if err != nil {
				target.Prog.ActivateGlobal(false)
				return nil, err
			}
			ops = append(ops, dbm.GenerateConstraint(clock1, clock2, rel, val)...)
		}
		target.Prog.ActivateGlobal(false)
	}
	return ops, nil
}

// enable runs Stages 3-6 of spec.md §4.7 for one potential transition.
// ok=false with a nil error is a non-fatal discard; a non-nil error is a
// SimulationError that must abort the whole step.
func (e *Engine) enable(s *State, p potential) (*Outcome, bool, error) {
	target := s.Copy()
	var ops dbm.OpLog

	for _, c := range p.Candidates {
		pass, err := e.evalVariableGuards(target, c)
		if err != nil || !pass {
			return nil, false, nil
		}
		guardOps, err := e.translateClockGuards(target, c)
		if err != nil {
			return nil, false, simulationErrorf("enable: clock guard", err)
		}
		ops = append(ops, guardOps...)
	}

	closing := append(dbm.OpLog{}, ops...)
	closing = append(closing, dbm.CloseOp{})
	if err := closing.Apply(target.DBM); err != nil {
		return nil, false, simulationErrorf("enable: apply clock guards", err)
	}
	ops = closing
	if target.DBM.IsEmpty() {
		return nil, false, nil
	}

	for _, c := range p.Candidates {
		inst := target.instance(c.Instance.Name)
		inst.Active = c.Edge.Target
	}

	var postGuardOps dbm.OpLog
	for _, c := range p.Candidates {
		if err := e.fireUpdates(target, c); err != nil {
			return nil, false, nil
		}
		resetOps, err := e.fireResets(target, c)
		if err != nil {
			return nil, false, simulationErrorf("enable: reset", err)
		}
		postGuardOps = append(postGuardOps, resetOps...)
	}
	if err := postGuardOps.Apply(target.DBM); err != nil {
		return nil, false, simulationErrorf("enable: apply resets", err)
	}
	ops = append(ops, postGuardOps...)

	urgentOrCommitted := false
	for _, inst := range target.Instances {
		loc := target.activeLocation(inst)
		if loc.Urgent || loc.Committed {
			urgentOrCommitted = true
			break
		}
	}
	for _, c := range p.Candidates {
		if c.Chan != nil && c.Chan.Urgent {
			urgentOrCommitted = true
			break
		}
	}

	var tail dbm.OpLog
	if !urgentOrCommitted {
		tail = append(tail, dbm.DelayFutureOp{})
	}
	invOps, err := e.invariantConstraintsSorted(target)
	if err != nil {
		return nil, false, simulationErrorf("enable: invariant", err)
	}
	tail = append(tail, invOps...)
	tail = append(tail, dbm.CloseOp{})
	if err := tail.Apply(target.DBM); err != nil {
		return nil, false, simulationErrorf("enable: apply invariants", err)
	}
	if target.DBM.IsEmpty() {
		return nil, false, nil
	}
	ops = append(ops, tail...)

	fired := make([]FiredEdge, len(p.Candidates))
	for i, c := range p.Candidates {
		fired[i] = FiredEdge{Instance: c.Instance.Name, EdgeID: c.Edge.ID, Select: c.Select}
	}
	return &Outcome{Transition: Transition{Fired: fired, Ops: ops}, Next: target}, true, nil
}
