package dbm

import "fmt"

// Op is one DBM mutation in a transition's replayable operation record
// (spec.md §3/§4.8: Reset, Constraint, DelayFuture, Close). Sequences are
// flat — a "==" constraint expands into two Constraint ops before being
// appended, never into a nested sequence.
type Op interface {
	// Apply performs the operation against d in place.
	Apply(d *DBM) error
	// String renders the operation as its compact textual form, e.g.
	// "Reset(t := 0)", "Constraint(x - y <= 3)".
	String() string
}

// ResetOp resets a clock to an exact value.
type ResetOp struct {
	Clock string
	Val   int64
}

// Apply implements Op.
func (o ResetOp) Apply(d *DBM) error { return d.Reset(o.Clock, o.Val) }

func (o ResetOp) String() string {
	return fmt.Sprintf("Reset(%s := %d)", o.Clock, o.Val)
}

// ConstraintOp conjugates clock1 - clock2 Rel Val into the DBM without
// closing it; the engine batches ConstraintOps and applies a single
// CloseOp afterward.
type ConstraintOp struct {
	Clock1, Clock2 string
	Rel            string
	Val            int64
}

// Apply implements Op.
func (o ConstraintOp) Apply(d *DBM) error {
	return d.Conjugate(o.Clock1, o.Clock2, o.Rel, o.Val)
}

func (o ConstraintOp) String() string {
	lhs := o.Clock1
	if o.Clock2 != RefClock && o.Clock2 != "" {
		lhs = fmt.Sprintf("%s - %s", o.Clock1, o.Clock2)
	}
	return fmt.Sprintf("Constraint(%s %s %d)", lhs, o.Rel, o.Val)
}

// DelayFutureOp lets time pass (spec.md §4.7 Stage 5, non-urgent target).
type DelayFutureOp struct{}

// Apply implements Op.
func (o DelayFutureOp) Apply(d *DBM) error { d.DelayFuture(); return nil }

func (o DelayFutureOp) String() string { return "DelayFuture()" }

// CloseOp canonicalizes the DBM; always the last op of a batch.
type CloseOp struct{}

// Apply implements Op.
func (o CloseOp) Apply(d *DBM) error { d.Canonicalize(); return nil }

func (o CloseOp) String() string { return "Close()" }

// GenerateConstraint mirrors the original simulator's constraint generator:
// for rel "==" it flattens into two ConstraintOps ("<=" then ">="); for any
// other relation it returns a single ConstraintOp (">"/">=" are normalized
// by DBM.Conjugate itself, so no swap is needed here).
func GenerateConstraint(clock1, clock2, rel string, val int64) []Op {
	if rel == "==" {
		return []Op{
			ConstraintOp{Clock1: clock1, Clock2: clock2, Rel: "<=", Val: val},
			ConstraintOp{Clock1: clock1, Clock2: clock2, Rel: ">=", Val: val},
		}
	}
	return []Op{ConstraintOp{Clock1: clock1, Clock2: clock2, Rel: rel, Val: val}}
}

// OpLog is a flat, ordered, replayable sequence of Ops — the audit log a
// Transition records for its DBM mutations (spec.md §3).
type OpLog []Op

// Apply runs every op in sequence against d, stopping at the first error.
func (seq OpLog) Apply(d *DBM) error {
	for _, op := range seq {
		if err := op.Apply(d); err != nil {
			return dbmErrorf("OpLog.Apply", err)
		}
	}
	return nil
}

// String joins each op's textual form on its own line.
func (seq OpLog) String() string {
	out := ""
	for i, op := range seq {
		if i > 0 {
			out += "\n"
		}
		out += op.String()
	}
	return out
}

// Replay builds a fresh zero-initialized DBM over clocks and applies seq to
// it, giving the concrete form of testable property #8 ("the sequence is
// replayable: given a zero-initialized DBM over the same clock ordering,
// replaying the sequence yields the same matrix as applying the
// transitions"). Supplements spec.md §4.8 with the entry point the original
// simulator exposed as DBMOperationGenerator.generate_from_program.
func Replay(clocks []string, seq OpLog) (*DBM, error) {
	d := New(clocks, true)
	if err := seq.Apply(d); err != nil {
		return nil, dbmErrorf("Replay", err)
	}
	return d, nil
}
