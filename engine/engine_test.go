package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/dbm"
	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/fixture"
	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
)

func clockType() uast.Node { return uast.Type{TypeID: uast.CustomType{Name: "clock"}} }

func chanType(prefixes ...string) uast.Node {
	return uast.Type{Prefixes: prefixes, TypeID: uast.CustomType{Name: "chan"}}
}

func decl(typ uast.Node, names ...string) uast.Node {
	varData := make([]uast.VariableID, len(names))
	for i, n := range names {
		varData[i] = uast.VariableID{VarName: n}
	}
	return uast.VariableDecls{Type: typ, VarData: varData}
}

func geq(name string, k int64) uast.Node {
	return uast.BinaryExpr{Op: uast.OpGreaterEqual, Left: uast.Variable{Name: name}, Right: uast.Integer{Val: k}}
}

func resetTo(name string, k int64) uast.Node {
	return uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: name}, Right: uast.Integer{Val: k}}
}

func processList(names ...string) uast.Node {
	return uast.System{ProcessNames: [][]string{names}}
}

func locByName(tmpl *model.Template, name string) string {
	for id, loc := range tmpl.Locations {
		if loc.Name == name {
			return id
		}
	}
	return ""
}

func build(t *testing.T, sys *model.System) (*engine.State, *engine.Engine) {
	t.Helper()
	prog, d, instances, err := instantiate.Materialize(sys, eval.New())
	require.NoError(t, err)
	s := engine.NewState(sys, prog, d, instances)
	return s, eng(t)
}

func eng(t *testing.T) *engine.Engine {
	t.Helper()
	return engine.New(eval.New(), 1, nil)
}

func TestTransitions_SilentEdgeGuardAndReset(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.Template("P",
			fixture.Decl(decl(clockType(), "x")),
			fixture.Location("Idle"),
			fixture.Location("Done"),
			fixture.Edge("Idle", "Done",
				fixture.Guard(geq("x", 0)),
				fixture.Assign(resetTo("x", 0)),
			),
		),
		fixture.WithSystemDecl(processList("P")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	next := outcomes[0].Next
	require.Len(t, next.Instances, 1)
	assert.Equal(t, locByName(sys.Templates["P"], "Done"), next.Instances[0].Active)
	require.Len(t, outcomes[0].Transition.Fired, 1)
	assert.Equal(t, "P", outcomes[0].Transition.Fired[0].Instance)
	assert.Empty(t, outcomes[0].Transition.Fired[0].Select)
	assert.NotEmpty(t, outcomes[0].Transition.Ops)
}

func TestTransitions_BinarySyncMovesBothInstances(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.WithGlobalDecl(decl(chanType(), "ch")),
		fixture.Template("Sender",
			fixture.Location("Idle"),
			fixture.Location("Sent"),
			fixture.Edge("Idle", "Sent", fixture.SyncEmit(uast.Variable{Name: "ch"})),
		),
		fixture.Template("Receiver",
			fixture.Location("Idle"),
			fixture.Location("Got"),
			fixture.Edge("Idle", "Got", fixture.SyncListen(uast.Variable{Name: "ch"})),
		),
		fixture.WithSystemDecl(processList("Sender", "Receiver")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	next := outcomes[0].Next
	for _, inst := range next.Instances {
		switch inst.Name {
		case "Sender":
			assert.Equal(t, locByName(sys.Templates["Sender"], "Sent"), inst.Active)
		case "Receiver":
			assert.Equal(t, locByName(sys.Templates["Receiver"], "Got"), inst.Active)
		}
	}
	assert.Len(t, outcomes[0].Transition.Fired, 2)
}

func TestTransitions_BroadcastEnumeratesListenerSubsets(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.WithGlobalDecl(decl(chanType("broadcast"), "bc")),
		fixture.Template("Sender",
			fixture.Location("Idle"),
			fixture.Location("Sent"),
			fixture.Edge("Idle", "Sent", fixture.SyncEmit(uast.Variable{Name: "bc"})),
		),
		fixture.Template("Receiver",
			fixture.Location("Idle"),
			fixture.Location("Got"),
			fixture.Edge("Idle", "Got", fixture.SyncListen(uast.Variable{Name: "bc"})),
		),
		fixture.WithSystemDecl(
			uast.Instantiation{InstanceName: "R1", TemplateName: "Receiver"},
			uast.Instantiation{InstanceName: "R2", TemplateName: "Receiver"},
			processList("Sender", "R1", "R2"),
		),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	// one potential transition per subset of {R1, R2} choosing to listen or not: 2*2 = 4.
	assert.Len(t, outcomes, 4)

	var sawBoth bool
	for _, o := range outcomes {
		if len(o.Transition.Fired) == 3 {
			sawBoth = true
		}
	}
	assert.True(t, sawBoth, "expected one outcome where both receivers hear the broadcast")
}

func TestTransitions_CommittedFilterDropsOtherInstances(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.Template("C",
			fixture.Location("Busy", fixture.Committed()),
			fixture.Location("Free"),
			fixture.Edge("Busy", "Free"),
		),
		fixture.Template("Idle",
			fixture.Location("A"),
			fixture.Location("B"),
			fixture.Edge("A", "B"),
		),
		fixture.WithSystemDecl(processList("C", "Idle")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Len(t, outcomes[0].Transition.Fired, 1)
	assert.Equal(t, "C", outcomes[0].Transition.Fired[0].Instance)
}

func TestStep_DeterministicWithSingleOutcome(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.Template("P",
			fixture.Location("Idle"),
			fixture.Location("Done"),
			fixture.Edge("Idle", "Done"),
		),
		fixture.WithSystemDecl(processList("P")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	next, tr, err := e.Step(s)
	require.NoError(t, err)
	require.NotNil(t, tr)
	assert.Equal(t, locByName(sys.Templates["P"], "Done"), next.Instances[0].Active)
}

func hasDelayFuture(ops dbm.OpLog) bool {
	for _, op := range ops {
		if _, ok := op.(dbm.DelayFutureOp); ok {
			return true
		}
	}
	return false
}

func TestTransitions_UrgentChannelFreezesTime(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.WithGlobalDecl(decl(chanType("urgent"), "ch")),
		fixture.Template("Sender",
			fixture.Location("Idle"),
			fixture.Location("Sent"),
			fixture.Edge("Idle", "Sent", fixture.SyncEmit(uast.Variable{Name: "ch"})),
		),
		fixture.Template("Receiver",
			fixture.Location("Idle"),
			fixture.Location("Got"),
			fixture.Edge("Idle", "Got", fixture.SyncListen(uast.Variable{Name: "ch"})),
		),
		fixture.WithSystemDecl(processList("Sender", "Receiver")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.False(t, hasDelayFuture(outcomes[0].Transition.Ops),
		"firing an urgent channel must suppress DelayFutureOp even though neither target location is urgent")
}

func TestTransitions_NonUrgentChannelAllowsTimeToPass(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.WithGlobalDecl(decl(chanType(), "ch")),
		fixture.Template("Sender",
			fixture.Location("Idle"),
			fixture.Location("Sent"),
			fixture.Edge("Idle", "Sent", fixture.SyncEmit(uast.Variable{Name: "ch"})),
		),
		fixture.Template("Receiver",
			fixture.Location("Idle"),
			fixture.Location("Got"),
			fixture.Edge("Idle", "Got", fixture.SyncListen(uast.Variable{Name: "ch"})),
		),
		fixture.WithSystemDecl(processList("Sender", "Receiver")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	outcomes, err := e.Transitions(s)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.True(t, hasDelayFuture(outcomes[0].Transition.Ops))
}

func TestFire_IndexOutOfRange(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.Template("P",
			fixture.Location("Idle"),
			fixture.Location("Done"),
			fixture.Edge("Idle", "Done"),
		),
		fixture.WithSystemDecl(processList("P")),
	)
	require.NoError(t, err)

	s, e := build(t, sys)
	_, _, err = e.Fire(s, 5)
	assert.ErrorIs(t, err, engine.ErrNoSuchTransition)
}
