package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
)

func clockDecl(names ...string) uast.VariableDecls {
	ids := make([]uast.VariableID, len(names))
	for i, n := range names {
		ids[i] = uast.VariableID{VarName: n}
	}
	return uast.VariableDecls{Type: uast.Type{TypeID: uast.CustomType{Name: "clock"}}, VarData: ids}
}

func TestLocation_UrgentCommittedMutuallyExclusive(t *testing.T) {
	t.Parallel()

	loc := model.NewLocation("loc-0", "Idle")
	loc.SetCommitted(true)
	assert.True(t, loc.Committed)
	assert.False(t, loc.Urgent)

	loc.SetUrgent(true)
	assert.True(t, loc.Urgent)
	assert.False(t, loc.Committed)
}

func TestTemplate_ClockNamesFromDeclAndParameters(t *testing.T) {
	t.Parallel()

	tmpl := model.NewTemplate("tmpl-0", "Sender")
	tmpl.Decls = []uast.Node{clockDecl("x", "y")}
	tmpl.Parameters = []model.Parameter{
		{Name: "z", IsRef: false, Type: uast.CustomType{Name: "clock"}},
		{Name: "n", IsRef: false, Type: uast.CustomType{Name: "int"}},
	}

	clocks := tmpl.ClockNames()
	assert.Contains(t, clocks, "x")
	assert.Contains(t, clocks, "y")
	assert.Contains(t, clocks, "z")
	assert.NotContains(t, clocks, "n")
}

func TestTemplate_ParameterShadowsClockDecl(t *testing.T) {
	t.Parallel()

	tmpl := model.NewTemplate("tmpl-0", "Sender")
	tmpl.Decls = []uast.Node{clockDecl("x")}
	tmpl.Parameters = []model.Parameter{
		{Name: "x", IsRef: false, Type: uast.CustomType{Name: "int"}},
	}

	clocks := tmpl.ClockNames()
	assert.NotContains(t, clocks, "x")
}

func TestEdge_ClassifiesClockVsVariableGuard(t *testing.T) {
	t.Parallel()

	clocks := map[string]struct{}{"x": {}}
	e := model.NewEdge("edge-0", "loc-0", "loc-1")

	e.AddGuard(uast.BinaryExpr{Op: uast.OpLessEqual, Left: uast.Variable{Name: "x"}, Right: uast.Integer{Val: 5}}, clocks)
	e.AddGuard(uast.BinaryExpr{Op: uast.OpGreaterThan, Left: uast.Variable{Name: "n"}, Right: uast.Integer{Val: 0}}, clocks)

	require.Len(t, e.ClockGuards, 1)
	require.Len(t, e.VariableGuards, 1)
	assert.Equal(t, "x <= 5", e.ClockGuards[0].Text)
	assert.Equal(t, "n > 0", e.VariableGuards[0].Text)
}

func TestEdge_ClassifiesResetVsUpdate(t *testing.T) {
	t.Parallel()

	clocks := map[string]struct{}{"t": {}}
	e := model.NewEdge("edge-0", "loc-0", "loc-1")

	e.AddAssignment(uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: "t"}, Right: uast.Integer{Val: 0}}, clocks)
	e.AddAssignment(uast.AssignExpr{Op: uast.OpAddAssign, Left: uast.Variable{Name: "count"}, Right: uast.Integer{Val: 1}}, clocks)

	require.Len(t, e.Resets, 1)
	require.Len(t, e.Updates, 1)
	assert.Equal(t, "t = 0", e.Resets[0].Text)
	assert.Equal(t, "count += 1", e.Updates[0].Text)
}

func TestEdge_Sync(t *testing.T) {
	t.Parallel()

	e := model.NewEdge("edge-0", "loc-0", "loc-1")
	e.SetSync(uast.Variable{Name: "ch"}, uast.SyncEmit)
	require.NotNil(t, e.Sync)
	assert.Equal(t, "ch!", e.Sync.Text)
}

func TestTemplate_AddEdgeRejectsDanglingEndpoint(t *testing.T) {
	t.Parallel()

	tmpl := model.NewTemplate("tmpl-0", "Sender")
	require.NoError(t, tmpl.AddLocation(model.NewLocation("loc-0", "Idle")))

	err := tmpl.AddEdge(model.NewEdge("edge-0", "loc-0", "loc-missing"))
	require.ErrorIs(t, err, model.ErrDanglingEdge)
}

func TestTemplate_AddLocationRejectsDuplicate(t *testing.T) {
	t.Parallel()

	tmpl := model.NewTemplate("tmpl-0", "Sender")
	require.NoError(t, tmpl.AddLocation(model.NewLocation("loc-0", "Idle")))

	err := tmpl.AddLocation(model.NewLocation("loc-0", "Other"))
	require.ErrorIs(t, err, model.ErrDuplicateLocation)
}

func TestTemplate_ValidateRequiresInitialLocation(t *testing.T) {
	t.Parallel()

	tmpl := model.NewTemplate("tmpl-0", "Sender")
	require.NoError(t, tmpl.AddLocation(model.NewLocation("loc-0", "Idle")))

	err := tmpl.Validate()
	require.ErrorIs(t, err, model.ErrNoInitialLocation)

	tmpl.Initial = "loc-0"
	require.NoError(t, tmpl.Validate())
}

func TestSystem_AddTemplateRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	sys := model.NewSystem()
	require.NoError(t, sys.AddTemplate(model.NewTemplate("tmpl-0", "Sender")))

	err := sys.AddTemplate(model.NewTemplate("tmpl-1", "Sender"))
	require.ErrorIs(t, err, model.ErrDuplicateTemplate)
}
