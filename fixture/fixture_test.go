package fixture_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/fixture"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/uast"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func TestNew_BuildsSingleTemplateWithEdge(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.WithIDFunc(sequentialIDs()),
		fixture.Template("Sender",
			fixture.Decl(uast.VariableDecls{
				Type:    uast.Type{TypeID: uast.CustomType{Name: "clock"}},
				VarData: []uast.VariableID{{VarName: "x"}},
			}),
			fixture.Location("Idle"),
			fixture.Location("Sending", fixture.Urgent()),
			fixture.Edge("Idle", "Sending",
				fixture.Guard(uast.BinaryExpr{Op: uast.OpGreaterEqual, Left: uast.Variable{Name: "x"}, Right: uast.Integer{Val: 2}}),
				fixture.Assign(uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: "x"}, Right: uast.Integer{Val: 0}}),
				fixture.SyncEmit(uast.Variable{Name: "go"}),
			),
		),
	)
	require.NoError(t, err)

	tmpl, err := sys.Template("Sender")
	require.NoError(t, err)
	assert.Len(t, tmpl.Locations, 2)
	assert.Len(t, tmpl.Edges, 1)

	idle, ok := tmpl.Locations[tmpl.Initial]
	require.True(t, ok)
	assert.Equal(t, "Idle", idle.Name)

	var edge *model.Edge
	for _, e := range tmpl.Edges {
		edge = e
	}
	require.Len(t, edge.ClockGuards, 1)
	require.Len(t, edge.Resets, 1)
	require.NotNil(t, edge.Sync)
	assert.Equal(t, "go!", edge.Sync.Text)
}

func TestNew_InitialOverride(t *testing.T) {
	t.Parallel()

	sys, err := fixture.New(
		fixture.Template("T",
			fixture.Location("A"),
			fixture.Location("B"),
			fixture.Initial("B"),
		),
	)
	require.NoError(t, err)

	tmpl, err := sys.Template("T")
	require.NoError(t, err)
	assert.Equal(t, "B", tmpl.Locations[tmpl.Initial].Name)
}

func TestNew_RejectsDanglingEdge(t *testing.T) {
	t.Parallel()

	_, err := fixture.New(
		fixture.Template("T",
			fixture.Location("A"),
			fixture.Edge("A", "Missing"),
		),
	)
	require.ErrorIs(t, err, model.ErrLocationNotFound)
}

func TestNew_RejectsEmptySystem(t *testing.T) {
	t.Parallel()

	_, err := fixture.New()
	require.ErrorIs(t, err, fixture.ErrNoTemplates)
}

func TestNew_RejectsNilOption(t *testing.T) {
	t.Parallel()

	_, err := fixture.New(nil)
	require.ErrorIs(t, err, fixture.ErrNilOption)
}
