package sim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/fixture"
	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/model"
	"github.com/ntasim/ntasim/sim"
	"github.com/ntasim/ntasim/uast"
)

func processList(names ...string) uast.Node {
	return uast.System{ProcessNames: [][]string{names}}
}

func twoStepSystem(t *testing.T) *model.System {
	t.Helper()
	sys, err := fixture.New(
		fixture.Template("P",
			fixture.Location("A"),
			fixture.Location("B"),
			fixture.Location("C"),
			fixture.Edge("A", "B"),
			fixture.Edge("B", "C"),
		),
		fixture.WithSystemDecl(processList("P")),
	)
	require.NoError(t, err)
	return sys
}

func newSimulator(t *testing.T, sys *model.System) *sim.Simulator {
	t.Helper()
	prog, d, instances, err := instantiate.Materialize(sys, eval.New())
	require.NoError(t, err)
	s0 := engine.NewState(sys, prog, d, instances)
	return sim.New(engine.New(eval.New(), 7, nil), s0, nil)
}

func TestSimulator_StepAdvancesHistory(t *testing.T) {
	t.Parallel()

	s := newSimulator(t, twoStepSystem(t))
	assert.Equal(t, 0, s.Cursor())

	_, _, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, 2, s.Depth())
	assert.Len(t, s.Trace(), 1)
}

func TestSimulator_BackAndForward(t *testing.T) {
	t.Parallel()

	s := newSimulator(t, twoStepSystem(t))
	_, _, err := s.Step()
	require.NoError(t, err)
	_, _, err = s.Step()
	require.NoError(t, err)
	require.Equal(t, 2, s.Cursor())

	_, err = s.Back(1)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cursor())

	_, err = s.Forward(1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Cursor())

	_, err = s.Forward(1)
	assert.ErrorIs(t, err, sim.ErrNoHistory)
}

func TestSimulator_FireFromPastCursorDiscardsFuture(t *testing.T) {
	t.Parallel()

	s := newSimulator(t, twoStepSystem(t))
	_, _, err := s.Step()
	require.NoError(t, err)
	_, _, err = s.Step()
	require.NoError(t, err)
	require.Equal(t, 2, s.Cursor())

	_, err = s.Back(2)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Cursor())

	outcomes, err := s.Transitions()
	require.NoError(t, err)
	require.Len(t, outcomes, 1)

	_, _, err = s.Fire(0)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Cursor())
	assert.Equal(t, 2, s.Depth())

	_, err = s.Forward(1)
	assert.ErrorIs(t, err, sim.ErrNoHistory)
}

func TestSimulator_RandomStopsOnDeadlock(t *testing.T) {
	t.Parallel()

	s := newSimulator(t, twoStepSystem(t))
	states, trace, err := s.Random(10)
	require.NoError(t, err)
	assert.Len(t, states, 2)
	assert.Len(t, trace, 2)
}

func TestSimulator_GotoOutOfRange(t *testing.T) {
	t.Parallel()

	s := newSimulator(t, twoStepSystem(t))
	_, err := s.Goto(5)
	assert.ErrorIs(t, err, sim.ErrNoHistory)
}
