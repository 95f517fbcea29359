package sim_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/engine"
	"github.com/ntasim/ntasim/eval"
	"github.com/ntasim/ntasim/instantiate"
	"github.com/ntasim/ntasim/sim"
)

const rendezvousYAML = `
name: rendezvous
seed: 3
channels:
  - name: ch
templates:
  - name: Sender
    locations:
      - name: Idle
        initial: true
      - name: Sent
    edges:
      - from: Idle
        to: Sent
        sync_channel: ch
        sync_emit: true
  - name: Receiver
    locations:
      - name: Idle
        initial: true
      - name: Got
    edges:
      - from: Idle
        to: Got
        sync_channel: ch
`

func TestLoadScenario_RendezvousBuildsAndRuns(t *testing.T) {
	t.Parallel()

	spec, err := sim.LoadScenario(strings.NewReader(rendezvousYAML))
	require.NoError(t, err)
	assert.Equal(t, "rendezvous", spec.Name)

	sys, err := spec.ToSystem()
	require.NoError(t, err)
	require.Contains(t, sys.Templates, "Sender")
	require.Contains(t, sys.Templates, "Receiver")

	prog, d, instances, err := instantiate.Materialize(sys, eval.New())
	require.NoError(t, err)
	s0 := engine.NewState(sys, prog, d, instances)

	eng := engine.New(eval.New(), spec.Seed, nil)
	outcomes, err := eng.Transitions(s0)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	assert.Len(t, outcomes[0].Transition.Fired, 2)
}

func TestLoadScenario_DefaultComposition(t *testing.T) {
	t.Parallel()

	spec, err := sim.LoadScenario(strings.NewReader(`
name: solo
templates:
  - name: P
    locations:
      - name: Idle
        initial: true
`))
	require.NoError(t, err)

	sys, err := spec.ToSystem()
	require.NoError(t, err)

	_, _, instances, err := instantiate.Materialize(sys, eval.New())
	require.NoError(t, err)
	require.Len(t, instances, 1)
	assert.Equal(t, "P", instances[0].Name)
}
