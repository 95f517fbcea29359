package dbm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/dbm"
)

func TestOpLog_String(t *testing.T) {
	t.Parallel()

	seq := dbm.OpLog{
		dbm.ResetOp{Clock: "t", Val: 0},
		dbm.ConstraintOp{Clock1: "x", Clock2: "y", Rel: "<=", Val: 3},
		dbm.DelayFutureOp{},
		dbm.CloseOp{},
	}
	assert.Equal(t, "Reset(t := 0)\nConstraint(x - y <= 3)\nDelayFuture()\nClose()", seq.String())
}

func TestGenerateConstraint_EqualityFlattens(t *testing.T) {
	t.Parallel()

	ops := dbm.GenerateConstraint("x", dbm.RefClock, "==", 5)
	require.Len(t, ops, 2)
	assert.Equal(t, "<=", ops[0].(dbm.ConstraintOp).Rel)
	assert.Equal(t, ">=", ops[1].(dbm.ConstraintOp).Rel)
}

// Testable property 8: replaying an op sequence against a fresh DBM
// reproduces the same matrix as applying the operations live.
func TestReplay_MatchesLiveApplication(t *testing.T) {
	t.Parallel()

	clocks := []string{"x", "y"}
	seq := dbm.OpLog{
		dbm.ConstraintOp{Clock1: "x", Clock2: "y", Rel: "<=", Val: 3},
		dbm.CloseOp{},
		dbm.ResetOp{Clock: "y", Val: 1},
	}

	live := dbm.New(clocks, true)
	require.NoError(t, seq.Apply(live))

	replayed, err := dbm.Replay(clocks, seq)
	require.NoError(t, err)

	ivX, _ := live.GetInterval("x")
	ivXReplayed, _ := replayed.GetInterval("x")
	assert.Equal(t, ivX, ivXReplayed)

	ivY, _ := live.GetInterval("y")
	ivYReplayed, _ := replayed.GetInterval("y")
	assert.Equal(t, ivY, ivYReplayed)
}

func TestOpLog_Apply_PropagatesError(t *testing.T) {
	t.Parallel()

	seq := dbm.OpLog{dbm.ResetOp{Clock: "nope", Val: 0}}
	d := dbm.New([]string{"x"}, true)
	err := seq.Apply(d)
	assert.ErrorIs(t, err, dbm.ErrUnknownClock)
}
