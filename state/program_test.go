package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/value"
)

func TestDefine_RejectsRedefinition(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	_, err := p.Define("x", &value.Int{V: 0}, false)
	require.NoError(t, err)

	_, err = p.Define("x", &value.Int{V: 0}, false)
	require.ErrorIs(t, err, state.ErrRedefined)
}

func TestLookup_OrderLocalBeforeGlobal(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	_, err := p.Define("x", &value.Int{V: 1}, false)
	require.NoError(t, err)

	p.PushLocal("block")
	_, err = p.Define("x", &value.Int{V: 2}, false)
	require.NoError(t, err)

	v, err := p.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int32(2), v.Val.(*value.Int).V)

	require.NoError(t, p.PopLocal())
	v, err = p.Lookup("x")
	require.NoError(t, err)
	assert.Equal(t, int32(1), v.Val.(*value.Int).V)
}

func TestLookup_Undefined(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	_, err := p.Lookup("missing")
	require.ErrorIs(t, err, state.ErrUndefinedName)
}

func TestPopLocal_Underflow(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	err := p.PopLocal()
	require.ErrorIs(t, err, state.ErrStackUnderflow)
}

func TestInstanceScope_ActivateAndDefine(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	require.NoError(t, p.NewInstanceScope("P1"))
	require.NoError(t, p.ActivateInstance("P1"))

	_, err := p.Define("count", &value.Int{V: 0}, false)
	require.NoError(t, err)

	p.ActivateGlobal(false)
	_, err = p.Lookup("count")
	require.ErrorIs(t, err, state.ErrUndefinedName, "instance-scoped variable must not leak into global lookup")

	require.NoError(t, p.ActivateInstance("P1"))
	v, err := p.Lookup("count")
	require.NoError(t, err)
	assert.Equal(t, int32(0), v.Val.(*value.Int).V)
}

func TestNewInstanceScope_Duplicate(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	require.NoError(t, p.NewInstanceScope("P1"))
	err := p.NewInstanceScope("P1")
	require.ErrorIs(t, err, state.ErrDuplicateInstance)
}

func TestAssign_ConstRejected(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	_, err := p.Define("N", &value.Int{V: 3}, true)
	require.NoError(t, err)

	err = p.Assign("N", &value.Int{V: 4})
	require.ErrorIs(t, err, state.ErrConstAssign)
}

func TestResolve_WalksArrayAndStructChain(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	arr := value.NewArray(2, &value.Int{V: 0})
	st := value.NewStruct([]string{"a"}, []value.Value{&value.Int{V: 7}})
	arr.Elems[1] = st
	_, err := p.Add("data", arr, false)
	require.NoError(t, err)

	path := value.Path{
		Section: value.SectionVar,
		Scope:   value.Scope{Kind: value.ScopeGlobal},
		Name:    "data",
	}.Child(value.IndexSegment(1)).Child(value.FieldSegment("a"))

	v, err := p.Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, int32(7), v.(*value.Int).V)
}

func TestCopy_RebindsReference(t *testing.T) {
	t.Parallel()

	p := state.NewProgram()
	target, err := p.Add("x", &value.Int{V: 5}, false)
	require.NoError(t, err)

	ref := value.NewReference(target.Path)
	require.NoError(t, ref.Bind(p.Resolve))
	_, err = p.Add("r", ref, false)
	require.NoError(t, err)

	clone := p.Copy()

	// mutate the original target; the clone's target must be independent.
	target.Val.(*value.Int).V = 99

	rVar, err := clone.Lookup("r")
	require.NoError(t, err)
	rClone := rVar.Val.(*value.Reference)

	pointee, err := rClone.Deref()
	require.NoError(t, err)
	assert.Equal(t, int32(5), pointee.(*value.Int).V, "clone's reference must resolve to the clone's own copy of x")

	xVar, err := clone.Lookup("x")
	require.NoError(t, err)
	assert.Same(t, xVar.Val, pointee, "reference and direct lookup must observe the same cloned value")
}
