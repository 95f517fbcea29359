package uprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/uprint"
)

func TestPrint_ClockGuard(t *testing.T) {
	t.Parallel()

	n := uast.BinaryExpr{
		Op:   uast.OpLessEqual,
		Left: uast.BinaryExpr{Op: uast.OpSub, Left: uast.Variable{Name: "x"}, Right: uast.Variable{Name: "y"}},
		Right: uast.Integer{Val: 3},
	}
	assert.Equal(t, "x - y <= 3", uprint.Print(n))
}

func TestPrint_DotAndArrayAccess(t *testing.T) {
	t.Parallel()

	n := uast.BinaryExpr{
		Op:   uast.OpDot,
		Left: uast.BinaryExpr{Op: uast.OpArrayAccess, Left: uast.Variable{Name: "data"}, Right: uast.Integer{Val: 0}},
		Right: uast.Variable{Name: "count"},
	}
	assert.Equal(t, "data[0].count", uprint.Print(n))
}

func TestPrint_Reset(t *testing.T) {
	t.Parallel()

	n := uast.AssignExpr{Op: uast.OpAssign, Left: uast.Variable{Name: "t"}, Right: uast.Integer{Val: 0}}
	assert.Equal(t, "t = 0", uprint.Print(n))
}

func TestPrint_Sync(t *testing.T) {
	t.Parallel()

	n := uast.Sync{Channel: uast.Variable{Name: "ch"}, Op: uast.SyncEmit}
	assert.Equal(t, "ch!", uprint.Print(n))
}

func TestPrint_UnsupportedNodeRendersTag(t *testing.T) {
	t.Parallel()

	n := uast.StatementBlock{}
	assert.Equal(t, "<StatementBlock>", uprint.Print(n))
}
