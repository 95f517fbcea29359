package uprint

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ntasim/ntasim/uast"
)

// binOps maps a canonical binary operator tag to its Uppaal C surface
// token. Dot and ArrayAccess are handled structurally, not via this table.
var binOps = map[string]string{
	uast.OpAdd:          "+",
	uast.OpSub:          "-",
	uast.OpMult:         "*",
	uast.OpDiv:          "/",
	uast.OpMod:          "%",
	uast.OpLShift:       "<<",
	uast.OpRShift:       ">>",
	uast.OpMinimum:      "<?",
	uast.OpMaximum:      ">?",
	uast.OpLogAnd:       "&&",
	uast.OpLogOr:        "||",
	uast.OpLogImply:     "imply",
	uast.OpBitAnd:       "&",
	uast.OpBitOr:        "|",
	uast.OpBitXor:       "^",
	uast.OpLessThan:     "<",
	uast.OpLessEqual:    "<=",
	uast.OpEqual:        "==",
	uast.OpNotEqual:     "!=",
	uast.OpGreaterEqual: ">=",
	uast.OpGreaterThan:  ">",
}

var assignOps = map[string]string{
	uast.OpAssign:       "=",
	uast.OpAddAssign:    "+=",
	uast.OpSubAssign:    "-=",
	uast.OpMultAssign:   "*=",
	uast.OpDivAssign:    "/=",
	uast.OpModAssign:    "%=",
	uast.OpLShiftAssign: "<<=",
	uast.OpRShiftAssign: ">>=",
	uast.OpBitAndAssign: "&=",
	uast.OpBitOrAssign:  "|=",
	uast.OpBitXorAssign: "^=",
}

var unaryOps = map[string]string{
	uast.OpPlus:   "+",
	uast.OpMinus:  "-",
	uast.OpLogNot: "!",
}

// Print renders n as Uppaal-like C syntax. Unsupported node kinds render as
// "<astType>" rather than panicking, since uprint only needs to cover the
// subset the engine touches (§4.13).
func Print(n uast.Node) string {
	if n == nil {
		return ""
	}
	switch v := n.(type) {
	case uast.Integer:
		return strconv.FormatInt(v.Val, 10)
	case uast.Double:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case uast.Boolean:
		if v.Val {
			return "true"
		}
		return "false"
	case uast.Variable:
		return v.Name

	case uast.BinaryExpr:
		switch v.Op {
		case uast.OpDot:
			return Print(v.Left) + "." + Print(v.Right)
		case uast.OpArrayAccess:
			return fmt.Sprintf("%s[%s]", Print(v.Left), Print(v.Right))
		}
		sym, ok := binOps[v.Op]
		if !ok {
			sym = v.Op
		}
		return fmt.Sprintf("%s %s %s", Print(v.Left), sym, Print(v.Right))

	case uast.UnaryExpr:
		sym, ok := unaryOps[v.Op]
		if !ok {
			sym = v.Op
		}
		return sym + Print(v.Expr)

	case uast.TernaryExpr:
		return fmt.Sprintf("%s ? %s : %s", Print(v.Left), Print(v.Middle), Print(v.Right))

	case uast.AssignExpr:
		sym, ok := assignOps[v.Op]
		if !ok {
			sym = v.Op
		}
		return fmt.Sprintf("%s %s %s", Print(v.Left), sym, Print(v.Right))

	case uast.IncrDecrExpr:
		op := "++"
		if !v.Incr {
			op = "--"
		}
		if v.Pre {
			return op + Print(v.Expr)
		}
		return Print(v.Expr) + op

	case uast.FuncCallExpr:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = Print(a)
		}
		return fmt.Sprintf("%s(%s)", v.Name, strings.Join(args, ", "))

	case uast.ForAll:
		return fmt.Sprintf("forall (%s : %s) %s", v.Var, Print(v.Bound), Print(v.Body))
	case uast.Exists:
		return fmt.Sprintf("exists (%s : %s) %s", v.Var, Print(v.Bound), Print(v.Body))
	case uast.Sum:
		return fmt.Sprintf("sum (%s : %s) %s", v.Var, Print(v.Bound), Print(v.Body))

	case uast.BoundedIntType:
		return fmt.Sprintf("int[%s,%s]", Print(v.Lower), Print(v.Upper))
	case uast.ScalarType:
		return fmt.Sprintf("scalar[%s]", Print(v.Expr))
	case uast.CustomType:
		return v.Name

	case uast.Invariant:
		return Print(v.Expr)
	case uast.Guard:
		return Print(v.Expr)
	case uast.Update:
		return Print(v.Expr)
	case uast.Select:
		return fmt.Sprintf("%s : %s", v.Var, Print(v.Type))
	case uast.Sync:
		return Print(v.Channel) + string(v.Op)

	default:
		return fmt.Sprintf("<%s>", n.ASTType())
	}
}

// Join renders a label list (e.g. an edge's several variable guards) joined
// by the separator Uppaal editors use between conjuncts on one label line.
func Join(nodes []uast.Node, sep string) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = Print(n)
	}
	return strings.Join(parts, sep)
}
