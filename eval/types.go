package eval

import (
	"github.com/ntasim/ntasim/state"
	"github.com/ntasim/ntasim/uast"
	"github.com/ntasim/ntasim/value"
)

// typeInfo is the result of evaluating a type node: enough to construct a
// fresh zero value and to know the storage-class prefixes that govern
// const/meta/broadcast/urgent handling (spec.md §4.4's
// "StructType/BoundedIntType/ScalarType/CustomType/ArrayDecl/FieldDecl").
type typeInfo struct {
	prefixes []string
	zero     func() value.Value
}

func (e *Evaluator) evalType(node uast.Node, prog *state.Program) (typeInfo, error) {
	switch n := node.(type) {
	case uast.Type:
		inner, err := e.evalType(n.TypeID, prog)
		if err != nil {
			return typeInfo{}, err
		}
		inner.prefixes = n.Prefixes
		return inner, nil

	case uast.CustomType:
		return e.evalCustomType(n.Name)

	case uast.BoundedIntType:
		lowV, err := e.Eval(n.Lower, prog)
		if err != nil {
			return typeInfo{}, err
		}
		highV, err := e.Eval(n.Upper, prog)
		if err != nil {
			return typeInfo{}, err
		}
		lo, err := intOf(lowV)
		if err != nil {
			return typeInfo{}, badOperand(uast.TagBoundedIntType, err)
		}
		hi, err := intOf(highV)
		if err != nil {
			return typeInfo{}, badOperand(uast.TagBoundedIntType, err)
		}
		return typeInfo{zero: func() value.Value {
			return &value.BoundedInt{V: int32(lo), Lo: int32(lo), Hi: int32(hi)}
		}}, nil

	case uast.ScalarType:
		sizeV, err := e.Eval(n.Expr, prog)
		if err != nil {
			return typeInfo{}, err
		}
		size, err := intOf(sizeV)
		if err != nil {
			return typeInfo{}, badOperand(uast.TagScalarType, err)
		}
		return typeInfo{zero: func() value.Value { return &value.Scalar{V: 0, N: int32(size)} }}, nil

	case uast.StructType:
		names := make([]string, 0, len(n.Fields))
		zeros := make([]func() value.Value, 0, len(n.Fields))
		for _, field := range n.Fields {
			fi, err := e.evalType(field.Type, prog)
			if err != nil {
				return typeInfo{}, err
			}
			zero := e.wrapArrayDims(fi.zero, field.ArrayDecl, prog)
			names = append(names, field.Name)
			zeros = append(zeros, zero)
		}
		return typeInfo{zero: func() value.Value {
			vals := make([]value.Value, len(zeros))
			for i, z := range zeros {
				vals[i] = z()
			}
			return value.NewStruct(names, vals)
		}}, nil

	default:
		return typeInfo{}, unknownNode(node.ASTType())
	}
}

func (e *Evaluator) evalCustomType(name string) (typeInfo, error) {
	switch name {
	case "int":
		return typeInfo{zero: func() value.Value { return &value.Int{} }}, nil
	case "bool":
		return typeInfo{zero: func() value.Value { return &value.Bool{} }}, nil
	case "clock":
		return typeInfo{zero: func() value.Value { return &value.Clock{} }}, nil
	case "chan":
		return typeInfo{zero: func() value.Value { return &value.Chan{} }}, nil
	case "void":
		return typeInfo{zero: func() value.Value { return value.Void{} }}, nil
	default:
		return typeInfo{}, badOperand(uast.TagCustomType, value.ErrUndefinedMember)
	}
}

// wrapArrayDims wraps a scalar zero constructor in one value.Array layer
// per declared dimension, outermost dimension first, matching how
// VariableID/FieldDecl attach ArrayDecl to a base type.
func (e *Evaluator) wrapArrayDims(zero func() value.Value, dims []uast.Node, prog *state.Program) func() value.Value {
	if len(dims) == 0 {
		return zero
	}
	inner := e.wrapArrayDims(zero, dims[1:], prog)
	dim := dims[0]
	return func() value.Value {
		n, err := e.Eval(dim, prog)
		if err != nil {
			return value.Void{}
		}
		size, err := intOf(n)
		if err != nil {
			return value.Void{}
		}
		return value.NewArray(int(size), inner())
	}
}

// typeDomain enumerates every value a bounded-int or scalar type ranges
// over, used by Iteration, ForAll, Exists, and Sum. Array, struct, clock,
// chan, and function types have no finite enumerable domain.
func (e *Evaluator) typeDomain(node uast.Node, prog *state.Program) ([]value.Value, error) {
	ti, err := e.evalType(node, prog)
	if err != nil {
		return nil, err
	}
	sample := ti.zero()
	switch v := sample.(type) {
	case *value.BoundedInt:
		domain := make([]value.Value, 0, v.Hi-v.Lo+1)
		for i := v.Lo; i <= v.Hi; i++ {
			domain = append(domain, &value.BoundedInt{V: i, Lo: v.Lo, Hi: v.Hi})
		}
		return domain, nil
	case *value.Scalar:
		domain := make([]value.Value, 0, v.N)
		for i := int32(0); i < v.N; i++ {
			domain = append(domain, &value.Scalar{V: i, N: v.N})
		}
		return domain, nil
	default:
		return nil, value.ErrBadOp
	}
}

// TypeDomain is the exported form of typeDomain. The instantiate package
// uses it to enumerate the Cartesian product of a ranged template's
// parameter domains (spec.md §4.6).
func (e *Evaluator) TypeDomain(node uast.Node, prog *state.Program) ([]value.Value, error) {
	return e.typeDomain(node, prog)
}

// EvalType is the exported form of evalType, returning only the zero-value
// constructor. The instantiate package uses it to build a value parameter's
// storage slot before assigning an argument or enumerated tuple value into
// it (mirrors Call's value-parameter branch).
func (e *Evaluator) EvalType(node uast.Node, prog *state.Program) (func() value.Value, error) {
	ti, err := e.evalType(node, prog)
	if err != nil {
		return nil, err
	}
	return ti.zero, nil
}
