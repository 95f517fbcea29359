package value

import "github.com/ntasim/ntasim/uast"

// Function is an immutable binding of a parameter list, a body, and a
// declared return type (spec.md §3). The body AST is shared, not copied,
// across every call and every state.Program.Copy() — only the literal
// (param, body, returnType) triple is immutable; invoking the function
// still requires an evaluator and a fresh local scope, both supplied by
// the caller at the call site rather than carried on the value itself
// (spec.md §9, "Mutually recursive state/evaluator").
type Function struct {
	Name       string
	Params     []uast.Node
	Body       uast.Node
	ReturnType uast.Node
}

// Kind implements Value.
func (f *Function) Kind() Kind { return KindFunction }

// Copy implements Value. The AST fields are shared pointers; only the
// wrapping Function struct is duplicated.
func (f *Function) Copy() Value {
	return &Function{Name: f.Name, Params: f.Params, Body: f.Body, ReturnType: f.ReturnType}
}

// GetRaw implements Value.
func (f *Function) GetRaw() interface{} { return f.Name }

// Assign implements Value. Functions are never user-assignable.
func (f *Function) Assign(src Value) error {
	return valueErrorf("Function.Assign", ErrNotAssignable)
}

// ApplyBinary implements Value.
func (f *Function) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Function.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value.
func (f *Function) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Function.ApplyUnary", ErrBadOp)
}
