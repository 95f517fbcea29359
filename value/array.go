package value

// Array is a fixed-length, uniformly-typed value (spec.md §3). Indexing is
// zero-based: eval sizes an array from an integer dimension value and
// indexes it with the raw int value, so no lower-bound offset from a
// bounded-int or scalar index type is applied anywhere.
type Array struct {
	Elems []Value
}

// NewArray builds an Array of length n, filling every slot with a copy of
// zero (the element type's default value).
func NewArray(n int, zero Value) *Array {
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = zero.Copy()
	}
	return &Array{Elems: elems}
}

// Kind implements Value.
func (a *Array) Kind() Kind { return KindArray }

// Copy implements Value, deep-copying every element.
func (a *Array) Copy() Value {
	out := &Array{Elems: make([]Value, len(a.Elems))}
	for i, e := range a.Elems {
		out.Elems[i] = e.Copy()
	}
	return out
}

// GetRaw implements Value.
func (a *Array) GetRaw() interface{} {
	raw := make([]interface{}, len(a.Elems))
	for i, e := range a.Elems {
		raw[i] = e.GetRaw()
	}
	return raw
}

// Assign implements Value; assigns elementwise if lengths match, else
// ErrTypeMismatch (spec.md §4.2).
func (a *Array) Assign(src Value) error {
	other, ok := src.(*Array)
	if !ok || len(other.Elems) != len(a.Elems) {
		return valueErrorf("Array.Assign", ErrTypeMismatch)
	}
	for i, e := range other.Elems {
		if err := a.Elems[i].Assign(e); err != nil {
			return valueErrorf("Array.Assign", err)
		}
	}
	return nil
}

// ApplyBinary implements Value. Arrays support no binary operator;
// ArrayAccess is handled at the evaluator level, not here.
func (a *Array) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Array.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value.
func (a *Array) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Array.ApplyUnary", ErrBadOp)
}

// At returns the element at index i, or ErrOutOfBounds if i is outside
// [0, len(Elems)).
func (a *Array) At(i int) (Value, error) {
	if i < 0 || i >= len(a.Elems) {
		return nil, valueErrorf("Array.At", ErrOutOfBounds)
	}
	return a.Elems[i], nil
}

// Len reports the array's fixed length.
func (a *Array) Len() int { return len(a.Elems) }
