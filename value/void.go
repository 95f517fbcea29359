package value

// Void is the result of a statement or function call that produces no
// value (spec.md §3). It is a singleton-shaped type: every Void behaves
// identically regardless of instance.
type Void struct{}

// Kind implements Value.
func (Void) Kind() Kind { return KindVoid }

// Copy implements Value.
func (Void) Copy() Value { return Void{} }

// GetRaw implements Value.
func (Void) GetRaw() interface{} { return nil }

// Assign implements Value. Void is never assignable.
func (Void) Assign(src Value) error {
	return valueErrorf("Void.Assign", ErrNotAssignable)
}

// ApplyBinary implements Value.
func (Void) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Void.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value.
func (Void) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Void.ApplyUnary", ErrBadOp)
}
