package value

// Int is a 32-bit signed integer value (spec.md §3). Values are always
// stored behind a pointer (*Int implements Value) so that Assign and the
// increment/decrement helpers can mutate the owning variable's value in
// place, matching how array elements and struct fields must observe
// mutations made through a reference.
type Int struct {
	V int32
}

// Kind implements Value.
func (i *Int) Kind() Kind { return KindInt }

// Copy implements Value.
func (i *Int) Copy() Value { return &Int{V: i.V} }

// GetRaw implements Value.
func (i *Int) GetRaw() interface{} { return i.V }

// Assign implements Value; src is coerced via asInt32.
func (i *Int) Assign(src Value) error {
	v, ok := asInt32(src)
	if !ok {
		return valueErrorf("Int.Assign", ErrTypeMismatch)
	}
	i.V = v
	return nil
}

// ApplyBinary implements Value.
func (i *Int) ApplyBinary(op string, rhs Value) (Value, error) { return applyNumericKind(op, i, rhs) }

// ApplyUnary implements Value. Only Plus, Minus, and BitNot apply to int.
func (i *Int) ApplyUnary(op string) (Value, error) {
	switch op {
	case OpPlus:
		return &Int{V: i.V}, nil
	case OpMinus:
		return &Int{V: -i.V}, nil
	case OpBitNot:
		return &Int{V: ^i.V}, nil
	default:
		return nil, valueErrorf("Int.ApplyUnary", ErrBadOp)
	}
}

// PreIncr increments the value in place and returns the new value.
func (i *Int) PreIncr() Value { i.V++; return &Int{V: i.V} }

// PostIncr increments the value in place and returns the pre-increment value.
func (i *Int) PostIncr() Value { old := i.V; i.V++; return &Int{V: old} }

// PreDecr decrements the value in place and returns the new value.
func (i *Int) PreDecr() Value { i.V--; return &Int{V: i.V} }

// PostDecr decrements the value in place and returns the pre-decrement value.
func (i *Int) PostDecr() Value { old := i.V; i.V--; return &Int{V: old} }
