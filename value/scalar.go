package value

// Scalar is an element of a finite, unordered set of N anonymous values
// (spec.md §3), represented internally as an index into [0, N). Scalars
// support equality comparison but not arithmetic; ApplyBinary rejects every
// operator except Equal/NotEqual.
type Scalar struct {
	V int32
	N int32
}

// Kind implements Value.
func (s *Scalar) Kind() Kind { return KindScalar }

// Copy implements Value.
func (s *Scalar) Copy() Value { return &Scalar{V: s.V, N: s.N} }

// GetRaw implements Value.
func (s *Scalar) GetRaw() interface{} { return s.V }

// Assign implements Value; src must be a Scalar over the same domain size.
func (s *Scalar) Assign(src Value) error {
	other, ok := src.(*Scalar)
	if !ok || other.N != s.N {
		return valueErrorf("Scalar.Assign", ErrTypeMismatch)
	}
	if other.V < 0 || other.V >= s.N {
		return valueErrorf("Scalar.Assign", ErrOutOfRange)
	}
	s.V = other.V
	return nil
}

// ApplyBinary implements Value, supporting only equality comparisons.
func (s *Scalar) ApplyBinary(op string, rhs Value) (Value, error) {
	other, ok := rhs.(*Scalar)
	if !ok || other.N != s.N {
		return nil, valueErrorf("Scalar.ApplyBinary", ErrTypeMismatch)
	}
	switch op {
	case OpEqual:
		return &Bool{V: s.V == other.V}, nil
	case OpNotEqual:
		return &Bool{V: s.V != other.V}, nil
	default:
		return nil, valueErrorf("Scalar.ApplyBinary", ErrBadOp)
	}
}

// ApplyUnary implements Value. Scalars support no unary operator.
func (s *Scalar) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Scalar.ApplyUnary", ErrBadOp)
}
