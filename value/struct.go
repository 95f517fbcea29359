package value

// Struct is an ordered, named collection of fields (spec.md §3). Field
// order is preserved for fieldwise assignment and for GetRaw's stable
// output ordering.
type Struct struct {
	order  []string
	fields map[string]Value
}

// NewStruct builds a Struct from field names (in declaration order) and
// their initial values.
func NewStruct(names []string, values []Value) *Struct {
	s := &Struct{order: append([]string(nil), names...), fields: make(map[string]Value, len(names))}
	for i, n := range names {
		s.fields[n] = values[i]
	}
	return s
}

// Kind implements Value.
func (s *Struct) Kind() Kind { return KindStruct }

// Copy implements Value, deep-copying every field.
func (s *Struct) Copy() Value {
	out := &Struct{order: append([]string(nil), s.order...), fields: make(map[string]Value, len(s.fields))}
	for _, n := range s.order {
		out.fields[n] = s.fields[n].Copy()
	}
	return out
}

// GetRaw implements Value.
func (s *Struct) GetRaw() interface{} {
	raw := make(map[string]interface{}, len(s.order))
	for _, n := range s.order {
		raw[n] = s.fields[n].GetRaw()
	}
	return raw
}

// Assign implements Value; assigns fieldwise in declared order, requiring
// the same field set (spec.md §4.2).
func (s *Struct) Assign(src Value) error {
	other, ok := src.(*Struct)
	if !ok || len(other.order) != len(s.order) {
		return valueErrorf("Struct.Assign", ErrTypeMismatch)
	}
	for _, n := range s.order {
		ov, ok := other.fields[n]
		if !ok {
			return valueErrorf("Struct.Assign", ErrTypeMismatch)
		}
		if err := s.fields[n].Assign(ov); err != nil {
			return valueErrorf("Struct.Assign", err)
		}
	}
	return nil
}

// ApplyBinary implements Value. Structs support no binary operator; Dot
// access is handled at the evaluator level, not here.
func (s *Struct) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Struct.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value.
func (s *Struct) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Struct.ApplyUnary", ErrBadOp)
}

// Field returns the named field's value, or ErrUndefinedMember if name is
// not one of the struct's declared fields.
func (s *Struct) Field(name string) (Value, error) {
	v, ok := s.fields[name]
	if !ok {
		return nil, valueErrorf("Struct.Field", ErrUndefinedMember)
	}
	return v, nil
}

// FieldNames returns the struct's field names in declaration order.
func (s *Struct) FieldNames() []string { return append([]string(nil), s.order...) }
