package value

// Clock is a named reference to a column of the system DBM; it carries no
// numeric value of its own (spec.md §3). The clock's current bounds live in
// the dbm package, keyed by Name; this type only identifies which column a
// declaration resolves to.
type Clock struct {
	Name string
}

// Kind implements Value.
func (c *Clock) Kind() Kind { return KindClock }

// Copy implements Value. Clocks are identified by name, not by instance, so
// Copy returns a value referring to the same DBM column.
func (c *Clock) Copy() Value { return &Clock{Name: c.Name} }

// GetRaw implements Value, returning the clock's name rather than a numeric
// reading; callers that need the current interval go through the dbm
// package directly.
func (c *Clock) GetRaw() interface{} { return c.Name }

// Assign implements Value. Clocks are never assigned via ordinary
// expression evaluation; resets are translated into dbm.ResetOp instead
// (spec.md §4.7).
func (c *Clock) Assign(src Value) error {
	return valueErrorf("Clock.Assign", ErrNotAssignable)
}

// ApplyBinary implements Value. Clock differences are classified and
// translated into DBM constraints by the engine before evaluation reaches
// here; a bare ApplyBinary call on a Clock is always a type error.
func (c *Clock) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Clock.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value. Clocks support no unary operator.
func (c *Clock) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Clock.ApplyUnary", ErrBadOp)
}
