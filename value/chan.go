package value

// Chan is a named synchronization channel carrying the broadcast/urgent
// flags that the engine's candidate-enumeration stage reads to decide
// pairing and time-passage rules (spec.md §3, §4.7).
type Chan struct {
	Name      string
	Broadcast bool
	Urgent    bool
}

// Kind implements Value.
func (c *Chan) Kind() Kind { return KindChan }

// Copy implements Value.
func (c *Chan) Copy() Value { return &Chan{Name: c.Name, Broadcast: c.Broadcast, Urgent: c.Urgent} }

// GetRaw implements Value.
func (c *Chan) GetRaw() interface{} { return c.Name }

// Assign implements Value. Channels are never user-assignable.
func (c *Chan) Assign(src Value) error {
	return valueErrorf("Chan.Assign", ErrNotAssignable)
}

// ApplyBinary implements Value. Channels support no operators; the `!`/`?`
// synchronization operators are parsed as part of the Sync label, not as
// value-level binary operators.
func (c *Chan) ApplyBinary(op string, rhs Value) (Value, error) {
	return nil, valueErrorf("Chan.ApplyBinary", ErrBadOp)
}

// ApplyUnary implements Value.
func (c *Chan) ApplyUnary(op string) (Value, error) {
	return nil, valueErrorf("Chan.ApplyUnary", ErrBadOp)
}
