package value

// Resolver looks up the variable Value living at a Path in the current
// program state. The state package supplies the concrete implementation;
// value never imports state, avoiding an import cycle between the two
// packages (spec.md §3, §9 "Mutually recursive state/evaluator").
type Resolver func(Path) (Value, error)

// Reference owns a Path rather than a raw pointer, so that after a state
// copy Bind can be called again with the copy's resolver to repoint the
// reference at the corresponding variable in the new tree (spec.md §3,
// §4.3 point 6).
type Reference struct {
	path    Path
	pointee Value
}

// NewReference constructs an unbound reference to path. Call Bind before
// using it for assignment, operators, or GetRaw.
func NewReference(path Path) *Reference { return &Reference{path: path} }

// Path returns the reference's stored address.
func (r *Reference) Path() Path { return r.path }

// Bind resolves the reference's path against resolve and caches the
// pointee. Called once at construction time (binding a reference
// parameter) and again after every state.Program.Copy().
func (r *Reference) Bind(resolve Resolver) error {
	v, err := resolve(r.path)
	if err != nil {
		return valueErrorf("Reference.Bind", err)
	}
	r.pointee = v
	return nil
}

// Deref returns the bound pointee, or ErrUnbound if Bind has not been
// called yet.
func (r *Reference) Deref() (Value, error) {
	if r.pointee == nil {
		return nil, valueErrorf("Reference.Deref", ErrUnbound)
	}
	return r.pointee, nil
}

// Kind implements Value.
func (r *Reference) Kind() Kind { return KindReference }

// Copy implements Value. The copy shares the same path and, if already
// bound, the same pointee; callers that copy an entire state tree rebind
// every reference explicitly afterward rather than relying on this Copy.
func (r *Reference) Copy() Value { return &Reference{path: r.path, pointee: r.pointee} }

// GetRaw implements Value, forwarding to the pointee.
func (r *Reference) GetRaw() interface{} {
	if r.pointee == nil {
		return nil
	}
	return r.pointee.GetRaw()
}

// Assign implements Value, forwarding to the pointee (spec.md §4.2).
func (r *Reference) Assign(src Value) error {
	pointee, err := r.Deref()
	if err != nil {
		return valueErrorf("Reference.Assign", err)
	}
	return pointee.Assign(src)
}

// ApplyBinary implements Value, forwarding to the pointee.
func (r *Reference) ApplyBinary(op string, rhs Value) (Value, error) {
	pointee, err := r.Deref()
	if err != nil {
		return nil, valueErrorf("Reference.ApplyBinary", err)
	}
	return pointee.ApplyBinary(op, rhs)
}

// ApplyUnary implements Value, forwarding to the pointee.
func (r *Reference) ApplyUnary(op string) (Value, error) {
	pointee, err := r.Deref()
	if err != nil {
		return nil, valueErrorf("Reference.ApplyUnary", err)
	}
	return pointee.ApplyUnary(op)
}
