package value

import (
	"errors"
	"fmt"
)

// Sentinel errors for the value package (spec.md §4.2). Use errors.Is to
// branch on semantics; never match on message text.
var (
	// ErrDivByZero indicates integer division or modulo by zero.
	ErrDivByZero = errors.New("value: division by zero")

	// ErrOutOfRange indicates a bounded-int or scalar assignment outside its
	// declared domain.
	ErrOutOfRange = errors.New("value: value out of range")

	// ErrTypeMismatch indicates an array/struct assignment of incompatible
	// shape, or a binary operator applied to incompatible value kinds.
	ErrTypeMismatch = errors.New("value: type mismatch")

	// ErrBadOp indicates an operator not supported on the receiver's kind
	// (e.g. unary "!" on a non-bool, any operator on clock/chan/function).
	ErrBadOp = errors.New("value: unsupported operator")

	// ErrNotAssignable indicates an assignment attempt on a clock, chan, or
	// function value, which are never user-assignable.
	ErrNotAssignable = errors.New("value: not assignable")

	// ErrOutOfBounds indicates an array index outside [0, length).
	ErrOutOfBounds = errors.New("value: index out of bounds")

	// ErrUndefinedMember indicates a struct field name that does not exist.
	ErrUndefinedMember = errors.New("value: undefined member")

	// ErrUnbound indicates an operation on a Reference before it has been
	// bound to a pointee via Bind.
	ErrUnbound = errors.New("value: reference is unbound")
)

// valueErrorf wraps err with an operation-name prefix, preserving errors.Is
// compatibility via %w.
func valueErrorf(op string, err error) error {
	return fmt.Errorf("value: %s: %w", op, err)
}
