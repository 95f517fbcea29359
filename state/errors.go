package state

import (
	"errors"
	"fmt"
)

// Sentinel errors for the state package (spec.md §4.3). Use errors.Is to
// branch on semantics; never match on message text.
var (
	// ErrRedefined indicates a define() call naming an identifier already
	// present in the active scope.
	ErrRedefined = errors.New("state: name already defined in scope")

	// ErrStackUnderflow indicates popLocal called with no local scope on
	// the stack.
	ErrStackUnderflow = errors.New("state: no local scope to pop")

	// ErrUndefinedName indicates a lookup for a name not found in any
	// scope the lookup order visits.
	ErrUndefinedName = errors.New("state: undefined name")

	// ErrUnknownInstance indicates an operation naming an instance scope
	// that was never created via NewInstanceScope.
	ErrUnknownInstance = errors.New("state: unknown instance scope")

	// ErrDuplicateInstance indicates NewInstanceScope called twice for
	// the same instance name.
	ErrDuplicateInstance = errors.New("state: instance scope already exists")

	// ErrConstAssign indicates an assignment attempt on a variable
	// declared const.
	ErrConstAssign = errors.New("state: cannot assign to const variable")

	// ErrNoActiveScope indicates an operation that requires an active
	// instance scope when none is set and the global scope was not
	// explicitly selected.
	ErrNoActiveScope = errors.New("state: no active scope")
)

// stateErrorf wraps err with an operation-name prefix, preserving errors.Is
// compatibility via %w.
func stateErrorf(op string, err error) error {
	return fmt.Errorf("state: %s: %w", op, err)
}
