package instantiate

import (
	"errors"
	"fmt"
)

// ErrNoComposition indicates a system declaration with no System node, so
// there is no process list to instantiate.
var ErrNoComposition = errors.New("instantiate: system declaration has no process list")

// ErrUnknownProcess indicates a composition-list name that matches neither
// a collected Instantiation nor a template name on the system.
var ErrUnknownProcess = errors.New("instantiate: unknown process name")

// ErrUnrangedParameter indicates a template parameter whose type has no
// finite enumerable domain (not a bounded int or scalar), encountered
// while enumerating a multi-instance template.
var ErrUnrangedParameter = errors.New("instantiate: parameter type is not rangeable")

// ErrArgCountMismatch indicates an Instantiation whose argument count does
// not match its template's parameter count.
var ErrArgCountMismatch = errors.New("instantiate: argument count does not match template parameters")

func instantiateErrorf(op string, err error) error {
	return fmt.Errorf("instantiate: %s: %w", op, err)
}
