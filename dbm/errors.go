package dbm

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dbm package. Callers MUST use errors.Is to branch
// on semantics; messages are not part of the contract.
var (
	// ErrUnknownClock indicates an operation referenced a clock name that is
	// not part of the DBM's clock set.
	ErrUnknownClock = errors.New("dbm: unknown clock")

	// ErrDimensionMismatch indicates two DBMs do not share the same clock
	// ordering and cannot be combined (Includes/Intersect).
	ErrDimensionMismatch = errors.New("dbm: dimension mismatch")

	// ErrBadRelation indicates a relation token outside {<, <=, >, >=, ==}.
	ErrBadRelation = errors.New("dbm: unsupported relation")

	// ErrEmptyInterval indicates draw_integer found no integer point in the
	// clock's interval.
	ErrEmptyInterval = errors.New("dbm: empty interval")

	// ErrNilDBM indicates a nil *DBM receiver or argument.
	ErrNilDBM = errors.New("dbm: nil DBM")

	// ErrUnknownOp indicates an operation-log entry with an unrecognized kind,
	// encountered only when replaying a hand-built or corrupted log.
	ErrUnknownOp = errors.New("dbm: unknown operation")
)

// dbmErrorf wraps err with an operation-name prefix, preserving errors.Is
// compatibility via %w.
func dbmErrorf(op string, err error) error {
	return fmt.Errorf("dbm: %s: %w", op, err)
}
