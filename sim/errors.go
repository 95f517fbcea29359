package sim

import (
	"errors"
	"fmt"
)

// ErrNoHistory indicates a Back/Forward/Goto request outside the range of
// steps actually recorded.
var ErrNoHistory = errors.New("sim: no such history entry")

func simErrorf(op string, err error) error {
	return fmt.Errorf("sim: %s: %w", op, err)
}
