package fixture

import (
	"errors"
	"fmt"
)

// ErrNilOption indicates a nil SystemOption/TemplateOption/LocationOption/
// EdgeOption slot, which would otherwise panic when applied.
var ErrNilOption = errors.New("fixture: nil option")

// ErrNoTemplates indicates a System built with zero templates.
var ErrNoTemplates = errors.New("fixture: system has no templates")

func fixtureErrorf(op string, err error) error {
	return fmt.Errorf("fixture: %s: %w", op, err)
}
