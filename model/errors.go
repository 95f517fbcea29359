package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateLocation indicates two locations in the same template
	// share an id.
	ErrDuplicateLocation = errors.New("model: duplicate location id")

	// ErrDuplicateEdge indicates two edges in the same template share an id.
	ErrDuplicateEdge = errors.New("model: duplicate edge id")

	// ErrDuplicateTemplate indicates two templates in a system share a name.
	ErrDuplicateTemplate = errors.New("model: duplicate template name")

	// ErrLocationNotFound indicates a reference to a location id the
	// template does not own.
	ErrLocationNotFound = errors.New("model: location not found")

	// ErrTemplateNotFound indicates a reference to a template name the
	// system does not own.
	ErrTemplateNotFound = errors.New("model: template not found")

	// ErrNoInitialLocation indicates a template has no initial location set.
	ErrNoInitialLocation = errors.New("model: template has no initial location")

	// ErrDanglingEdge indicates an edge's source or target id does not
	// resolve to a location in the same template.
	ErrDanglingEdge = errors.New("model: edge endpoint does not resolve to a location")
)

func modelErrorf(op string, err error) error {
	return fmt.Errorf("model: %s: %w", op, err)
}
