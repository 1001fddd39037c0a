package life

import "errors"

var (
	// ErrInvalidDimensions reports a grid with non-positive rows or columns.
	ErrInvalidDimensions = errors.New("life: invalid dimensions")
	// ErrInvalidCoordinate reports a malformed coordinate or one outside the
	// grid during construction or load.
	ErrInvalidCoordinate = errors.New("life: invalid coordinate")
	// ErrOutOfBounds reports a mutation aimed outside the grid.
	ErrOutOfBounds = errors.New("life: position out of bounds")
	// ErrUnknownRule reports a rule variant name that is not registered.
	ErrUnknownRule = errors.New("life: unknown rule variant")
	// ErrInvalidGeneration reports a negative generation counter.
	ErrInvalidGeneration = errors.New("life: invalid generation")
)
