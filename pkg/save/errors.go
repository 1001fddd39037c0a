package save

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateCoordinate reports a coordinate listed twice in a record.
	ErrDuplicateCoordinate = errors.New("save: duplicate coordinate")
	// ErrMalformed reports a save document that is not valid JSON of the
	// expected shape.
	ErrMalformed = errors.New("save: malformed record")
	// ErrPersistenceIO wraps failures of the underlying file or database.
	ErrPersistenceIO = errors.New("save: persistence i/o")
	// ErrNotFound reports a store that holds no save yet.
	ErrNotFound = fmt.Errorf("%w: no save found", ErrPersistenceIO)
)

func ioErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistenceIO, op, err)
}
