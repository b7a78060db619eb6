package export

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat is returned for a format name with no registered encoder.
var ErrUnknownFormat = errors.New("unknown export format")

// Error reports a failed export. Op is the step that failed: encode, create,
// write or rename.
type Error struct {
	Op     string
	Format string
	Path   string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("export %s: %s %s: %v", e.Format, e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
