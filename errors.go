package vector

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange is matched by every error returned from a checked accessor
// given an index outside [0, Size()).
var ErrOutOfRange = errors.New("vector: index out of range")

// OutOfRangeError names the rejected index and the size it was checked against.
type OutOfRangeError struct {
	Index int
	Size  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

func outOfRange(index, size int) error {
	return errors.WithStack(&OutOfRangeError{Index: index, Size: size})
}
