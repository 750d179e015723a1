package clipboard

import (
	"errors"
	"fmt"
)

// ErrClipboardWriteFailed is the kind matched by every [*WriteError].
var ErrClipboardWriteFailed = errors.New("clipboard write failed")

// ErrNoSystemClipboard is returned by writes to the system backend on a host
// without a clipboard utility.
var ErrNoSystemClipboard = errors.New("no system clipboard utility available")

// WriteError reports a failed write to one target.
type WriteError struct {
	Target string
	Err    error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%v: target '%s': %v", ErrClipboardWriteFailed, e.Target, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrClipboardWriteFailed) hold for any *WriteError.
func (e *WriteError) Is(target error) bool {
	return target == ErrClipboardWriteFailed
}
