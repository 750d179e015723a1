package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidCredentialName is the kind matched by every name rule below.
	ErrInvalidCredentialName = errors.New("invalid credential name")
)

var (
	ErrEmptyCredentialName = fmt.Errorf("%w: name is empty", ErrInvalidCredentialName)
	ErrNameHasSeparator    = fmt.Errorf("%w: name contains a path separator", ErrInvalidCredentialName)
	ErrNameHasNUL          = fmt.Errorf("%w: name contains a NUL byte", ErrInvalidCredentialName)
	ErrNameIsDotEntry      = fmt.Errorf("%w: name is a directory entry", ErrInvalidCredentialName)
	ErrInvalidStoragePath  = errors.New("invalid credential storage path")
)
