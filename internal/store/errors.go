package store

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by [Vault] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrCredentialNotFound is returned when an operation targets a name
	// that has no file in the store directory.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialAlreadyExists is returned when Add targets a name that
	// is already stored.
	ErrCredentialAlreadyExists = errors.New("credential already exists")

	// ErrBadVaultLayout is returned when the vault root or the store
	// directory exists but is not a directory.
	ErrBadVaultLayout = errors.New("bad vault layout")
)

// CredentialError carries the offending credential name together with the
// failure kind.
type CredentialError struct {
	Name string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("%v: '%s'", e.Err, e.Name)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}
