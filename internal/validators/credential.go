package validators

import (
	"context"
	"os"
	"strings"

	"github.com/MKhiriev/passout/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldName targets the credential name.
	FieldName = "name"

	// FieldStoragePath targets the on-disk location of the credential.
	FieldStoragePath = "storage_path"
)

// CredentialValidator enforces the rules that keep a credential name usable
// as a single file name inside the store directory. The group separator is
// deliberately not inspected: it only affects display.
type CredentialValidator struct {
}

// NewCredentialValidator constructs a [Validator] for credential names.
func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

// Validate accepts a models.Credential (or pointer), or a bare name string.
func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case string:
		return v.validateCredential(ctx, models.Credential{Name: value}, FieldName)

	case models.Credential:
		return v.validateCredential(ctx, value, fields...)
	case *models.Credential:
		return v.validateCredential(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validateCredential(_ context.Context, c models.Credential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldStoragePath}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := validateName(c.Name); err != nil {
				return err
			}
		case FieldStoragePath:
			if c.StoragePath == "" {
				return ErrInvalidStoragePath
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	switch {
	case name == "":
		return ErrEmptyCredentialName
	case name == "." || name == "..":
		return ErrNameIsDotEntry
	case strings.ContainsRune(name, 0):
		return ErrNameHasNUL
	case strings.ContainsRune(name, '/') || strings.ContainsRune(name, os.PathSeparator):
		return ErrNameHasSeparator
	}

	return nil
}
