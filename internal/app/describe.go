package app

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/passout/internal/clipboard"
	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/process"
	"github.com/MKhiriev/passout/internal/store"
	"github.com/MKhiriev/passout/internal/tui"
	"github.com/MKhiriev/passout/internal/validators"
)

// messageRule maps an error kind to its message. Rules are checked in order,
// so more specific kinds come before the kinds that wrap them.
type messageRule struct {
	target error
	format string
}

var messageRules = []messageRule{
	{validators.ErrInvalidCredentialName, MsgInvalidCredentialName},
	{config.ErrMissingIdentity, MsgMissingIdentity},
	{config.ErrConfiguration, MsgConfiguration},
	{store.ErrBadVaultLayout, MsgBadVaultLayout},
	{clipboard.ErrClipboardWriteFailed, MsgClipboardWriteFailed},
	{process.ErrToolNotFound, MsgToolNotFound},
	{process.ErrToolFailed, MsgToolFailed},
}

// Describe returns the message printed for err. It returns "" for nil.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	var credErr *store.CredentialError
	if errors.As(err, &credErr) {
		switch {
		case errors.Is(credErr.Err, store.ErrCredentialNotFound):
			return fmt.Sprintf(MsgCredentialNotFound, credErr.Name)
		case errors.Is(credErr.Err, store.ErrCredentialAlreadyExists):
			return fmt.Sprintf(MsgCredentialAlreadyExists, credErr.Name)
		}
	}

	switch {
	case errors.Is(err, ErrEmptySecret):
		return MsgEmptySecret
	case errors.Is(err, tui.ErrNothingToBrowse):
		return MsgNothingToBrowse
	}

	for _, rule := range messageRules {
		if errors.Is(err, rule.target) {
			return fmt.Sprintf(rule.format, err)
		}
	}

	return fmt.Sprintf(MsgUnexpected, err)
}
