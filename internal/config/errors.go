package config

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the kind shared by every configuration failure.
// Callers should match it with [errors.Is]; the more specific errors below
// all wrap it.
var ErrConfiguration = errors.New("configuration error")

var (
	// ErrConfigNotFound indicates that the profile file does not exist.
	ErrConfigNotFound = fmt.Errorf("%w: config file not found", ErrConfiguration)
	// ErrMalformedConfig indicates that the profile file is not valid JSON
	// or could not be read.
	ErrMalformedConfig = fmt.Errorf("%w: malformed config file", ErrConfiguration)
	// ErrUnknownConfigKey indicates a key outside the profile schema.
	ErrUnknownConfigKey = fmt.Errorf("%w: unknown key", ErrConfiguration)
	// ErrMissingIdentity indicates that the required "id" key is absent or
	// empty.
	ErrMissingIdentity = fmt.Errorf("%w: please set 'id' (your gpg identity)", ErrConfiguration)
	// ErrInvalidClipClearDelay indicates a negative "clip_clear_time".
	ErrInvalidClipClearDelay = fmt.Errorf("%w: clip_clear_time must be >= 0", ErrConfiguration)
	// ErrInvalidClipBackend indicates an unsupported "clip_backend".
	ErrInvalidClipBackend = fmt.Errorf("%w: unsupported clip_backend", ErrConfiguration)
	// ErrEmptyToolPath indicates an explicitly blank tool path.
	ErrEmptyToolPath = fmt.Errorf("%w: tool paths must not be empty", ErrConfiguration)
	// ErrEmptyHome indicates that no vault root could be determined.
	ErrEmptyHome = fmt.Errorf("%w: vault home directory is not set", ErrConfiguration)
)
