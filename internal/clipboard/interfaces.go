// Package clipboard places decrypted secrets on the desktop clipboard and
// wipes them again after a delay.
//
// With the default xclip backend a secret is written to all three X
// selections (primary, secondary and clipboard), each through its own xclip
// process, so that it can be pasted by either middle click or the paste
// shortcut. The system backend writes the single platform clipboard.
package clipboard

import (
	"context"

	"github.com/MKhiriev/passout/internal/config"
)

// Target is one clipboard destination.
type Target interface {
	// Name identifies the target in errors and logs.
	Name() string

	// Write replaces the target's content with data. Empty data clears it.
	Write(ctx context.Context, data []byte) error
}

// SecretSource resolves a credential name to its plaintext.
type SecretSource interface {
	Get(ctx context.Context, profile config.Profile, name string) ([]byte, error)
}
