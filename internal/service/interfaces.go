// Package service composes the vault, the name grouper and the clipboard
// pipeline into the operations offered by the command line.
package service

import (
	"context"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/grouper"
	"github.com/MKhiriev/passout/models"
)

// CredentialStore is the subset of the vault used by [CredentialService].
type CredentialStore interface {
	List(ctx context.Context) ([]string, error)
	Add(ctx context.Context, profile config.Profile, name string, secret []byte) error
	Remove(ctx context.Context, name string) error
	Get(ctx context.Context, profile config.Profile, name string) ([]byte, error)
}

// CredentialService manages stored credentials.
type CredentialService interface {
	// List returns every stored name in lexicographic order.
	List(ctx context.Context) ([]string, error)

	// Tree returns the stored names grouped on the group separator, every
	// level sorted by label.
	Tree(ctx context.Context) (*grouper.Node, error)

	// Add encrypts secret and stores it under name.
	Add(ctx context.Context, name string, secret []byte) error

	// Remove deletes the credential named name.
	Remove(ctx context.Context, name string) error

	// Reveal decrypts and returns the secret stored under name.
	Reveal(ctx context.Context, name string) ([]byte, error)
}

// ClipboardService moves secrets onto the clipboard.
type ClipboardService interface {
	// Clip loads name onto the clipboard and blocks until the configured
	// clear delay has passed and the clipboard was wiped. With a delay of 0
	// it returns right after loading.
	Clip(ctx context.Context, name string) error

	// Clear wipes every clipboard target.
	Clear(ctx context.Context) error
}

// AppInfoService reports build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
