// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/validators"
	"github.com/MKhiriev/passout/models"
)

const (
	// StoreDirName is the directory under the vault root holding the
	// encrypted credential files.
	StoreDirName = "crypto_store"

	// FileExt is appended to a credential name to form its file name.
	FileExt = ".gpg"

	dirMode  fs.FileMode = 0o700
	fileMode fs.FileMode = 0o600
)

// Vault is the credential store rooted at the vault home directory.
//
// Every operation first makes sure the vault root and the store directory
// exist, creating them when absent. A Vault holds no state besides paths,
// so the directory listing is the single source of truth.
type Vault struct {
	root      string
	storeDir  string
	cipher    Cipher
	validator validators.Validator
	logger    *logger.Logger
}

// NewVault constructs a [Vault] rooted at root. Nothing is touched on disk
// until the first operation.
func NewVault(root string, cipher Cipher, log *logger.Logger) *Vault {
	return &Vault{
		root:      root,
		storeDir:  filepath.Join(root, StoreDirName),
		cipher:    cipher,
		validator: validators.NewCredentialValidator(),
		logger:    log,
	}
}

// Path returns the storage path for name. It is a pure function of the name
// and the vault location.
func (v *Vault) Path(name string) string {
	return filepath.Join(v.storeDir, name+FileExt)
}

// Credential describes name as stored in this vault.
func (v *Vault) Credential(name string) models.Credential {
	return models.Credential{Name: name, StoragePath: v.Path(name)}
}

// List returns the names of all stored credentials. The order is whatever
// the directory listing yields.
func (v *Vault) List(ctx context.Context) ([]string, error) {
	if err := v.ensureLayout(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(v.storeDir)
	if err != nil {
		return nil, fmt.Errorf("reading store directory '%s': %w", v.storeDir, err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name, ok := strings.CutSuffix(entry.Name(), FileExt)
		if !ok || name == "" {
			continue
		}
		names = append(names, name)
	}

	v.logger.Debug().Int("count", len(names)).Msg("listed credentials")
	return names, nil
}

// Exists reports whether a credential named name is stored.
func (v *Vault) Exists(ctx context.Context, name string) (bool, error) {
	if err := v.prepare(ctx, name); err != nil {
		return false, err
	}
	return v.exists(name)
}

// Add encrypts secret and stores it under name. The file is created
// exclusively, so of two concurrent adds for one name exactly one wins. Any
// failure after the file was created removes it again: a failed Add leaves
// the store as it was.
func (v *Vault) Add(ctx context.Context, profile config.Profile, name string, secret []byte) (err error) {
	if err = v.prepare(ctx, name); err != nil {
		return err
	}

	found, err := v.exists(name)
	if err != nil {
		return err
	}
	if found {
		return &CredentialError{Name: name, Err: ErrCredentialAlreadyExists}
	}

	path := v.Path(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, fileMode)
	if errors.Is(err, fs.ErrExist) {
		return &CredentialError{Name: name, Err: ErrCredentialAlreadyExists}
	}
	if err != nil {
		return fmt.Errorf("creating credential file '%s': %w", path, err)
	}

	defer func() {
		if err == nil {
			return
		}
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			v.logger.Err(rmErr).Str("name", name).Msg("failed to remove partial credential file")
		}
	}()

	ciphertext, err := v.cipher.Encrypt(ctx, profile, secret)
	if err != nil {
		_ = f.Close()
		return err
	}

	if _, err = f.Write(ciphertext); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing credential file '%s': %w", path, err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("closing credential file '%s': %w", path, err)
	}

	v.logger.Debug().Str("name", name).Msg("credential added")
	return nil
}

// Remove deletes the credential named name.
func (v *Vault) Remove(ctx context.Context, name string) error {
	if err := v.prepare(ctx, name); err != nil {
		return err
	}

	err := os.Remove(v.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return &CredentialError{Name: name, Err: ErrCredentialNotFound}
	}
	if err != nil {
		return fmt.Errorf("removing credential '%s': %w", name, err)
	}

	v.logger.Debug().Str("name", name).Msg("credential removed")
	return nil
}

// Get decrypts and returns the secret stored under name.
func (v *Vault) Get(ctx context.Context, profile config.Profile, name string) ([]byte, error) {
	if err := v.prepare(ctx, name); err != nil {
		return nil, err
	}

	found, err := v.exists(name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &CredentialError{Name: name, Err: ErrCredentialNotFound}
	}

	secret, err := v.cipher.Decrypt(ctx, profile, v.Path(name))
	if err != nil {
		return nil, err
	}

	v.logger.Debug().Str("name", name).Msg("credential decrypted")
	return secret, nil
}

func (v *Vault) prepare(ctx context.Context, name string) error {
	if err := v.validator.Validate(ctx, v.Credential(name)); err != nil {
		return fmt.Errorf("'%s': %w", name, err)
	}
	return v.ensureLayout()
}

func (v *Vault) exists(name string) (bool, error) {
	_, err := os.Stat(v.Path(name))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking credential '%s': %w", name, err)
	}
}

// ensureLayout creates the vault root and the store directory when they are
// absent.
func (v *Vault) ensureLayout() error {
	for _, dir := range []string{v.root, v.storeDir} {
		info, err := os.Stat(dir)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err = os.MkdirAll(dir, dirMode); err != nil {
				return fmt.Errorf("%w: creating '%s': %v", ErrBadVaultLayout, dir, err)
			}
			v.logger.Debug().Str("dir", dir).Msg("created vault directory")
		case err != nil:
			return fmt.Errorf("%w: '%s': %v", ErrBadVaultLayout, dir, err)
		case !info.IsDir():
			return fmt.Errorf("%w: '%s' is not a directory", ErrBadVaultLayout, dir)
		}
	}
	return nil
}
