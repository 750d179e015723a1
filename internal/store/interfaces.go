// Package store keeps credentials as individually encrypted files inside the
// vault directory.
//
// Layout:
//
//	<home>/
//	    crypto_store/
//	        <name>.gpg
//
// Storage is flat: the group separator inside a name has no meaning here.
// Encryption is delegated to a [Cipher]; plaintext never touches the disk.
package store

import (
	"context"

	"github.com/MKhiriev/passout/internal/config"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher encrypts secrets for storage and decrypts stored credential files.
type Cipher interface {
	// Encrypt returns the ciphertext for plaintext under the profile's
	// identity.
	Encrypt(ctx context.Context, profile config.Profile, plaintext []byte) ([]byte, error)

	// Decrypt returns the plaintext of the encrypted file at path.
	Decrypt(ctx context.Context, profile config.Profile, path string) ([]byte, error)
}
