// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/process"
	"github.com/MKhiriev/passout/internal/store"
)

var _ store.Cipher = (*GPG)(nil)

// GPG implements [store.Cipher] by running the profile's gpg binary.
type GPG struct {
	runner process.Runner
	// stdin is attached to decrypt invocations for passphrase entry.
	stdin  io.Reader
	logger *logger.Logger
}

// NewGPG returns a gpg gateway that launches processes through runner and
// attaches os.Stdin to decryption.
func NewGPG(runner process.Runner, log *logger.Logger) *GPG {
	return &GPG{
		runner: runner,
		stdin:  os.Stdin,
		logger: log,
	}
}

// Encrypt runs `<gpg> -u <id> -e -r <id>` with plaintext on standard input
// and returns what gpg wrote to standard output.
func (g *GPG) Encrypt(ctx context.Context, profile config.Profile, plaintext []byte) ([]byte, error) {
	cmd := process.Command{
		Name:  profile.CryptoToolPath,
		Args:  encryptArgs(profile.Identity),
		Stdin: bytes.NewReader(plaintext),
	}

	g.logger.Debug().Str("identity", profile.Identity).Msg("encrypting secret")
	return g.run(ctx, cmd)
}

// Decrypt runs `<gpg> -u <id> --no-tty -d <path>` and returns the plaintext
// gpg wrote to standard output.
func (g *GPG) Decrypt(ctx context.Context, profile config.Profile, path string) ([]byte, error) {
	cmd := process.Command{
		Name:  profile.CryptoToolPath,
		Args:  decryptArgs(profile.Identity, path),
		Stdin: g.stdin,
	}

	g.logger.Debug().Str("identity", profile.Identity).Str("path", path).Msg("decrypting credential")
	return g.run(ctx, cmd)
}

func (g *GPG) run(ctx context.Context, cmd process.Command) ([]byte, error) {
	res, err := g.runner.Run(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if err = res.Err(cmd.Name); err != nil {
		g.logger.Debug().Str("tool", cmd.Name).Int("exit_code", res.ExitCode).Msg("gpg failed")
		return nil, err
	}
	return res.Stdout, nil
}

func encryptArgs(identity string) []string {
	return []string{"-u", identity, "-e", "-r", identity}
}

func decryptArgs(identity, path string) []string {
	return []string{"-u", identity, "--no-tty", "-d", path}
}
