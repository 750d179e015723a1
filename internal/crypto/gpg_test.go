package crypto

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/passout/internal/config"
	"github.com/MKhiriev/passout/internal/logger"
	"github.com/MKhiriev/passout/internal/mock"
	"github.com/MKhiriev/passout/internal/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testProfile() config.Profile {
	p := config.DefaultProfile()
	p.Identity = "ABCD1234"
	return p
}

func newTestGPG(t *testing.T) (*GPG, *mock.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mock.NewMockRunner(ctrl)
	return NewGPG(runner, logger.Nop()), runner
}

// ── Encrypt ──────────────────────────────────────────────────────────────────

func TestGPG_Encrypt_Success(t *testing.T) {
	g, runner := newTestGPG(t)
	ctx := context.Background()

	runner.EXPECT().Run(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd process.Command) (process.Result, error) {
			assert.Equal(t, "gpg2", cmd.Name)
			assert.Equal(t, []string{"-u", "ABCD1234", "-e", "-r", "ABCD1234"}, cmd.Args)
			assert.False(t, cmd.DiscardOutput)

			in, err := io.ReadAll(cmd.Stdin)
			require.NoError(t, err)
			assert.Equal(t, "hunter2", string(in))

			return process.Result{Stdout: []byte("CIPHERTEXT")}, nil
		},
	)

	out, err := g.Encrypt(ctx, testProfile(), []byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, "CIPHERTEXT", string(out))
}

func TestGPG_Encrypt_CustomToolPath(t *testing.T) {
	g, runner := newTestGPG(t)
	profile := testProfile()
	profile.CryptoToolPath = "/usr/local/bin/gpg"

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd process.Command) (process.Result, error) {
			assert.Equal(t, "/usr/local/bin/gpg", cmd.Name)
			return process.Result{}, nil
		},
	)

	_, err := g.Encrypt(context.Background(), profile, []byte("x"))
	require.NoError(t, err)
}

func TestGPG_Encrypt_NonZeroExit(t *testing.T) {
	g, runner := newTestGPG(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(process.Result{
		Stdout:   []byte("partial"),
		Stderr:   []byte("gpg: ABCD1234: skipped: No public key\n"),
		ExitCode: 2,
	}, nil)

	out, err := g.Encrypt(context.Background(), testProfile(), []byte("x"))
	assert.Nil(t, out)
	require.ErrorIs(t, err, process.ErrToolFailed)

	var tf *process.ToolFailedError
	require.ErrorAs(t, err, &tf)
	assert.Equal(t, "gpg2", tf.Tool)
	assert.Equal(t, 2, tf.ExitCode)
	assert.Equal(t, "partial", tf.Stdout)
	assert.Contains(t, tf.Stderr, "No public key")
}

func TestGPG_Encrypt_ToolMissing(t *testing.T) {
	g, runner := newTestGPG(t)
	launchErr := errors.Join(process.ErrToolNotFound, errors.New("exec: \"gpg2\": executable file not found in $PATH"))

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(process.Result{}, launchErr)

	_, err := g.Encrypt(context.Background(), testProfile(), []byte("x"))
	assert.ErrorIs(t, err, process.ErrToolNotFound)
}

// ── Decrypt ──────────────────────────────────────────────────────────────────

func TestGPG_Decrypt_Success(t *testing.T) {
	g, runner := newTestGPG(t)
	terminal := strings.NewReader("")
	g.stdin = terminal

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cmd process.Command) (process.Result, error) {
			assert.Equal(t, "gpg2", cmd.Name)
			assert.Equal(t, []string{"-u", "ABCD1234", "--no-tty", "-d", "/vault/crypto_store/mail.gpg"}, cmd.Args)
			assert.Same(t, terminal, cmd.Stdin)
			return process.Result{Stdout: []byte("hunter2"), Stderr: []byte("gpg: encrypted with rsa4096 key")}, nil
		},
	)

	out, err := g.Decrypt(context.Background(), testProfile(), "/vault/crypto_store/mail.gpg")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", string(out))
}

func TestGPG_Decrypt_NonZeroExit(t *testing.T) {
	g, runner := newTestGPG(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(process.Result{
		Stderr:   []byte("gpg: decryption failed: No secret key"),
		ExitCode: 2,
	}, nil)

	_, err := g.Decrypt(context.Background(), testProfile(), "/vault/crypto_store/mail.gpg")
	require.ErrorIs(t, err, process.ErrToolFailed)
	assert.Contains(t, err.Error(), "gpg2 returned non-zero")
}

func TestGPG_Decrypt_Cancelled(t *testing.T) {
	g, runner := newTestGPG(t)

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(process.Result{}, context.Canceled)

	_, err := g.Decrypt(context.Background(), testProfile(), "/x.gpg")
	assert.ErrorIs(t, err, context.Canceled)
}
