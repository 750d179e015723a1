package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), DefaultConfigFileName)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// TestParseProfile_AllFields verifies that a profile specifying every key is
// returned as written.
func TestParseProfile_AllFields(t *testing.T) {
	body := `{
		"gpg": "gpg",
		"id": "jim@bob.com",
		"clip_clear_time": 30,
		"xclip": "/usr/local/bin/xclip",
		"clip_backend": "system"
	}`

	p, err := ParseProfile(strings.NewReader(body))
	require.NoError(t, err)

	assert.Equal(t, Profile{
		ClipBackend:           ClipBackendSystem,
		ClipClearDelaySeconds: 30,
		CryptoToolPath:        "gpg",
		Identity:              "jim@bob.com",
		ClipboardToolPath:     "/usr/local/bin/xclip",
	}, *p)
}

// TestParseProfile_OnlyIdentity verifies that absent optional keys receive
// their documented defaults.
func TestParseProfile_OnlyIdentity(t *testing.T) {
	p, err := ParseProfile(strings.NewReader(`{"id": "jim@bob.com"}`))
	require.NoError(t, err)

	want := DefaultProfile()
	want.Identity = "jim@bob.com"
	assert.Equal(t, want, *p)
	assert.Equal(t, DefaultCryptoToolPath, p.CryptoToolPath)
	assert.Equal(t, DefaultClipClearDelaySeconds, p.ClipClearDelaySeconds)
}

// TestParseProfile_ExplicitZeroDelay verifies that "clip_clear_time": 0 turns
// the automatic clear off instead of falling back to the default.
func TestParseProfile_ExplicitZeroDelay(t *testing.T) {
	p, err := ParseProfile(strings.NewReader(`{"id": "jim@bob.com", "clip_clear_time": 0}`))
	require.NoError(t, err)
	assert.Zero(t, p.ClipClearDelaySeconds)
}

func TestParseProfile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"missing identity", `{"gpg": "gpg2"}`, ErrMissingIdentity},
		{"blank identity", `{"id": "   "}`, ErrMissingIdentity},
		{"unknown key", `{"id": "a@b", "colour": "blue"}`, ErrUnknownConfigKey},
		{"malformed json", `{"id": `, ErrMalformedConfig},
		{"trailing object", `{"id": "a@b"} {"bogus_key": 1}`, ErrMalformedConfig},
		{"trailing garbage", `{"id": "a@b"} x`, ErrMalformedConfig},
		{"not an object", `["a@b"]`, ErrMalformedConfig},
		{"key differs in case", `{"ID": "a@b"}`, ErrUnknownConfigKey},
		{"wrong type", `{"id": 42}`, ErrMalformedConfig},
		{"negative delay", `{"id": "a@b", "clip_clear_time": -1}`, ErrInvalidClipClearDelay},
		{"unknown backend", `{"id": "a@b", "clip_backend": "pigeon"}`, ErrInvalidClipBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile(strings.NewReader(tt.body))
			require.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestParseProfile_TrailingWhitespace(t *testing.T) {
	p, err := ParseProfile(strings.NewReader("{\"id\": \"a@b\"}\n\n"))
	require.NoError(t, err)
	assert.Equal(t, "a@b", p.Identity)
}

func TestParseProfile_UnknownKeyIsNamed(t *testing.T) {
	_, err := ParseProfile(strings.NewReader(`{"id": "a@b", "colour": "blue"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"colour"`)
}

// ── LoadProfile ───────────────────────────────────────────────────────────────

func TestLoadProfile_Success(t *testing.T) {
	path := writeProfile(t, `{"id": "jim@bob.com", "gpg": "gpg"}`)

	p, err := LoadProfile(path)
	require.NoError(t, err)
	assert.Equal(t, "jim@bob.com", p.Identity)
	assert.Equal(t, "gpg", p.CryptoToolPath)
}

func TestLoadProfile_NotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	p, err := LoadProfile(path)
	assert.Nil(t, p)
	require.ErrorIs(t, err, ErrConfigNotFound)
	assert.Contains(t, err.Error(), path)
}

// TestLoadProfile_ErrorNamesFile verifies that parse failures identify the
// offending file.
func TestLoadProfile_ErrorNamesFile(t *testing.T) {
	path := writeProfile(t, `{"gpg": "gpg2"}`)

	_, err := LoadProfile(path)
	require.ErrorIs(t, err, ErrMissingIdentity)
	assert.Contains(t, err.Error(), path)
}
