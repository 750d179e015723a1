// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"dario.cat/mergo"
)

// Clipboard backends accepted in the "clip_backend" profile key.
const (
	// ClipBackendXclip writes the primary, secondary and clipboard X
	// selections through the external xclip tool.
	ClipBackendXclip = "xclip"
	// ClipBackendSystem writes the single platform clipboard through the
	// atotto/clipboard library.
	ClipBackendSystem = "system"
)

// Profile defaults applied to keys absent from the config file.
const (
	DefaultCryptoToolPath        = "gpg2"
	DefaultClipboardToolPath     = "xclip"
	DefaultClipClearDelaySeconds = 10
)

// Profile is the user's typed configuration, read from the JSON config file
// in the vault root. Fields are declared in key order so that printing the
// profile yields a stable, sorted document.
type Profile struct {
	// ClipBackend selects how secrets reach the clipboard
	// ([ClipBackendXclip] or [ClipBackendSystem]).
	ClipBackend string `json:"clip_backend"`

	// ClipClearDelaySeconds is how long a loaded secret stays in the
	// clipboard before it is wiped. 0 disables the automatic clear.
	ClipClearDelaySeconds int `json:"clip_clear_time"`

	// CryptoToolPath is the gpg binary name or path.
	CryptoToolPath string `json:"gpg"`

	// Identity is the gpg key used both as signer and recipient. Required.
	Identity string `json:"id"`

	// ClipboardToolPath is the xclip binary name or path.
	ClipboardToolPath string `json:"xclip"`
}

// profileFile mirrors [Profile] with a pointer delay so that an explicit 0
// in the file can be told apart from an absent key.
type profileFile struct {
	ClipBackend           string `json:"clip_backend"`
	ClipClearDelaySeconds *int   `json:"clip_clear_time"`
	CryptoToolPath        string `json:"gpg"`
	Identity              string `json:"id"`
	ClipboardToolPath     string `json:"xclip"`
}

// DefaultProfile returns the documented defaults. Identity has no default.
func DefaultProfile() Profile {
	return Profile{
		ClipBackend:           ClipBackendXclip,
		ClipClearDelaySeconds: DefaultClipClearDelaySeconds,
		CryptoToolPath:        DefaultCryptoToolPath,
		ClipboardToolPath:     DefaultClipboardToolPath,
	}
}

// LoadProfile reads and validates the profile stored at path.
//
// A missing file, malformed JSON, an unknown key, a missing identity or an
// out-of-range value all produce an error matching [ErrConfiguration].
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("%w: '%s': %v", ErrMalformedConfig, path, err)
	}
	defer f.Close()

	profile, err := ParseProfile(f)
	if err != nil {
		return nil, fmt.Errorf("config file '%s': %w", path, err)
	}

	return profile, nil
}

// profileKeys lists the keys a profile document may contain.
var profileKeys = map[string]struct{}{
	"clip_backend":    {},
	"clip_clear_time": {},
	"gpg":             {},
	"id":              {},
	"xclip":           {},
}

// ParseProfile decodes a JSON profile from r, fills defaults for absent
// optional keys and validates the result. The input must hold exactly one
// JSON object.
func ParseProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	// json.Unmarshal rejects anything after the first value.
	var raw map[string]json.RawMessage
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}
	if key, ok := unknownKey(raw); ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownConfigKey, key)
	}

	var file profileFile
	if err = json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedConfig, err)
	}

	profile := Profile{
		ClipBackend:       file.ClipBackend,
		CryptoToolPath:    file.CryptoToolPath,
		Identity:          file.Identity,
		ClipboardToolPath: file.ClipboardToolPath,
	}
	if err := mergo.Merge(&profile, DefaultProfile()); err != nil {
		return nil, fmt.Errorf("error merging profile defaults: %w", err)
	}

	profile.ClipClearDelaySeconds = DefaultClipClearDelaySeconds
	if file.ClipClearDelaySeconds != nil {
		profile.ClipClearDelaySeconds = *file.ClipClearDelaySeconds
	}

	if err := profile.validate(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// unknownKey returns the alphabetically first key of raw that is not a
// profile key.
func unknownKey(raw map[string]json.RawMessage) (string, bool) {
	var unknown []string
	for key := range raw {
		if _, ok := profileKeys[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) == 0 {
		return "", false
	}
	slices.Sort(unknown)
	return unknown[0], true
}
