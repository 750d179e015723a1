// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] can locate a vault.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Home) == "" {
		return ErrEmptyHome
	}

	return nil
}

// validate checks the profile invariants: a non-empty identity, a
// non-negative clear delay, a known clipboard backend and non-empty tool
// paths.
func (p *Profile) validate() error {
	if strings.TrimSpace(p.Identity) == "" {
		return ErrMissingIdentity
	}

	if p.ClipClearDelaySeconds < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidClipClearDelay, p.ClipClearDelaySeconds)
	}

	switch p.ClipBackend {
	case ClipBackendXclip, ClipBackendSystem:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidClipBackend, p.ClipBackend)
	}

	if strings.TrimSpace(p.CryptoToolPath) == "" || strings.TrimSpace(p.ClipboardToolPath) == "" {
		return ErrEmptyToolPath
	}

	return nil
}
