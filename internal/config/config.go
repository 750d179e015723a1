// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
)

const (
	// EnvPrefix is prepended to every environment variable read by
	// [StructuredConfig] (PASSOUT_HOME, PASSOUT_LOG_LEVEL, PASSOUT_CONFIG).
	EnvPrefix = "PASSOUT_"

	// DefaultHomeDirName is the vault root created under the user's home
	// directory when PASSOUT_HOME is not set.
	DefaultHomeDirName = ".passout"

	// DefaultConfigFileName is the profile file looked up inside the vault
	// root when no explicit config path is given.
	DefaultConfigFileName = "passoutrc"

	// DefaultLogLevel is the diagnostic verbosity used when nothing else is
	// configured.
	DefaultLogLevel = "info"
)

// StructuredConfig holds the process-level settings that locate the vault and
// tune diagnostics. It is populated by merging environment variables and
// command-line flags.
//
// Struct tags:
//   - env: environment variable name, prefixed with [EnvPrefix].
type StructuredConfig struct {
	// Home is the vault root directory holding the config file and the
	// credential store.
	// Env: PASSOUT_HOME
	Home string `env:"HOME"`

	// LogLevel is the diagnostic verbosity ("debug", "info", "warn", ...).
	// Env: PASSOUT_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// ConfigFilePath is the JSON profile file. Defaults to
	// <Home>/passoutrc.
	// Env: PASSOUT_CONFIG
	ConfigFilePath string `env:"CONFIG"`
}

// Config is the fully resolved configuration handed to the service layer:
// where the vault lives and which profile drives the external tools.
type Config struct {
	Settings StructuredConfig
	Profile  Profile
}

// GetStructuredConfig loads, merges, and validates the vault settings from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
func GetStructuredConfig(flags *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		build()
}

// GetConfig resolves the vault settings and then reads the profile from the
// resolved config file.
//
// Any failure is reported as an error matching [ErrConfiguration].
func GetConfig(flags *StructuredConfig) (*Config, error) {
	settings, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	profile, err := LoadProfile(settings.ConfigFilePath)
	if err != nil {
		return nil, err
	}

	return &Config{Settings: *settings, Profile: *profile}, nil
}

func defaultConfigFilePath(home string) string {
	return filepath.Join(home, DefaultConfigFileName)
}
