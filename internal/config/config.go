// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Default file names of the two synced settings variants, written next to
// each other in the agent directory of the dotfiles source tree.
const (
	DefaultCanonicalName  = "settings.windows.json"
	DefaultNormalizedName = "settings.linux.json"
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for the
// settings sync tool. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, environment variables, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Sync holds the source and destination settings of a sync run.
	Sync Sync `envPrefix:"SETTINGS_SYNC_"`

	// Log holds logging settings.
	Log Log `envPrefix:"SETTINGS_SYNC_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the SETTINGS_SYNC_CONFIG environment variable or the
	// -c / -config flag.
	JSONFilePath string `env:"SETTINGS_SYNC_CONFIG"`

	// ShowVersion requests printing build information instead of syncing.
	// Only settable by the -version flag.
	ShowVersion bool
}

// Sync holds the source and destination settings of a sync run.
type Sync struct {
	// Source is the explicit path of the live settings file. When empty the
	// path is derived from USERPROFILE, see [ResolveSource].
	// Env: SETTINGS_SYNC_FROM
	Source string `env:"FROM"`

	// OutputDir is the directory receiving both synced variants.
	// Defaults to the agent directory above the executable, see
	// [DefaultOutputDir].
	// Env: SETTINGS_SYNC_OUT_DIR
	OutputDir string `env:"OUT_DIR"`

	// CanonicalName is the file name of the as-loaded variant.
	// Env: SETTINGS_SYNC_CANONICAL_NAME
	CanonicalName string `env:"CANONICAL_NAME"`

	// NormalizedName is the file name of the path-normalized variant.
	// Env: SETTINGS_SYNC_NORMALIZED_NAME
	NormalizedName string `env:"NORMALIZED_NAME"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: SETTINGS_SYNC_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. Earlier sources take precedence for non-zero fields:
//  1. Command-line flags (args, without the program name)
//  2. Environment variables (environ)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig(args []string, environ Environ) (*StructuredConfig, error) {
	return newConfigBuilder(args, environ).
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
