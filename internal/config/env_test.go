// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	environ := Environ{
		"SETTINGS_SYNC_CONFIG": "/path/to/config.json",

		"SETTINGS_SYNC_FROM":            `C:\Users\me\.pi\agent\settings.json`,
		"SETTINGS_SYNC_OUT_DIR":         "/dotfiles/dot_pi/agent",
		"SETTINGS_SYNC_CANONICAL_NAME":  "win.json",
		"SETTINGS_SYNC_NORMALIZED_NAME": "linux.json",

		"SETTINGS_SYNC_LOG_LEVEL": "debug",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, `C:\Users\me\.pi\agent\settings.json`, cfg.Sync.Source)
	assert.Equal(t, "/dotfiles/dot_pi/agent", cfg.Sync.OutputDir)
	assert.Equal(t, "win.json", cfg.Sync.CanonicalName)
	assert.Equal(t, "linux.json", cfg.Sync.NormalizedName)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.ShowVersion)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	environ := Environ{
		"SETTINGS_SYNC_OUT_DIR": "/out",
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, environ)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/out", cfg.Sync.OutputDir)
	assert.Empty(t, cfg.Sync.Source)
	assert.Empty(t, cfg.Sync.CanonicalName)
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	t.Setenv("SETTINGS_SYNC_FROM", "process-env-must-be-ignored")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg, nil)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_Platform(t *testing.T) {
	var p Platform
	err := parseEnv(&p, Environ{"USERPROFILE": `C:\Users\me`})

	require.NoError(t, err)
	assert.Equal(t, `C:\Users\me`, p.UserProfile)
}

func TestOSEnviron_ReflectsProcessEnvironment(t *testing.T) {
	t.Setenv("SETTINGS_SYNC_TEST_VAR", "a=b")

	environ := OSEnviron()

	v, ok := environ["SETTINGS_SYNC_TEST_VAR"]
	require.True(t, ok)
	assert.Equal(t, "a=b", v)
}
