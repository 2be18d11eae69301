package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSyncConfig() *SyncConfig {
	return &SyncConfig{
		OutputDir:      "/dotfiles/dot_pi/agent",
		CanonicalName:  DefaultCanonicalName,
		NormalizedName: DefaultNormalizedName,
		LogLevel:       DefaultLogLevel,
	}
}

func TestGetSyncConfig_Defaults(t *testing.T) {
	cfg, err := GetSyncConfig(nil, Environ{})

	require.NoError(t, err)
	assert.Empty(t, cfg.Source)
	assert.NotEmpty(t, cfg.OutputDir)
	assert.Equal(t, DefaultCanonicalName, cfg.CanonicalName)
	assert.Equal(t, DefaultNormalizedName, cfg.NormalizedName)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.ShowVersion)
}

func TestGetSyncConfig_MapsFields(t *testing.T) {
	cfg, err := GetSyncConfig(
		[]string{"--from", "/live/settings.json", "--version"},
		Environ{"SETTINGS_SYNC_OUT_DIR": "/out", "SETTINGS_SYNC_LOG_LEVEL": "warn"},
	)

	require.NoError(t, err)
	assert.Equal(t, "/live/settings.json", cfg.Source)
	assert.Equal(t, "/out", cfg.OutputDir)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.ShowVersion)
}

func TestGetSyncConfig_SourceError(t *testing.T) {
	cfg, err := GetSyncConfig([]string{"--bogus"}, Environ{})

	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestGetSyncConfig_ValidationError(t *testing.T) {
	_, err := GetSyncConfig([]string{"--normalized-name", "../escape.json"}, Environ{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
}

func TestSyncConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *SyncConfig)
		wantErr bool
	}{
		{"valid", func(cfg *SyncConfig) {}, false},
		{"empty output dir", func(cfg *SyncConfig) { cfg.OutputDir = "" }, true},
		{"empty canonical name", func(cfg *SyncConfig) { cfg.CanonicalName = "" }, true},
		{"empty normalized name", func(cfg *SyncConfig) { cfg.NormalizedName = "" }, true},
		{"canonical name with slash", func(cfg *SyncConfig) { cfg.CanonicalName = "sub/win.json" }, true},
		{"normalized name with backslash", func(cfg *SyncConfig) { cfg.NormalizedName = `sub\linux.json` }, true},
		{"dot dot name", func(cfg *SyncConfig) { cfg.CanonicalName = ".." }, true},
		{"same names", func(cfg *SyncConfig) { cfg.NormalizedName = cfg.CanonicalName }, true},
		{"unknown log level", func(cfg *SyncConfig) { cfg.LogLevel = "chatty" }, true},
		{"empty log level", func(cfg *SyncConfig) { cfg.LogLevel = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validSyncConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidSyncConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSyncConfig_Targets(t *testing.T) {
	cfg := validSyncConfig()

	targets := cfg.Targets()

	assert.Equal(t, filepath.Join("/dotfiles/dot_pi/agent", "settings.windows.json"), targets.Canonical)
	assert.Equal(t, filepath.Join("/dotfiles/dot_pi/agent", "settings.linux.json"), targets.Normalized)
}
