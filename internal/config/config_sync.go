package config

import (
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/pi-settings-sync/models"
)

// SyncConfig is the runtime view of the configuration consumed by the sync
// command, assembled from [StructuredConfig].
type SyncConfig struct {
	// Source is the explicit settings path; empty means derive it from
	// USERPROFILE.
	Source string
	// OutputDir receives both synced variants.
	OutputDir string
	// CanonicalName is the file name of the as-loaded variant.
	CanonicalName string
	// NormalizedName is the file name of the path-normalized variant.
	NormalizedName string
	// LogLevel is the zerolog level name for the CLI logger.
	LogLevel string
	// ShowVersion requests printing build information instead of syncing.
	ShowVersion bool
}

// GetSyncConfig builds and validates the sync command configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to a sync run, and validates the resulting [SyncConfig].
func GetSyncConfig(args []string, environ Environ) (*SyncConfig, error) {
	cfg, err := GetStructuredConfig(args, environ)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := &SyncConfig{
		Source:         cfg.Sync.Source,
		OutputDir:      cfg.Sync.OutputDir,
		CanonicalName:  cfg.Sync.CanonicalName,
		NormalizedName: cfg.Sync.NormalizedName,
		LogLevel:       cfg.Log.Level,
		ShowVersion:    cfg.ShowVersion,
	}

	return syncCfg, syncCfg.validate()
}

// Targets returns the destination paths of both synced variants.
func (cfg *SyncConfig) Targets() models.SyncTargets {
	return models.SyncTargets{
		Canonical:  filepath.Join(cfg.OutputDir, cfg.CanonicalName),
		Normalized: filepath.Join(cfg.OutputDir, cfg.NormalizedName),
	}
}
