package service

import (
	"context"

	"github.com/MKhiriev/pi-settings-sync/models"
)

// SettingsSyncService materializes the canonical and normalized variants of
// a live settings file.
type SettingsSyncService interface {
	// Sync loads source, writes it unchanged to targets.Canonical, then
	// writes its path-normalized copy to targets.Normalized. Steps run in
	// that order and the first failure aborts the rest, so a failed load
	// writes nothing and a failed canonical write leaves the normalized file
	// untouched.
	Sync(ctx context.Context, source string, targets models.SyncTargets) (models.SyncResult, error)
}

// AppInfoService exposes build metadata of the running binary.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
