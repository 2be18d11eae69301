package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/internal/store"
	"github.com/MKhiriev/pi-settings-sync/models"
)

type settingsSyncService struct {
	storage store.SettingsStorage

	logger *logger.Logger
}

func NewSettingsSyncService(storage store.SettingsStorage, logger *logger.Logger) SettingsSyncService {
	return &settingsSyncService{
		storage: storage,
		logger:  logger,
	}
}

func (s *settingsSyncService) Sync(ctx context.Context, source string, targets models.SyncTargets) (models.SyncResult, error) {
	canonicalPath, err := filepath.Abs(targets.Canonical)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("resolve canonical output path: %w", err)
	}
	normalizedPath, err := filepath.Abs(targets.Normalized)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("resolve normalized output path: %w", err)
	}

	doc, err := s.storage.Load(ctx, source)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("load settings: %w", err)
	}

	if err = s.storage.Save(ctx, canonicalPath, doc); err != nil {
		return models.SyncResult{}, fmt.Errorf("save canonical settings: %w", err)
	}

	normalized := NormalizeDocument(doc)
	if err = s.storage.Save(ctx, normalizedPath, normalized); err != nil {
		return models.SyncResult{}, fmt.Errorf("save normalized settings: %w", err)
	}

	s.logger.Info().
		Str("source", source).
		Str("canonical", canonicalPath).
		Str("normalized", normalizedPath).
		Bool("paths_rewritten", !models.Equal(doc, normalized)).
		Msg("settings synced")

	return models.SyncResult{
		Canonical:  canonicalPath,
		Normalized: normalizedPath,
	}, nil
}
