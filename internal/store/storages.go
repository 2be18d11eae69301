package store

import "github.com/MKhiriev/pi-settings-sync/internal/logger"

// Storages groups the storage backends used by the service layer.
type Storages struct {
	// Settings reads the live settings file and writes the synced variants.
	Settings SettingsStorage
}

// NewStorages constructs the filesystem-backed storage layer.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating new storages...")

	return &Storages{
		Settings: NewSettingsFileStorage(logger),
	}
}
