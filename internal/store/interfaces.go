package store

import (
	"context"

	"github.com/MKhiriev/pi-settings-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsStorage loads and persists whole settings documents.
type SettingsStorage interface {
	// Load reads and parses the settings document at path.
	// Returns [ErrSourceNotFound], [ErrMalformedSettings] or [ErrReadSettings]
	// (wrapped) on failure.
	Load(ctx context.Context, path string) (models.Value, error)

	// Save serializes doc as indented JSON and overwrites the file at path.
	// Returns [ErrWriteSettings] (wrapped) on failure.
	Save(ctx context.Context, path string, doc models.Value) error
}
