package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/pi-settings-sync/internal/logger"
	"github.com/MKhiriev/pi-settings-sync/internal/utils"
	"github.com/MKhiriev/pi-settings-sync/models"
	"github.com/xyproto/files"
)

const (
	// settingsFileMode is the permission set used when a settings file is
	// created.
	settingsFileMode os.FileMode = 0o644

	// settingsIndent is the per-level indentation of written settings files.
	settingsIndent = "  "
)

// settingsFileStorage is the local filesystem implementation of
// [SettingsStorage]. Documents are read whole and written whole; no locking
// is performed, so concurrent writers to the same path race and the last
// one wins.
type settingsFileStorage struct {
	logger *logger.Logger
}

// NewSettingsFileStorage constructs a [SettingsStorage] backed by the local
// filesystem.
func NewSettingsFileStorage(logger *logger.Logger) SettingsStorage {
	return &settingsFileStorage{logger: logger}
}

// Load reads the settings document stored at path.
//
// Parameters:
//   - ctx: checked for cancellation before the file is touched.
//   - path: settings file location, used verbatim.
//
// Returns the parsed document, or a wrapped [ErrSourceNotFound],
// [ErrReadSettings] or [ErrMalformedSettings].
func (s *settingsFileStorage) Load(ctx context.Context, path string) (models.Value, error) {
	if err := ctx.Err(); err != nil {
		return models.Value{}, err
	}

	if !files.Exists(path) {
		return models.Value{}, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return models.Value{}, fmt.Errorf("%w %s: %w", ErrReadSettings, path, err)
	}

	doc, err := models.ParseValue(raw)
	if err != nil {
		return models.Value{}, fmt.Errorf("%w (%s): %w", ErrMalformedSettings, path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("bytes", len(raw)).
		Str("kind", doc.Kind().String()).
		Msg("settings loaded")

	return doc, nil
}

// Save writes doc to path as 2-space indented JSON terminated by a newline,
// replacing any existing file. The parent directory must already exist.
//
// Returns a wrapped [ErrWriteSettings] if encoding or writing fails.
func (s *settingsFileStorage) Save(ctx context.Context, path string, doc models.Value) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encodeSettings(doc)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteSettings, path, err)
	}

	if err = os.WriteFile(path, data, settingsFileMode); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteSettings, path, err)
	}

	s.logger.Debug().
		Str("path", path).
		Int("bytes", len(data)).
		Str("sha256", utils.HashString(data)).
		Msg("settings saved")

	return nil
}

// encodeSettings renders doc the way settings files are stored in the
// dotfiles repository.
func encodeSettings(doc models.Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", settingsIndent)

	// Encode appends the trailing newline
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
