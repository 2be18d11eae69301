package store

import "errors"

// Sentinel errors returned by [SettingsStorage] implementations. Callers
// should use [errors.Is] to match against these values; the wrapped error
// carries the path and the underlying diagnostic.
var (
	// ErrSourceNotFound is returned when the settings file to load does not
	// exist on disk.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrMalformedSettings is returned when the settings file exists but its
	// content is not a single well-formed JSON document.
	ErrMalformedSettings = errors.New("settings file is not valid JSON")

	// ErrReadSettings is returned when the settings file exists but cannot be
	// read (e.g. permission denied, or the path is a directory).
	ErrReadSettings = errors.New("error reading settings file")

	// ErrWriteSettings is returned when a settings document cannot be written
	// to its destination (permission denied, missing parent directory, disk
	// full).
	ErrWriteSettings = errors.New("error writing settings file")
)
