package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Platform holds environment values describing the user's Windows profile.
type Platform struct {
	// UserProfile is the Windows home directory (e.g. C:\Users\me).
	UserProfile string `env:"USERPROFILE"`
}

// ResolveSource returns the settings file to sync.
//
// A non-empty explicit path is returned verbatim. Otherwise the path is
// <USERPROFILE>/.pi/agent/settings.json, with USERPROFILE looked up in
// environ. Returns [ErrUserProfileNotSet] when USERPROFILE is absent or
// empty.
func ResolveSource(explicit string, environ Environ) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	var platform Platform
	if err := parseEnv(&platform, environ); err != nil {
		return "", err
	}

	if platform.UserProfile == "" {
		return "", ErrUserProfileNotSet
	}

	return filepath.Join(platform.UserProfile, ".pi", "agent", "settings.json"), nil
}

// DefaultOutputDir returns the agent directory the synced variants are
// written to: the parent of the directory holding the running executable
// (the binary lives in <agent>/scripts).
func DefaultOutputDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("error locating executable: %w", err)
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(filepath.Dir(exe)), nil
}
