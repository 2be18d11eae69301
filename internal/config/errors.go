package config

import "errors"

var (
	// ErrUserProfileNotSet is returned by [ResolveSource] when no explicit
	// source was given and USERPROFILE is missing from the environment.
	ErrUserProfileNotSet = errors.New("USERPROFILE is not set. Pass --from explicitly")

	// ErrInvalidSyncConfigs indicates an unusable output configuration
	// (for example, an empty output directory or a file name containing a
	// path separator).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
