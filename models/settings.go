package models

// PackagesField is the top-level settings key holding the list of installed
// packages. Each package entry is an object that can carry its own resource
// lists.
const PackagesField = "packages"

// TopLevelPathFields lists the top-level settings keys whose array elements
// are filesystem or resource paths.
var TopLevelPathFields = []string{"skills", "extensions", "themes"}

// PackagePathFields lists the keys inside each [PackagesField] entry whose
// array elements are filesystem or resource paths.
var PackagePathFields = []string{"extensions", "skills", "themes", "prompts"}

// SyncTargets names the two files a settings sync writes.
type SyncTargets struct {
	// Canonical receives the settings exactly as loaded from the source
	// platform.
	Canonical string

	// Normalized receives the settings with path-bearing strings rewritten
	// to forward-slash form for the other platform.
	Normalized string
}

// SyncResult reports the absolute paths written by a settings sync, in the
// order they were written.
type SyncResult struct {
	Canonical  string
	Normalized string
}
