// Package config provides configuration loading, merging, and validation
// facilities for the settings sync tool.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for non-zero fields):
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The environment is always passed in as an [Environ] snapshot rather than
// read from the process, so every entry point is testable without mutating
// os environment.
//
// The main entry points are [GetSyncConfig] for the sync command and
// [ResolveSource] for locating the live settings file.
package config
