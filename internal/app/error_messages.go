// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// settings sync entry point and client runtime.
//
// All Msg* constants are human-readable messages written into log entries
// to describe the outcome of a step. Keeping them in one place ensures
// consistent wording in diagnostics.
package app

const (
	// MsgConfigFailed is logged when flags, environment or the JSON config
	// file cannot be turned into a valid configuration.
	MsgConfigFailed = "error getting configs"

	// MsgInitFailed is logged when the application cannot be assembled from
	// its configuration.
	MsgInitFailed = "init sync app error"

	// MsgSyncFailed is logged when a sync run stops before both variants
	// were written.
	MsgSyncFailed = "settings sync failed"

	// MsgSyncStarted is logged when a sync run begins.
	MsgSyncStarted = "syncing settings"
)
