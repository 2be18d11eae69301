// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line runtime of the settings sync
// tool.
//
// It resolves the live settings file, runs a sync through the service layer
// and reports the written files on stdout, one absolute path per line.
package client
