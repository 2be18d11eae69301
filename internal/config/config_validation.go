// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var logLevels = []any{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// validate checks that the merged [SyncConfig] can drive a sync run before
// anything is read or written.
//
// Returns nil if the configuration is valid, or [ErrInvalidSyncConfigs]
// joined with the per-field validation errors otherwise.
func (cfg *SyncConfig) validate() error {
	err := validation.ValidateStruct(cfg,
		validation.Field(&cfg.OutputDir, validation.Required),
		validation.Field(&cfg.CanonicalName, validation.Required, validation.By(isBaseName)),
		validation.Field(&cfg.NormalizedName,
			validation.Required,
			validation.By(isBaseName),
			validation.NotIn(cfg.CanonicalName).Error("must differ from the canonical name"),
		),
		validation.Field(&cfg.LogLevel, validation.In(logLevels...)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSyncConfigs, err)
	}

	return nil
}

// isBaseName accepts plain file names and rejects anything that would place
// the output outside the output directory.
func isBaseName(value any) error {
	name, _ := value.(string)
	if name == "" {
		return nil
	}

	if strings.ContainsAny(name, `/\`) || name != filepath.Base(name) || name == "." || name == ".." {
		return errors.New("must be a file name without directories")
	}

	return nil
}
