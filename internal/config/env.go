// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Environ is a snapshot of environment variables keyed by name. It is passed
// explicitly so configuration can be resolved without touching the process
// environment.
type Environ map[string]string

// OSEnviron returns a snapshot of the current process environment.
func OSEnviron() Environ {
	environ := make(Environ)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		environ[key] = value
	}
	return environ
}

// parseEnv populates cfg from environ using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags defined on
// [StructuredConfig] and its nested types.
//
// A nil environ is treated as empty, never as the process environment.
//
// Returns a wrapped error if env.ParseWithOptions fails (e.g. a value cannot
// be converted to the target type).
func parseEnv(cfg any, environ Environ) error {
	if environ == nil {
		environ = Environ{}
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
