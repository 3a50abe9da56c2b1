// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables. Fields are mapped via
// the `env`, `envPrefix` and `envSeparator` tags of [StructuredConfig], so
// IDENTITY_ALLOWED_CLIENT_IPS=a,b becomes a two element allowlist.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
