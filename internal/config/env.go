// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// GetConfig builds the service configuration from environment variables.
//
// Defaults are applied via envDefault struct tags; the JWT signing secret
// additionally falls back to [DefaultTokenSignKey] when JWT_SECRET is unset
// so that local development works out of the box.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func GetConfig() (*Config, error) {
	cfg := &Config{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = DefaultTokenSignKey
	}

	return cfg, nil
}

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` tags defined on [Config]
// and its nested types.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
