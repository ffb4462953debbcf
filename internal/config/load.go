// internal/config/load.go
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Load reads configuration from an optional YAML file with environment
// variable overrides. An empty path loads from the environment alone.
// A .env file in the working directory is honored if present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var c Config
	if path == "" {
		if err := cleanenv.ReadEnv(&c); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
		return &c, nil
	}

	if err := cleanenv.ReadConfig(path, &c); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return &c, nil
}
