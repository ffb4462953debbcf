// internal/config/validate.go
package config

import (
	"fmt"

	"dewdash/internal/sensor"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(c *Config) error {
	// ---- gateway ----

	if c.Gateway.Host == "" {
		return fmt.Errorf("gateway: host required")
	}
	if c.Gateway.Port <= 0 || c.Gateway.Port > 65535 {
		return fmt.Errorf("gateway: port must be 1-65535, got %d", c.Gateway.Port)
	}
	if int(c.Gateway.RegisterCount) != sensor.RegisterCount {
		return fmt.Errorf("gateway: register_count must be %d, got %d",
			sensor.RegisterCount, c.Gateway.RegisterCount)
	}
	if c.Gateway.TimeoutMs <= 0 {
		return fmt.Errorf("gateway: timeout_ms must be > 0, got %d", c.Gateway.TimeoutMs)
	}

	// ---- poll ----

	if c.Poll.IntervalMs <= 0 {
		return fmt.Errorf("poll: interval_ms must be > 0, got %d", c.Poll.IntervalMs)
	}
	if c.Poll.StaleAfterFactor <= 0 {
		return fmt.Errorf("poll: stale_after_factor must be > 0, got %d", c.Poll.StaleAfterFactor)
	}

	// ---- http ----

	if c.HTTP.Listen == "" {
		return fmt.Errorf("http: listen address required")
	}

	// ---- logging ----

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging: unknown level %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging: unknown format %q", c.Logging.Format)
	}

	return nil
}
