// internal/config/example.go
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Example returns the built-in default configuration, matching the
// reference field deployment: DXMR90 gateway at 192.168.0.1:502,
// sensor block at local register 0, 10 Hz poll, dashboard on :5000.
func Example() Config {
	return Config{
		Gateway: GatewayConfig{
			Host:          "192.168.0.1",
			Port:          502,
			UnitID:        199,
			BaseAddress:   0,
			RegisterCount: 5,
			TimeoutMs:     500,
		},
		Poll: PollConfig{
			IntervalMs:         100,
			ReconnectOnTimeout: false,
			StaleAfterFactor:   3,
		},
		HTTP: HTTPConfig{
			Listen:         ":5000",
			EnableShutdown: true,
		},
		Console: ConsoleConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// ExampleYAML renders the example configuration as a YAML document.
func ExampleYAML() ([]byte, error) {
	out, err := yaml.Marshal(Example())
	if err != nil {
		return nil, fmt.Errorf("config: marshal example: %w", err)
	}
	return out, nil
}
