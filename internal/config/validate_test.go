// internal/config/validate_test.go
package config

import "testing"

// ---- tests ----

func TestValidate_ExampleIsValid(t *testing.T) {
	cfg := Example()
	if err := Validate(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_RejectsBadGateway(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty host", func(c *Config) { c.Gateway.Host = "" }},
		{"zero port", func(c *Config) { c.Gateway.Port = 0 }},
		{"port too large", func(c *Config) { c.Gateway.Port = 70000 }},
		{"wrong register count", func(c *Config) { c.Gateway.RegisterCount = 4 }},
		{"zero timeout", func(c *Config) { c.Gateway.TimeoutMs = 0 }},
	}

	for _, tc := range cases {
		cfg := Example()
		tc.mutate(&cfg)
		if err := Validate(&cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestValidate_RejectsBadPollAndHTTP(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero interval", func(c *Config) { c.Poll.IntervalMs = 0 }},
		{"negative interval", func(c *Config) { c.Poll.IntervalMs = -100 }},
		{"zero stale factor", func(c *Config) { c.Poll.StaleAfterFactor = 0 }},
		{"empty listen", func(c *Config) { c.HTTP.Listen = "" }},
	}

	for _, tc := range cases {
		cfg := Example()
		tc.mutate(&cfg)
		if err := Validate(&cfg); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestValidate_RejectsBadLogging(t *testing.T) {
	cfg := Example()
	cfg.Logging.Level = "verbose"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for unknown level")
	}

	cfg = Example()
	cfg.Logging.Format = "xml"
	if err := Validate(&cfg); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Example()
	cfg.Gateway.Host = "  192.168.0.1 "
	cfg.Logging.Level = " INFO"
	cfg.Logging.Format = "Console "

	Normalize(&cfg)

	if cfg.Gateway.Host != "192.168.0.1" {
		t.Fatalf("host: got %q", cfg.Gateway.Host)
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("level: got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Fatalf("format: got %q", cfg.Logging.Format)
	}

	// Nil must be a no-op, not a panic.
	Normalize(nil)
}

func TestGatewayEndpoint(t *testing.T) {
	g := GatewayConfig{Host: "192.168.0.1", Port: 502}
	if got := g.Endpoint(); got != "192.168.0.1:502" {
		t.Fatalf("endpoint: got %q", got)
	}
}
