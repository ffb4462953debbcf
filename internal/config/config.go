// internal/config/config.go
package config

import (
	"net"
	"strconv"
	"time"
)

type Config struct {
	Gateway GatewayConfig `yaml:"gateway"`
	Poll    PollConfig    `yaml:"poll"`
	HTTP    HTTPConfig    `yaml:"http"`
	Console ConsoleConfig `yaml:"console"`
	Logging LoggingConfig `yaml:"logging"`
}

// ---- GATEWAY ----

type GatewayConfig struct {
	Host        string `yaml:"host" env:"DEWDASH_GATEWAY_HOST" env-default:"192.168.0.1"`
	Port        int    `yaml:"port" env:"DEWDASH_GATEWAY_PORT" env-default:"502"`
	UnitID      uint8  `yaml:"unit_id" env:"DEWDASH_GATEWAY_UNIT_ID" env-default:"199"`
	BaseAddress uint16 `yaml:"base_address" env:"DEWDASH_GATEWAY_BASE_ADDRESS" env-default:"0"`

	// RegisterCount is part of the sensor block layout and must stay 5.
	// It is configuration only so a mismatch fails loudly at startup.
	RegisterCount uint16 `yaml:"register_count" env:"DEWDASH_GATEWAY_REGISTER_COUNT" env-default:"5"`

	TimeoutMs int `yaml:"timeout_ms" env:"DEWDASH_GATEWAY_TIMEOUT_MS" env-default:"500"`
}

func (g GatewayConfig) Endpoint() string {
	return net.JoinHostPort(g.Host, strconv.Itoa(g.Port))
}

func (g GatewayConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutMs) * time.Millisecond
}

// ---- POLL ----

type PollConfig struct {
	IntervalMs int `yaml:"interval_ms" env:"DEWDASH_POLL_INTERVAL_MS" env-default:"100"`

	// ReconnectOnTimeout decides whether a single read timeout drops
	// the gateway session or keeps it for the next cycle.
	ReconnectOnTimeout bool `yaml:"reconnect_on_timeout" env:"DEWDASH_POLL_RECONNECT_ON_TIMEOUT" env-default:"false"`

	// StaleAfterFactor: a reading older than this many poll intervals
	// is reported stale.
	StaleAfterFactor int `yaml:"stale_after_factor" env:"DEWDASH_POLL_STALE_AFTER_FACTOR" env-default:"3"`
}

func (p PollConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMs) * time.Millisecond
}

// ---- HTTP ----

type HTTPConfig struct {
	Listen string `yaml:"listen" env:"DEWDASH_HTTP_LISTEN" env-default:":5000"`

	// EnableShutdown exposes GET /shutdown. On by default: this is a
	// single-operator field tool, not a shared service.
	EnableShutdown bool `yaml:"enable_shutdown" env:"DEWDASH_HTTP_ENABLE_SHUTDOWN" env-default:"true"`
}

// ---- CONSOLE ----

type ConsoleConfig struct {
	Enabled bool `yaml:"enabled" env:"DEWDASH_CONSOLE_ENABLED" env-default:"true"`
}

// ---- LOGGING ----

type LoggingConfig struct {
	Level  string `yaml:"level" env:"DEWDASH_LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"DEWDASH_LOG_FORMAT" env-default:"console"`
}
