package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Port            string        `env:"PORT" envDefault:"5000"`
	StaticDir       string        `env:"STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Log     Log
	Metrics Metrics
}

type Log struct {
	Level  zapcore.Level `env:"LOG_LEVEL" envDefault:"info"`
	Format LogFormat     `env:"LOG_FORMAT" envDefault:"json"`
}

type Metrics struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"false"`
	Token   string `env:"METRICS_TOKEN"`
}

// LogFormat selects the log encoder.
type LogFormat string

const (
	LogFormatJSON    LogFormat = "json"
	LogFormatConsole LogFormat = "console"
)

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *LogFormat) UnmarshalText(text []byte) error {
	switch v := LogFormat(strings.ToLower(string(text))); v {
	case LogFormatJSON, LogFormatConsole:
		*f = v
		return nil
	}
	return fmt.Errorf("unknown log format: %s", text)
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Parse reads the configuration from the given variables only.
func Parse(vars map[string]string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
