// Package config loads runtime configuration from defaults, an optional YAML
// file and TIMETOBUY_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"

	"timetobuy/internal/observability"
	"timetobuy/internal/settings"
)

// EnvPrefix prefixes every environment override, e.g. TIMETOBUY_SERVER_ADDRESS.
const EnvPrefix = "TIMETOBUY"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	Settings  SettingsConfig  `mapstructure:"settings"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ShutdownTimeout time.Duration `mapstructure:"shutdownTimeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, console
}

// TelemetryConfig switches the OTLP exporters. Endpoints come from the
// standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	ServiceName    string        `mapstructure:"serviceName"`
	MetricInterval time.Duration `mapstructure:"metricInterval"`
}

type SettingsConfig struct {
	Backend     string        `mapstructure:"backend"` // sqlite, file, memory
	Path        string        `mapstructure:"path"`
	SaveTimeout time.Duration `mapstructure:"saveTimeout"`
	Breaker     BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	RequestThreshold int           `mapstructure:"requestThreshold"`
	FailureRatio     float64       `mapstructure:"failureRatio"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxHalfOpenReqs  int           `mapstructure:"maxHalfOpenReqs"`
}

// Options converts the breaker section into store options.
func (b BreakerConfig) Options() settings.BreakerOptions {
	return settings.BreakerOptions{
		RequestThreshold: b.RequestThreshold,
		FailureRatio:     b.FailureRatio,
		Timeout:          b.Timeout,
		MaxHalfOpenReqs:  b.MaxHalfOpenReqs,
	}
}

func setDefaults(v *viper.Viper) {
	breaker := settings.DefaultBreakerOptions()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.serviceName", "timetobuy")
	v.SetDefault("telemetry.metricInterval", 15*time.Second)
	v.SetDefault("settings.backend", settings.BackendSQLite)
	v.SetDefault("settings.path", "data/settings.db")
	v.SetDefault("settings.saveTimeout", 5*time.Second)
	v.SetDefault("settings.breaker.requestThreshold", breaker.RequestThreshold)
	v.SetDefault("settings.breaker.failureRatio", breaker.FailureRatio)
	v.SetDefault("settings.breaker.timeout", breaker.Timeout)
	v.SetDefault("settings.breaker.maxHalfOpenReqs", breaker.MaxHalfOpenReqs)
}

// Load reads configuration. A missing file at path is not an error; an empty
// path skips the file entirely.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}
	if _, err := observability.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}

	switch c.Settings.Backend {
	case settings.BackendSQLite, settings.BackendFile:
		if c.Settings.Path == "" {
			return fmt.Errorf("settings.path is required for the %s backend", c.Settings.Backend)
		}
	case settings.BackendMemory:
	default:
		return fmt.Errorf("settings.backend: %w: %q", settings.ErrUnknownBackend, c.Settings.Backend)
	}

	b := c.Settings.Breaker
	if b.RequestThreshold < 1 {
		return fmt.Errorf("settings.breaker.requestThreshold must be at least 1")
	}
	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		return fmt.Errorf("settings.breaker.failureRatio must be in (0, 1]")
	}
	if b.MaxHalfOpenReqs < 1 {
		return fmt.Errorf("settings.breaker.maxHalfOpenReqs must be at least 1")
	}
	return nil
}
