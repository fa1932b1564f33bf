package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":8080" {
		t.Fatalf("expected default address, got %q", cfg.Server.Address)
	}
	if cfg.Server.ShutdownTimeout != 5*time.Second {
		t.Fatalf("expected 5s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Settings.Backend != "sqlite" || cfg.Settings.Path != "data/settings.db" {
		t.Fatalf("unexpected settings defaults %+v", cfg.Settings)
	}
	if cfg.Telemetry.Enabled {
		t.Fatal("expected telemetry disabled by default")
	}
	if cfg.Settings.Breaker.RequestThreshold != 5 || cfg.Settings.Breaker.FailureRatio != 0.5 {
		t.Fatalf("unexpected breaker defaults %+v", cfg.Settings.Breaker)
	}
}

func TestLoadWithoutPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := []byte(`server:
  address: 127.0.0.1:9000
  shutdownTimeout: 10s
logging:
  level: debug
  format: console
settings:
  backend: file
  path: /tmp/timetobuy/settings.yaml
  saveTimeout: 2s
  breaker:
    requestThreshold: 3
    failureRatio: 0.75
    timeout: 1m
`)
	if err := os.WriteFile(path, contents, 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != "127.0.0.1:9000" {
		t.Fatalf("expected address override, got %s", cfg.Server.Address)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected 10s shutdown timeout, got %v", cfg.Server.ShutdownTimeout)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Settings.Backend != "file" || cfg.Settings.Path != "/tmp/timetobuy/settings.yaml" {
		t.Fatalf("unexpected settings %+v", cfg.Settings)
	}
	if cfg.Settings.SaveTimeout != 2*time.Second {
		t.Fatalf("expected 2s save timeout, got %v", cfg.Settings.SaveTimeout)
	}

	opts := cfg.Settings.Breaker.Options()
	if opts.RequestThreshold != 3 || opts.FailureRatio != 0.75 || opts.Timeout != time.Minute {
		t.Fatalf("unexpected breaker options %+v", opts)
	}
	if opts.MaxHalfOpenReqs != 1 {
		t.Fatalf("expected default maxHalfOpenReqs to survive, got %d", opts.MaxHalfOpenReqs)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  address: :7000\n"), 0600); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	t.Setenv("TIMETOBUY_SERVER_ADDRESS", ":9090")
	t.Setenv("TIMETOBUY_SETTINGS_BACKEND", "memory")
	t.Setenv("TIMETOBUY_TELEMETRY_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Address != ":9090" {
		t.Fatalf("expected env address, got %q", cfg.Server.Address)
	}
	if cfg.Settings.Backend != "memory" {
		t.Fatalf("expected env backend, got %q", cfg.Settings.Backend)
	}
	if !cfg.Telemetry.Enabled {
		t.Fatal("expected telemetry enabled from env")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown backend", "settings:\n  backend: redis\n"},
		{"file backend without path", "settings:\n  backend: file\n  path: \"\"\n"},
		{"bad log level", "logging:\n  level: shouty\n"},
		{"bad log format", "logging:\n  format: xml\n"},
		{"bad failure ratio", "settings:\n  breaker:\n    failureRatio: 1.5\n"},
		{"malformed yaml", "server: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tc.yaml), 0600); err != nil {
				t.Fatalf("failed to write temp config: %v", err)
			}

			if _, err := Load(path); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}
