package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Name != "weather-server" || cfg.Server.Version != "1.0.0" {
		t.Errorf("unexpected server identity: %+v", cfg.Server)
	}
	if cfg.HTTP.Addr != ":3333" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "server:\n  name: test-weather\nhttp:\n  addr: \":9999\"\nlogging:\n  level: debug\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Name != "test-weather" {
		t.Errorf("name = %q", cfg.Server.Name)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Server.Version != "1.0.0" {
		t.Errorf("version = %q", cfg.Server.Version)
	}
	if cfg.HTTP.Addr != ":9999" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_MCP_HTTP_ADDR", ":4444")
	t.Setenv("WEATHER_MCP_LOG_LEVEL", "warn")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTP.Addr != ":4444" {
		t.Errorf("addr = %q", cfg.HTTP.Addr)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
