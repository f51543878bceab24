// Package config loads server configuration from an optional YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the full server configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig is the identity reported by initialize.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig configures the component loggers.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server:  ServerConfig{Name: "weather-server", Version: "1.0.0"},
		HTTP:    HTTPConfig{Addr: ":3333"},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("WEATHER_MCP_HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("WEATHER_MCP_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	if cfg.Server.Name == "" {
		cfg.Server.Name = Default().Server.Name
	}
	if cfg.Server.Version == "" {
		cfg.Server.Version = Default().Server.Version
	}
	return cfg, nil
}
