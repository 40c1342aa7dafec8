// Package config loads the optional quickmark configuration file.
//
// Configuration is resolved once at startup and passed explicitly into the
// components that need it; nothing reads it as ambient global state.
package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration file contents. Every field is optional;
// missing fields keep their defaults.
type Config struct {
	// Store overrides the bookmark store file location.
	Store   string        `yaml:"store,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// LoggingConfig holds log level and rotation settings.
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`
	MaxSize    int    `yaml:"max_size,omitempty"`
	MaxBackups int    `yaml:"max_backups,omitempty"`
	MaxAge     int    `yaml:"max_age,omitempty"`
}

// Default returns the default quickmark configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:      "info",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     30,
		},
	}
}

// Load reads the config file at path. A missing file yields the defaults.
// Unlike the bookmark store, an unreadable or invalid config file is an
// error; it is never silently reset.
func Load(fs afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return nil, fmt.Errorf("invalid log level %q in %s: %w", cfg.Logging.Level, path, err)
	}

	return cfg, nil
}

// LogLevel returns the configured zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.Logging.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
