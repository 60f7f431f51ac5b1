// Package config loads iconset settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Converter backends.
const (
	BackendImageMagick = "imagemagick"
	BackendNative      = "native"
)

// Config holds the environment-tunable settings. Icon sizes and paths are
// deliberately absent.
type Config struct {
	LogLevel       string `env:"ICONSET_LOG_LEVEL"`
	LogPath        string `env:"ICONSET_LOG_PATH"`
	Backend        string `env:"ICONSET_BACKEND" envDefault:"imagemagick"`
	ConvertBin     string `env:"ICONSET_CONVERT_BIN" envDefault:"convert"`
	InstallCommand string `env:"ICONSET_INSTALL_COMMAND" envDefault:"brew install imagemagick"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and empty commands.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendImageMagick, BackendNative:
	default:
		return fmt.Errorf("unknown backend %q (use %s or %s)", c.Backend, BackendImageMagick, BackendNative)
	}
	if c.Backend == BackendImageMagick {
		if c.ConvertBin == "" {
			return fmt.Errorf("ICONSET_CONVERT_BIN must not be empty")
		}
		if c.InstallCommand == "" {
			return fmt.Errorf("ICONSET_INSTALL_COMMAND must not be empty")
		}
	}
	return nil
}
