// =============================================================================
// Purchases Manager - Configuration
// =============================================================================
//
// This module loads the optional main configuration file (config.yaml). The
// configuration only covers where the output tree lives and how chatty the
// logs are. Every option has a default,
// and a missing configuration file simply yields the defaults, so the CLI
// works with nothing but its two positional arguments.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config holds the global application settings.
// This is loaded from the main config.yaml file.
type Config struct {
	// OutputDir is the root of the output tree.
	// Default: "response"
	OutputDir string `yaml:"output_dir"`

	// QuerysSubdir is the subdirectory receiving the query reports.
	// Default: "querys"
	QuerysSubdir string `yaml:"querys_subdir"`

	// TicketsSubdir is the subdirectory receiving per-purchase tickets.
	// Default: "tickets"
	TicketsSubdir string `yaml:"tickets_subdir"`

	// LogLevel is the minimum level for log output.
	// One of: debug, info, warn, error.
	// Default: "info"
	LogLevel string `yaml:"log_level"`
}

// Default returns a configuration with every option at its default value.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file. A file that does not exist
// is not an error: the defaults are returned, keeping the configuration file
// strictly optional.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputDir == "" {
		cfg.OutputDir = "response"
	}
	if cfg.QuerysSubdir == "" {
		cfg.QuerysSubdir = "querys"
	}
	if cfg.TicketsSubdir == "" {
		cfg.TicketsSubdir = "tickets"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}

// validate checks the configuration values.
func validate(cfg *Config) error {
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}
	return nil
}

// QuerysDir is the full path of the query reports directory.
func (c *Config) QuerysDir() string {
	return filepath.Join(c.OutputDir, c.QuerysSubdir)
}

// TicketsDir is the full path of the tickets directory.
func (c *Config) TicketsDir() string {
	return filepath.Join(c.OutputDir, c.TicketsSubdir)
}

// Level returns the configured log level as a zerolog level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
