package config

import (
	"fmt"
	"strings"

	"github.com/nibzard/agenda-go/internal/utils"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Files lists the config files that were read, user file first.
	Files []string
}

// Default values.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for agenda.
type Config struct {
	// Task sources. Empty means standard input.
	Files []string `toml:"files"`

	// Optional JSON Schema for structured task files.
	SchemaFile string `toml:"schema_file"`

	// Today overrides the system date (YYYY-MM-DD).
	Today string `toml:"today"`

	// Treat tasks past their own deadline as done.
	OverdueAsDone bool `toml:"overdue_as_done"`

	// Print priority, scope and deadline with each task.
	LongFormat bool `toml:"long_format"`

	// Maximum task files read concurrently. 0 reads all at once.
	MaxWorkers int `toml:"max_workers"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

// TodayDay returns the configured day number, or the current local date when
// Today is empty.
func (c *Config) TodayDay() (int, error) {
	if strings.TrimSpace(c.Today) == "" {
		return utils.Today(), nil
	}
	day, err := utils.ParseDay(c.Today)
	if err != nil {
		return 0, fmt.Errorf("today: %w", err)
	}
	return day, nil
}

// Validate checks values that can only be verified after all layers are
// merged.
func (c *Config) Validate() error {
	if _, err := c.TodayDay(); err != nil {
		return err
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("max_workers: must be >= 0, got %d", c.MaxWorkers)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log_level: invalid value %q, must be one of: debug, info, warn, error", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: invalid value %q, must be one of: text, json, logfmt", c.LogFormat)
	}
	return nil
}

// GetConfigFile returns the highest-priority config file that was read.
func (cws *ConfigWithSources) GetConfigFile() string {
	if len(cws.Files) == 0 {
		return ""
	}
	return cws.Files[len(cws.Files)-1]
}
