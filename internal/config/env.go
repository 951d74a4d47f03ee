package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/nibzard/agenda-go/internal/utils"
)

// loadFromEnv overrides config from AGENDA_* environment variables and
// records them in sources.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}

	if v := os.Getenv("AGENDA_FILES"); v != "" {
		cfg.Files = utils.SplitAndTrim(v, string(os.PathListSeparator))
		set("files")
	}
	if v := os.Getenv("AGENDA_SCHEMA"); v != "" {
		cfg.SchemaFile = v
		set("schema_file")
	}
	if v := os.Getenv("AGENDA_TODAY"); v != "" {
		cfg.Today = v
		set("today")
	}
	if v := os.Getenv("AGENDA_OVERDUE_AS_DONE"); v != "" {
		cfg.OverdueAsDone = boolFromString(v)
		set("overdue_as_done")
	}
	if v := os.Getenv("AGENDA_LONG"); v != "" {
		cfg.LongFormat = boolFromString(v)
		set("long_format")
	}

	if v := os.Getenv("AGENDA_MAX_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxWorkers = n
			set("max_workers")
		}
	}

	// Logging configuration
	if v := os.Getenv("AGENDA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
		set("log_level")
	}
	if v := os.Getenv("AGENDA_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
		set("log_format")
	}
	if v := os.Getenv("AGENDA_LOG_TIMESTAMPS"); v != "" {
		cfg.LogTimestamps = boolFromString(v)
		set("log_timestamps")
	}
	if v := os.Getenv("AGENDA_LOG_CALLER"); v != "" {
		cfg.LogCaller = boolFromString(v)
		set("log_caller")
	}
}

// boolFromString parses a boolean from a string.
func boolFromString(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "1" || s == "true" || s == "yes" || s == "on"
}
