package config

import (
	"flag"
)

// flagToField maps flag names to source field names.
var flagToField = map[string]string{
	"d":               "overdue_as_done",
	"overdue-as-done": "overdue_as_done",
	"l":               "long_format",
	"long":            "long_format",
	"T":               "today",
	"today":           "today",
	"schema":          "schema_file",
	"max-workers":     "max_workers",
	"log-level":       "log_level",
	"log-format":      "log_format",
	"log-timestamps":  "log_timestamps",
	"log-caller":      "log_caller",
}

// BindFlags defines the configuration flags on fs, writing parsed values
// straight into cfg. Values already in cfg become the flag defaults.
func BindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.OverdueAsDone, "d", cfg.OverdueAsDone, "Treat tasks past their deadline as done")
	fs.BoolVar(&cfg.OverdueAsDone, "overdue-as-done", cfg.OverdueAsDone, "Treat tasks past their deadline as done")
	fs.BoolVar(&cfg.LongFormat, "l", cfg.LongFormat, "Long format: priority, file and deadline")
	fs.BoolVar(&cfg.LongFormat, "long", cfg.LongFormat, "Long format: priority, file and deadline")
	fs.StringVar(&cfg.Today, "T", cfg.Today, "Use `YYYY-MM-DD` as today's date")
	fs.StringVar(&cfg.Today, "today", cfg.Today, "Use `YYYY-MM-DD` as today's date")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "JSON Schema for structured task files")
	fs.IntVar(&cfg.MaxWorkers, "max-workers", cfg.MaxWorkers, "Maximum task files read concurrently (0 = all)")

	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text, json, logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Show timestamps in logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Show caller location in logs")
}

// TrackFlags records every flag that was set on fs as a flag-sourced value.
func TrackFlags(fs *flag.FlagSet, sources map[string]ConfigSource) {
	if sources == nil {
		return
	}
	fs.Visit(func(f *flag.Flag) {
		if field, ok := flagToField[f.Name]; ok {
			sources[field] = SourceFlag
		}
	})
}

// parseFlags binds and parses the configuration flags. A nil fs gets a
// fresh flag set.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}
	BindFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return err
	}
	TrackFlags(fs, sources)
	return nil
}
