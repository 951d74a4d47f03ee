package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/nibzard/agenda-go/internal/config"
	"github.com/nibzard/agenda-go/internal/logging"
	"github.com/nibzard/agenda-go/internal/report"
	"github.com/nibzard/agenda-go/internal/todo"
	"github.com/nibzard/agenda-go/internal/utils"
)

// doctorCommand checks config, schema and task file validity.
func doctorCommand(ctx context.Context, e *env, args []string) error {
	files, err := parseCommandFlags(e, "doctor", args)
	if err != nil {
		return err
	}
	w := e.io.Out

	fmt.Fprintln(w, "Agenda Doctor")
	fmt.Fprintln(w, "=============")
	fmt.Fprintln(w)

	allOK := true
	writeConfig(w, e.sources)

	today, err := e.cfg.TodayDay()
	if err != nil {
		fmt.Fprintf(w, "  ❌ Today: %v\n", err)
		allOK = false
	} else {
		fmt.Fprintf(w, "  ✅ Today: %s\n", utils.FormatDay(today))
	}
	fmt.Fprintln(w)

	if !checkSchema(w, e.cfg.SchemaFile) {
		allOK = false
	}

	checkable := make([]string, 0, len(files))
	fmt.Fprintln(w, "Task files:")
	if len(files) == 0 {
		fmt.Fprintln(w, "  ⚠️  None configured (standard input is not checked)")
	}
	for _, path := range files {
		if path == todo.StdinName {
			fmt.Fprintln(w, "  ⚠️  -: standard input is not checked")
			continue
		}
		if checkTaskFile(ctx, w, path, e.cfg.SchemaFile, today) {
			checkable = append(checkable, path)
		} else {
			allOK = false
		}
	}
	fmt.Fprintln(w)

	if len(checkable) > 0 {
		fmt.Fprintln(w, "Dependencies:")
		rep, err := report.Generate(ctx, report.Options{
			Paths:         checkable,
			SchemaPath:    e.cfg.SchemaFile,
			Today:         today,
			OverdueAsDone: e.cfg.OverdueAsDone,
			Logger:        logging.Discard(),
		})
		if err != nil {
			fmt.Fprintf(w, "  ❌ %v\n", err)
			allOK = false
		} else {
			s := rep.Stats
			fmt.Fprintf(w, "  ✅ %d task(s): %d ready, %d blocked, %d done\n", s.Total, s.Ready, s.Blocked, s.Done)
		}
		fmt.Fprintln(w)
	}

	// Overall status
	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return ErrChecksFailed
}

func writeConfig(w io.Writer, cws *config.ConfigWithSources) {
	cfg := cws.Config
	fmt.Fprintln(w, "Config:")
	if path := cws.GetConfigFile(); path != "" {
		fmt.Fprintf(w, "  File: %s\n", path)
	} else {
		fmt.Fprintln(w, "  File: (none, using defaults)")
	}

	values := []struct {
		key   string
		value any
	}{
		{"files", "[" + strings.Join(cfg.Files, ", ") + "]"},
		{"schema_file", cfg.SchemaFile},
		{"today", cfg.Today},
		{"overdue_as_done", cfg.OverdueAsDone},
		{"long_format", cfg.LongFormat},
		{"max_workers", cfg.MaxWorkers},
		{"log_level", cfg.LogLevel},
		{"log_format", cfg.LogFormat},
		{"log_timestamps", cfg.LogTimestamps},
		{"log_caller", cfg.LogCaller},
	}
	for _, v := range values {
		fmt.Fprintf(w, "  %-16s %-24v (%s)\n", v.key, v.value, cws.Sources[v.key])
	}
}

func checkSchema(w io.Writer, path string) bool {
	fmt.Fprintln(w, "Schema file:")
	defer fmt.Fprintln(w)
	if path == "" {
		fmt.Fprintln(w, "  ⚠️  Not configured (minimal checks only)")
		return true
	}
	fmt.Fprintf(w, "  %s\n", path)
	info, err := os.Stat(path)
	switch {
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		return false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		return false
	}
	if err := todo.CompileSchema(path); err != nil {
		fmt.Fprintf(w, "  ❌ %v\n", err)
		return false
	}
	fmt.Fprintln(w, "  ✅ OK")
	return true
}

func checkTaskFile(ctx context.Context, w io.Writer, path, schemaPath string, today int) bool {
	fmt.Fprintf(w, "  %s\n", path)
	info, err := os.Stat(path)
	switch {
	case err != nil:
		fmt.Fprintf(w, "    ❌ Error: %v\n", err)
		return false
	case info.IsDir():
		fmt.Fprintln(w, "    ❌ Error: path is a directory")
		return false
	}

	sources, err := todo.LoadSources(ctx, []string{path}, todo.LoadOptions{
		SchemaPath: schemaPath,
		Today:      today,
		Logger:     logging.Discard(),
	})
	if err != nil {
		fmt.Fprintf(w, "    ❌ %v\n", err)
		return false
	}
	src := sources[0]
	for _, warning := range src.Warnings {
		fmt.Fprintf(w, "    ⚠️  %s\n", warning)
	}
	for _, perr := range src.ParseErrors {
		fmt.Fprintf(w, "    ❌ %v\n", perr)
	}
	if len(src.ParseErrors) > 0 {
		return false
	}
	fmt.Fprintf(w, "    ✅ %d task(s)\n", len(src.Records))
	return true
}
