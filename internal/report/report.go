// Package report builds the ranked agenda from task sources and renders it.
package report

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/todo"
)

// Options configures a report run.
type Options struct {
	// Paths are the task sources. Empty means standard input.
	Paths []string
	// SchemaPath optionally validates structured task files.
	SchemaPath string
	// Today is the day number used for deadlines.
	Today int
	// OverdueAsDone treats tasks past their own deadline as done.
	OverdueAsDone bool
	// Logger receives warnings and debug traces. Nil discards them.
	Logger *log.Logger
	// Stdin replaces os.Stdin for the "-" source.
	Stdin io.Reader
	// Workers bounds concurrent source reads. Zero means unbounded.
	Workers int
}

// Report is the outcome of one run.
type Report struct {
	Records     []agenda.DisplayRecord
	Sources     []string
	ParseErrors []error
	Warnings    []string
	Stats       agenda.Stats
}

// MultiSource reports whether more than one source was read, in which case
// records carry their source as scope.
func (r *Report) MultiSource() bool {
	return len(r.Sources) > 1
}

// Format returns the render format for this report.
func (r *Report) Format(long bool) Format {
	return Format{Long: long, Prefix: r.MultiSource()}
}

// Generate loads every source, ingests the records in order and ranks the
// actionable tasks. Lines that fail to parse are collected in ParseErrors and
// do not stop the run; an unreadable source, an invalid structured file, an
// undefined prerequisite or a cycle does.
func Generate(ctx context.Context, opts Options) (*Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	sources, err := todo.LoadSources(ctx, opts.Paths, todo.LoadOptions{
		SchemaPath: opts.SchemaPath,
		Today:      opts.Today,
		Logger:     logger,
		Stdin:      opts.Stdin,
		Workers:    opts.Workers,
	})
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	ag := agenda.New(agenda.WithLogger(logger))
	for _, src := range sources {
		rep.Sources = append(rep.Sources, src.Name)
		rep.ParseErrors = append(rep.ParseErrors, src.ParseErrors...)
		rep.Warnings = append(rep.Warnings, src.Warnings...)
		for _, rec := range src.Records {
			if err := ag.Ingest(rec); err != nil {
				rep.ParseErrors = append(rep.ParseErrors, fmt.Errorf("%s: %w", src.Name, err))
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	records, err := ag.Compute(opts.Today, opts.OverdueAsDone)
	if err != nil {
		return nil, err
	}
	rep.Records = records
	rep.Stats = ag.Stats()

	logger.Debug("generated agenda",
		"sources", len(rep.Sources),
		"tasks", rep.Stats.Total,
		"ready", rep.Stats.Ready,
		"parse_errors", len(rep.ParseErrors))
	return rep, nil
}
