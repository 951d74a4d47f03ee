package todo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/agenda-go/internal/agenda"
	"github.com/nibzard/agenda-go/internal/parallel"
)

// StdinName is the source name used for standard input.
const StdinName = "-"

// LoadOptions controls how task sources are read.
type LoadOptions struct {
	// SchemaPath is an optional JSON Schema used to validate structured files.
	SchemaPath string
	// Today is the day number bound to `today` in HCL files.
	Today int
	// Logger receives ingestion warnings. Nil discards them.
	Logger *log.Logger
	// Stdin replaces os.Stdin for the "-" source.
	Stdin io.Reader
	// Workers bounds how many sources are read at once. Zero reads them all
	// concurrently.
	Workers int
}

// Source is the outcome of reading one task source.
type Source struct {
	Name        string
	Records     []agenda.Record
	ParseErrors []error
	Warnings    []string
}

// LoadSources reads every path and returns the sources in argument order.
// With no paths, standard input is read. When more than one source is given,
// each record is scoped by its source name. A failing source aborts the
// load and cancels sources not yet read.
func LoadSources(ctx context.Context, paths []string, opts LoadOptions) ([]Source, error) {
	if len(paths) == 0 {
		paths = []string{StdinName}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := parallel.NewWorkerPool[Source](ctx, opts.Workers, true)
	for i, path := range paths {
		scope := ""
		if len(paths) > 1 {
			scope = path
		}
		pool.Submit(i, func(context.Context) (Source, error) {
			return loadSource(path, scope, opts, logger)
		})
	}
	results := pool.Wait()
	if err := parallel.FirstError(results); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(results) != len(paths) {
		return nil, fmt.Errorf("loaded %d of %d task sources", len(results), len(paths))
	}

	sources := make([]Source, 0, len(results))
	for _, r := range results {
		logger.Debug("loaded task source", "source", r.Value.Name, "records", len(r.Value.Records), "errors", len(r.Value.ParseErrors), "duration", r.Duration)
		sources = append(sources, r.Value)
	}
	return sources, nil
}

func loadSource(path, scope string, opts LoadOptions, logger *log.Logger) (Source, error) {
	src := Source{Name: path}

	var (
		f   *File
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		f, err = LoadJSON(path)
	case ".yaml", ".yml":
		f, err = LoadYAML(path)
	case ".hcl":
		f, err = LoadHCL(path, opts.Today)
	default:
		return loadLines(path, scope, opts, logger)
	}
	if err != nil {
		return src, fmt.Errorf("%s: %w", path, err)
	}

	result := f.Validate(ValidationOptions{SchemaPath: opts.SchemaPath})
	for _, w := range result.Warnings {
		logger.Warn(w, "source", path)
		src.Warnings = append(src.Warnings, fmt.Sprintf("%s: %s", path, w))
	}
	if !result.Valid {
		return src, fmt.Errorf("%s: invalid task file: %w", path, errors.Join(result.Errors...))
	}

	src.Records, err = f.Records(scope)
	if err != nil {
		return src, fmt.Errorf("%s: %w", path, err)
	}
	return src, nil
}

func loadLines(path, scope string, opts LoadOptions, logger *log.Logger) (Source, error) {
	src := Source{Name: path}

	var r io.Reader
	if path == StdinName {
		r = opts.Stdin
		if r == nil {
			r = os.Stdin
		}
	} else {
		fh, err := os.Open(path)
		if err != nil {
			return src, fmt.Errorf("open task file: %w", err)
		}
		defer fh.Close()
		r = fh
	}

	parser := NewLineParser(path, scope, logger)
	recs, parseErrs, err := parser.Parse(r)
	src.Records = recs
	src.ParseErrors = parseErrs
	src.Warnings = parser.Warnings
	return src, err
}
