package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/nibzard/agenda-go/internal/config"
	"github.com/nibzard/agenda-go/internal/logging"
	"github.com/nibzard/agenda-go/internal/report"
	"github.com/nibzard/agenda-go/internal/ui"
)

// parseCommandFlags parses the per-command copy of the agenda flags so they
// may also follow the command name. Remaining arguments are task files.
func parseCommandFlags(e *env, name string, args []string) ([]string, error) {
	fs := flag.NewFlagSet("agenda "+name, flag.ContinueOnError)
	fs.SetOutput(e.io.Err)
	config.BindFlags(fs, e.cfg)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	config.TrackFlags(fs, e.sources.Sources)
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}
	files := fs.Args()
	if len(files) == 0 {
		files = e.cfg.Files
	}
	return files, nil
}

// reportOptions builds report options from the merged config.
func reportOptions(e *env, files []string) (report.Options, error) {
	today, err := e.cfg.TodayDay()
	if err != nil {
		return report.Options{}, err
	}
	return report.Options{
		Paths:         files,
		SchemaPath:    e.cfg.SchemaFile,
		Today:         today,
		OverdueAsDone: e.cfg.OverdueAsDone,
		Logger:        e.logger,
		Stdin:         e.io.In,
		Workers:       e.cfg.MaxWorkers,
	}, nil
}

// listCommand prints the ranked agenda. Parse errors are reported after the
// agenda and turn the exit status to 1.
func listCommand(ctx context.Context, e *env, args []string) error {
	files, err := parseCommandFlags(e, "list", args)
	if err != nil {
		return err
	}
	opts, err := reportOptions(e, files)
	if err != nil {
		return err
	}

	rep, err := report.Generate(ctx, opts)
	if err != nil {
		return err
	}
	if err := report.Render(e.io.Out, rep.Records, rep.Format(e.cfg.LongFormat)); err != nil {
		return err
	}

	if len(rep.ParseErrors) > 0 {
		for _, perr := range rep.ParseErrors {
			e.logger.Error("skipped task", "err", perr)
		}
		return &ExitError{
			Code: 1,
			Err:  fmt.Errorf("%d task line(s) could not be parsed", len(rep.ParseErrors)),
		}
	}
	return nil
}

// tuiCommand opens the interactive viewer. Log output is discarded while
// the viewer owns the terminal.
func tuiCommand(ctx context.Context, e *env, args []string) error {
	files, err := parseCommandFlags(e, "tui", args)
	if err != nil {
		return err
	}
	for _, f := range files {
		if f == "-" {
			return errors.New("tui cannot read tasks from standard input")
		}
	}
	if len(files) == 0 {
		return errors.New("tui needs at least one task file")
	}

	opts, err := reportOptions(e, files)
	if err != nil {
		return err
	}
	opts.Logger = logging.Discard()

	load := func(ctx context.Context) (*report.Report, error) {
		return report.Generate(ctx, opts)
	}
	return ui.Run(ctx, load, ui.Options{Long: e.cfg.LongFormat, Today: opts.Today})
}
