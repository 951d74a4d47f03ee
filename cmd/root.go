// Package cmd implements the CLI command structure for agenda.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/agenda-go/internal/config"
	"github.com/nibzard/agenda-go/internal/logging"
	"github.com/nibzard/agenda-go/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// ExitError carries a process exit status for failures that have already
// been reported to the user.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrChecksFailed is returned by doctor when a check fails.
var ErrChecksFailed = errors.New("doctor checks failed")

// IO bundles the standard streams used by a command.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdIO returns the process's standard streams.
func StdIO() IO {
	return IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// env is the state shared by every command of one invocation.
type env struct {
	io      IO
	cfg     *config.Config
	sources *config.ConfigWithSources
	logger  *log.Logger
}

// Run executes the agenda CLI on the process's standard streams.
func Run(ctx context.Context, args []string) error {
	return RunWithIO(ctx, args, StdIO())
}

// RunWithIO executes the agenda CLI on the given streams.
func RunWithIO(ctx context.Context, args []string, streams IO) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("agenda", flag.ContinueOnError)
	fs.SetOutput(streams.Err)
	fs.Usage = func() {
		printUsage(fs, streams.Err)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("loading config: %w", err)
	}
	if *help {
		printUsage(fs, streams.Out)
		return nil
	}
	if *showVersion {
		return versionCommand(streams.Out)
	}

	cfg := cws.Config
	e := &env{
		io:      streams,
		cfg:     cfg,
		sources: cws,
		logger:  logging.FromConfig(streams.Err, cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller),
	}

	// Determine the subcommand
	// If no args or first arg is a flag, use "list" as default
	subcommand := "list"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	// Execute the subcommand
	switch subcommand {
	case "list", "ls":
		return listCommand(ctx, e, remainingArgs)
	case "tui":
		return tuiCommand(ctx, e, remainingArgs)
	case "doctor":
		return doctorCommand(ctx, e, remainingArgs)
	case "example-config":
		fmt.Fprint(streams.Out, config.ExampleConfig())
		return nil
	case "schema":
		fmt.Fprint(streams.Out, todo.DefaultSchema)
		return nil
	case "version":
		return versionCommand(streams.Out)
	case "help":
		printUsage(fs, streams.Out)
		return nil
	default:
		// If it's not a recognized command, it might be a task file
		if fi, err := os.Stat(subcommand); err == nil && !fi.IsDir() {
			return listCommand(ctx, e, append([]string{subcommand}, remainingArgs...))
		}
		fmt.Fprintf(streams.Err, "Unknown command: %s\n", subcommand)
		printUsage(fs, streams.Err)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "agenda version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "agenda - print the tasks you can do now, most urgent first")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  agenda [options] [command] [file...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list [file...]    Print the ranked agenda (default command)")
	fmt.Fprintln(w, "  tui [file...]     Browse the agenda in a terminal UI")
	fmt.Fprintln(w, "  doctor [file...]  Check config and task files")
	fmt.Fprintln(w, "  example-config    Print an example agenda.toml")
	fmt.Fprintln(w, "  schema            Print the JSON Schema for structured task files")
	fmt.Fprintln(w, "  version           Show version information")
	fmt.Fprintln(w, "  help              Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "With no file, tasks are read from standard input (also \"-\").")
	fmt.Fprintln(w, "Files ending in .json, .yaml, .yml or .hcl are structured task files;")
	fmt.Fprintln(w, "anything else holds task lines:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  [TODO|DONE] name: [(A|B|C)] description [due:YYYY-MM-DD] [deps:a,b]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
}
