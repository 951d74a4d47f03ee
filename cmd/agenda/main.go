// Command agenda prints the tasks that can be done now, most urgent first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nibzard/agenda-go/cmd"
)

// exitInterrupted follows the shell convention of 128 + SIGINT.
const exitInterrupted = 130

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cmd.Run(ctx, os.Args[1:])
	interrupted := ctx.Err() != nil
	stop()
	os.Exit(exitCode(os.Stderr, err, interrupted))
}

// exitCode reports err on stderr and maps it to a process status.
func exitCode(stderr io.Writer, err error, interrupted bool) int {
	if err == nil {
		return 0
	}
	if interrupted {
		fmt.Fprintln(stderr, "\nInterrupted")
		return exitInterrupted
	}
	var exitErr *cmd.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
