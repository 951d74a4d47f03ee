package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/nibzard/agenda-go/cmd"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		interrupted bool
		want        int
		wantStderr  string
	}{
		{name: "success", want: 0},
		{name: "plain error", err: errors.New("boom"), want: 1, wantStderr: "Error: boom"},
		{name: "exit error", err: &cmd.ExitError{Code: 1, Err: errors.New("skipped tasks")}, want: 1},
		{name: "wrapped exit error", err: fmt.Errorf("list: %w", &cmd.ExitError{Code: 3, Err: errors.New("checks failed")}), want: 3},
		{name: "interrupted", err: context.Canceled, interrupted: true, want: 130, wantStderr: "Interrupted"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if got := exitCode(&stderr, tt.err, tt.interrupted); got != tt.want {
				t.Errorf("exitCode: got %d, want %d", got, tt.want)
			}
			if tt.wantStderr == "" && stderr.Len() > 0 {
				t.Errorf("stderr: got %q, want nothing", stderr.String())
			}
			if !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr: got %q, want it to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
