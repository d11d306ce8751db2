package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/writedist/internal/model"
)

// emptyConfig writes an empty configuration file so that tests do not pick
// up a .writedist from the environment.
func emptyConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

// runCLI runs the CLI with args and returns the exit status and output.
func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(t.Context(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "writedist" {
			t.Errorf("expected use 'writedist', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions and version", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" {
			t.Error("expected non-empty descriptions")
		}
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has persistent flags", func(t *testing.T) {
		t.Parallel()
		for name, short := range map[string]string{"verbose": "v", "config": "c"} {
			flag := cmd.PersistentFlags().Lookup(name)
			if flag == nil {
				t.Fatalf("expected %s flag", name)
			}
			if flag.Shorthand != short {
				t.Errorf("%s: expected shorthand %q, got %q", name, short, flag.Shorthand)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()
		want := map[string]bool{"analytic": false, "zipf": false, "rank": false, "init": false, "version": false}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: exitOK},
		{name: "usage", err: &model.UsageError{Command: "zipf"}, want: exitUsage},
		{name: "parse", err: &model.ParseError{Param: "t", Value: "x"}, want: exitParse},
		{name: "io", err: &model.IOError{Op: "open", Path: "p", Err: os.ErrNotExist}, want: exitIO},
		{name: "domain", err: &model.DomainError{Model: "zipf", Expr: "ln(N)"}, want: exitDomain},
		{name: "wrapped domain", err: fmt.Errorf("run: %w", &model.DomainError{}), want: exitDomain},
		{name: "other", err: errors.New("boom"), want: exitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("unknown command exits with 1", func(t *testing.T) {
		t.Parallel()
		code, _, stderr := runCLI(t, "nope")
		if code != exitError {
			t.Errorf("expected %d, got %d", exitError, code)
		}
		if !strings.Contains(stderr, "Error:") {
			t.Errorf("expected error on stderr, got %q", stderr)
		}
	})

	t.Run("unknown flag exits with 1", func(t *testing.T) {
		t.Parallel()
		code, _, _ := runCLI(t, "zipf", "--nope", "2", "100", "out", "10")
		if code != exitError {
			t.Errorf("expected %d, got %d", exitError, code)
		}
	})

	t.Run("missing explicit config exits with 1", func(t *testing.T) {
		t.Parallel()
		out := filepath.Join(t.TempDir(), "out")
		code, _, stderr := runCLI(t, "zipf", "-c", filepath.Join(t.TempDir(), "none.yaml"), "2", "100", out, "10")
		if code != exitError {
			t.Errorf("expected %d, got %d", exitError, code)
		}
		if !strings.Contains(stderr, "not found") {
			t.Errorf("expected not found error, got %q", stderr)
		}
	})

	t.Run("cancelled context stops the run", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		out := filepath.Join(t.TempDir(), "out")
		var stdout, stderr bytes.Buffer
		code := run(ctx, []string{"zipf", "-c", emptyConfig(t), "2", "100", out, "10"}, &stdout, &stderr)
		if code != exitError {
			t.Errorf("expected %d, got %d", exitError, code)
		}
		if _, err := os.Stat(out); !os.IsNotExist(err) {
			t.Error("expected no output file")
		}
	})
}
