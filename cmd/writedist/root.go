package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/writedist/internal/model"
	"github.com/spf13/cobra"
)

// Process exit statuses.
const (
	exitOK     = 0
	exitError  = 1
	exitUsage  = 2
	exitParse  = 3
	exitIO     = 4
	exitDomain = 5
)

// NewRootCmd creates the root command for writedist.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "writedist",
		Short: "Write-count distributions for storage and cache simulators",
		Long: `writedist predicts how often each logical block is written and measures
how often each address occurs in a trace.

The analytic and zipf commands evaluate a logarithmic-decay and a
power-law model for every rank index. The rank command counts the
addresses of a trace and ranks them by descending frequency.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file")

	cmd.AddCommand(NewAnalyticCmd())
	cmd.AddCommand(NewZipfCmd())
	cmd.AddCommand(NewRankCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command and exits with the status of the error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the CLI with args and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "Error:", err)
	var usageErr *model.UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprint(stderr, "Usage:\n"+usageErr.Usage())
	}
	return exitCode(err)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	var (
		usageErr  *model.UsageError
		parseErr  *model.ParseError
		ioErr     *model.IOError
		domainErr *model.DomainError
	)
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usageErr):
		return exitUsage
	case errors.As(err, &parseErr):
		return exitParse
	case errors.As(err, &ioErr):
		return exitIO
	case errors.As(err, &domainErr):
		return exitDomain
	default:
		return exitError
	}
}

// exactArgs returns a cobra argument validator that requires one
// argument per name in params and reports a *model.UsageError otherwise.
func exactArgs(params ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != len(params) {
			return &model.UsageError{
				Command: cmd.CommandPath(),
				Params:  params,
				Got:     len(args),
			}
		}
		return nil
	}
}
