package main

import (
	"fmt"

	"github.com/nao1215/writedist/internal/model"
	"github.com/nao1215/writedist/internal/pipeline"
	"github.com/nao1215/writedist/internal/report"
	"github.com/nao1215/writedist/internal/workload"
	"github.com/spf13/cobra"
)

// paramLogFile is the usage name of the output argument of the model commands.
const paramLogFile = "log file"

// modelParams are the positional arguments of the model commands, in order.
var modelParams = []string{model.ParamT, model.ParamN, paramLogFile, model.ParamLines}

// NewAnalyticCmd creates the analytic command.
func NewAnalyticCmd() *cobra.Command {
	return newModelCmd(model.KindAnalytic,
		"Generate write counts with the logarithmic-decay model",
		`Generate the expected write count of every rank index i = 1 .. n-1
with the logarithmic-decay model:

  x0    = (1.33*t - 1) * (i - 1) + 1
  count = round(1.5*t * (ln(N) - ln(x0)) / (1 + 1/(1.33*t)))

Each record is written as "<index> <count>". Counts may be zero or
negative. A logarithm of a non-positive number is an error.
Flags go before the parameters. Everything after the first parameter is
positional, so only a negative t needs a leading --.

Examples:
  writedist analytic 2 100 analytic.log 10
  writedist analytic -f markdown 2 100 analytic.md 1000
  writedist analytic 2 -5 analytic.log 10
  writedist analytic -- -1 100 analytic.log 10`)
}

// NewZipfCmd creates the zipf command.
func NewZipfCmd() *cobra.Command {
	return newModelCmd(model.KindZipf,
		"Generate write counts with the power-law (Zipf) model",
		`Generate the expected write count of every rank index i = 1 .. n-1
with the power-law model:

  base  = 1.5*t * ln(N) / (1 + 1/(1.33*t))
  count = round(base * i^-0.15)

Each record is written as "<index> <count>".

Examples:
  writedist zipf 2 100 zipf.log 10
  writedist zipf -r half-even 2 100 zipf.log 10`)
}

// newModelCmd creates the command of a write-count model.
func newModelCmd(kind model.Kind, short, long string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   kind.String() + " <t> <N> <log file> <# lines in log>",
		Short: short,
		Long:  long,
		Args:  exactArgs(modelParams...),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelCmd(cmd, kind, args)
		},
	}

	cmd.Flags().StringP("format", "f", "text",
		"Output format: text, json or markdown")
	cmd.Flags().StringP("rounding", "r", "half-away",
		"Rounding of the write counts: half-away or half-even")
	// Keep "-5" after t a positional argument instead of a shorthand flag.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runModelCmd executes a model command.
func runModelCmd(cmd *cobra.Command, kind model.Kind, args []string) error {
	params, err := model.NewParams(args[0], args[1], args[3])
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// Validate has accepted both values.
	rounding, _ := cfg.RoundingMode()
	format, _ := cfg.OutputFormat()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "t = %d\n", params.T)
	fmt.Fprintf(out, "N = %d\n", params.N)
	fmt.Fprintf(out, "n = %d\n", params.Lines)

	logger, id := newLogger(cmd, cfg)

	var counter workload.Counter
	switch kind {
	case model.KindAnalytic:
		counter = workload.NewAnalyticCounter(params, workload.WithRounding(rounding))
	default:
		counter = workload.NewZipfCounter(params, workload.WithRounding(rounding))
	}

	run := model.NewRun(id, kind)
	run.Params = params
	run.OutputPath = args[2]

	logger.Debug("starting run",
		"kind", kind.String(),
		"params", params.String(),
		"rounding", rounding.String(),
		"output", run.OutputPath,
	)

	p := pipeline.NewModelPipeline(counter,
		[]pipeline.WriteStepOption{
			pipeline.WithFormat(format),
			pipeline.WithReportOptions(report.WithTopN(cfg.TopN)),
			pipeline.WithWriteLogger(logger),
		},
		pipeline.WithLogger(logger),
	)
	return p.Execute(cmd.Context(), run)
}
