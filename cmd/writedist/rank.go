package main

import (
	"github.com/nao1215/writedist/internal/config"
	"github.com/nao1215/writedist/internal/model"
	"github.com/nao1215/writedist/internal/pipeline"
	"github.com/nao1215/writedist/internal/report"
	"github.com/nao1215/writedist/internal/workload"
	"github.com/spf13/cobra"
)

// Positional arguments of the rank command.
const (
	paramTraceFile  = "trace file"
	paramOutputFile = "output file"
)

// NewRankCmd creates the rank command.
func NewRankCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank <trace file> <output file>",
		Short: "Rank the addresses of a trace by access frequency",
		Long: `Rank counts how often each distinct line of a trace occurs and writes one
record per address, ordered by descending count:

  <rank> <count> <address>

Addresses with equal counts keep the order in which they first appeared.
Lines are compared verbatim without their line terminator; use
--trim-space to ignore trailing whitespace.

Examples:
  writedist rank trace.txt ranks.txt
  writedist rank -f markdown --top 5 trace.txt ranks.md`,
		Args: exactArgs(paramTraceFile, paramOutputFile),
		RunE: runRankCmd,
	}

	cmd.Flags().StringP("format", "f", "text",
		"Output format: text, json or markdown")
	cmd.Flags().Bool("trim-space", false,
		"Strip trailing whitespace from addresses before counting")
	cmd.Flags().Int("top", config.DefaultTopN,
		"Number of addresses shown in the Markdown pie chart")
	cmd.Flags().SetInterspersed(false)

	return cmd
}

// runRankCmd executes the rank command.
func runRankCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	format, _ := cfg.OutputFormat()

	logger, id := newLogger(cmd, cfg)

	run := model.NewRun(id, model.KindRank)
	run.InputPath = args[0]
	run.OutputPath = args[1]

	logger.Debug("starting run",
		"kind", run.Kind.String(),
		"input", run.InputPath,
		"output", run.OutputPath,
		"trim_space", cfg.TrimSpace,
	)

	p := pipeline.NewRankPipeline(
		[]pipeline.RankStepOption{
			pipeline.WithRankerOptions(workload.WithTrimSpace(cfg.TrimSpace)),
			pipeline.WithRankLogger(logger),
		},
		[]pipeline.WriteStepOption{
			pipeline.WithFormat(format),
			pipeline.WithReportOptions(report.WithTopN(cfg.TopN)),
			pipeline.WithWriteLogger(logger),
		},
		pipeline.WithLogger(logger),
	)
	return p.Execute(cmd.Context(), run)
}
