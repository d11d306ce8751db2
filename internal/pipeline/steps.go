package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/nao1215/writedist/internal/model"
	"github.com/nao1215/writedist/internal/report"
	"github.com/nao1215/writedist/internal/workload"
)

// Step names.
const (
	StepValidate = "validate"
	StepGenerate = "generate"
	StepRank     = "rank"
	StepWrite    = "write"
)

// ErrNoRecords is returned by the write step when no generate step ran
// before it.
var ErrNoRecords = errors.New("no records to write")

// ValidateStep checks that a counter can evaluate every index before
// anything is written.
type ValidateStep struct {
	counter workload.Counter
}

// NewValidateStep creates a ValidateStep for counter.
func NewValidateStep(counter workload.Counter) *ValidateStep {
	return &ValidateStep{counter: counter}
}

// Name returns the step name.
func (s *ValidateStep) Name() string {
	return StepValidate
}

// Do returns the counter's DomainError, if any.
func (s *ValidateStep) Do(_ context.Context, _ *model.Run) error {
	return s.counter.Validate()
}

// GenerateStep attaches the counter's record sequence to the run.
// The sequence is lazy; records are computed by the write step.
type GenerateStep struct {
	counter workload.Counter
}

// NewGenerateStep creates a GenerateStep for counter.
func NewGenerateStep(counter workload.Counter) *GenerateStep {
	return &GenerateStep{counter: counter}
}

// Name returns the step name.
func (s *GenerateStep) Name() string {
	return StepGenerate
}

// Do sets run.Records.
func (s *GenerateStep) Do(_ context.Context, run *model.Run) error {
	run.Records = s.counter.Records()
	return nil
}

// RankStep reads the trace at run.InputPath and ranks its addresses.
type RankStep struct {
	opts   []workload.RankerOption
	logger *slog.Logger
}

// RankStepOption configures a RankStep.
type RankStepOption func(*RankStep)

// WithRankerOptions sets the options passed to the FrequencyRanker.
func WithRankerOptions(opts ...workload.RankerOption) RankStepOption {
	return func(s *RankStep) {
		s.opts = append(s.opts, opts...)
	}
}

// WithRankLogger sets a custom logger for the rank step.
func WithRankLogger(logger *slog.Logger) RankStepOption {
	return func(s *RankStep) {
		s.logger = logger
	}
}

// NewRankStep creates a RankStep.
func NewRankStep(opts ...RankStepOption) *RankStep {
	s := &RankStep{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *RankStep) Name() string {
	return StepRank
}

// Do sets run.Ranks and run.LinesRead. A missing or unreadable trace is
// a *model.IOError. Reading stops early if ctx is cancelled.
func (s *RankStep) Do(ctx context.Context, run *model.Run) error {
	f, err := os.Open(run.InputPath)
	if err != nil {
		return &model.IOError{Op: "open", Path: run.InputPath, Err: err}
	}
	defer f.Close()

	ranks, lines, err := workload.Rank(&contextReader{ctx: ctx, r: f}, s.opts...)
	if err != nil {
		return &model.IOError{Op: "read", Path: run.InputPath, Err: err}
	}

	run.Ranks = ranks
	run.LinesRead = lines
	s.logger.Debug("trace ranked",
		"input", run.InputPath,
		"lines", lines,
		"distinct", len(ranks),
	)
	return nil
}

// contextReader fails reads once its context is done.
type contextReader struct {
	ctx context.Context //nolint:containedctx // scoped to one Do call
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

// WriteStep writes the run's records to run.OutputPath.
// The output file only appears once every record is written.
type WriteStep struct {
	format  report.Format
	options []report.Option
	logger  *slog.Logger
}

// WriteStepOption configures a WriteStep.
type WriteStepOption func(*WriteStep)

// WithFormat sets the output format. The default is text.
func WithFormat(format report.Format) WriteStepOption {
	return func(s *WriteStep) {
		s.format = format
	}
}

// WithReportOptions sets options passed to the report writer.
func WithReportOptions(opts ...report.Option) WriteStepOption {
	return func(s *WriteStep) {
		s.options = append(s.options, opts...)
	}
}

// WithWriteLogger sets a custom logger for the write step.
func WithWriteLogger(logger *slog.Logger) WriteStepOption {
	return func(s *WriteStep) {
		s.logger = logger
	}
}

// NewWriteStep creates a WriteStep.
func NewWriteStep(opts ...WriteStepOption) *WriteStep {
	s := &WriteStep{
		format: report.FormatText,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the step name.
func (s *WriteStep) Name() string {
	return StepWrite
}

// Do writes run.Records for model kinds or run.Ranks for KindRank and
// sets run.Output.
func (s *WriteStep) Do(_ context.Context, run *model.Run) (err error) {
	if run.Kind.IsModel() && run.Records == nil {
		return ErrNoRecords
	}

	sink, err := report.CreateFile(run.OutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if abortErr := sink.Abort(); abortErr != nil {
				s.logger.Warn("failed to remove temporary output", "error", abortErr)
			}
		}
	}()

	w, err := report.NewWriter(s.format, sink, s.options...)
	if err != nil {
		return err
	}

	var n int
	if run.Kind.IsModel() {
		n, err = w.WriteCounts(report.CountSet{
			Kind:    run.Kind,
			Params:  run.Params,
			Records: run.Records,
		})
	} else {
		n, err = w.WriteRanks(run.Ranks)
	}
	if err != nil {
		return err
	}

	res, err := sink.Commit(n)
	if err != nil {
		return err
	}
	run.Output = res
	s.logger.Info("output written",
		"output", res.Path,
		"format", string(s.format),
		"records", res.Records,
		"bytes", res.Bytes,
		"sha3_256", res.Digest,
	)
	return nil
}

// NewModelPipeline creates the validate, generate and write pipeline of
// a write-count model.
func NewModelPipeline(counter workload.Counter, write []WriteStepOption, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewValidateStep(counter),
		NewGenerateStep(counter),
		NewWriteStep(write...),
	)
	return p
}

// NewRankPipeline creates the rank and write pipeline of a trace.
func NewRankPipeline(rank []RankStepOption, write []WriteStepOption, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewRankStep(rank...),
		NewWriteStep(write...),
	)
	return p
}
