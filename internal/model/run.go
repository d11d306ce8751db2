package model

import (
	"iter"
	"time"
)

// Kind identifies which computation a Run performs.
type Kind int

const (
	// KindAnalytic evaluates the logarithmic-decay write-count model.
	KindAnalytic Kind = iota

	// KindZipf evaluates the power-law write-count model.
	KindZipf

	// KindRank ranks the addresses of a trace by access frequency.
	KindRank
)

// String returns the command name for the kind.
func (k Kind) String() string {
	switch k {
	case KindAnalytic:
		return "analytic"
	case KindZipf:
		return "zipf"
	case KindRank:
		return "rank"
	default:
		return "unknown"
	}
}

// IsModel reports whether the kind generates synthetic write counts.
func (k Kind) IsModel() bool {
	return k == KindAnalytic || k == KindZipf
}

// OutputResult describes an output file after it has been committed.
type OutputResult struct {
	// Path is the final location of the output.
	Path string `json:"path"`

	// Records is the number of records written.
	Records int `json:"records"`

	// Bytes is the size of the output in bytes.
	Bytes int64 `json:"bytes"`

	// Digest is the hex SHA3-256 digest of the output. Two runs with the
	// same inputs produce the same digest.
	Digest string `json:"digest"`
}

// Run carries the state of one pipeline execution.
// Steps read their inputs from a Run and store their results in it.
type Run struct {
	// ID identifies the run in log output.
	ID string

	// Kind selects the computation.
	Kind Kind

	// Params are the model parameters; unused for KindRank.
	Params Params

	// InputPath is the trace path; unused for model kinds.
	InputPath string

	// OutputPath is where the records are written.
	OutputPath string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Records is the lazily evaluated sequence of write counts.
	// It is set by the generate step for model kinds.
	Records iter.Seq2[WriteCountRecord, error]

	// Ranks holds the ranked addresses; set by the rank step.
	Ranks []FrequencyRankRecord

	// LinesRead is the number of trace lines consumed by the rank step.
	LinesRead int64

	// Output is set once the write step has committed the output.
	Output *OutputResult

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string

	// Err is the error of the step that stopped the run, if any.
	Err error
}

// NewRun creates a Run of the given kind.
func NewRun(id string, kind Kind) *Run {
	return &Run{
		ID:        id,
		Kind:      kind,
		StartedAt: time.Now(),
	}
}
