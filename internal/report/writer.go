package report

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/nao1215/writedist/internal/model"
)

// Format is an output format name.
type Format string

// Supported output formats.
const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses a format name. Matching is case-insensitive.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// CountSet is a write-count sequence together with what produced it.
type CountSet struct {
	// Kind is the model that produced Records.
	Kind model.Kind

	// Params are the model parameters.
	Params model.Params

	// Records is consumed once, in order.
	Records iter.Seq2[model.WriteCountRecord, error]
}

// Writer defines the interface for record output.
// Both methods return the number of records written. An error yielded
// by the record sequence is returned unchanged.
type Writer interface {
	// WriteCounts outputs a write-count sequence.
	WriteCounts(set CountSet) (int, error)

	// WriteRanks outputs a frequency ranking.
	WriteRanks(ranks []model.FrequencyRankRecord) (int, error)
}

// Option configures a Writer created by NewWriter.
type Option func(*options)

type options struct {
	topN int
}

// WithTopN sets the number of ranks shown individually in the Markdown
// pie chart. Values below 1 are ignored.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}

// defaultTopN is the pie chart slice count when WithTopN is not given.
const defaultTopN = 10

// NewWriter creates the Writer for format that outputs to w.
func NewWriter(format Format, w io.Writer, opts ...Option) (Writer, error) {
	o := options{topN: defaultTopN}
	for _, opt := range opts {
		opt(&o)
	}

	switch format {
	case FormatText:
		return NewTextWriter(w), nil
	case FormatJSON:
		return NewJSONWriter(w), nil
	case FormatMarkdown:
		return NewMarkdownWriter(w, o.topN), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
