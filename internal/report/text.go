package report

import (
	"bufio"
	"io"

	"github.com/nao1215/writedist/internal/model"
)

// TextWriter writes one plain text line per record.
// This is the format the simulators consume.
type TextWriter struct {
	output io.Writer
}

var _ Writer = (*TextWriter)(nil)

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// WriteCounts writes "<index> <count>" lines.
func (w *TextWriter) WriteCounts(set CountSet) (int, error) {
	bw := bufio.NewWriter(w.output)
	n := 0
	for rec, err := range set.Records {
		if err != nil {
			return n, err
		}
		if _, err := bw.WriteString(rec.String() + "\n"); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// WriteRanks writes "<rank> <count> <address>" lines.
func (w *TextWriter) WriteRanks(ranks []model.FrequencyRankRecord) (int, error) {
	bw := bufio.NewWriter(w.output)
	for i, r := range ranks {
		if _, err := bw.WriteString(r.String() + "\n"); err != nil {
			return i, err
		}
	}
	return len(ranks), bw.Flush()
}
