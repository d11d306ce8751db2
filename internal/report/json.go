package report

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/nao1215/writedist/internal/model"
)

// JSONWriter writes one JSON object per record and line, for tool
// integration.
type JSONWriter struct {
	output io.Writer
}

var _ Writer = (*JSONWriter)(nil)

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// WriteCounts writes {"index":i,"count":c} lines.
func (w *JSONWriter) WriteCounts(set CountSet) (int, error) {
	bw := bufio.NewWriter(w.output)
	enc := json.NewEncoder(bw)
	n := 0
	for rec, err := range set.Records {
		if err != nil {
			return n, err
		}
		if err := enc.Encode(rec); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// WriteRanks writes {"rank":r,"count":c,"address":a} lines.
// Addresses are JSON strings, so arbitrary trace bytes stay on one line.
func (w *JSONWriter) WriteRanks(ranks []model.FrequencyRankRecord) (int, error) {
	bw := bufio.NewWriter(w.output)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for i, r := range ranks {
		if err := enc.Encode(r); err != nil {
			return i, err
		}
	}
	return len(ranks), bw.Flush()
}
