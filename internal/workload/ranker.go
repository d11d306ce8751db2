package workload

import (
	"bufio"
	"cmp"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/nao1215/writedist/internal/model"
)

// readerBufferSize is the read buffer used when consuming a trace.
const readerBufferSize = 64 * 1024

// RankerOption configures a FrequencyRanker.
type RankerOption func(*FrequencyRanker)

// WithTrimSpace strips trailing whitespace from every address before it
// is counted, so "a " and "a" become the same address.
func WithTrimSpace(trim bool) RankerOption {
	return func(r *FrequencyRanker) {
		r.trimSpace = trim
	}
}

// entry is the running count of one distinct address.
type entry struct {
	address string
	count   int64
}

// FrequencyRanker counts trace addresses and ranks them by frequency.
//
// Only the distinct addresses are retained. Entries are kept in first-seen
// order and Ranks sorts them stably, so addresses with equal counts are
// ranked in the order they first appeared.
type FrequencyRanker struct {
	trimSpace bool

	// index maps an address to its position in entries.
	index   map[string]int
	entries []entry
	lines   int64
}

// NewFrequencyRanker creates an empty FrequencyRanker.
func NewFrequencyRanker(opts ...RankerOption) *FrequencyRanker {
	r := &FrequencyRanker{
		index: make(map[string]int),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add records one occurrence of address.
func (r *FrequencyRanker) Add(address model.TraceRecord) {
	if r.trimSpace {
		address = strings.TrimRightFunc(address, unicode.IsSpace)
	}
	r.lines++
	if i, ok := r.index[address]; ok {
		r.entries[i].count++
		return
	}
	r.index[address] = len(r.entries)
	r.entries = append(r.entries, entry{address: address, count: 1})
}

// Consume reads rd line by line and adds every line as an address.
// The "\n" terminator is dropped; all other bytes of the line are kept.
// A final line without a terminator is counted like any other line.
// It returns the number of lines read from rd.
func (r *FrequencyRanker) Consume(rd io.Reader) (int64, error) {
	br := bufio.NewReaderSize(rd, readerBufferSize)
	var n int64
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			r.Add(strings.TrimSuffix(line, "\n"))
			n++
		}
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
	}
}

// Lines returns the total number of addresses added so far.
func (r *FrequencyRanker) Lines() int64 {
	return r.lines
}

// Distinct returns the number of distinct addresses added so far.
func (r *FrequencyRanker) Distinct() int {
	return len(r.entries)
}

// Ranks returns one record per distinct address, ordered by descending
// count with ties in first-seen order. Ranks start at 1.
// An empty ranker returns an empty slice.
func (r *FrequencyRanker) Ranks() []model.FrequencyRankRecord {
	sorted := slices.Clone(r.entries)
	slices.SortStableFunc(sorted, func(a, b entry) int {
		return cmp.Compare(b.count, a.count)
	})

	out := make([]model.FrequencyRankRecord, len(sorted))
	for i, e := range sorted {
		out[i] = model.FrequencyRankRecord{
			Rank:    i + 1,
			Count:   e.count,
			Address: e.address,
		}
	}
	return out
}

// Rank consumes rd and returns its ranking and the number of lines read.
func Rank(rd io.Reader, opts ...RankerOption) ([]model.FrequencyRankRecord, int64, error) {
	r := NewFrequencyRanker(opts...)
	n, err := r.Consume(rd)
	if err != nil {
		return nil, n, err
	}
	return r.Ranks(), n, nil
}
