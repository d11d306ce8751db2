package model

import "strconv"

// WriteCountRecord is the predicted write count for one rank index.
// Count is not clamped and may be zero or negative.
type WriteCountRecord struct {
	// Index is the 1-based rank index.
	Index int `json:"index"`

	// Count is the rounded write count predicted for Index.
	Count int64 `json:"count"`
}

// String returns the record in "<index> <count>" form.
func (r WriteCountRecord) String() string {
	return strconv.Itoa(r.Index) + " " + strconv.FormatInt(r.Count, 10)
}

// TraceRecord is one address line read from a trace.
// Two records are the same address only if their text is identical.
type TraceRecord = string

// FrequencyRankRecord is one distinct address of a trace with its
// access count and rank.
type FrequencyRankRecord struct {
	// Rank is the 1-based position by descending Count.
	Rank int `json:"rank"`

	// Count is the number of times Address occurred in the trace.
	Count int64 `json:"count"`

	// Address is the trace line, verbatim apart from its line terminator.
	Address TraceRecord `json:"address"`
}

// String returns the record in "<rank> <count> <address>" form.
func (r FrequencyRankRecord) String() string {
	return strconv.Itoa(r.Rank) + " " + strconv.FormatInt(r.Count, 10) + " " + r.Address
}

// TotalCount returns the sum of the counts of the given records.
// For a complete ranking this equals the number of trace lines read.
func TotalCount(records []FrequencyRankRecord) int64 {
	var total int64
	for _, r := range records {
		total += r.Count
	}
	return total
}
