// Package workload implements the write-count models and the trace
// frequency ranker.
//
// AnalyticCounter and ZipfCounter evaluate closed-form formulas that predict,
// for each rank index i in 1..n-1, how many writes a logical block of that
// rank receives. FrequencyRanker does the empirical counterpart: it counts
// how often each address occurs in a trace and ranks the addresses by
// descending frequency, breaking ties by first appearance.
//
// The counters return lazy sequences (iter.Seq2) and never touch the
// filesystem; writing records is the job of the report package.
package workload
