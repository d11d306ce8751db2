// Package model defines the data structures shared across writedist.
//
// This package contains the following main types:
//   - Params: the (t, N, n) parameters of a synthetic write-count model
//   - WriteCountRecord: one (index, count) pair produced by a model
//   - FrequencyRankRecord: one (rank, count, address) triple from a trace
//   - Run: the state carried through a single pipeline execution
//
// It also defines the error taxonomy (UsageError, ParseError, IOError and
// DomainError) so that every package reports failures with the same types
// and the CLI can map them to exit statuses.
package model
