// Package report writes computed records to their output file.
//
// Three formats are supported:
//   - text: one "<index> <count>" or "<rank> <count> <address>" line per record
//   - json: one JSON object per line
//   - markdown: a summary, a record table and, for rankings, a mermaid pie chart
//
// Writers implement the Writer interface and write to any io.Writer.
// FileSink provides the io.Writer for an output file: data goes to a
// temporary file that only replaces the destination on Commit, so a
// failed run never leaves a partial output behind.
package report
