// Package main provides the entry point for the writedist CLI.
//
// writedist generates the write-count distributions used by storage and
// cache simulators, and ranks the addresses of a trace by frequency.
//
// Usage:
//
//	writedist analytic <t> <N> <log file> <# lines in log>
//	writedist zipf <t> <N> <log file> <# lines in log>
//	writedist rank <trace file> <output file>
//
// See --help for all available options.
package main

// main is the entry point for writedist.
func main() {
	Execute()
}
