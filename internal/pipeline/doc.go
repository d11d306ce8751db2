// Package pipeline runs a writedist command as a sequence of steps.
//
// A model command (analytic, zipf) runs validate, generate and write.
// The rank command runs rank and write. Each step is a Step that reads
// its inputs from a model.Run and stores its results in it, so steps can
// be tested in isolation and the command code only assembles them.
//
// Execution is strictly sequential and stops at the first failing step.
package pipeline
