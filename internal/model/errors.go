package model

import (
	"fmt"
	"strconv"
	"strings"
)

// UsageError is returned when a command receives the wrong number of
// positional arguments. Params lists the expected arguments in order.
type UsageError struct {
	// Command is the name of the command that was misused.
	Command string

	// Params are the expected positional arguments, in order.
	Params []string

	// Got is the number of arguments actually supplied.
	Got int
}

// Error implements error.
func (e *UsageError) Error() string {
	return fmt.Sprintf("%s: expected %d arguments, got %d", e.Command, len(e.Params), e.Got)
}

// Usage returns the usage block, one line per expected argument:
//
//	arg 1 : t
//	arg 2 : N
func (e *UsageError) Usage() string {
	var sb strings.Builder
	for i, p := range e.Params {
		sb.WriteString(" arg ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString(" : ")
		sb.WriteString(p)
		sb.WriteString(" \n")
	}
	return sb.String()
}

// ParseError is returned when a numeric parameter cannot be parsed.
type ParseError struct {
	// Param is the parameter name (for example "t").
	Param string

	// Value is the raw text that failed to parse.
	Value string

	// Err is the underlying strconv error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s: must be an integer", e.Value, e.Param)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError is returned when an input cannot be read or an output cannot
// be written.
type IOError struct {
	// Op describes the failed operation ("open", "read", "write", "rename").
	Op string

	// Path is the file involved.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements error.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}

// DomainError is returned when a model formula leaves its mathematical
// domain: the logarithm of a non-positive number, or a non-finite result.
type DomainError struct {
	// Model is the model that failed ("analytic" or "zipf").
	Model string

	// Index is the rank index being evaluated, or 0 if the failure does
	// not depend on the index.
	Index int

	// Expr names the failing expression (for example "ln(x0)").
	Expr string

	// Value is the offending argument or result.
	Value float64
}

// Error implements error.
func (e *DomainError) Error() string {
	if e.Index == 0 {
		return fmt.Sprintf("%s model: %s undefined for %g", e.Model, e.Expr, e.Value)
	}
	return fmt.Sprintf("%s model: %s undefined for %g at index %d", e.Model, e.Expr, e.Value, e.Index)
}
