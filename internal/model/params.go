package model

import (
	"fmt"
	"strconv"
)

// Alpha is the exponent of the power-law (Zipf) write-count model.
// It is negative, so predicted counts never grow with the rank index.
const Alpha = -0.15

// Parameter names as they appear in usage text and error messages.
const (
	ParamT     = "t"
	ParamN     = "N"
	ParamLines = "# lines in log"
)

// Params holds the inputs of a synthetic write-count model.
// A Params value is built once per run and never modified.
type Params struct {
	// T is the time/scale factor of the model.
	T int `json:"t"`

	// N is the total population size (number of logical blocks).
	N int `json:"N"` //nolint:tagliatelle // N is the model's symbol

	// Lines is the exclusive upper bound of the generated rank indices.
	// A model emits records for indices 1 .. Lines-1.
	Lines int `json:"n"`
}

// NewParams builds Params from the positional strings given on the command line.
// Each value must be a base-10 integer; otherwise a *ParseError naming the
// offending parameter is returned.
func NewParams(t, n, lines string) (Params, error) {
	var p Params
	var err error

	if p.T, err = parseInt(ParamT, t); err != nil {
		return Params{}, err
	}
	if p.N, err = parseInt(ParamN, n); err != nil {
		return Params{}, err
	}
	if p.Lines, err = parseInt(ParamLines, lines); err != nil {
		return Params{}, err
	}
	return p, nil
}

// RecordCount returns the number of records a model emits for these parameters.
func (p Params) RecordCount() int {
	if p.Lines < 2 {
		return 0
	}
	return p.Lines - 1
}

// String returns the parameters in "t=.. N=.. n=.." form for logging.
func (p Params) String() string {
	return fmt.Sprintf("t=%d N=%d n=%d", p.T, p.N, p.Lines)
}

func parseInt(name, value string) (int, error) {
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ParseError{Param: name, Value: value, Err: err}
	}
	return v, nil
}
