package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and can be matched with
// errors.Is().
var (
	// ErrInvalidFormat is returned when the output format is not one of
	// text, json or markdown.
	ErrInvalidFormat = errors.New("invalid output format: must be text, json or markdown")

	// ErrInvalidRounding is returned when the rounding mode is not one of
	// half-away or half-even.
	ErrInvalidRounding = errors.New("invalid rounding mode: must be half-away or half-even")

	// ErrInvalidLogFormat is returned when the log format is not text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrInvalidTopN is returned when the number of chart slices is not positive.
	ErrInvalidTopN = errors.New("invalid top: must be positive")
)
