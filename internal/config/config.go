package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/nao1215/writedist/internal/log"
	"github.com/nao1215/writedist/internal/report"
	"github.com/nao1215/writedist/internal/workload"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "writedist"

	// DefaultFormat is the output format. Plain text is the
	// "<index> <count>" / "<rank> <count> <address>" line format.
	DefaultFormat = string(report.FormatText)

	// DefaultRounding rounds halves away from zero, which reproduces the
	// reference write-count tables.
	DefaultRounding = workload.RoundingNameHalfAway

	// DefaultLogFormat is the log output format.
	DefaultLogFormat = log.FormatText

	// DefaultTopN is the number of ranks shown individually in the
	// Markdown pie chart; the rest are grouped as "other".
	DefaultTopN = 10
)

// Config holds all configuration options for writedist.
// It is populated from defaults, the config file and CLI flags, then
// passed down explicitly.
type Config struct {
	// Format is the output format: text, json or markdown.
	Format string

	// Rounding is the rounding mode of the write-count models:
	// half-away or half-even.
	Rounding string

	// LogFormat is the log format on stderr: text or json.
	LogFormat string

	// TrimSpace strips trailing whitespace from trace addresses before
	// they are counted.
	TrimSpace bool

	// TopN is the number of ranks shown in the Markdown pie chart.
	TopN int

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the explicit configuration file path, if any.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Format:    DefaultFormat,
		Rounding:  DefaultRounding,
		LogFormat: DefaultLogFormat,
		TopN:      DefaultTopN,
	}
}

// Apply overrides the configuration with the values set in f.
// Fields that are absent from the file keep their current value.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if f.Output.Format != "" {
		c.Format = f.Output.Format
	}
	if f.Model.Rounding != "" {
		c.Rounding = f.Model.Rounding
	}
	if f.Log.Format != "" {
		c.LogFormat = f.Log.Format
	}
	if f.Log.Verbose != nil {
		c.Verbose = *f.Log.Verbose
	}
	if f.Rank.TrimSpace != nil {
		c.TrimSpace = *f.Rank.TrimSpace
	}
	if f.Rank.Top != 0 {
		c.TopN = f.Rank.Top
	}
}

// RoundingMode returns the parsed rounding mode.
func (c *Config) RoundingMode() (workload.Rounding, error) {
	r, err := workload.ParseRounding(c.Rounding)
	if err != nil {
		return 0, ErrInvalidRounding
	}
	return r, nil
}

// OutputFormat returns the parsed output format.
func (c *Config) OutputFormat() (report.Format, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return "", ErrInvalidFormat
	}
	return f, nil
}

// XDGConfigDir returns the XDG config directory for writedist.
// On Linux: ~/.config/writedist
// On macOS: ~/Library/Application Support/writedist
// On Windows: %APPDATA%\writedist
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	if _, err := c.RoundingMode(); err != nil {
		return err
	}
	if c.LogFormat != log.FormatText && c.LogFormat != log.FormatJSON {
		return ErrInvalidLogFormat
	}
	if c.TopN <= 0 {
		return ErrInvalidTopN
	}
	return nil
}
