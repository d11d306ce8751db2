package config

// File represents the structure of the .writedist configuration file.
type File struct {
	// Model holds settings of the analytic and zipf commands.
	Model ModelSection `yaml:"model,omitempty"`

	// Output holds settings shared by every command's output file.
	Output OutputSection `yaml:"output,omitempty"`

	// Rank holds settings of the rank command.
	Rank RankSection `yaml:"rank,omitempty"`

	// Log holds logging settings.
	Log LogSection `yaml:"log,omitempty"`
}

// ModelSection configures the write-count models.
type ModelSection struct {
	// Rounding is half-away or half-even.
	Rounding string `yaml:"rounding,omitempty"`
}

// OutputSection configures output files.
type OutputSection struct {
	// Format is text, json or markdown.
	Format string `yaml:"format,omitempty"`
}

// RankSection configures the trace ranker.
type RankSection struct {
	// TrimSpace strips trailing whitespace from addresses.
	// A pointer distinguishes "false" from "not set".
	TrimSpace *bool `yaml:"trimSpace,omitempty"`

	// Top is the number of pie chart slices in Markdown output.
	Top int `yaml:"top,omitempty"`
}

// LogSection configures logging.
type LogSection struct {
	// Format is text or json.
	Format string `yaml:"format,omitempty"`

	// Verbose enables debug logging.
	Verbose *bool `yaml:"verbose,omitempty"`
}
