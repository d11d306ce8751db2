// Package config provides the configuration of writedist.
//
// A Config starts from the defaults of NewConfig. Values from a YAML
// configuration file are applied on top (see LoadConfigFile and
// FindConfigFile), and command-line flags are applied last.
package config
