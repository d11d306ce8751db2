package main

import (
	"fmt"
	"log/slog"

	"github.com/nao1215/writedist/internal/config"
	"github.com/nao1215/writedist/internal/log"
	"github.com/spf13/cobra"
)

// loadConfig builds the effective configuration of a command: defaults,
// then the configuration file, then the flags the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := getPersistentString(cmd, "config")
	if err != nil {
		return nil, err
	}

	cfg, found, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfg.ConfigFilePath = found

	if getVerboseFlag(cmd) {
		cfg.Verbose = true
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// applyFlags copies the explicitly set command flags into cfg.
// Flags a command does not define are skipped.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return err
		}
	}
	if flags.Changed("rounding") {
		if cfg.Rounding, err = flags.GetString("rounding"); err != nil {
			return err
		}
	}
	if flags.Changed("trim-space") {
		if cfg.TrimSpace, err = flags.GetBool("trim-space"); err != nil {
			return err
		}
	}
	if flags.Changed("top") {
		if cfg.TopN, err = flags.GetInt("top"); err != nil {
			return err
		}
	}
	return nil
}

// newLogger creates the run logger described by cfg, tagged with a new
// run ID.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, string) {
	logger := log.New(cmd.ErrOrStderr(), log.Options{
		Verbose: cfg.Verbose,
		Format:  cfg.LogFormat,
	})
	logger, id := log.WithRunID(logger)

	if cfg.ConfigFilePath != "" {
		logger.Debug("loaded configuration file", "path", cfg.ConfigFilePath)
	}
	return logger, id
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getPersistentString retrieves a string flag from the command or the root.
func getPersistentString(cmd *cobra.Command, name string) (string, error) {
	if v, err := cmd.Flags().GetString(name); err == nil {
		return v, nil
	}
	return cmd.Root().PersistentFlags().GetString(name)
}
