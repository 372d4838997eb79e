package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jonathan/talk-coach/internal/config"
	"github.com/jonathan/talk-coach/internal/observability"
)

// loadRuntime resolves the effective configuration for a command and builds its logger.
// Precedence, lowest first: defaults, config file, TALK_COACH_* environment, flags.
func loadRuntime(cmd *cobra.Command) (config.Config, *logrus.Logger, error) {
	cfg := config.Defaults()
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, nil, err
		}
		cfg = loaded.MergeWithDefaults(config.Defaults())
	}

	if err := cfg.ApplyEnv(); err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = rootLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.LogFormat = rootLogFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}

	logger, err := observability.NewLogger(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())
	if err != nil {
		return config.Config{}, nil, err
	}
	if rootConfigPath != "" {
		logger.WithField("path", rootConfigPath).Debug("loaded config")
	}
	return cfg, logger, nil
}
