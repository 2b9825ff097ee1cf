package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rustquiz/rustquiz/internal/config"
	"github.com/rustquiz/rustquiz/internal/logging"
	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/selection"
)

// runEnv bundles what every command needs once flags are parsed.
type runEnv struct {
	cfg      config.Config
	bank     *quiz.Bank
	planner  *selection.Planner
	log      *slog.Logger
	closeLog func() error
}

func (rt *runEnv) close() {
	if rt.closeLog != nil {
		_ = rt.closeLog()
	}
}

// loadConfig reads RUSTQUIZ_* variables, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		cfg.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("count") {
		cfg.Count, _ = flags.GetInt("count")
	}
	if flags.Changed("level") {
		cfg.Levels, _ = flags.GetStringSlice("level")
	}
	if flags.Changed("tag") {
		cfg.Tags, _ = flags.GetStringSlice("tag")
	}
	if flags.Changed("bank") {
		cfg.BankPath, _ = flags.GetString("bank")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("log") {
		cfg.LogFile, _ = flags.GetString("log")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// setup loads config, the logger and the question bank.
func setup(cmd *cobra.Command) (*runEnv, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	bank, err := cfg.LoadBank()
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	return &runEnv{
		cfg:      cfg,
		bank:     bank,
		planner:  selection.NewPlanner(cfg.Seed),
		log:      log,
		closeLog: closeLog,
	}, nil
}
