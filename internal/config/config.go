package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/selection"
)

// Config holds runtime settings shared by the TUI and the console driver.
type Config struct {
	// Mode is the selection policy: "ordered" or "random".
	Mode string

	// Count is the number of questions in a random round. Default: 5.
	Count int

	// Levels and Tags restrict which bank items are eligible.
	Levels []string
	Tags   []string

	// BankPath points at a JSON bank file. Empty uses the embedded bank.
	BankPath string

	// Seed makes random rounds reproducible. 0 means random.
	Seed uint64

	// LogFile receives JSON log records. Empty discards logs.
	LogFile  string
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:     string(selection.ModeOrdered),
		Count:    selection.DefaultRandomCount,
		LogLevel: "info",
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values. Malformed numbers are reported by Validate.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if m := os.Getenv("RUSTQUIZ_MODE"); m != "" {
		cfg.Mode = m
	}
	if c := os.Getenv("RUSTQUIZ_COUNT"); c != "" {
		n, err := strconv.Atoi(c)
		if err != nil {
			return cfg, fmt.Errorf("RUSTQUIZ_COUNT: %w", err)
		}
		cfg.Count = n
	}
	if l := os.Getenv("RUSTQUIZ_LEVELS"); l != "" {
		cfg.Levels = splitList(l)
	}
	if t := os.Getenv("RUSTQUIZ_TAGS"); t != "" {
		cfg.Tags = splitList(t)
	}
	if b := os.Getenv("RUSTQUIZ_BANK"); b != "" {
		cfg.BankPath = b
	}
	if s := os.Getenv("RUSTQUIZ_SEED"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("RUSTQUIZ_SEED: %w", err)
		}
		cfg.Seed = n
	}
	if f := os.Getenv("RUSTQUIZ_LOG"); f != "" {
		cfg.LogFile = f
	}
	if lv := os.Getenv("RUSTQUIZ_LOG_LEVEL"); lv != "" {
		cfg.LogLevel = lv
	}

	return cfg, nil
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	if _, err := selection.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	for _, l := range c.Levels {
		if _, err := quiz.ParseLevel(l); err != nil {
			return err
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Plan converts the selection settings into a selection.Plan.
func (c Config) Plan() (selection.Plan, error) {
	mode, err := selection.ParseMode(c.Mode)
	if err != nil {
		return selection.Plan{}, err
	}

	var f selection.Filter
	for _, name := range c.Levels {
		l, err := quiz.ParseLevel(name)
		if err != nil {
			return selection.Plan{}, err
		}
		f.Levels = append(f.Levels, l)
	}
	f.Tags = append(f.Tags, c.Tags...)

	return selection.Plan{Mode: mode, Count: c.Count, Filter: f}, nil
}

// LoadBank opens the configured bank, or the embedded one when BankPath is empty.
func (c Config) LoadBank() (*quiz.Bank, error) {
	if c.BankPath == "" {
		return quiz.Default()
	}
	return quiz.LoadFile(c.BankPath)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
