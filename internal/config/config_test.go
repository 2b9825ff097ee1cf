package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/selection"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "ordered", cfg.Mode)
	assert.Equal(t, 5, cfg.Count)
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("RUSTQUIZ_MODE", "random")
	t.Setenv("RUSTQUIZ_COUNT", "8")
	t.Setenv("RUSTQUIZ_LEVELS", "intro, intermediate")
	t.Setenv("RUSTQUIZ_TAGS", "ownership,,move")
	t.Setenv("RUSTQUIZ_SEED", "42")
	t.Setenv("RUSTQUIZ_LOG", "/tmp/rustquiz.log")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "random", cfg.Mode)
	assert.Equal(t, 8, cfg.Count)
	assert.Equal(t, []string{"intro", "intermediate"}, cfg.Levels)
	assert.Equal(t, []string{"ownership", "move"}, cfg.Tags)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "/tmp/rustquiz.log", cfg.LogFile)
	assert.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_BadNumber(t *testing.T) {
	t.Setenv("RUSTQUIZ_COUNT", "five")

	_, err := ConfigFromEnv()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad mode", func(c *Config) { c.Mode = "shuffle" }},
		{"zero count", func(c *Config) { c.Count = 0 }},
		{"bad level", func(c *Config) { c.Levels = []string{"expert"} }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestPlan(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "random"
	cfg.Count = 3
	cfg.Levels = []string{"beginner"}
	cfg.Tags = []string{"string"}

	plan, err := cfg.Plan()
	require.NoError(t, err)

	assert.Equal(t, selection.ModeRandom, plan.Mode)
	assert.Equal(t, 3, plan.Count)
	assert.Equal(t, []quiz.Level{quiz.LevelBeginner}, plan.Filter.Levels)
	assert.Equal(t, []string{"string"}, plan.Filter.Tags)
}

func TestPlan_BadMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = "nope"

	_, err := cfg.Plan()
	assert.True(t, errors.Is(err, selection.ErrUnknownMode))
}

func TestLoadBank_Embedded(t *testing.T) {
	b, err := DefaultConfig().LoadBank()
	require.NoError(t, err)
	assert.Equal(t, 20, b.Len())
}
