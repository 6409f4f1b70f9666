package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Env:         "test",
		Policy: PolicyConfig{
			WeeklyShiftLimit:        2,
			CountFridayTowardWeekly: false,
			RotationSeed:            3,
		},
		ClosureRules: []string{"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MinimalConfig(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy: PolicyConfig{
			WeeklyShiftLimit: 2,
		},
	}

	err := Validate(cfg)
	assert.NoError(t, err)
}

func TestValidate_MissingDatabaseURL(t *testing.T) {
	cfg := &Config{
		Policy: PolicyConfig{
			WeeklyShiftLimit: 2,
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_ZeroWeeklyLimit(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_InvalidRRule(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy: PolicyConfig{
			WeeklyShiftLimit: 2,
		},
		ClosureRules: []string{"INVALID_RRULE_SYNTAX"},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rrule")
}

func TestValidate_MixedRRules(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy: PolicyConfig{
			WeeklyShiftLimit: 2,
		},
		ClosureRules: []string{
			"FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1",
			"INVALID_RRULE",
		},
	}

	err := Validate(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "closureRules[1]")
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test_config.yaml")

	validConfig := `
databaseURL: "postgres://localhost:5432/shiftplan"
env: "test"
policy:
  weeklyShiftLimit: 3
  countFridayTowardWeekly: true
  rotationSeed: 7
closureRules:
  - "FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25"
`

	err := os.WriteFile(configPath, []byte(validConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/shiftplan", cfg.DatabaseURL)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 3, cfg.Policy.WeeklyShiftLimit)
	assert.True(t, cfg.Policy.CountFridayTowardWeekly)
	assert.Equal(t, 7, cfg.Policy.RotationSeed)
	require.Len(t, cfg.ClosureRules, 1)
}

func TestLoadFromPath_PolicyDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "minimal_config.yaml")

	minimalConfig := `
databaseURL: "postgres://localhost:5432/shiftplan"
`

	err := os.WriteFile(configPath, []byte(minimalConfig), 0644)
	require.NoError(t, err)

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Policy.WeeklyShiftLimit)
	assert.False(t, cfg.Policy.CountFridayTowardWeekly)
	assert.Equal(t, 0, cfg.Policy.RotationSeed)
	assert.Empty(t, cfg.ClosureRules)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid_yaml.yaml")

	invalidYAML := `
databaseURL: "postgres://localhost:5432/shiftplan"
  invalid indentation
env: "test"
`

	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	require.NoError(t, err)

	_, err = LoadFromPath(configPath)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadFromPath_FileNotFound(t *testing.T) {
	_, err := LoadFromPath("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestClosureDates_ChristmasInDecember(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy:      PolicyConfig{WeeklyShiftLimit: 2},
		ClosureRules: []string{
			"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
		},
	}

	from := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)

	dates, err := cfg.ClosureDates(from, to)
	require.NoError(t, err)
	require.Len(t, dates, 1)
	assert.Equal(t, time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), dates[0])
}

func TestClosureDates_OutsideRange(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy:      PolicyConfig{WeeklyShiftLimit: 2},
		ClosureRules: []string{
			"FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
		},
	}

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	dates, err := cfg.ClosureDates(from, to)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestClosureDates_NoRules(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://localhost:5432/shiftplan",
		Policy:      PolicyConfig{WeeklyShiftLimit: 2},
	}

	from := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)

	dates, err := cfg.ClosureDates(from, to)
	require.NoError(t, err)
	assert.Empty(t, dates)
}
