package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// PolicyConfig holds the tunable scheduling rules.
type PolicyConfig struct {
	WeeklyShiftLimit        int  `yaml:"weeklyShiftLimit" validate:"min=1"`
	CountFridayTowardWeekly bool `yaml:"countFridayTowardWeekly"`
	RotationSeed            int  `yaml:"rotationSeed" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string       `yaml:"databaseURL" validate:"required"`
	Env         string       `yaml:"env,omitempty"`
	Policy      PolicyConfig `yaml:"policy"`
	// ClosureRules are RRULE strings for recurring site closures (public
	// holidays, maintenance days). Matching dates get no shifts.
	ClosureRules []string `yaml:"closureRules,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from shiftplan_config.yaml
// It looks for the config file in the current directory first, then in the user's home directory
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Config{
		Policy: PolicyConfig{
			WeeklyShiftLimit: 2,
		},
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	// Run struct validation
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Validate rrule syntax for each closure rule
	for i, rule := range cfg.ClosureRules {
		if _, err := rrule.StrToRRule(rule); err != nil {
			return fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
	}

	return nil
}

// ClosureDates expands the closure rules into concrete dates within
// [from, to] inclusive.
func (c *Config) ClosureDates(from, to time.Time) ([]time.Time, error) {
	var dates []time.Time
	for i, ruleStr := range c.ClosureRules {
		rule, err := rrule.StrToRRule(ruleStr)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in closureRules[%d]: %w", i, err)
		}
		rule.DTStart(from)
		dates = append(dates, rule.Between(from, to, true)...)
	}
	return dates, nil
}

// findConfigFile searches for shiftplan_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "shiftplan_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
