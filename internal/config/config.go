// Package config loads the tool configuration: where puzzle inputs
// and expected answers live, where run history is stored, and how the
// runner behaves.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all advent configuration.
type Config struct {
	// InputDir holds one input file per puzzle, named day01.txt ..
	// day25.txt.
	InputDir string `yaml:"input_dir"`

	// AnswersPath is the YAML manifest of expected answers used by
	// verification.
	AnswersPath string `yaml:"answers_path"`

	// DatabasePath is the SQLite run history location.
	DatabasePath string `yaml:"database_path"`

	// Parallel bounds how many solvers run at once.
	Parallel int `yaml:"parallel"`

	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		InputDir:     "inputs",
		AnswersPath:  "answers.yaml",
		DatabasePath: "data/advent.db",
		Parallel:     4,
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults
// when the file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides lets ADVENT_* environment variables win over the
// file.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("ADVENT_INPUT_DIR"); dir != "" {
		c.InputDir = dir
	}
	if path := os.Getenv("ADVENT_ANSWERS"); path != "" {
		c.AnswersPath = path
	}
	if path := os.Getenv("ADVENT_DB"); path != "" {
		c.DatabasePath = path
	}
	if level := os.Getenv("ADVENT_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if parallel := os.Getenv("ADVENT_PARALLEL"); parallel != "" {
		if n, err := strconv.Atoi(parallel); err == nil {
			c.Parallel = n
		}
	}
}

// Validate checks settings that would otherwise fail far from their
// cause.
func (c *Config) Validate() error {
	if c.Parallel < 1 {
		return fmt.Errorf("parallel must be at least 1, got %d", c.Parallel)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	return nil
}

// InputPath returns the conventional input file for a day.
func (c *Config) InputPath(day int) string {
	return filepath.Join(c.InputDir, fmt.Sprintf("day%02d.txt", day))
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
