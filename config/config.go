// Package config loads pipeline configuration from a YAML file with
// environment-variable overrides for secrets.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/paperwise/paperwise/logging"
)

// Duration wraps time.Duration so YAML values can be written as strings
// like "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the full paperwise configuration.
type Config struct {
	// Solver configures the AI capability.
	Solver SolverConfig `yaml:"solver"`

	// Defaults are applied when a run does not specify them.
	Defaults RunDefaults `yaml:"defaults"`

	// Logging configures the zap logger.
	Logging logging.Config `yaml:"logging"`
}

// SolverConfig configures the OpenRouter-backed solver and OCR reader.
type SolverConfig struct {
	// APIKey is the OpenRouter API key. Falls back to the
	// OPENROUTER_API_KEY environment variable when empty.
	APIKey string `yaml:"api_key"`

	// Model is the chat model used for solving.
	Model string `yaml:"model"`

	// VisionModel is the multimodal model used for OCR. Empty disables
	// image input.
	VisionModel string `yaml:"vision_model"`

	// Concurrency bounds in-flight solve calls.
	Concurrency int `yaml:"concurrency"`

	// CallTimeout is the per-question solve timeout.
	CallTimeout Duration `yaml:"call_timeout"`

	// RateLimitPerMinute throttles outbound calls (0 = unlimited).
	RateLimitPerMinute int `yaml:"rate_limit_per_minute"`
}

// RunDefaults are per-run parameters a caller may omit.
type RunDefaults struct {
	Subject     string `yaml:"subject"`
	ClassLevel  int    `yaml:"class_level"`
	StudentName string `yaml:"student_name"`
	Format      string `yaml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			Model:       "google/gemini-2.0-flash-001",
			Concurrency: 4,
			CallTimeout: Duration(60 * time.Second),
		},
		Defaults: RunDefaults{
			Subject:     "Mathematics",
			ClassLevel:  10,
			StudentName: "Student",
			Format:      "pdf",
		},
	}
}

// Load reads a YAML config file on top of the defaults and applies
// environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if c.Solver.APIKey == "" {
		c.Solver.APIKey = os.Getenv("OPENROUTER_API_KEY")
	}
}
