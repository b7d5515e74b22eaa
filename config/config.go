// Package config holds the run configuration for the wordsquare command,
// loaded from YAML and overridable by command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordsquare/report"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Config holds all wordsquare settings.
type Config struct {
	// Input is the dictionary path, one word per line.
	Input string `yaml:"input"`

	// WordLength is the square size; only words of this length are loaded.
	WordLength int `yaml:"word_length"`

	// Dedupe drops repeated dictionary entries.
	Dedupe bool `yaml:"dedupe"`

	// Search settings
	Search SearchConfig `yaml:"search"`

	// Output destinations
	Output OutputConfig `yaml:"output"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig configures the square search.
type SearchConfig struct {
	Workers    int    `yaml:"workers"`     // concurrent seed searches; 1 = sequential
	Timeout    string `yaml:"timeout"`     // duration string, empty = none
	MaxResults int    `yaml:"max_results"` // 0 = unlimited
}

// OutputConfig configures where results go. Empty paths are skipped.
type OutputConfig struct {
	Text  string `yaml:"text"`
	JSON  string `yaml:"json"`
	YAML  string `yaml:"yaml"`
	Print bool   `yaml:"print"` // echo squares to stdout

	// PrintFormat selects the stdout rendering: "" for the plain listing,
	// otherwise any name report.ParseFormat accepts.
	PrintFormat string `yaml:"print_format"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the settings of a plain run: four-letter words from
// four_letter_words.txt, results.txt and results.json, sequential search.
func DefaultConfig() *Config {
	return &Config{
		Input:      "four_letter_words.txt",
		WordLength: 4,
		Search: SearchConfig{
			Workers: 1,
		},
		Output: OutputConfig{
			Text:  "results.txt",
			JSON:  "results.json",
			Print: true,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file on top of DefaultConfig and validates the result.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Validate checks ranges and parses the timeout.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input path is empty", ErrInvalidConfig)
	}
	if c.WordLength < 1 {
		return fmt.Errorf("%w: word_length %d < 1", ErrInvalidConfig, c.WordLength)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("%w: search.workers %d < 1", ErrInvalidConfig, c.Search.Workers)
	}
	if c.Search.MaxResults < 0 {
		return fmt.Errorf("%w: search.max_results %d < 0", ErrInvalidConfig, c.Search.MaxResults)
	}
	if _, err := c.TimeoutDuration(); err != nil {
		return err
	}
	if c.Output.PrintFormat != "" {
		if _, err := report.ParseFormat(c.Output.PrintFormat); err != nil {
			return fmt.Errorf("%w: output.print_format: %w", ErrInvalidConfig, err)
		}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrInvalidConfig, c.Logging.Level)
	}

	return nil
}

// TimeoutDuration parses Search.Timeout; empty means no timeout (0).
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Search.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: search.timeout %q: %w", ErrInvalidConfig, c.Search.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: search.timeout %q is negative", ErrInvalidConfig, c.Search.Timeout)
	}

	return d, nil
}
