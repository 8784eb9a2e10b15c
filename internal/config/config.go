// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Input
	Input string `json:"input,omitempty"` // Path to a mentions/candidates JSON file

	// Sampling overrides. Zero means "use the adaptive budget".
	SampleSize   int `json:"sample_size,omitempty"`   // Fixed total sample size
	TopEngaged   int `json:"top_engaged,omitempty"`   // Top-engagement category count
	MostRecent   int `json:"most_recent,omitempty"`   // Most-recent category count
	LowestRated  int `json:"lowest_rated,omitempty"`  // Lowest-rating category count
	MostDetailed int `json:"most_detailed,omitempty"` // Most-detailed category count

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for sample summarization
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.SampleSize < 0 {
		return fmt.Errorf("config error: 'sample_size' must be non-negative")
	}
	for name, count := range map[string]int{
		"top_engaged":   c.TopEngaged,
		"most_recent":   c.MostRecent,
		"lowest_rated":  c.LowestRated,
		"most_detailed": c.MostDetailed,
	} {
		if count < 0 {
			return fmt.Errorf("config error: '%s' must be non-negative", name)
		}
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	if result.SampleSize == 0 {
		result.SampleSize = defaults.SampleSize
	}
	if result.TopEngaged == 0 {
		result.TopEngaged = defaults.TopEngaged
	}
	if result.MostRecent == 0 {
		result.MostRecent = defaults.MostRecent
	}
	if result.LowestRated == 0 {
		result.LowestRated = defaults.LowestRated
	}
	if result.MostDetailed == 0 {
		result.MostDetailed = defaults.MostDetailed
	}

	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
