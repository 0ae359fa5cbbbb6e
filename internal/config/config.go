// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags.
type Config struct {
	// Paths
	Job      string `json:"job,omitempty"`      // Path to job posting JSON file
	Resume   string `json:"resume,omitempty"`   // Path to resume text file
	Taxonomy string `json:"taxonomy,omitempty"` // Path to custom taxonomy JSON file

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port for serve mode

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}

	// Validate file paths exist (if specified)
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Taxonomy != "" {
		if _, err := os.Stat(c.Taxonomy); os.IsNotExist(err) {
			return fmt.Errorf("config error: taxonomy file not found: %s", c.Taxonomy)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Taxonomy == "" {
		result.Taxonomy = defaults.Taxonomy
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
