// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	InputDir     string `json:"input_dir,omitempty"`     // Directory of source wordlist files
	OutputPrefix string `json:"output_prefix,omitempty"` // Base name for merge artifacts
	OutputDir    string `json:"output_dir,omitempty"`    // Directory for output artifacts
	ReportFile   string `json:"report_file,omitempty"`   // Path for the compression report

	// Behavior
	Recursive bool `json:"recursive,omitempty"` // Scan subdirectories of the input directory
	Verbose   bool `json:"verbose,omitempty"`   // Print detailed run summaries

	// Logging
	LogLevel  string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	LogFormat string `json:"log_format,omitempty" validate:"omitempty,oneof=text json"`
	LogFile   string `json:"log_file,omitempty"` // Optional log file teed with console output
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
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.InputDir != "" {
		info, err := os.Stat(c.InputDir)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("config error: input directory not found: %s", c.InputDir)
			}
			return fmt.Errorf("config error: cannot access input directory %s: %w", c.InputDir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("config error: input_dir is not a directory: %s", c.InputDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.InputDir == "" {
		result.InputDir = defaults.InputDir
	}
	if result.OutputPrefix == "" {
		result.OutputPrefix = defaults.OutputPrefix
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.ReportFile == "" {
		result.ReportFile = defaults.ReportFile
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.LogFile == "" {
		result.LogFile = defaults.LogFile
	}

	return result
}
