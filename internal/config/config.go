// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable holding a default config file path.
const EnvConfigPath = "CV_BUILDER_CONFIG"

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
// Disclose lists project names whose client name may be shown; KeepNull emits absent
// fields as null in normalized output.
type Config struct {
	// Paths
	Input     string   `json:"input,omitempty" yaml:"input,omitempty"`
	Templates []string `json:"templates,omitempty" yaml:"templates,omitempty" validate:"omitempty,dive,required"`
	OutputDir string   `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Behavior
	SortOrder string   `json:"sort_order,omitempty" yaml:"sort_order,omitempty" validate:"omitempty,oneof=asc desc"`
	KeepNull  bool     `json:"keep_null,omitempty" yaml:"keep_null,omitempty"`
	Disclose  []string `json:"disclose,omitempty" yaml:"disclose,omitempty" validate:"omitempty,dive,required"`
	Verbose   bool     `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Defaults returns the values used when neither flags nor a config file set a field.
func Defaults() Config {
	return Config{
		OutputDir: "out",
		SortOrder: "desc",
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by extension.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate file paths exist (if specified)
	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	for _, tmpl := range c.Templates {
		if _, err := os.Stat(tmpl); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", tmpl)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.SortOrder == "" {
		result.SortOrder = defaults.SortOrder
	}

	// Lists: an empty list takes the default
	if len(result.Templates) == 0 {
		result.Templates = defaults.Templates
	}
	if len(result.Disclose) == 0 {
		result.Disclose = defaults.Disclose
	}

	// Bool fields: unset and false look the same, so either side enables them
	result.KeepNull = result.KeepNull || defaults.KeepNull
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}
