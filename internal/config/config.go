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
	// Inputs
	JDFile  string `json:"jd_file,omitempty"`  // Path to job description text file
	JDURL   string `json:"jd_url,omitempty"`   // URL to fetch the job description from
	Profile string `json:"profile,omitempty"`  // Path to profile JSON (empty uses the embedded default)
	Country string `json:"country,omitempty"`  // Target country
	Company string `json:"company,omitempty"`  // Company override when detection fails

	// Outputs
	OutDir string `json:"out_dir,omitempty"` // Directory for generated artifacts
	DBPath string `json:"db_path,omitempty"` // SQLite tracking database path ("" disables tracking)

	// Behavior
	APIKey     string `json:"api_key,omitempty"`     // Gemini API key
	UseBrowser bool   `json:"use_browser,omitempty"` // Use headless browser for SPA job boards
	Force      bool   `json:"force,omitempty"`       // Generate even when the precheck says ABORT
	HTMLReport bool   `json:"html_report,omitempty"` // Also write the self-contained HTML report
	Verbose    bool   `json:"verbose,omitempty"`     // Print detailed progress information
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
func (c *Config) Validate() error {
	if c.JDFile != "" && c.JDURL != "" {
		return fmt.Errorf("config error: 'jd_file' and 'jd_url' are mutually exclusive")
	}

	if c.JDFile != "" {
		if _, err := os.Stat(c.JDFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: jd file not found: %s", c.JDFile)
		}
	}
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.JDFile == "" {
		result.JDFile = defaults.JDFile
	}
	if result.JDURL == "" {
		result.JDURL = defaults.JDURL
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.Country == "" {
		result.Country = defaults.Country
	}
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.DBPath == "" {
		result.DBPath = defaults.DBPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
