// Package config provides configuration loading and validation for the CLI
// and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/jobsearch/internal/credentials"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided
// via CLI flags. Credentials given here override environment variables.
type Config struct {
	// Search behavior
	Company string `json:"company,omitempty"` // Default company to search
	Mode    string `json:"mode,omitempty"`    // Search mode: auto, quick, or deep
	Timeout int    `json:"timeout,omitempty"` // Overall search timeout in seconds

	// Server
	Port int `json:"port,omitempty"` // HTTP listen port

	// Credentials
	JSearchAPIKey      string `json:"jsearch_api_key,omitempty"`
	SerpAPIKey         string `json:"serpapi_api_key,omitempty"`
	DiffbotToken       string `json:"diffbot_token,omitempty"`
	ApifyToken         string `json:"apify_token,omitempty"`
	GoogleSearchAPIKey string `json:"google_search_api_key,omitempty"`
	GoogleSearchCX     string `json:"google_search_cx,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
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
// Note: this doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Mode {
	case "", "auto", "quick", "deep":
	default:
		return fmt.Errorf("config error: 'mode' must be auto, quick, or deep")
	}

	if c.Timeout < 0 {
		return fmt.Errorf("config error: 'timeout' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be a valid port number")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Company == "" {
		result.Company = defaults.Company
	}
	if result.Mode == "" {
		if defaults.Mode != "" {
			result.Mode = defaults.Mode
		} else {
			result.Mode = "auto"
		}
	}
	if result.JSearchAPIKey == "" {
		result.JSearchAPIKey = defaults.JSearchAPIKey
	}
	if result.SerpAPIKey == "" {
		result.SerpAPIKey = defaults.SerpAPIKey
	}
	if result.DiffbotToken == "" {
		result.DiffbotToken = defaults.DiffbotToken
	}
	if result.ApifyToken == "" {
		result.ApifyToken = defaults.ApifyToken
	}
	if result.GoogleSearchAPIKey == "" {
		result.GoogleSearchAPIKey = defaults.GoogleSearchAPIKey
	}
	if result.GoogleSearchCX == "" {
		result.GoogleSearchCX = defaults.GoogleSearchCX
	}

	// Int fields: use default if zero
	if result.Timeout == 0 {
		result.Timeout = defaults.Timeout
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Credentials builds a credential store layering the config file's keys
// over the environment.
func (c *Config) Credentials() credentials.Store {
	store := credentials.NewEnvStore()
	set := func(key, value string) {
		if value != "" {
			store.Set(key, value)
		}
	}
	set(credentials.KeyJSearch, c.JSearchAPIKey)
	set(credentials.KeySerpAPI, c.SerpAPIKey)
	set(credentials.KeyDiffbot, c.DiffbotToken)
	set(credentials.KeyApify, c.ApifyToken)
	set(credentials.KeyGoogleSearch, c.GoogleSearchAPIKey)
	set(credentials.KeyGoogleSearchCX, c.GoogleSearchCX)
	return store
}
