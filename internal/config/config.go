// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the application configuration that can be loaded
// from a JSON file. All fields are optional; missing values use
// defaults or must be provided via CLI flags.
type Config struct {
	// Credentials
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Server
	Port int `json:"port,omitempty"` // HTTP server port

	// Resolver tuning
	CacheSize  int    `json:"cache_size,omitempty"`  // Resolution cache capacity
	CDNBase    string `json:"cdn_base,omitempty"`    // Icon CDN base URL
	BadgeColor string `json:"badge_color,omitempty"` // Fallback badge color (hex, no '#')
	BadgeStyle string `json:"badge_style,omitempty"` // Fallback badge style

	// Model overrides
	LiteModel     string `json:"lite_model,omitempty"`
	StandardModel string `json:"standard_model,omitempty"`
	AdvancedModel string `json:"advanced_model,omitempty"`

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
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("config error: 'cache_size' must be non-negative")
	}
	if c.BadgeColor != "" && len(c.BadgeColor) != 6 {
		return fmt.Errorf("config error: 'badge_color' must be a 6-digit hex value, got %q", c.BadgeColor)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for
// CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.CDNBase == "" {
		result.CDNBase = defaults.CDNBase
	}
	if result.BadgeColor == "" {
		result.BadgeColor = defaults.BadgeColor
	}
	if result.BadgeStyle == "" {
		result.BadgeStyle = defaults.BadgeStyle
	}
	if result.LiteModel == "" {
		result.LiteModel = defaults.LiteModel
	}
	if result.StandardModel == "" {
		result.StandardModel = defaults.StandardModel
	}
	if result.AdvancedModel == "" {
		result.AdvancedModel = defaults.AdvancedModel
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.CacheSize == 0 {
		result.CacheSize = defaults.CacheSize
	}

	return result
}
