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
// via CLI flags or environment variables.
type Config struct {
	// Paths
	ProfilePath string `json:"profile,omitempty"` // Path to user profile JSON file
	AnswersPath string `json:"answers,omitempty"` // Path to questionnaire answers JSON file
	OutputDir   string `json:"output_dir,omitempty"`

	// Generation
	Plan     string `json:"plan,omitempty"`     // Plan type (diet, fitness, skincare, wellness, recovery)
	Verbose  bool   `json:"verbose,omitempty"`  // Print detailed generation summary
	AINote   bool   `json:"ai_note,omitempty"`  // Generate an AI-personalized intro note
	APIKey   string `json:"api_key,omitempty"`  // Gemini API key (usually via GEMINI_API_KEY)
	Language string `json:"language,omitempty"` // Reserved; guides currently render in English only

	// Server
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for guide records
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

	if c.ProfilePath != "" {
		if _, err := os.Stat(c.ProfilePath); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.ProfilePath)
		}
	}
	if c.AnswersPath != "" {
		if _, err := os.Stat(c.AnswersPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: answers file not found: %s", c.AnswersPath)
		}
	}

	return nil
}
