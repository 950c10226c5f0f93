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
	// Paths
	Resume   string `json:"resume,omitempty"`   // Path to resume PDF
	Contacts string `json:"contacts,omitempty"` // Path to contacts file (CSV, PDF, or HTML)
	Session  string `json:"session,omitempty"`  // Path to session state file

	// Provider
	APIKey string `json:"api_key,omitempty"` // Gemini API key
	Model  string `json:"model,omitempty"`   // Override for the generation model

	// SMTP
	SenderEmail  string `json:"sender_email,omitempty"`  // From address, also the SMTP username
	SMTPPassword string `json:"smtp_password,omitempty"` // App password for the sender account
	SMTPHost     string `json:"smtp_host,omitempty"`     // SMTP host, defaults to Gmail
	SMTPPort     int    `json:"smtp_port,omitempty"`     // SMTP submission port

	// Behavior
	AttachResume bool `json:"attach_resume,omitempty"` // Attach the resume PDF to every email
	Verbose      bool `json:"verbose,omitempty"`       // Print detailed debug information
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
	if c.SMTPPort < 0 || c.SMTPPort > 65535 {
		return fmt.Errorf("config error: 'smtp_port' must be a valid port number")
	}

	// Validate file paths exist (if specified)
	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}

	if c.Contacts != "" {
		if _, err := os.Stat(c.Contacts); os.IsNotExist(err) {
			return fmt.Errorf("config error: contacts file not found: %s", c.Contacts)
		}
	}

	return nil
}

// ApplyEnv fills credential fields from environment variables when they
// are not already set. Environment never overrides explicit config.
func (c *Config) ApplyEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.SenderEmail == "" {
		c.SenderEmail = os.Getenv("SENDER_EMAIL")
	}
	if c.SMTPPassword == "" {
		c.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Contacts == "" {
		result.Contacts = defaults.Contacts
	}
	if result.Session == "" {
		result.Session = defaults.Session
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.SenderEmail == "" {
		result.SenderEmail = defaults.SenderEmail
	}
	if result.SMTPPassword == "" {
		result.SMTPPassword = defaults.SMTPPassword
	}

	// SMTP connection defaults target Gmail submission
	if result.SMTPHost == "" {
		result.SMTPHost = defaults.SMTPHost
	}
	if result.SMTPHost == "" {
		result.SMTPHost = "smtp.gmail.com"
	}
	if result.SMTPPort == 0 {
		result.SMTPPort = defaults.SMTPPort
	}
	if result.SMTPPort == 0 {
		result.SMTPPort = 587
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
