// Package config provides configuration management for uxm.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ericarider/fluent-ui-uxpin-merge/internal/logging"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/markup"
	"github.com/ericarider/fluent-ui-uxpin-merge/pkg/menu"
)

// Defaults used when neither the config file nor the environment set a value.
const (
	DefaultOutputFormat = "table"
	DefaultMode         = "context"
)

// validOutputFormats mirrors the formats the view renderer accepts.
var validOutputFormats = []string{"table", "json", "plain", "yaml", "menu"}

// Config holds the uxm configuration.
type Config struct {
	OutputFormat string `yaml:"output_format,omitempty"`
	Mode         string `yaml:"mode,omitempty"`
	LinkTarget   string `yaml:"link_target,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
	LogFile      string `yaml:"log_file,omitempty"`
}

// Validate checks that every set field holds an accepted value.
func (c *Config) Validate() error {
	if c.OutputFormat != "" && !contains(validOutputFormats, c.OutputFormat) {
		return fmt.Errorf("invalid output_format %q: must be one of %s", c.OutputFormat, strings.Join(validOutputFormats, ", "))
	}
	if c.Mode != "" {
		if _, err := menu.ParseMode(c.Mode); err != nil {
			return err
		}
	}
	if strings.ContainsAny(c.LinkTarget, " \t\r\n") {
		return fmt.Errorf("invalid link_target %q: must not contain whitespace", c.LinkTarget)
	}
	if err := logging.ValidateLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ApplyDefaults fills unset fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	if c.Mode == "" {
		c.Mode = DefaultMode
	}
	if c.LinkTarget == "" {
		c.LinkTarget = markup.DefaultLinkTarget
	}
	if c.LogLevel == "" {
		c.LogLevel = logging.LevelNone
	}
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if output := os.Getenv("UXM_OUTPUT"); output != "" {
		c.OutputFormat = output
	}
	if mode := os.Getenv("UXM_MODE"); mode != "" {
		c.Mode = mode
	}
	if target := os.Getenv("UXM_LINK_TARGET"); target != "" {
		c.LinkTarget = target
	}
	if level := os.Getenv("UXM_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
	if file := os.Getenv("UXM_LOG_FILE"); file != "" {
		c.LogFile = file
	}
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "uxm", "config.yml")
	}

	// Fall back to ~/.config/uxm/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".uxm", "config.yml")
	}

	return filepath.Join(home, ".config", "uxm", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment variables.
// A missing file is not an error. A file that exists but cannot be parsed is.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil, err
		}
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
