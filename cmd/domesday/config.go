package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the main configuration structure. Everything has a
// working default; the file and the flags both override it, flags last.
type Config struct {
	Database    string       `yaml:"database"`               // SQLite database file path
	StrictTypes bool         `yaml:"strict_types,omitempty"` // abort load on decimal coercion failure
	Audit       AuditConfig  `yaml:"audit,omitempty"`
	Export      ExportConfig `yaml:"export,omitempty"`
}

// AuditConfig contains audit trail settings.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	File    string `yaml:"file,omitempty"` // JSON-lines audit file
}

// ExportConfig contains analysis-frame export settings.
type ExportConfig struct {
	Format string `yaml:"format,omitempty"` // export format (default: xlsx)
	Output string `yaml:"output,omitempty"` // output file path
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Database: "domesday.db",
		Export:   ExportConfig{Format: "xlsx"},
	}
}

// LoadConfig reads the YAML config at path over the defaults. An empty
// path means defaults only.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Export.Format == "" {
		config.Export.Format = "xlsx"
	}
	return config, nil
}
