package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/bfckd/bfckd/internal/logging"
	"gopkg.in/yaml.v3"
)

// Default values for Config.
const (
	DefaultTapeSize        = 65536
	DefaultDiagnosticWidth = 2
	DefaultLogLevel        = "warn"
)

// DefaultConfig returns a Config with the interpreter's standard settings:
// a 65536-cell tape, diagnostics off, no step limit.
func DefaultConfig() Config {
	return Config{
		TapeSize: DefaultTapeSize,
		LogLevel: DefaultLogLevel,
		Diagnostics: Diagnostics{
			Enabled: false,
			Width:   DefaultDiagnosticWidth,
		},
	}
}

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// LoadConfig reads and parses the YAML file at path.
// An empty path or a missing file yields the default config.
// Missing fields keep their defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ValidateConfig checks that all config values are valid.
func ValidateConfig(cfg *Config) error {
	if cfg.TapeSize <= 0 {
		return ValidationError{Field: "tape_size", Message: "must be positive"}
	}
	if cfg.Diagnostics.Width < 0 {
		return ValidationError{Field: "diagnostics.width", Message: "must not be negative"}
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return ValidationError{Field: "log_level", Message: err.Error()}
	}
	return nil
}

// Level returns the configured log level, falling back to warn.
func (c *Config) Level() logging.Level {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.LevelWarn
	}
	return level
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
