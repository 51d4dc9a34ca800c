// Package cliconfig loads popmctl configuration from defaults, a TOML
// file, POPMCTL_* environment variables, and command-line flags, in
// ascending precedence.
package cliconfig

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/simonhull/popmeter/internal/tagdoc"
)

// Config holds CLI configuration for popmctl.
type Config struct {
	// Email is the identity stamped on rating frames the CLI creates.
	Email string

	// Format selects the encoding for written documents: "cbor" or "json".
	Format string

	// Gzip compresses written documents.
	Gzip bool

	// Strict promotes document reconstruction warnings to errors.
	Strict bool

	// LogLevel is the zerolog level name.
	LogLevel string

	// Debounce is the quiet window the watcher waits out after a
	// filesystem event before re-linting the changed document.
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Email:    "",
		Format:   "cbor",
		Gzip:     false,
		Strict:   false,
		LogLevel: "info",
		Debounce: 500 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := tagdoc.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	if c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
