// Package cliconfig holds configuration handling for the aethokit CLI:
// defaults, a TOML config file, environment variables, and flag precedence
// (flags override env, env overrides file).
package cliconfig

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config holds CLI configuration for aethokit.
type Config struct {
	GasKey  string
	Network string

	HTTPTimeout time.Duration
	DialTimeout time.Duration

	// NetworksFile optionally points at a TOML network table that replaces
	// the built-in name-to-URL mapping.
	NetworksFile string

	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		GasKey:      os.Getenv("AETHOKIT_GAS_KEY"),
		HTTPTimeout: 30 * time.Second,
		DialTimeout: 10 * time.Second,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.GasKey) == "" {
		return fmt.Errorf("gas-key is required (flag, config file, or AETHOKIT_GAS_KEY)")
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence:
// a value is skipped when the corresponding flag was explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a setter with the given changed-flags map.
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
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
