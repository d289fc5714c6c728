// Package config loads livemd's presentation settings.
//
// Settings never change decoration semantics: the engine output for a given
// document, selection, and parse tree is fixed. Configuration only controls
// how the CLI presents that output (color, theme, tab width) and which
// render capabilities get installed.
package config

import (
	"fmt"
	"strings"
)

// Default values applied before any file or environment override.
const (
	DefaultColor    = "auto"
	DefaultTheme    = "dark"
	DefaultTabWidth = 4
	DefaultLogLevel = "info"

	maxTabWidth = 16
)

// Config is livemd's resolved configuration.
type Config struct {
	// Color controls ANSI output: "auto", "always", or "never".
	Color string `yaml:"color"`

	// Theme selects the preview palette: "dark" or "light".
	Theme string `yaml:"theme"`

	// TabWidth is the column width used when expanding tabs in preview
	// output. Zero means unset.
	TabWidth int `yaml:"tabwidth"`

	// LogLevel is the default log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Highlight toggles the code highlighting capability.
	// Nil means enabled.
	Highlight *bool `yaml:"highlight"`

	// Math toggles dollar-delimited math recognition during parsing.
	// Nil means enabled.
	Math *bool `yaml:"math"`
}

// New returns a Config with the documented defaults.
func New() *Config {
	return &Config{
		Color:    DefaultColor,
		Theme:    DefaultTheme,
		TabWidth: DefaultTabWidth,
		LogLevel: DefaultLogLevel,
	}
}

// HighlightEnabled reports whether code highlighting should be wired in.
func (c *Config) HighlightEnabled() bool {
	return c.Highlight == nil || *c.Highlight
}

// MathEnabled reports whether math parsing should be wired in.
func (c *Config) MathEnabled() bool {
	return c.Math == nil || *c.Math
}

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	// Field is the name of the invalid field (e.g. "tabwidth").
	Field string

	// Value is the invalid value.
	Value any

	// Message describes what is wrong.
	Message string

	// FilePath is the config file containing the error, if known.
	FilePath string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	// Errors are failures that prevent loading.
	Errors []ValidationError

	// Warnings are non-fatal issues.
	Warnings []ValidationError
}

// Valid returns true if there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// knownColorModes lists valid color values.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownColorModes = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

// knownThemes lists the palettes internal/ui ships.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownThemes = map[string]bool{
	"dark":  true,
	"light": true,
}

// knownLogLevels lists levels internal/logging understands.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = map[string]bool{
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks a configuration for errors and warnings.
func Validate(cfg *Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Color != "" && !knownColorModes[cfg.Color] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "color",
			Value:   cfg.Color,
			Message: fmt.Sprintf("invalid color mode %q; must be one of: auto, always, never", cfg.Color),
		})
	}

	if cfg.Theme != "" && !knownThemes[cfg.Theme] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "theme",
			Value:   cfg.Theme,
			Message: fmt.Sprintf("unknown theme %q; falling back to %q", cfg.Theme, DefaultTheme),
		})
	}

	if cfg.TabWidth < 0 || cfg.TabWidth > maxTabWidth {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "tabwidth",
			Value:   cfg.TabWidth,
			Message: fmt.Sprintf("tabwidth must be between 1 and %d (0 means default)", maxTabWidth),
		})
	}

	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		result.Warnings = append(result.Warnings, ValidationError{
			Field:   "log_level",
			Value:   cfg.LogLevel,
			Message: fmt.Sprintf("unknown log level %q; falling back to %q", cfg.LogLevel, DefaultLogLevel),
		})
	}

	return result
}

// ValidateWithFile validates and stamps the file path on all findings.
func ValidateWithFile(cfg *Config, filePath string) *ValidationResult {
	result := Validate(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}
