package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// StartDir is the directory the project config search begins from,
	// usually the directory of the file being previewed. Defaults to the
	// current working directory.
	StartDir string

	// ExplicitPath is an explicit config file path (from --config).
	ExplicitPath string

	// IgnoreUserConfig skips the user-level configuration.
	IgnoreUserConfig bool

	// IgnoreEnv skips LIVEMD_* environment overrides.
	IgnoreEnv bool
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *Config

	// Paths contains the discovered configuration file paths.
	Paths *Paths

	// LoadedFrom lists the files that were actually loaded, in order.
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Environment variables (LIVEMD_*)
//  2. Explicit config file (opts.ExplicitPath)
//  3. Project config (.livemd.yaml upward search)
//  4. User config ($XDG_CONFIG_HOME/livemd/config.yaml)
//  5. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Paths: &Paths{}}

	paths, err := DiscoverPaths(ctx, opts.StartDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	if opts.ExplicitPath != "" {
		paths.Explicit = opts.ExplicitPath
	}
	result.Paths = paths

	cfg := New()

	if !opts.IgnoreUserConfig && paths.User != "" {
		userCfg, err := loadFile(paths.User)
		if err != nil {
			return nil, fmt.Errorf("load user config: %w", err)
		}
		cfg = merge(cfg, userCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.User)
	}

	if paths.Project != "" {
		projectCfg, err := loadFile(paths.Project)
		if err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
		cfg = merge(cfg, projectCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.Project)
	}

	if paths.Explicit != "" {
		explicitCfg, err := loadFile(paths.Explicit)
		if err != nil {
			return nil, fmt.Errorf("load explicit config: %w", err)
		}
		cfg = merge(cfg, explicitCfg)
		result.LoadedFrom = append(result.LoadedFrom, paths.Explicit)
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	// Warned-about values fall back rather than fail.
	if cfg.Theme != "" && !knownThemes[cfg.Theme] {
		cfg.Theme = DefaultTheme
	}
	if cfg.LogLevel != "" && !knownLogLevels[strings.ToLower(cfg.LogLevel)] {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.TabWidth == 0 {
		cfg.TabWidth = DefaultTabWidth
	}

	result.Config = cfg
	return result, nil
}

// loadFile loads a configuration from a YAML file.
func loadFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return cfg, nil
}

// merge combines two configurations, with override taking precedence.
// Unset values (empty strings, zero tabwidth, nil toggles) in override do
// not clobber base.
func merge(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Color != "" {
		result.Color = override.Color
	}
	if override.Theme != "" {
		result.Theme = override.Theme
	}
	if override.TabWidth != 0 {
		result.TabWidth = override.TabWidth
	}
	if override.LogLevel != "" {
		result.LogLevel = override.LogLevel
	}
	if override.Highlight != nil {
		result.Highlight = override.Highlight
	}
	if override.Math != nil {
		result.Math = override.Math
	}

	return &result
}
