package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newProjectDir creates a temp directory with a VCS marker so the upward
// config search stays inside it.
func newProjectDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir .git: %v", err)
	}
	return dir
}

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Color != DefaultColor {
		t.Errorf("color = %q, want %q", cfg.Color, DefaultColor)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("theme = %q, want %q", cfg.Theme, DefaultTheme)
	}
	if cfg.TabWidth != DefaultTabWidth {
		t.Errorf("tabwidth = %d, want %d", cfg.TabWidth, DefaultTabWidth)
	}
	if !cfg.HighlightEnabled() || !cfg.MathEnabled() {
		t.Error("capabilities should default to enabled")
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoadProjectConfig(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "color: never\ntheme: light\ntabwidth: 8\nhighlight: false\n")

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	cfg := result.Config
	if cfg.Color != "never" {
		t.Errorf("color = %q, want %q", cfg.Color, "never")
	}
	if cfg.Theme != "light" {
		t.Errorf("theme = %q, want %q", cfg.Theme, "light")
	}
	if cfg.TabWidth != 8 {
		t.Errorf("tabwidth = %d, want 8", cfg.TabWidth)
	}
	if cfg.HighlightEnabled() {
		t.Error("highlight should be disabled")
	}
	if cfg.MathEnabled() {
		t.Error("math should stay enabled when unset")
	}
	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %v", result.LoadedFrom)
	}
}

func TestLoadUpwardSearch(t *testing.T) {
	t.Parallel()

	root := newProjectDir(t)
	writeConfigFile(t, root, ".livemd.yaml", "theme: light\n")

	nested := filepath.Join(root, "docs", "guide")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir nested: %v", err)
	}

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         nested,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Theme != "light" {
		t.Errorf("theme = %q, want light from project root", result.Config.Theme)
	}
}

func TestLoadExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "color: never\ntabwidth: 8\n")
	explicit := writeConfigFile(t, dir, "override.yaml", "color: always\n")

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		ExplicitPath:     explicit,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != "always" {
		t.Errorf("color = %q, want explicit override %q", result.Config.Color, "always")
	}
	if result.Config.TabWidth != 8 {
		t.Errorf("tabwidth = %d, want project value 8", result.Config.TabWidth)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected 2 loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoadInvalidColor(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "color: sometimes\n")

	_, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err == nil {
		t.Fatal("expected error for invalid color mode")
	}
	if !strings.Contains(err.Error(), "invalid color mode") {
		t.Errorf("error %q does not mention the color mode", err)
	}
}

func TestLoadUnknownThemeFallsBack(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "theme: solarized\n")

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Theme != DefaultTheme {
		t.Errorf("theme = %q, want fallback %q", result.Config.Theme, DefaultTheme)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning for the unknown theme")
	}
}

func TestLoadBrokenYAML(t *testing.T) {
	t.Parallel()

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "color: [unclosed\n")

	_, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
		IgnoreEnv:        true,
	})
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	// Not parallel: modifies the environment.

	dir := newProjectDir(t)
	writeConfigFile(t, dir, ".livemd.yaml", "color: never\n")

	t.Setenv("LIVEMD_COLOR", "always")
	t.Setenv("LIVEMD_HIGHLIGHT", "false")

	result, err := Load(context.Background(), LoadOptions{
		StartDir:         dir,
		IgnoreUserConfig: true,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Color != "always" {
		t.Errorf("color = %q, want env override %q", result.Config.Color, "always")
	}
	if result.Config.HighlightEnabled() {
		t.Error("highlight should be disabled via environment")
	}
}

func TestMerge(t *testing.T) {
	t.Parallel()

	off := false

	base := New()
	override := &Config{Theme: "light", Math: &off}

	merged := merge(base, override)
	if merged.Theme != "light" {
		t.Errorf("theme = %q, want light", merged.Theme)
	}
	if merged.Color != DefaultColor {
		t.Errorf("color = %q, want base default", merged.Color)
	}
	if merged.MathEnabled() {
		t.Error("math toggle from override was dropped")
	}
	if !merged.HighlightEnabled() {
		t.Error("unset highlight toggle should stay enabled")
	}

	if got := merge(nil, override); got != override {
		t.Error("merge(nil, override) should return override")
	}
	if got := merge(base, nil); got != base {
		t.Error("merge(base, nil) should return base")
	}
}
