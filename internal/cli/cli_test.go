package cli_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/typednotes/livemd/internal/cli"
)

func testBuildInfo() cli.BuildInfo {
	return cli.BuildInfo{
		Version: "test-version",
		Commit:  "test-commit",
		Date:    "test-date",
	}
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	if cmd.Use != "livemd" {
		t.Errorf("expected Use to be 'livemd', got %q", cmd.Use)
	}
	if cmd.Short == "" {
		t.Error("expected Short description to be set")
	}
	if cmd.Long == "" {
		t.Error("expected Long description to be set")
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"inspect", "preview", "version"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil {
			t.Errorf("expected to find subcommand %q: %v", name, err)
			continue
		}
		if sub.Name() != name {
			t.Errorf("expected subcommand name %q, got %q", name, sub.Name())
		}
	}
}

func TestRootCommandGlobalFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	for _, name := range []string{"log-level", "config", "color"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected global flag %q to exist", name)
		}
	}
}

func TestInspectCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	inspect, _, err := cmd.Find([]string{"inspect"})
	if err != nil {
		t.Fatalf("find inspect command: %v", err)
	}

	for _, name := range []string{"cursor", "line", "col", "format"} {
		if inspect.Flags().Lookup(name) == nil {
			t.Errorf("expected inspect flag %q to exist", name)
		}
	}
}

func TestPreviewCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	preview, _, err := cmd.Find([]string{"preview"})
	if err != nil {
		t.Fatalf("find preview command: %v", err)
	}

	for _, name := range []string{"cursor", "width"} {
		if preview.Flags().Lookup(name) == nil {
			t.Errorf("expected preview flag %q to exist", name)
		}
	}
}

func TestExitCodeFromError(t *testing.T) {
	t.Parallel()

	if got := cli.ExitCodeFromError(nil); got != cli.ExitSuccess {
		t.Errorf("expected %d for nil error, got %d", cli.ExitSuccess, got)
	}
	if got := cli.ExitCodeFromError(errors.New("boom")); got != cli.ExitError {
		t.Errorf("expected %d for a plain error, got %d", cli.ExitError, got)
	}
}

func TestUsageErrorsMapToUsageExitCode(t *testing.T) {
	t.Parallel()

	cases := [][]string{
		{"inspect"},
		{"inspect", "a.md", "b.md"},
		{"preview"},
		{"preview", "--bogus", "a.md"},
	}

	for _, args := range cases {
		cmd := cli.NewRootCommand(testBuildInfo())

		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)
		cmd.SetArgs(args)

		err := cmd.Execute()
		if err == nil {
			t.Errorf("expected an error for args %v", args)
			continue
		}
		if got := cli.ExitCodeFromError(err); got != cli.ExitUsage {
			t.Errorf("expected exit %d for args %v, got %d (%v)", cli.ExitUsage, args, got, err)
		}
	}
}

func TestMissingFileMapsToErrorExitCode(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testBuildInfo())

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"inspect", filepath.Join(t.TempDir(), "missing.md")})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if got := cli.ExitCodeFromError(err); got != cli.ExitError {
		t.Errorf("expected exit %d for a missing file, got %d (%v)", cli.ExitError, got, err)
	}
}
