// Package cli provides the Cobra command structure for livemd.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/typednotes/livemd/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root livemd command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var logLevel string
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "livemd",
		Short: "Live Markdown preview for the terminal",
		Long: `livemd renders Markdown the way a live-preview editor pane does: constructs
near the cursor keep their raw syntax while everything else collapses into
its presentational form.

Point it at a file with a cursor position and it prints either the styled
preview or the decoration set behind it, so the engine an editor embeds can
be inspected from a shell.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if logLevel != "" {
				logging.SetLevel(logLevel)
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Flag parse failures are usage errors, not runtime errors.
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newPreviewCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
