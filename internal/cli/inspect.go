package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/typednotes/livemd/internal/logging"
	"github.com/typednotes/livemd/internal/ui"
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview"
)

type inspectFlags struct {
	cursor int
	line   int
	col    int
	format string
}

func newInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the decoration set for a file",
		Long:  inspectLongDescription,
		Args:  exactFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", 0, "cursor position as a byte offset")
	cmd.Flags().IntVar(&flags.line, "line", 0, "cursor line (1-based)")
	cmd.Flags().IntVar(&flags.col, "col", 1, "cursor column (1-based, requires --line)")
	cmd.Flags().StringVar(&flags.format, "format", "pretty", "output format: pretty, json")

	return cmd
}

const inspectLongDescription = `Print the decoration set a live preview would apply to FILE.

Each decoration is one instruction for a preview surface: mark a range with
a style class, replace a range with a widget (or hide it outright), or tag
a whole line with a class. Constructs touching the cursor flip back to raw
syntax, so the same file yields different sets at different cursors.

Examples:
  livemd inspect README.md                     # cursor at offset 0
  livemd inspect README.md --cursor 120        # cursor as a byte offset
  livemd inspect README.md --line 4 --col 7    # cursor as line and column
  livemd inspect README.md --format json       # machine-readable output`

func runInspect(cmd *cobra.Command, path string, flags *inspectFlags) error {
	logger := logging.Default()

	if flags.format != "pretty" && flags.format != "json" {
		return usageError(fmt.Errorf("unknown format %q (expected pretty or json)", flags.format))
	}

	src, err := loadSource(cmd.Context(), cmd, path)
	if err != nil {
		return err
	}

	cursor, err := resolveCursor(cmd, flags, src.doc)
	if err != nil {
		return err
	}

	collection := preview.New().Rebuild(src.doc, document.Cursor(cursor), src.tree)
	logger.Debug("built decorations",
		logging.FieldCursor, cursor,
		logging.FieldDecorations, collection.Len())

	if flags.format == "json" {
		return writeJSON(cmd, collection)
	}
	return writePretty(cmd, src, collection)
}

// resolveCursor turns the cursor flags into a byte offset in doc.
// A byte offset and a line/column position are mutually exclusive.
func resolveCursor(cmd *cobra.Command, flags *inspectFlags, doc *document.Document) (int, error) {
	cursorSet := cmd.Flags().Changed("cursor")
	lineSet := cmd.Flags().Changed("line")
	colSet := cmd.Flags().Changed("col")

	if cursorSet && lineSet {
		return 0, usageError(errors.New("--cursor and --line are mutually exclusive"))
	}
	if colSet && !lineSet {
		return 0, usageError(errors.New("--col requires --line"))
	}

	if lineSet {
		offset, ok := doc.Offset(flags.line, flags.col)
		if !ok {
			return 0, usageError(fmt.Errorf("position %d:%d is out of range", flags.line, flags.col))
		}
		return offset, nil
	}

	return validateCursor(flags.cursor, doc)
}

// decorationJSON is the stable wire shape for one decoration.
type decorationJSON struct {
	From   int    `json:"from"`
	To     int    `json:"to"`
	Kind   string `json:"kind"`
	Class  string `json:"class,omitempty"`
	Widget string `json:"widget,omitempty"`
}

func writeJSON(cmd *cobra.Command, collection *preview.Collection) error {
	rows := make([]decorationJSON, 0, collection.Len())
	for _, d := range collection.Decorations() {
		row := decorationJSON{From: d.From, To: d.To, Kind: d.Kind.String(), Class: d.Class}
		if d.Widget != nil {
			row.Widget = d.Widget.String()
		}
		rows = append(rows, row)
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode decorations: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func writePretty(cmd *cobra.Command, src *source, collection *preview.Collection) error {
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := ui.NewStyles(src.cfg.Theme, ui.IsColorEnabled(colorMode, os.Stdout))
	formatter := ui.NewListFormatter(styles, terminalWidth(0))

	output := formatter.Format(src.doc, collection)
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no decorations")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
