package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typednotes/livemd/internal/logging"
	"github.com/typednotes/livemd/internal/ui"
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/highlight"
	"github.com/typednotes/livemd/pkg/preview"
	"github.com/typednotes/livemd/pkg/preview/widget"
)

// defaultPreviewWidth is used when stdout is not a terminal and no --width
// was given.
const defaultPreviewWidth = 80

type previewFlags struct {
	cursor int
	width  int
}

func newPreviewCommand() *cobra.Command {
	flags := &previewFlags{}

	cmd := &cobra.Command{
		Use:   "preview FILE",
		Short: "Render a styled preview of a file",
		Long:  previewLongDescription,
		Args:  exactFileArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.cursor, "cursor", 0, "cursor position as a byte offset")
	cmd.Flags().IntVar(&flags.width, "width", 0, "render width in columns (0 = terminal width)")

	return cmd
}

const previewLongDescription = `Render FILE the way a live preview pane would show it.

Markdown syntax away from the cursor collapses into its presentational
form: heading markers disappear, emphasis delimiters hide, fenced code
becomes a highlighted block, tables become aligned grids, thematic breaks
become dividers. Constructs touching the cursor stay raw so they can be
edited in place.

Examples:
  livemd preview README.md               # cursor at offset 0
  livemd preview README.md --cursor 120  # raw syntax near offset 120
  livemd preview README.md --width 72    # wrap dividers and grids at 72`

func runPreview(cmd *cobra.Command, path string, flags *previewFlags) error {
	logger := logging.Default()

	src, err := loadSource(cmd.Context(), cmd, path)
	if err != nil {
		return err
	}

	cursor, err := validateCursor(flags.cursor, src.doc)
	if err != nil {
		return err
	}

	collection := preview.New().Rebuild(src.doc, document.Cursor(cursor), src.tree)

	width := flags.width
	if width <= 0 {
		width = terminalWidth(defaultPreviewWidth)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	styles := ui.NewStyles(src.cfg.Theme, ui.IsColorEnabled(colorMode, os.Stdout))

	var widgetOpts []widget.RendererOption
	if src.cfg.HighlightEnabled() {
		widgetOpts = append(widgetOpts, widget.WithHighlighter(highlight.NewChroma()))
	}
	widgets := widget.NewRenderer(widgetOpts...)

	renderer := ui.NewRenderer(styles, widgets, ui.Options{
		Width:    width,
		TabWidth: src.cfg.TabWidth,
	})

	logger.Debug("rendering preview",
		logging.FieldCursor, cursor,
		logging.FieldDecorations, collection.Len(),
		logging.FieldWidth, width)

	output := renderer.Render(src.doc, collection)
	fmt.Fprint(cmd.OutOrStdout(), output)
	if output != "" && !strings.HasSuffix(output, "\n") {
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}
