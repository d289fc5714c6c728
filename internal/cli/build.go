package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/typednotes/livemd/internal/config"
	"github.com/typednotes/livemd/internal/logging"
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/parser/goldmark"
	"github.com/typednotes/livemd/pkg/syntax"
)

// source bundles everything a subcommand needs to decorate one file: the
// loaded document, its parse tree, and the resolved configuration.
type source struct {
	doc  *document.Document
	tree *syntax.Tree
	cfg  *config.Config
}

// loadSource resolves configuration relative to path, reads the file, and
// parses it into a syntax tree.
func loadSource(ctx context.Context, cmd *cobra.Command, path string) (*source, error) {
	logger := logging.Default()

	if ctx == nil {
		ctx = context.Background()
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path %s: %w", path, err)
	}

	configPath, _ := cmd.Flags().GetString("config")
	result, err := config.Load(ctx, config.LoadOptions{
		StartDir:     filepath.Dir(abs),
		ExplicitPath: configPath,
	})
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	for _, warning := range result.Warnings {
		logger.Warn("config warning", logging.FieldConfig, warning)
	}

	// An explicit --log-level wins over the configured level.
	if flagLevel, _ := cmd.Flags().GetString("log-level"); flagLevel == "" {
		logging.SetLevel(result.Config.LogLevel)
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc := document.New(string(content))
	logger.Debug("loaded document",
		logging.FieldPath, abs,
		logging.FieldBytes, doc.Len(),
		logging.FieldLines, doc.LineCount())

	parser := goldmark.New(goldmark.WithMath(result.Config.MathEnabled()))
	tree, err := parser.Parse(ctx, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	logger.Debug("parsed document", logging.FieldNodes, countNodes(tree))

	return &source{doc: doc, tree: tree, cfg: result.Config}, nil
}

func countNodes(tree *syntax.Tree) int {
	count := 0
	syntax.Walk(tree.Root, func(*syntax.Node) syntax.WalkAction {
		count++
		return syntax.WalkContinue
	})
	return count
}

// validateCursor bounds-checks a cursor byte offset against doc.
func validateCursor(cursor int, doc *document.Document) (int, error) {
	if cursor < 0 || cursor > doc.Len() {
		return 0, usageError(fmt.Errorf("cursor %d is out of range [0, %d]", cursor, doc.Len()))
	}
	return cursor, nil
}

// terminalWidth reports the width of stdout, or fallback when stdout is not
// a terminal.
func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return fallback
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}
	return width
}
