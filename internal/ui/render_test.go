package ui_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typednotes/livemd/internal/ui"
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/parser/goldmark"
	"github.com/typednotes/livemd/pkg/preview"
)

// renderPlain builds one decoration pass over source and renders it
// without color, so assertions see bare text.
func renderPlain(t *testing.T, source string, cursor int, opts ui.Options) string {
	t.Helper()

	doc := document.New(source)
	tree, err := goldmark.New().Parse(context.Background(), []byte(source))
	require.NoError(t, err)

	col := preview.New().Rebuild(doc, document.Cursor(cursor), tree)
	renderer := ui.NewRenderer(ui.NewStyles("dark", false), nil, opts)
	return renderer.Render(doc, col)
}

func TestRender_NilDocument(t *testing.T) {
	renderer := ui.NewRenderer(nil, nil, ui.Options{})
	assert.Empty(t, renderer.Render(nil, nil))
}

func TestRender_NilCollectionShowsPlainText(t *testing.T) {
	doc := document.New("just text\n")
	renderer := ui.NewRenderer(ui.NewStyles("dark", false), nil, ui.Options{})

	assert.Equal(t, "just text\n", renderer.Render(doc, nil))
}

func TestRender_HidesHeadingMarkerAwayFromCursor(t *testing.T) {
	source := "# Title\n\nbody text\n"
	cursor := strings.Index(source, "body")

	got := renderPlain(t, source, cursor, ui.Options{})

	assert.Equal(t, "Title\n\nbody text\n", got)
}

func TestRender_KeepsHeadingMarkerNearCursor(t *testing.T) {
	source := "# Title\n\nbody text\n"

	got := renderPlain(t, source, 0, ui.Options{})

	assert.Equal(t, source, got)
}

func TestRender_HidesEmphasisDelimitersAwayFromCursor(t *testing.T) {
	source := "some *word* here\n"

	got := renderPlain(t, source, 0, ui.Options{})

	assert.Equal(t, "some word here\n", got)
}

func TestRender_RuleBecomesDivider(t *testing.T) {
	source := "above\n\n---\n\nbelow\n"

	got := renderPlain(t, source, 0, ui.Options{Width: 12})

	assert.Contains(t, got, strings.Repeat("─", 12))
	assert.NotContains(t, got, "---")
	assert.Contains(t, got, "above")
	assert.Contains(t, got, "below")
}

func TestRender_CodeBlockBecomesWidget(t *testing.T) {
	source := "```go\nx := 1\n```\n\ntail\n"
	cursor := strings.Index(source, "tail")

	got := renderPlain(t, source, cursor, ui.Options{})

	assert.Contains(t, got, "x := 1")
	assert.NotContains(t, got, "```")
	assert.Contains(t, got, "tail")
}

func TestRender_CodeBlockRawNearCursor(t *testing.T) {
	source := "```go\nx := 1\n```\n"

	got := renderPlain(t, source, 1, ui.Options{})

	assert.Contains(t, got, "```go")
	assert.Contains(t, got, "x := 1")
}

func TestRender_TableBecomesGrid(t *testing.T) {
	source := "| a | b |\n|---|---|\n| 1 | 2 |\n\ntail\n"
	cursor := strings.Index(source, "tail")

	got := renderPlain(t, source, cursor, ui.Options{})

	assert.NotContains(t, got, "|---|")
	assert.Contains(t, got, strings.Repeat("=", 10))
	assert.Contains(t, got, " a ")
	assert.Contains(t, got, " 1 ")
	assert.Contains(t, got, "tail")
}

func TestRender_FrontmatterBecomesBadge(t *testing.T) {
	source := "---\ntitle: Demo\n---\n\nbody\n"
	cursor := strings.Index(source, "body")

	got := renderPlain(t, source, cursor, ui.Options{})

	assert.Contains(t, got, "frontmatter: Demo")
	assert.NotContains(t, got, "title:")
	assert.Contains(t, got, "body")
}

func TestRender_ExpandsTabs(t *testing.T) {
	doc := document.New("a\tb\n")
	renderer := ui.NewRenderer(ui.NewStyles("dark", false), nil, ui.Options{TabWidth: 2})

	tree, err := goldmark.New().Parse(context.Background(), []byte(doc.Text()))
	require.NoError(t, err)
	col := preview.New().Rebuild(doc, document.Cursor(0), tree)

	assert.Equal(t, "a  b\n", renderer.Render(doc, col))
}
