package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview"
)

// Listing layout constants.
const (
	listPadding      = 2
	listColumnCount  = 4 // RANGE, KIND, DETAIL, TEXT
	minRangeWidth    = 7
	minKindWidth     = 7
	minDetailWidth   = 14
	minTextWidth     = 20
	defaultListWidth = 100
)

// ListFormatter lays out a decoration collection as a styled table for
// terminal inspection.
type ListFormatter struct {
	styles    *Styles
	termWidth int
}

// NewListFormatter creates a list formatter bounded to termWidth.
func NewListFormatter(styles *Styles, termWidth int) *ListFormatter {
	if styles == nil {
		styles = NewStyles("", false)
	}
	if termWidth <= 0 {
		termWidth = defaultListWidth
	}
	return &ListFormatter{styles: styles, termWidth: termWidth}
}

// listRow is one rendered decoration line.
type listRow struct {
	rng    string
	kind   string
	detail string
	text   string
}

// Format renders the collection as a table: byte range, kind, class or
// widget, and the decorated source text. Empty collections format to "".
func (f *ListFormatter) Format(doc *document.Document, col *preview.Collection) string {
	if doc == nil || col == nil || col.Len() == 0 {
		return ""
	}

	rows := collectRows(doc, col)
	widths := f.columnWidths(rows)

	var b strings.Builder
	b.WriteString(f.formatHeader(widths))
	b.WriteByte('\n')
	b.WriteString(f.formatSeparator(widths))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(f.formatRow(row, widths))
		b.WriteByte('\n')
	}
	b.WriteString(f.formatSeparator(widths))
	b.WriteByte('\n')
	b.WriteString(f.formatSummary(col))
	b.WriteByte('\n')

	return b.String()
}

// collectRows converts decorations into display rows.
func collectRows(doc *document.Document, col *preview.Collection) []listRow {
	rows := make([]listRow, 0, col.Len())
	for _, d := range col.Decorations() {
		rows = append(rows, listRow{
			rng:    formatRange(d),
			kind:   d.Kind.String(),
			detail: formatDetail(d),
			text:   escapeText(snippet(doc, d)),
		})
	}
	return rows
}

// formatRange renders the byte range, collapsing zero-width line entries
// to their anchor offset.
func formatRange(d preview.Decoration) string {
	if d.Kind == preview.KindLine {
		return strconv.Itoa(d.From)
	}
	return fmt.Sprintf("%d:%d", d.From, d.To)
}

// formatDetail shows the class for marks and lines, the widget for
// replacements.
func formatDetail(d preview.Decoration) string {
	if d.Kind == preview.KindReplace {
		if d.Widget == nil {
			return "(hidden)"
		}
		return d.Widget.String()
	}
	return d.Class
}

// snippet returns the source text a decoration covers. Line decorations
// show their whole line.
func snippet(doc *document.Document, d preview.Decoration) string {
	if d.Kind == preview.KindLine {
		line := doc.LineAt(d.From)
		return doc.Slice(line.From, line.To)
	}
	return doc.Slice(d.From, d.To)
}

// escapeText flattens control characters so rows stay on one line.
func escapeText(s string) string {
	replacer := strings.NewReplacer("\n", `\n`, "\r", `\r`, "\t", `\t`)
	return replacer.Replace(s)
}

type listWidths struct {
	rng    int
	kind   int
	detail int
	text   int
}

// columnWidths sizes columns to content, shrinking the text column and
// then the detail column when the table would overflow the terminal.
func (f *ListFormatter) columnWidths(rows []listRow) listWidths {
	widths := listWidths{
		rng:    minRangeWidth,
		kind:   minKindWidth,
		detail: minDetailWidth,
		text:   minTextWidth,
	}

	for _, row := range rows {
		if len(row.rng) > widths.rng {
			widths.rng = len(row.rng)
		}
		if len(row.kind) > widths.kind {
			widths.kind = len(row.kind)
		}
		if len(row.detail) > widths.detail {
			widths.detail = len(row.detail)
		}
		if len(row.text) > widths.text {
			widths.text = len(row.text)
		}
	}

	total := f.totalWidth(widths)
	if total > f.termWidth {
		excess := total - f.termWidth
		widths.text = max(minTextWidth, widths.text-excess)

		total = f.totalWidth(widths)
		if total > f.termWidth {
			excess = total - f.termWidth
			widths.detail = max(minDetailWidth, widths.detail-excess)
		}
	}

	return widths
}

func (f *ListFormatter) totalWidth(w listWidths) int {
	return w.rng + w.kind + w.detail + w.text + listPadding*listColumnCount
}

func (f *ListFormatter) formatHeader(w listWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		w.rng, "RANGE",
		w.kind, "KIND",
		w.detail, "DETAIL",
		w.text, "TEXT",
	)
	return f.styles.ListHeader.Render(header)
}

func (f *ListFormatter) formatSeparator(w listWidths) string {
	return f.styles.ListSeparator.Render(strings.Repeat(heavySeparator, f.totalWidth(w)))
}

func (f *ListFormatter) formatRow(row listRow, w listWidths) string {
	content := fmt.Sprintf(" %-*s  %-*s  %-*s  %-*s ",
		w.rng, truncateString(row.rng, w.rng),
		w.kind, truncateString(row.kind, w.kind),
		w.detail, truncateString(row.detail, w.detail),
		w.text, truncateString(row.text, w.text),
	)
	return f.rowStyle(row.kind).Render(content)
}

// rowStyle colors rows by decoration kind.
func (f *ListFormatter) rowStyle(kind string) lipgloss.Style {
	switch kind {
	case "mark":
		return f.styles.ListMarkRow
	case "replace":
		return f.styles.ListReplaceRow
	case "line":
		return f.styles.ListLineRow
	default:
		return lipgloss.NewStyle()
	}
}

// formatSummary counts decorations by kind on one line.
func (f *ListFormatter) formatSummary(col *preview.Collection) string {
	var marks, replaces, lines int
	for _, d := range col.Decorations() {
		switch d.Kind {
		case preview.KindMark:
			marks++
		case preview.KindReplace:
			replaces++
		case preview.KindLine:
			lines++
		}
	}

	parts := []string{fmt.Sprintf("%d decorations", col.Len())}
	if marks > 0 {
		parts = append(parts, fmt.Sprintf("%d marks", marks))
	}
	if replaces > 0 {
		parts = append(parts, fmt.Sprintf("%d replaces", replaces))
	}
	if lines > 0 {
		parts = append(parts, fmt.Sprintf("%d lines", lines))
	}

	return f.styles.ListSummary.Render(" " + strings.Join(parts, " | "))
}
