package ui

import (
	"strings"

	"github.com/typednotes/livemd/pkg/preview/widget"
)

// Grid layout constants.
const (
	gridPadding    = 2
	minCellWidth   = 3
	heavySeparator = "="
)

// renderGrid draws a table view as a padded grid within the configured
// width: header row, separator, then body rows.
func (r *Renderer) renderGrid(v widget.TableView) string {
	if len(v.Header) == 0 {
		return ""
	}

	widths := gridWidths(v, r.width)

	var b strings.Builder
	b.WriteString(r.styles.GridHeader.Render(gridRow(v.Header, v.Align, widths)))
	b.WriteByte('\n')
	b.WriteString(r.styles.GridSeparator.Render(strings.Repeat(heavySeparator, gridTotal(widths))))
	for _, row := range v.Rows {
		b.WriteByte('\n')
		b.WriteString(r.styles.Table.Render(gridRow(row, v.Align, widths)))
	}
	return b.String()
}

// gridWidths sizes each column to its widest content, then shrinks the
// widest columns until the grid fits the limit.
func gridWidths(v widget.TableView, limit int) []int {
	widths := make([]int, len(v.Header))
	for i, h := range v.Header {
		widths[i] = max(minCellWidth, len(h))
	}
	for _, row := range v.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	for gridTotal(widths) > limit {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minCellWidth {
			break
		}
		excess := gridTotal(widths) - limit
		widths[widest] -= min(excess, widths[widest]-minCellWidth)
	}

	return widths
}

func gridTotal(widths []int) int {
	total := gridPadding * len(widths)
	for _, w := range widths {
		total += w
	}
	return total
}

// gridRow lays out one row of cells against the column widths. Missing
// cells render empty; extra cells are dropped.
func gridRow(cells []string, aligns []widget.Alignment, widths []int) string {
	var b strings.Builder
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteByte(' ')
		b.WriteString(padCell(cell, w, alignFor(aligns, i)))
		b.WriteByte(' ')
	}
	return b.String()
}

func alignFor(aligns []widget.Alignment, i int) widget.Alignment {
	if i < len(aligns) {
		return aligns[i]
	}
	return widget.AlignLeft
}

// padCell truncates and pads a cell to width following its alignment.
func padCell(cell string, width int, align widget.Alignment) string {
	cell = truncateString(cell, width)
	gap := width - len(cell)
	if gap <= 0 {
		return cell
	}

	switch align {
	case widget.AlignRight:
		return strings.Repeat(" ", gap) + cell
	case widget.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
