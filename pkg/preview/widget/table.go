package widget

import "strings"

// parseTable parses pipe table source into a grid: line 1 is the header,
// line 2 the alignment separator, the rest body rows. The parse is
// deliberately lenient; the classifier only hands us spans the tree
// already recognized as tables. Returns false only when fewer than two
// non-blank lines remain, letting the renderer fall back to plain text.
func parseTable(source string) (TableView, bool) {
	var lines []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) < 2 {
		return TableView{}, false
	}

	header := splitRow(lines[0])
	align := alignments(splitRow(lines[1]), len(header))

	rows := make([][]string, 0, len(lines)-2)
	for _, line := range lines[2:] {
		rows = append(rows, fitRow(splitRow(line), len(header)))
	}
	return TableView{Header: header, Align: align, Rows: rows}, true
}

// splitRow splits a pipe row into trimmed, unescaped cells. Outer pipes
// are decoration and do not delimit cells.
func splitRow(line string) []string {
	text := strings.TrimSpace(line)
	text = strings.TrimPrefix(text, "|")
	if strings.HasSuffix(text, "|") && !strings.HasSuffix(text, `\|`) {
		text = text[:len(text)-1]
	}

	var cells []string
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '|' && (i == 0 || text[i-1] != '\\') {
			cells = append(cells, cellText(text[start:i]))
			start = i + 1
		}
	}
	cells = append(cells, cellText(text[start:]))
	return cells
}

func cellText(raw string) string {
	return strings.ReplaceAll(strings.TrimSpace(raw), `\|`, "|")
}

// alignments maps separator cells to column alignments, padded or
// truncated to the header width. Cells that match no pattern default to
// left.
func alignments(cells []string, want int) []Alignment {
	align := make([]Alignment, want)
	for i := range align {
		if i < len(cells) {
			align[i] = alignmentOf(cells[i])
		}
	}
	return align
}

func alignmentOf(cell string) Alignment {
	dashes := strings.Trim(cell, ":")
	if dashes == "" || strings.Trim(dashes, "-") != "" {
		return AlignLeft
	}
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":")
	switch {
	case left && right:
		return AlignCenter
	case right:
		return AlignRight
	default:
		return AlignLeft
	}
}

// fitRow pads or truncates a data row to the header width.
func fitRow(cells []string, want int) []string {
	if len(cells) > want {
		return cells[:want]
	}
	for len(cells) < want {
		cells = append(cells, "")
	}
	return cells
}
