package goldmark

import "github.com/typednotes/livemd/pkg/syntax"

// Span resolution helpers. goldmark block nodes expose content lines only
// and inline nodes expose text segments without their delimiters, so the
// mapper reconstructs full [from, to) spans by scanning the raw content
// around the positions goldmark does provide.

// lineStartAt returns the start offset of the line containing pos.
func lineStartAt(content []byte, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}
	start := pos
	for start > 0 && content[start-1] != '\n' {
		start--
	}
	return start
}

// lineContentEndAt returns the end offset of the line content containing
// pos, excluding the line terminator.
func lineContentEndAt(content []byte, pos int) int {
	if pos > len(content) {
		pos = len(content)
	}
	end := pos
	for end < len(content) && content[end] != '\n' {
		end++
	}
	// Strip the CR of a CRLF terminator.
	if end < len(content) && end > 0 && content[end-1] == '\r' {
		end--
	}
	return end
}

// prevLineRange returns the start and content end of the line preceding the
// line starting at lineStart.
func prevLineRange(content []byte, lineStart int) (int, int, bool) {
	if lineStart <= 0 || lineStart > len(content) {
		return 0, 0, false
	}

	end := lineStart - 1
	if content[end] != '\n' {
		return 0, 0, false
	}

	start := lineStartAt(content, end)
	if end > start && content[end-1] == '\r' {
		end--
	}
	return start, end, true
}

// nextLineStart returns the start offset of the line following the line
// containing pos.
func nextLineStart(content []byte, pos int) (int, bool) {
	j := pos
	for j < len(content) && content[j] != '\n' {
		j++
	}
	if j >= len(content) {
		return len(content), false
	}
	return j + 1, true
}

// trimTrailingBreaks pulls to back over any trailing newline characters.
func trimTrailingBreaks(content []byte, from, to int) int {
	if to > len(content) {
		to = len(content)
	}
	for to > from && (content[to-1] == '\n' || content[to-1] == '\r') {
		to--
	}
	return to
}

// extendToLines widens [from, to) to full line extent: from moves to its
// line start, to moves to its line's content end.
func extendToLines(content []byte, from, to int) (int, int) {
	from = lineStartAt(content, from)
	to = trimTrailingBreaks(content, from, to)
	to = lineContentEndAt(content, to)
	return from, to
}

// childSpanUnion returns the union of the resolved children spans of n.
// Returns (-1, -1) when no child has a resolved span.
func childSpanUnion(n *syntax.Node) (int, int) {
	from, to := -1, -1
	for child := n.FirstChild; child != nil; child = child.Next {
		if child.From < 0 || child.To < child.From {
			continue
		}
		if from < 0 || child.From < from {
			from = child.From
		}
		if child.To > to {
			to = child.To
		}
	}
	return from, to
}

// runLenBackward counts the run of ch ending just before pos.
func runLenBackward(content []byte, pos int, ch byte) int {
	n := 0
	for pos-1-n >= 0 && content[pos-1-n] == ch {
		n++
	}
	return n
}

// runLenForward counts the run of ch starting at pos.
func runLenForward(content []byte, pos int, ch byte) int {
	n := 0
	for pos+n < len(content) && content[pos+n] == ch {
		n++
	}
	return n
}

// fenceStyleOfLine inspects a line for an opening code fence.
func fenceStyleOfLine(line []byte) (byte, int, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return 0, 0, false
	}

	char := line[i]
	if char != '`' && char != '~' {
		return 0, 0, false
	}

	length := 0
	for i < len(line) && line[i] == char {
		length++
		i++
	}
	if length < 3 {
		return 0, 0, false
	}

	return char, length, true
}

// isClosingFence reports whether a line closes a fence of the given
// character and minimum length: the run plus surrounding whitespace only.
func isClosingFence(line []byte, char byte, minLen int) bool {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}

	run := 0
	for i < len(line) && line[i] == char {
		run++
		i++
	}
	if run < minLen {
		return false
	}

	for ; i < len(line); i++ {
		if line[i] != ' ' && line[i] != '\t' {
			return false
		}
	}
	return true
}

// isRuleLine reports whether a line is a thematic break: three or more of
// the same marker character (-, _, *) with only whitespace between, after
// any blockquote prefix.
func isRuleLine(line []byte) bool {
	i := skipQuotePrefix(line)
	if i >= len(line) {
		return false
	}

	marker := line[i]
	if marker != '-' && marker != '_' && marker != '*' {
		return false
	}

	count := 0
	for ; i < len(line); i++ {
		switch line[i] {
		case marker:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// isBlankLine reports whether a line is empty after any blockquote prefix.
func isBlankLine(line []byte) bool {
	return skipQuotePrefix(line) >= len(line)
}

// skipQuotePrefix returns the offset past leading whitespace and blockquote
// markers.
func skipQuotePrefix(line []byte) int {
	i := 0
	for i < len(line) {
		switch line[i] {
		case ' ', '\t', '>':
			i++
		default:
			return i
		}
	}
	return i
}

// setextUnderlineLevel inspects a line for a setext heading underline.
// Returns the heading level (1 for =, 2 for -) when it matches.
func setextUnderlineLevel(line []byte) (int, bool) {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) {
		return 0, false
	}

	marker := line[i]
	if marker != '=' && marker != '-' {
		return 0, false
	}

	for ; i < len(line); i++ {
		if line[i] == marker {
			continue
		}
		if line[i] == ' ' || line[i] == '\t' {
			// Trailing whitespace only.
			for ; i < len(line); i++ {
				if line[i] != ' ' && line[i] != '\t' {
					return 0, false
				}
			}
			break
		}
		return 0, false
	}

	if marker == '=' {
		return 1, true
	}
	return 2, true
}

// isAlignmentRow reports whether a line is a table alignment separator row:
// pipe-separated cells of dashes with optional leading/trailing colons.
func isAlignmentRow(line []byte) bool {
	text := trimSpaceBytes(line)
	if len(text) == 0 {
		return false
	}

	// Strip outer pipes.
	if text[0] == '|' {
		text = text[1:]
	}
	if len(text) > 0 && text[len(text)-1] == '|' {
		text = text[:len(text)-1]
	}

	cells := splitPipes(text)
	if len(cells) == 0 {
		return false
	}

	for _, cell := range cells {
		if !isAlignmentCell(trimSpaceBytes(cell)) {
			return false
		}
	}
	return true
}

// isAlignmentCell matches :?-+:? with at least one dash.
func isAlignmentCell(cell []byte) bool {
	if len(cell) == 0 {
		return false
	}

	i := 0
	if cell[i] == ':' {
		i++
	}

	dashes := 0
	for i < len(cell) && cell[i] == '-' {
		dashes++
		i++
	}
	if dashes == 0 {
		return false
	}

	if i < len(cell) && cell[i] == ':' {
		i++
	}
	return i == len(cell)
}

// splitPipes splits on unescaped pipes.
func splitPipes(text []byte) [][]byte {
	var cells [][]byte
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '|' && (i == 0 || text[i-1] != '\\') {
			cells = append(cells, text[start:i])
			start = i + 1
		}
	}
	cells = append(cells, text[start:])
	return cells
}

// trimSpaceBytes trims leading and trailing spaces and tabs.
func trimSpaceBytes(b []byte) []byte {
	start := 0
	for start < len(b) && (b[start] == ' ' || b[start] == '\t') {
		start++
	}
	end := len(b)
	for end > start && (b[end-1] == ' ' || b[end-1] == '\t') {
		end--
	}
	return b[start:end]
}
