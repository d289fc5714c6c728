// Package document provides the read-only text snapshot the preview engine
// operates on. It models the host editor's buffer contract:
// - Document: immutable text with a byte-offset line index
// - Line: 1-based line metadata (start/end offsets, newline excluded)
// - Selection: ordered cursor ranges with head positions
package document

import "sort"

// Document is an immutable snapshot of the host buffer at a specific time.
// All offsets are zero-based byte offsets into the text.
type Document struct {
	text  string
	lines []lineSpan
}

// lineSpan holds the byte geometry of a single line.
type lineSpan struct {
	// start is the byte index of the line start.
	start int

	// newlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals end.
	newlineStart int

	// end is the byte index just after the newline (or end of text).
	end int
}

// Line describes one line of a Document.
// Number is 1-based. To excludes the line terminator.
type Line struct {
	Number int
	From   int
	To     int
}

// New creates a Document from text and builds its line index.
// Both LF and CRLF line endings are handled. An empty text still has
// one (empty) line, so every valid offset maps to a line.
func New(text string) *Document {
	return &Document{
		text:  text,
		lines: buildLines(text),
	}
}

// buildLines constructs line metadata from text.
func buildLines(text string) []lineSpan {
	var lines []lineSpan
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] == '\n' {
			// Check for CRLF.
			newlineStart := idx
			if idx > 0 && text[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, lineSpan{
				start:        lineStart,
				newlineStart: newlineStart,
				end:          idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line (may not have a trailing newline; empty text lands here too).
	if lineStart <= len(text) {
		lines = append(lines, lineSpan{
			start:        lineStart,
			newlineStart: len(text),
			end:          len(text),
		})
	}

	return lines
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Len returns the document length in bytes.
func (d *Document) Len() int {
	return len(d.text)
}

// Slice returns the text in [from, to). Out-of-bounds or inverted ranges
// are clamped rather than treated as errors.
func (d *Document) Slice(from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(d.text) {
		to = len(d.text)
	}
	if from >= to {
		return ""
	}
	return d.text[from:to]
}

// LineCount returns the number of lines. Always at least 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the 1-based line n. Out-of-range numbers are clamped to the
// first or last line.
func (d *Document) Line(n int) Line {
	if n < 1 {
		n = 1
	}
	if n > len(d.lines) {
		n = len(d.lines)
	}

	span := d.lines[n-1]
	return Line{Number: n, From: span.start, To: span.newlineStart}
}

// LineAt returns the line containing the byte offset. Offsets are clamped to
// [0, Len], so an offset at the very end of the text maps to the last line.
func (d *Document) LineAt(offset int) Line {
	if offset < 0 {
		offset = 0
	}
	if offset >= len(d.text) {
		return d.Line(len(d.lines))
	}

	// Binary search for the line whose span contains the offset.
	idx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].end > offset
	})

	if idx >= len(d.lines) {
		idx = len(d.lines) - 1
	}

	span := d.lines[idx]
	return Line{Number: idx + 1, From: span.start, To: span.newlineStart}
}

// LineText returns the content of the 1-based line n, excluding the newline.
func (d *Document) LineText(n int) string {
	line := d.Line(n)
	return d.text[line.From:line.To]
}

// Offset converts 1-based line and column numbers to a byte offset.
// Column counts bytes, with column 1 at the first byte of the line.
// Returns (0, false) if the position is out of range.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.lines) {
		return 0, false
	}
	if col < 1 {
		return 0, false
	}

	span := d.lines[line-1]
	offset := span.start + col - 1

	// Allow the column to point just past the line content (cursor at EOL).
	if offset > span.newlineStart {
		return 0, false
	}

	return offset, true
}
