package preview

import (
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview/widget"
)

// detectFrontmatter finds a YAML frontmatter block, which exists only at
// the very start of the document: line 1 is exactly "---" and a later
// line closes it with the same fence. Interior fence pairs are ordinary
// markdown, and an unclosed opener is no frontmatter at all.
func detectFrontmatter(doc *document.Document) (span, bool) {
	if doc.LineCount() < 2 || doc.LineText(1) != "---" {
		return span{}, false
	}
	for num := 2; num <= doc.LineCount(); num++ {
		if doc.LineText(num) == "---" {
			return span{from: 0, to: doc.Line(num).To}, true
		}
	}
	return span{}, false
}

// emitFrontmatter runs after the tree walk. Away from the cursor the
// whole block collapses into a badge widget carrying the YAML body.
// Inside, the fence lines are dimmed and each body line takes the raw
// frontmatter style.
func (a *assembler) emitFrontmatter() {
	if !a.hasFM || a.coveredIntersects(a.fm.from, a.fm.to) {
		return
	}
	first := a.doc.LineAt(a.fm.from)
	last := a.doc.LineAt(a.fm.to)

	if !cursorOnLines(a.doc, a.sel, a.fm.from, a.fm.to) {
		a.replace(a.fm.from, a.fm.to, widget.Frontmatter{
			Source: a.frontmatterBody(first, last),
		})
		return
	}

	a.mark(first.From, first.To, classSyntax)
	a.mark(last.From, last.To, classSyntax)
	for num := first.Number + 1; num < last.Number; num++ {
		a.lineClass(a.doc.Line(num).From, classFrontmatter)
	}
}

// frontmatterBody extracts the YAML between the fence lines, trailing
// newline trimmed.
func (a *assembler) frontmatterBody(first, last document.Line) string {
	if last.Number-first.Number < 2 {
		return ""
	}
	return trimOneBreak(a.doc.Slice(a.doc.Line(first.Number+1).From, last.From))
}
