package preview

import (
	"strings"

	"github.com/typednotes/livemd/pkg/preview/widget"
)

// detectMathBlocks scans the text for display math, which the parser has
// no syntax for. Two forms are recognized: a fence pair with "$$" alone
// on the opening and closing lines, and the single-line "$$expr$$" form.
// Lines inside spans the tree walk already handled, or inside the
// frontmatter block, are skipped, as are unclosed openers.
func (a *assembler) detectMathBlocks() {
	for num := 1; num <= a.doc.LineCount(); num++ {
		line := a.doc.Line(num)
		if a.coveredIntersects(line.From, line.To) {
			continue
		}
		if a.hasFM && a.fm.intersects(line.From, line.To) {
			continue
		}

		text := a.doc.LineText(num)
		trimmed := strings.TrimSpace(text)
		if !strings.HasPrefix(trimmed, "$$") {
			continue
		}
		from := line.From + strings.Index(text, "$$")

		if len(trimmed) >= 4 && strings.HasSuffix(trimmed, "$$") {
			to := from + len(trimmed)
			if !a.coveredIntersects(from, to) {
				a.emitMathBlock(from, to, num, num, trimmed[2:len(trimmed)-2])
			}
			continue
		}
		if trimmed != "$$" {
			continue
		}

		closing := a.findMathClose(num + 1)
		if closing == 0 {
			continue
		}
		closeLine := a.doc.Line(closing)
		to := closeLine.From + strings.Index(a.doc.LineText(closing), "$$") + 2
		if a.coveredIntersects(from, to) {
			num = closing
			continue
		}

		expr := ""
		if closing > num+1 {
			expr = trimOneBreak(a.doc.Slice(a.doc.Line(num+1).From, closeLine.From))
		}
		a.emitMathBlock(from, to, num, closing, expr)
		num = closing
	}
}

// findMathClose returns the number of the next line holding a bare "$$"
// fence, or 0 when none remains.
func (a *assembler) findMathClose(from int) int {
	for num := from; num <= a.doc.LineCount(); num++ {
		if strings.TrimSpace(a.doc.LineText(num)) == "$$" {
			return num
		}
	}
	return 0
}

// emitMathBlock decorates one display math block. Away from the cursor
// the block becomes a display-mode widget, skipped for blank expressions.
// Inside, the first and last lines are dimmed.
func (a *assembler) emitMathBlock(from, to, firstLine, lastLine int, expr string) {
	if cursorOnLines(a.doc, a.sel, from, to) {
		if firstLine == lastLine {
			a.mark(from, to, classSyntax)
			return
		}
		a.mark(from, a.doc.Line(firstLine).To, classSyntax)
		a.mark(a.doc.Line(lastLine).From, to, classSyntax)
		return
	}
	if strings.TrimSpace(expr) == "" {
		return
	}
	a.replace(from, to, widget.Math{Expr: expr, Display: true})
}
