package preview

import (
	"strings"

	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyIndentedCode mirrors the fenced block rule for four-space
// indented code: a code widget away from the cursor, per-line block
// styling inside. There are no fence lines to dim, and the widget carries
// no language, so the renderer detects one from the content.
func (a *assembler) classifyIndentedCode(n *syntax.Node) {
	first := a.doc.LineAt(n.From)
	last := a.doc.LineAt(n.To)

	if !cursorOnLines(a.doc, a.sel, n.From, n.To) {
		a.replace(n.From, n.To, widget.Code{
			Source: a.indentedBody(first.Number, last.Number),
			Block:  true,
		})
		return
	}

	for num := first.Number; num <= last.Number; num++ {
		a.lineClass(a.doc.Line(num).From, blockLineClass(num, first.Number, last.Number))
	}
}

// indentedBody joins the block's lines with the code indent stripped.
func (a *assembler) indentedBody(first, last int) string {
	var b strings.Builder
	for num := first; num <= last; num++ {
		if num > first {
			b.WriteByte('\n')
		}
		b.WriteString(dedentLine(a.doc.LineText(num)))
	}
	return b.String()
}

// dedentLine strips the four-space or single-tab code indent.
func dedentLine(text string) string {
	if strings.HasPrefix(text, "\t") {
		return text[1:]
	}
	stripped := 0
	for stripped < 4 && stripped < len(text) && text[stripped] == ' ' {
		stripped++
	}
	return text[stripped:]
}
