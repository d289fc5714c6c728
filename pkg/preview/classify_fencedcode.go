package preview

import (
	"strings"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyFencedCode replaces a fenced block with a highlighted code
// widget when no cursor sits on its lines. The widget source is the text
// strictly between the fence lines, trailing newline trimmed, and the
// language comes from the info string. With a cursor inside, every line
// gets the block style class and the fence lines are dimmed; nothing is
// replaced.
func (a *assembler) classifyFencedCode(n *syntax.Node) {
	first := a.doc.LineAt(n.From)
	last := a.doc.LineAt(n.To)
	closed := n.Block != nil && n.Block.Fence != nil && n.Block.Fence.Closed

	if !cursorOnLines(a.doc, a.sel, n.From, n.To) {
		var language string
		if n.Block != nil && n.Block.Fence != nil {
			language = n.Block.Fence.Language
		}
		a.replace(n.From, n.To, widget.Code{
			Language: language,
			Source:   a.fencedBody(n, first, last, closed),
			Block:    true,
		})
		return
	}

	for num := first.Number; num <= last.Number; num++ {
		a.lineClass(a.doc.Line(num).From, blockLineClass(num, first.Number, last.Number))
	}
	a.mark(first.From, first.To, classSyntax)
	if closed && last.Number > first.Number {
		a.mark(last.From, last.To, classSyntax)
	}
}

// fencedBody extracts the code between the fence lines. Unclosed blocks
// run to the end of the node span.
func (a *assembler) fencedBody(n *syntax.Node, first, last document.Line, closed bool) string {
	if first.Number == last.Number {
		return ""
	}
	bodyFrom := a.doc.Line(first.Number + 1).From
	bodyTo := n.To
	if closed {
		bodyTo = last.From
	}
	return trimOneBreak(a.doc.Slice(bodyFrom, bodyTo))
}

// trimOneBreak removes a single trailing line break, LF or CRLF.
func trimOneBreak(text string) string {
	text = strings.TrimSuffix(text, "\n")
	return strings.TrimSuffix(text, "\r")
}
