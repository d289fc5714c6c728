package preview

import (
	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyInlineCode replaces a code span with an inline code widget when
// the cursor is elsewhere. Inside, the backtick runs are dimmed and the
// content takes the inline code style.
func (a *assembler) classifyInlineCode(n *syntax.Node) {
	if n.Inline == nil || n.Inline.MarkerLen == 0 {
		return
	}
	marker := n.Inline.MarkerLen
	if n.To-n.From < 2*marker {
		return
	}

	openTo := n.From + marker
	closeFrom := n.To - marker
	if cursorTouches(a.sel, n.From, n.To) {
		a.mark(n.From, openTo, classSyntax)
		a.mark(closeFrom, n.To, classSyntax)
		a.mark(openTo, closeFrom, classCodeInline)
		return
	}
	a.replace(n.From, n.To, widget.Code{Source: a.doc.Slice(openTo, closeFrom)})
}
