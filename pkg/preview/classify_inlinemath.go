package preview

import (
	"strings"

	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyInlineMath replaces a $…$ span with a typeset widget when the
// cursor is elsewhere, skipping spans with blank expressions. Inside,
// only the two dollar signs are dimmed; the expression stays plain for
// editing.
func (a *assembler) classifyInlineMath(n *syntax.Node) {
	if n.To-n.From < 2 {
		return
	}
	if cursorTouches(a.sel, n.From, n.To) {
		a.mark(n.From, n.From+1, classSyntax)
		a.mark(n.To-1, n.To, classSyntax)
		return
	}

	expr := a.doc.Slice(n.From+1, n.To-1)
	if strings.TrimSpace(expr) == "" {
		return
	}
	a.replace(n.From, n.To, widget.Math{Expr: expr})
}
