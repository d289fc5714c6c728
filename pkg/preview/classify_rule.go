package preview

import (
	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyRule replaces a thematic break with a divider widget, or dims
// the raw marker line when the cursor is on it. Breaks inside the
// frontmatter span never reach this point; the walk suppresses them.
func (a *assembler) classifyRule(n *syntax.Node) {
	if cursorOnLines(a.doc, a.sel, n.From, n.To) {
		a.mark(n.From, n.To, classSyntax)
		return
	}
	a.replace(n.From, n.To, widget.Rule{})
}
