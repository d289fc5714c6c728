package preview

import (
	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// classifyTable replaces the whole table with a grid widget when no
// cursor sits on its lines. The widget parses the pipe syntax itself and
// falls back to plain text if the slice is not table-shaped. Inside, each
// line gets the raw table style with every pipe left untouched.
func (a *assembler) classifyTable(n *syntax.Node) {
	if !cursorOnLines(a.doc, a.sel, n.From, n.To) {
		a.replace(n.From, n.To, widget.Table{Source: a.doc.Slice(n.From, n.To)})
		return
	}

	first := a.doc.LineAt(n.From)
	last := a.doc.LineAt(n.To)
	for num := first.Number; num <= last.Number; num++ {
		a.lineClass(a.doc.Line(num).From, classTable)
	}
}
