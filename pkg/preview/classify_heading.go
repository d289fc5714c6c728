package preview

import "github.com/typednotes/livemd/pkg/syntax"

// classifyHeading styles the whole heading span and handles its marker.
// Away from the cursor the ATX marker run and one trailing space are
// hidden; on the heading's lines the run stays visible, dimmed. Setext
// headings have no leading run, so their underline takes the marker's
// role instead.
func (a *assembler) classifyHeading(n *syntax.Node) {
	if n.Block == nil || n.Block.HeadingLevel < 1 {
		return
	}
	inside := cursorOnLines(a.doc, a.sel, n.From, n.To)
	a.mark(n.From, n.To, headingClass(n.Block.HeadingLevel))

	if n.Block.Setext {
		a.classifySetextUnderline(n, inside)
		return
	}

	markerEnd := n.From + n.Block.HeadingLevel
	if markerEnd > n.To {
		return
	}
	if inside {
		a.mark(n.From, markerEnd, classSyntax)
		return
	}
	hideTo := markerEnd
	if a.doc.Slice(markerEnd, markerEnd+1) == " " {
		hideTo++
	}
	a.hide(n.From, hideTo)
}

// classifySetextUnderline dims the underline near the cursor and hides
// it, together with the preceding line break, away from it.
func (a *assembler) classifySetextUnderline(n *syntax.Node, inside bool) {
	underline := a.doc.LineAt(n.To)
	if underline.From <= n.From {
		return
	}
	if inside {
		a.mark(underline.From, n.To, classSyntax)
		return
	}
	prev := a.doc.LineAt(underline.From - 1)
	a.hide(prev.To, n.To)
}
