package preview

import "github.com/typednotes/livemd/pkg/syntax"

// classifyLink styles the label and URL of links and images and handles
// the bracket and paren delimiters: hidden away from the cursor, dimmed
// as syntax inside. The URL text itself stays visible in both states.
// Reference-style links have no inline destination; only their label and
// surrounding brackets are handled. A node without a located label
// produces nothing.
func (a *assembler) classifyLink(n *syntax.Node) {
	if n.Inline == nil || !n.Inline.Label.Valid() {
		return
	}
	label := n.Inline.Label
	if label.From < n.From || label.To > n.To {
		return
	}
	inside := cursorTouches(a.sel, n.From, n.To)

	dest := n.Inline.Dest
	if dest.Valid() && dest.From >= label.To && dest.To <= n.To {
		a.linkDelimiter(n.From, label.From, inside)
		a.linkDelimiter(label.To, dest.From, inside)
		a.linkDelimiter(dest.To, n.To, inside)
		a.mark(dest.From, dest.To, classURL)
	} else {
		a.linkDelimiter(n.From, label.From, inside)
		a.linkDelimiter(label.To, n.To, inside)
	}
	a.mark(label.From, label.To, classLink)
}

func (a *assembler) linkDelimiter(from, to int, inside bool) {
	if inside {
		a.mark(from, to, classSyntax)
		return
	}
	a.hide(from, to)
}
