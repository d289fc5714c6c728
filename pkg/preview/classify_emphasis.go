package preview

import "github.com/typednotes/livemd/pkg/syntax"

// classifyEmphasis handles emphasis, strong, and strikethrough spans.
// The delimiter runs on both sides are hidden away from the cursor and
// dimmed inside it; the inner text is styled either way. A node whose
// delimiters could not be located (MarkerLen zero) produces nothing.
func (a *assembler) classifyEmphasis(n *syntax.Node) {
	if n.Inline == nil || n.Inline.MarkerLen == 0 {
		return
	}
	marker := n.Inline.MarkerLen
	if n.To-n.From < 2*marker {
		return
	}

	var class string
	switch n.Construct {
	case syntax.ConstructEmphasis:
		class = classEm
	case syntax.ConstructStrong:
		class = classStrong
	case syntax.ConstructStrikethrough:
		class = classStrike
	default:
		return
	}

	openTo := n.From + marker
	closeFrom := n.To - marker
	if cursorTouches(a.sel, n.From, n.To) {
		a.mark(n.From, openTo, classSyntax)
		a.mark(closeFrom, n.To, classSyntax)
	} else {
		a.hide(n.From, openTo)
		a.hide(closeFrom, n.To)
	}
	a.mark(openTo, closeFrom, class)
}
