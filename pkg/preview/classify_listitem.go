package preview

import "github.com/typednotes/livemd/pkg/syntax"

// classifyListItem dims the bullet or ordered marker when the cursor is
// on the marker's line. Away from it the item is left untouched; list
// content renders through the ordinary rules as the walk descends.
func (a *assembler) classifyListItem(n *syntax.Node) {
	line := a.doc.LineAt(n.From)
	if !cursorOnLines(a.doc, a.sel, line.From, line.To) {
		return
	}
	from, to := listMarker(a.doc.Slice(line.From, line.To))
	if from < 0 {
		return
	}
	a.mark(line.From+from, line.From+to, classSyntax)
}

// listMarker locates the bullet character or the ordered marker (digits
// plus '.' or ')') at the start of an item line, returning offsets within
// text or (-1, -1) when none is found.
func listMarker(text string) (int, int) {
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) {
		return -1, -1
	}
	switch text[i] {
	case '-', '+', '*':
		return i, i + 1
	}
	start := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == start || i >= len(text) {
		return -1, -1
	}
	if text[i] == '.' || text[i] == ')' {
		return start, i + 1
	}
	return -1, -1
}
