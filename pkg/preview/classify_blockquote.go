package preview

import "github.com/typednotes/livemd/pkg/syntax"

// classifyBlockquote styles every line of the quote and handles the
// quote-mark prefixes, nested runs included. Away from the cursor each
// prefix is hidden with its trailing space; inside it is dimmed. Lazy
// continuation lines carry no marker and only get the line style.
func (a *assembler) classifyBlockquote(n *syntax.Node) {
	first := a.doc.LineAt(n.From)
	last := a.doc.LineAt(n.To)
	inside := cursorOnLines(a.doc, a.sel, n.From, n.To)

	for num := first.Number; num <= last.Number; num++ {
		line := a.doc.Line(num)
		a.lineClass(line.From, classBlockquote)

		from, to := quotePrefix(a.doc.LineText(num))
		if from < 0 {
			continue
		}
		if inside {
			a.mark(line.From+from, line.From+to, classSyntax)
		} else {
			a.hide(line.From+from, line.From+to)
		}
	}
}

// quotePrefix locates the quote-mark run at the start of a line,
// returning offsets within the line or (-1, -1) when the line has none.
// Each '>' absorbs one following space, so "> > deep" yields the whole
// "> > " prefix.
func quotePrefix(text string) (int, int) {
	i := 0
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	if i >= len(text) || text[i] != '>' {
		return -1, -1
	}
	start := i
	for i < len(text) && text[i] == '>' {
		i++
		if i < len(text) && text[i] == ' ' {
			i++
		}
	}
	return start, i
}
