package preview

import "github.com/typednotes/livemd/pkg/document"

// cursorTouches reports whether any selection head lies within [from, to],
// inclusive on both ends. Inline constructs use this: the cursor must sit
// literally inside the marked span to reveal its syntax.
func cursorTouches(sel document.Selection, from, to int) bool {
	for _, r := range sel.Ranges {
		if r.Head >= from && r.Head <= to {
			return true
		}
	}
	return false
}

// cursorOnLines reports whether any selection head sits on one of the
// lines spanned by [from, to]. Block constructs use this: editing anywhere
// on an affected line reveals raw syntax.
func cursorOnLines(doc *document.Document, sel document.Selection, from, to int) bool {
	first, last := lineSpan(doc, from, to)
	for _, r := range sel.Ranges {
		if n := doc.LineAt(r.Head).Number; n >= first && n <= last {
			return true
		}
	}
	return false
}

// lineSpan returns the first and last 1-based line numbers covered by
// [from, to].
func lineSpan(doc *document.Document, from, to int) (int, int) {
	return doc.LineAt(from).Number, doc.LineAt(to).Number
}
