package preview

import (
	"fmt"
	"sort"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview/widget"
)

// Kind identifies what a decoration does to its range.
type Kind uint8

const (
	// KindMark annotates the range with a style class, text unchanged.
	KindMark Kind = iota

	// KindReplace hides the range, rendering the widget (if any) in its
	// place.
	KindReplace

	// KindLine annotates the whole line starting at From. Always
	// zero-width.
	KindLine
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMark:
		return "mark"
	case KindReplace:
		return "replace"
	case KindLine:
		return "line"
	default:
		return "unknown"
	}
}

// Decoration is one display instruction over a [From, To) byte range of
// the document. The underlying text is never altered.
type Decoration struct {
	From int
	To   int
	Kind Kind

	// Class is the style class for KindMark and KindLine.
	Class string

	// Widget is the rendered replacement for KindReplace. Nil means hide
	// the range without rendering anything.
	Widget widget.Widget
}

// Mark styles [from, to) with class.
func Mark(from, to int, class string) Decoration {
	return Decoration{From: from, To: to, Kind: KindMark, Class: class}
}

// Replace hides [from, to).
func Replace(from, to int) Decoration {
	return Decoration{From: from, To: to, Kind: KindReplace}
}

// ReplaceWidget hides [from, to) and renders w in its place.
func ReplaceWidget(from, to int, w widget.Widget) Decoration {
	return Decoration{From: from, To: to, Kind: KindReplace, Widget: w}
}

// LineClass styles the whole line starting at the byte offset at.
func LineClass(at int, class string) Decoration {
	return Decoration{From: at, To: at, Kind: KindLine, Class: class}
}

// Eq reports structural equality, including widget payloads.
func (d Decoration) Eq(other Decoration) bool {
	return d.sameKey(other) && widgetsEqual(d.Widget, other.Widget)
}

// sameKey compares every field that participates in the sort order.
func (d Decoration) sameKey(other Decoration) bool {
	return d.From == other.From && d.To == other.To &&
		d.Kind == other.Kind && d.Class == other.Class
}

// String renders the decoration for diagnostics and test failures.
func (d Decoration) String() string {
	switch d.Kind {
	case KindLine:
		return fmt.Sprintf("line(%d) %s", d.From, d.Class)
	case KindReplace:
		if d.Widget == nil {
			return fmt.Sprintf("replace[%d:%d)", d.From, d.To)
		}
		return fmt.Sprintf("replace[%d:%d) %s", d.From, d.To, d.Widget)
	default:
		return fmt.Sprintf("mark[%d:%d) %s", d.From, d.To, d.Class)
	}
}

func widgetsEqual(a, b widget.Widget) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Eq(b)
}

// Collection is the immutable output of one assembly pass, sorted by the
// documented total order and free of duplicates and invalid ranges.
type Collection struct {
	decs []Decoration
}

// newCollection sorts, deduplicates, and validates candidates against the
// document. Candidates with inverted, negative, or out-of-bounds ranges
// are dropped, as are zero-width marks and replacements, which decorate
// nothing.
//
// The total order is: From ascending; at equal From, zero-width line
// entries first; then To ascending; then marks before replacements; then
// class. Candidates equal under the order keep their emission order.
func newCollection(doc *document.Document, candidates []Decoration) *Collection {
	length := doc.Len()
	kept := make([]Decoration, 0, len(candidates))
	for _, d := range candidates {
		if d.From < 0 || d.To > length || d.From > d.To {
			continue
		}
		if d.From == d.To && d.Kind != KindLine {
			continue
		}
		kept = append(kept, d)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return less(kept[i], kept[j])
	})

	return &Collection{decs: dedupe(kept)}
}

func less(a, b Decoration) bool {
	if a.From != b.From {
		return a.From < b.From
	}
	if lineA, lineB := a.Kind == KindLine, b.Kind == KindLine; lineA != lineB {
		return lineA
	}
	if a.To != b.To {
		return a.To < b.To
	}
	if a.Kind != b.Kind {
		return a.Kind < b.Kind
	}
	return a.Class < b.Class
}

// dedupe removes exact duplicates from a sorted slice. Entries sharing a
// sort key are adjacent, so each candidate only needs comparing against
// the kept entries of its own run.
func dedupe(sorted []Decoration) []Decoration {
	kept := make([]Decoration, 0, len(sorted))
	runStart := 0
	for _, d := range sorted {
		if len(kept) > 0 && !kept[len(kept)-1].sameKey(d) {
			runStart = len(kept)
		}
		duplicate := false
		for _, prev := range kept[runStart:] {
			if prev.Eq(d) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			kept = append(kept, d)
		}
	}
	return kept
}

// Len returns the number of decorations.
func (c *Collection) Len() int {
	return len(c.decs)
}

// At returns the decoration at index i.
func (c *Collection) At(i int) Decoration {
	return c.decs[i]
}

// Decorations returns a copy of the ordered decorations.
func (c *Collection) Decorations() []Decoration {
	out := make([]Decoration, len(c.decs))
	copy(out, c.decs)
	return out
}

// Eq reports whether two collections hold structurally identical
// decorations in the same order.
func (c *Collection) Eq(other *Collection) bool {
	if c.Len() != other.Len() {
		return false
	}
	for i, d := range c.decs {
		if !d.Eq(other.decs[i]) {
			return false
		}
	}
	return true
}
