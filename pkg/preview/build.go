package preview

import (
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview/widget"
	"github.com/typednotes/livemd/pkg/syntax"
)

// span is a [from, to) byte range.
type span struct {
	from int
	to   int
}

func (s span) intersects(from, to int) bool {
	return s.from < to && from < s.to
}

// assembler accumulates decoration candidates over one pass. A fresh
// assembler is built per pass; nothing carries across rebuilds.
type assembler struct {
	doc *document.Document
	sel document.Selection

	decs []Decoration

	// covered holds the spans of terminally classified nodes. The text
	// detectors skip anything intersecting them, so a construct the tree
	// already handled is never decorated twice.
	covered []span

	// fm is the frontmatter span, detected before the walk so misparsed
	// nodes inside it can be suppressed.
	fm    span
	hasFM bool
}

// run produces the decoration candidates for one pass. Frontmatter is
// detected first, the tree is walked once, then the text detectors and
// the frontmatter emitter fill in the constructs the parser cannot see.
func (a *assembler) run(tree *syntax.Tree) []Decoration {
	a.fm, a.hasFM = detectFrontmatter(a.doc)

	if tree != nil && tree.Root != nil {
		syntax.Walk(tree.Root, a.visit)
	}

	a.detectMathBlocks()
	a.emitFrontmatter()
	return a.decs
}

// visit dispatches one node to its classifier. Terminal constructs are
// fully handled by their rule, so the walk does not descend into them;
// container constructs descend normally. Nodes intersecting the
// frontmatter span stay silent: the parser misreads the fence block as a
// thematic break or setext heading.
func (a *assembler) visit(n *syntax.Node) syntax.WalkAction {
	if a.hasFM && n.Construct != syntax.ConstructDocument && a.fm.intersects(n.From, n.To) {
		return syntax.WalkSkipChildren
	}

	switch n.Construct {
	case syntax.ConstructHeading:
		a.classifyHeading(n)
		return a.terminal(n)
	case syntax.ConstructEmphasis, syntax.ConstructStrong, syntax.ConstructStrikethrough:
		a.classifyEmphasis(n)
		return a.terminal(n)
	case syntax.ConstructInlineCode:
		a.classifyInlineCode(n)
		return a.terminal(n)
	case syntax.ConstructFencedCode:
		a.classifyFencedCode(n)
		return a.terminal(n)
	case syntax.ConstructIndentedCode:
		a.classifyIndentedCode(n)
		return a.terminal(n)
	case syntax.ConstructBlockquote:
		a.classifyBlockquote(n)
		return a.terminal(n)
	case syntax.ConstructLink, syntax.ConstructImage:
		a.classifyLink(n)
		return a.terminal(n)
	case syntax.ConstructThematicBreak:
		a.classifyRule(n)
		return a.terminal(n)
	case syntax.ConstructTable:
		a.classifyTable(n)
		return a.terminal(n)
	case syntax.ConstructInlineMath:
		a.classifyInlineMath(n)
		return a.terminal(n)
	case syntax.ConstructListItem:
		// Items decorate their marker but their content is ordinary
		// markdown, so the walk continues into it.
		a.classifyListItem(n)
		return syntax.WalkContinue
	case syntax.ConstructHTMLBlock:
		// No decoration, but the span counts as handled so the text
		// detectors leave raw HTML alone.
		a.cover(n.From, n.To)
		return syntax.WalkSkipChildren
	case syntax.ConstructDocument, syntax.ConstructParagraph, syntax.ConstructList,
		syntax.ConstructText, syntax.ConstructAutoLink, syntax.ConstructRawHTML:
		return syntax.WalkContinue
	default:
		return syntax.WalkContinue
	}
}

// terminal records the node as covered and stops descent.
func (a *assembler) terminal(n *syntax.Node) syntax.WalkAction {
	a.cover(n.From, n.To)
	return syntax.WalkSkipChildren
}

func (a *assembler) cover(from, to int) {
	a.covered = append(a.covered, span{from: from, to: to})
}

func (a *assembler) coveredIntersects(from, to int) bool {
	for _, c := range a.covered {
		if c.intersects(from, to) {
			return true
		}
	}
	return false
}

func (a *assembler) mark(from, to int, class string) {
	a.decs = append(a.decs, Mark(from, to, class))
}

func (a *assembler) hide(from, to int) {
	a.decs = append(a.decs, Replace(from, to))
}

func (a *assembler) replace(from, to int, w widget.Widget) {
	a.decs = append(a.decs, ReplaceWidget(from, to, w))
}

func (a *assembler) lineClass(at int, class string) {
	a.decs = append(a.decs, LineClass(at, class))
}
