package goldmark

import (
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// KindInlineMath is the goldmark node kind for $…$ spans.
var KindInlineMath = ast.NewNodeKind("InlineMath")

// inlineMathNode is a goldmark AST node for a single-line $…$ span.
// Segment covers the expression between the delimiters.
type inlineMathNode struct {
	ast.BaseInline
	Segment text.Segment
}

// Kind implements ast.Node.
func (n *inlineMathNode) Kind() ast.NodeKind {
	return KindInlineMath
}

// Dump implements ast.Node.
func (n *inlineMathNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// inlineMathParser parses $…$ spans. goldmark does not model inline math,
// so this registers as an additional inline parser. Display math ($$…$$) is
// intentionally not handled here; it is detected by text pattern matching
// outside the tree.
type inlineMathParser struct{}

// newInlineMathParser creates the inline math parser.
func newInlineMathParser() parser.InlineParser {
	return &inlineMathParser{}
}

// Trigger implements parser.InlineParser.
func (p *inlineMathParser) Trigger() []byte {
	return []byte{'$'}
}

// Parse implements parser.InlineParser. It matches a $…$ pair on a single
// line, leaving $$ openers and unclosed delimiters as literal text. The
// opening $ must touch the expression on its right and the closing $ on
// its left, so currency like "$5 and $6" stays prose.
func (p *inlineMathParser) Parse(_ ast.Node, block text.Reader, _ parser.Context) ast.Node {
	// A $ directly after another $ is the tail of a $$ opener, not a new span.
	if block.PrecendingCharacter() == '$' {
		return nil
	}

	line, segment := block.PeekLine()
	if len(line) < 3 {
		return nil
	}
	if line[1] == '$' || line[1] == ' ' || line[1] == '\t' {
		return nil
	}

	for i := 2; i < len(line); i++ {
		c := line[i]
		if c == '\n' || c == '\r' {
			break
		}
		if c != '$' {
			continue
		}
		if prev := line[i-1]; prev == ' ' || prev == '\t' || prev == '\\' {
			continue
		}
		node := &inlineMathNode{
			Segment: text.NewSegment(segment.Start+1, segment.Start+i),
		}
		block.Advance(i + 1)
		return node
	}

	return nil
}
