package goldmark

import (
	"github.com/typednotes/livemd/pkg/syntax"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// mapper converts a goldmark AST into a syntax tree with byte-accurate
// spans. Goldmark nodes carry content segments that exclude delimiters
// (inline markers, fence lines, list bullets), so each construct extends
// its segment outward by scanning the raw source around it. Nodes whose
// span cannot be recovered are dropped rather than guessed.
type mapper struct {
	content []byte
}

func newMapper(content []byte) *mapper {
	return &mapper{content: content}
}

// mapDocument maps the goldmark document root and resolves every span.
func (m *mapper) mapDocument(gmDoc ast.Node) *syntax.Node {
	doc := m.newNode(syntax.ConstructDocument)
	doc.From = 0
	doc.To = len(m.content)
	m.mapChildren(gmDoc, doc)
	m.resolveRules(doc)
	m.dropUnresolved(doc)
	return doc
}

// newNode creates a node with an unresolved span. Spans stay at -1 until
// a mapping function recovers them from the source.
func (m *mapper) newNode(construct syntax.Construct) *syntax.Node {
	node := syntax.NewNode(construct)
	node.From = -1
	node.To = -1
	return node
}

func (m *mapper) mapChildren(gmNode ast.Node, parent *syntax.Node) {
	for child := gmNode.FirstChild(); child != nil; child = child.NextSibling() {
		if mapped := m.mapNode(child); mapped != nil {
			syntax.AppendChild(parent, mapped)
		}
	}
}

func (m *mapper) mapNode(gmNode ast.Node) *syntax.Node {
	switch typed := gmNode.(type) {
	case *ast.Heading:
		return m.mapHeading(typed)
	case *ast.Paragraph:
		return m.mapParagraph(typed)
	case *ast.TextBlock:
		return m.mapParagraph(typed)
	case *ast.Blockquote:
		return m.mapContainer(typed, syntax.ConstructBlockquote)
	case *ast.List:
		return m.mapList(typed)
	case *ast.ListItem:
		return m.mapContainer(typed, syntax.ConstructListItem)
	case *ast.FencedCodeBlock:
		return m.mapFencedCode(typed)
	case *ast.CodeBlock:
		return m.mapIndentedCode(typed)
	case *ast.ThematicBreak:
		// No position info on the goldmark node; resolveRules recovers
		// the span from the surrounding source once siblings are mapped.
		return m.newNode(syntax.ConstructThematicBreak)
	case *ast.HTMLBlock:
		return m.mapHTMLBlock(typed)
	case *ast.Text:
		return m.mapText(typed)
	case *ast.Emphasis:
		return m.mapEmphasis(typed)
	case *ast.CodeSpan:
		return m.mapCodeSpan(typed)
	case *ast.Link:
		return m.mapLink(typed, false)
	case *ast.Image:
		return m.mapLink(typed, true)
	case *ast.AutoLink:
		// Goldmark does not expose the autolink segment.
		return nil
	case *ast.RawHTML:
		return m.mapRawHTML(typed)
	case *east.Strikethrough:
		return m.mapStrikethrough(typed)
	case *east.Table:
		return m.mapTable(typed)
	case *inlineMathNode:
		return m.mapInlineMath(typed)
	default:
		return nil
	}
}

// blockLinesSpan returns the byte range covered by a block node's content
// lines, or (-1, -1) when the node has none.
func blockLinesSpan(gmNode ast.Node) (int, int) {
	lines := gmNode.Lines()
	if lines == nil || lines.Len() == 0 {
		return -1, -1
	}
	return lines.At(0).Start, lines.At(lines.Len() - 1).Stop
}

func (m *mapper) mapHeading(gmHeading *ast.Heading) *syntax.Node {
	node := m.newNode(syntax.ConstructHeading)
	m.mapChildren(gmHeading, node)

	from, to := blockLinesSpan(gmHeading)
	if from < 0 {
		from, to = childSpanUnion(node)
	}
	attrs := syntax.NewBlockAttrs().WithHeadingLevel(gmHeading.Level)
	node.Block = attrs
	if from < 0 {
		return node
	}
	to = trimTrailingBreaks(m.content, from, to)

	lineStart := lineStartAt(m.content, from)
	if markerStart, ok := atxMarkerStart(m.content, lineStart, lineContentEndAt(m.content, from)); ok {
		node.From = markerStart
		node.To = lineContentEndAt(m.content, to)
		return node
	}

	// Setext heading: the span includes the underline.
	attrs.WithSetext()
	node.From = from
	node.To = lineContentEndAt(m.content, to)
	if next, ok := nextLineStart(m.content, node.To); ok {
		lineEnd := lineContentEndAt(m.content, next)
		if _, isUnderline := setextUnderlineLevel(m.content[next:lineEnd]); isUnderline {
			node.To = lineEnd
		}
	}
	return node
}

// atxMarkerStart locates the '#' run opening an ATX heading line. It
// returns false for setext headings, whose text line carries no marker.
func atxMarkerStart(content []byte, lineStart, lineEnd int) (int, bool) {
	i := lineStart
	for i < lineEnd && (content[i] == ' ' || content[i] == '\t') {
		i++
	}
	markerStart := i
	for i < lineEnd && content[i] == '#' {
		i++
	}
	run := i - markerStart
	if run < 1 || run > 6 {
		return 0, false
	}
	if i < lineEnd && content[i] != ' ' && content[i] != '\t' {
		return 0, false
	}
	return markerStart, true
}

func (m *mapper) mapParagraph(gmNode ast.Node) *syntax.Node {
	node := m.newNode(syntax.ConstructParagraph)
	m.mapChildren(gmNode, node)
	from, to := blockLinesSpan(gmNode)
	if from < 0 {
		from, to = childSpanUnion(node)
	}
	if from >= 0 {
		node.From = from
		node.To = trimTrailingBreaks(m.content, from, to)
	}
	return node
}

// mapContainer maps a block whose span is the line-extended union of its
// children. Blockquotes and list items carry their markers as line
// prefixes, so extending to line boundaries recovers them.
func (m *mapper) mapContainer(gmNode ast.Node, construct syntax.Construct) *syntax.Node {
	node := m.newNode(construct)
	m.mapChildren(gmNode, node)
	from, to := childSpanUnion(node)
	if from >= 0 {
		node.From, node.To = extendToLines(m.content, from, to)
	}
	return node
}

func (m *mapper) mapList(gmList *ast.List) *syntax.Node {
	node := m.mapContainer(gmList, syntax.ConstructList)
	node.Block = syntax.NewBlockAttrs().WithList(&syntax.ListAttrs{
		Ordered: gmList.IsOrdered(),
		Marker:  gmList.Marker,
		Start:   gmList.Start,
	})
	return node
}

func (m *mapper) mapFencedCode(gmCode *ast.FencedCodeBlock) *syntax.Node {
	node := m.newNode(syntax.ConstructFencedCode)

	info := ""
	if gmCode.Info != nil {
		info = string(gmCode.Info.Value(m.content))
	}
	language := string(gmCode.Language(m.content))

	bodyFrom, bodyTo := blockLinesSpan(gmCode)

	// The opening fence is the line before the first body line. Empty
	// blocks fall back to the info segment's own line.
	openStart, openEnd := -1, -1
	if bodyFrom >= 0 {
		start, end, ok := prevLineRange(m.content, lineStartAt(m.content, bodyFrom))
		if ok {
			openStart, openEnd = start, end
		}
	} else if gmCode.Info != nil {
		openStart = lineStartAt(m.content, gmCode.Info.Segment.Start)
		openEnd = lineContentEndAt(m.content, openStart)
	}
	if openStart < 0 {
		return node
	}

	char, length, ok := fenceStyleOfLine(m.content[openStart:openEnd])
	if !ok {
		char, length = '`', 3
	}

	// The closing fence, when present, is the line after the last body
	// line. Body segments include their terminators, so bodyTo already
	// sits at the next line start.
	closingStart := -1
	if bodyFrom >= 0 {
		if bodyTo < len(m.content) && lineStartAt(m.content, bodyTo) == bodyTo {
			closingStart = bodyTo
		} else if next, ok := nextLineStart(m.content, bodyTo); ok {
			closingStart = next
		}
	} else if next, ok := nextLineStart(m.content, openEnd); ok {
		closingStart = next
	}

	node.From = openStart
	closed := false
	if closingStart >= 0 {
		lineEnd := lineContentEndAt(m.content, closingStart)
		if isClosingFence(m.content[closingStart:lineEnd], char, length) {
			node.To = lineEnd
			closed = true
		}
	}
	if !closed {
		if bodyFrom >= 0 {
			node.To = trimTrailingBreaks(m.content, openStart, bodyTo)
		} else {
			node.To = openEnd
		}
	}

	node.Block = syntax.NewBlockAttrs().WithFence(&syntax.FenceAttrs{
		Char:     char,
		Length:   length,
		Info:     info,
		Language: language,
		Closed:   closed,
	})
	return node
}

func (m *mapper) mapIndentedCode(gmCode *ast.CodeBlock) *syntax.Node {
	node := m.newNode(syntax.ConstructIndentedCode)
	from, to := blockLinesSpan(gmCode)
	if from >= 0 {
		node.From, node.To = extendToLines(m.content, from, trimTrailingBreaks(m.content, from, to))
	}
	return node
}

func (m *mapper) mapHTMLBlock(gmBlock *ast.HTMLBlock) *syntax.Node {
	node := m.newNode(syntax.ConstructHTMLBlock)
	from, to := blockLinesSpan(gmBlock)
	if gmBlock.ClosureLine.Start >= 0 {
		if from < 0 || gmBlock.ClosureLine.Start < from {
			from = gmBlock.ClosureLine.Start
		}
		if gmBlock.ClosureLine.Stop > to {
			to = gmBlock.ClosureLine.Stop
		}
	}
	if from >= 0 {
		node.From, node.To = extendToLines(m.content, from, trimTrailingBreaks(m.content, from, to))
	}
	return node
}

func (m *mapper) mapText(gmText *ast.Text) *syntax.Node {
	segment := gmText.Segment
	if segment.Stop < segment.Start {
		return nil
	}
	node := m.newNode(syntax.ConstructText)
	node.From = segment.Start
	node.To = segment.Stop
	return node
}

func (m *mapper) mapEmphasis(gmEmphasis *ast.Emphasis) *syntax.Node {
	construct := syntax.ConstructEmphasis
	if gmEmphasis.Level >= 2 {
		construct = syntax.ConstructStrong
	}
	node := m.newNode(construct)
	m.mapChildren(gmEmphasis, node)

	attrs := syntax.NewInlineAttrs().WithEmphasisLevel(gmEmphasis.Level)
	node.Inline = attrs
	contentFrom, contentTo := childSpanUnion(node)
	if contentFrom < 0 {
		return node
	}

	// Verify the delimiter runs around the content. A mismatch leaves
	// MarkerLen at zero so downstream consumers treat the node as plain.
	var marker byte
	if contentFrom > 0 {
		if c := m.content[contentFrom-1]; c == '*' || c == '_' {
			marker = c
		}
	}
	level := gmEmphasis.Level
	if marker != 0 &&
		runLenBackward(m.content, contentFrom, marker) >= level &&
		runLenForward(m.content, contentTo, marker) >= level {
		node.From = contentFrom - level
		node.To = contentTo + level
		attrs.WithMarkerLen(level)
	} else {
		node.From = contentFrom
		node.To = contentTo
	}
	return node
}

func (m *mapper) mapStrikethrough(gmStrike *east.Strikethrough) *syntax.Node {
	node := m.newNode(syntax.ConstructStrikethrough)
	m.mapChildren(gmStrike, node)

	attrs := syntax.NewInlineAttrs()
	node.Inline = attrs
	contentFrom, contentTo := childSpanUnion(node)
	if contentFrom < 0 {
		return node
	}

	back := runLenBackward(m.content, contentFrom, '~')
	forward := runLenForward(m.content, contentTo, '~')
	markerLen := back
	if forward < markerLen {
		markerLen = forward
	}
	if markerLen > 2 {
		markerLen = 2
	}
	if markerLen > 0 {
		node.From = contentFrom - markerLen
		node.To = contentTo + markerLen
		attrs.WithMarkerLen(markerLen)
	} else {
		node.From = contentFrom
		node.To = contentTo
	}
	return node
}

func (m *mapper) mapCodeSpan(gmCode *ast.CodeSpan) *syntax.Node {
	node := m.newNode(syntax.ConstructInlineCode)
	m.mapChildren(gmCode, node)

	attrs := syntax.NewInlineAttrs()
	node.Inline = attrs
	contentFrom, contentTo := childSpanUnion(node)
	if contentFrom < 0 {
		return node
	}

	back := runLenBackward(m.content, contentFrom, '`')
	forward := runLenForward(m.content, contentTo, '`')
	if back > 0 && forward > 0 {
		node.From = contentFrom - back
		node.To = contentTo + forward
		markerLen := back
		if forward < markerLen {
			markerLen = forward
		}
		attrs.WithMarkerLen(markerLen)
	} else {
		node.From = contentFrom
		node.To = contentTo
	}
	return node
}

// mapLink maps links and images. The label span is the child union; the
// destination is recovered by scanning for the ](...) tail on the same
// line. Reference links keep their label span but no destination span.
func (m *mapper) mapLink(gmNode ast.Node, image bool) *syntax.Node {
	construct := syntax.ConstructLink
	if image {
		construct = syntax.ConstructImage
	}
	node := m.newNode(construct)
	m.mapChildren(gmNode, node)

	var destination string
	switch typed := gmNode.(type) {
	case *ast.Link:
		destination = string(typed.Destination)
	case *ast.Image:
		destination = string(typed.Destination)
	}

	label := syntax.Span{From: -1, To: -1}
	destSpan := syntax.Span{From: -1, To: -1}
	attrs := syntax.NewInlineAttrs()
	node.Inline = attrs

	labelFrom, labelTo := childSpanUnion(node)
	if labelFrom < 0 {
		attrs.WithLink(label, destSpan, destination)
		return node
	}

	node.From = labelFrom
	node.To = labelTo
	if labelFrom > 0 && m.content[labelFrom-1] == '[' {
		label = syntax.Span{From: labelFrom, To: labelTo}
		node.From = labelFrom - 1
		if labelTo < len(m.content) && m.content[labelTo] == ']' {
			node.To = labelTo + 1
			if labelTo+1 < len(m.content) && m.content[labelTo+1] == '(' {
				closing := -1
				for i := labelTo + 2; i < len(m.content); i++ {
					if m.content[i] == ')' {
						closing = i
						break
					}
					if m.content[i] == '\n' {
						break
					}
				}
				if closing >= 0 {
					destSpan = syntax.Span{From: labelTo + 2, To: closing}
					node.To = closing + 1
				}
			}
		}
		if image && node.From > 0 && m.content[node.From-1] == '!' {
			node.From--
		}
	}
	attrs.WithLink(label, destSpan, destination)
	return node
}

func (m *mapper) mapRawHTML(gmRaw *ast.RawHTML) *syntax.Node {
	node := m.newNode(syntax.ConstructRawHTML)
	from, to := -1, -1
	for i, n := 0, gmRaw.Segments.Len(); i < n; i++ {
		segment := gmRaw.Segments.At(i)
		if from < 0 || segment.Start < from {
			from = segment.Start
		}
		if segment.Stop > to {
			to = segment.Stop
		}
	}
	if from >= 0 {
		node.From = from
		node.To = to
	}
	return node
}

func (m *mapper) mapTable(gmTable *east.Table) *syntax.Node {
	node := m.newNode(syntax.ConstructTable)
	from, to := m.gmSubtreeTextSpan(gmTable)
	if from < 0 {
		return node
	}
	node.From, node.To = extendToLines(m.content, from, to)

	// A header-only table ends before its alignment row; absorb it.
	if next, ok := nextLineStart(m.content, node.To); ok {
		lineEnd := lineContentEndAt(m.content, next)
		if isAlignmentRow(m.content[next:lineEnd]) {
			node.To = lineEnd
		}
	}
	return node
}

// gmSubtreeTextSpan unions every text segment under a goldmark node.
// Table nodes carry no line information, so their extent is recovered
// from cell contents.
func (m *mapper) gmSubtreeTextSpan(gmNode ast.Node) (int, int) {
	from, to := -1, -1
	var visit func(n ast.Node)
	visit = func(n ast.Node) {
		if textNode, ok := n.(*ast.Text); ok {
			segment := textNode.Segment
			if from < 0 || segment.Start < from {
				from = segment.Start
			}
			if segment.Stop > to {
				to = segment.Stop
			}
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			visit(child)
		}
	}
	visit(gmNode)
	return from, to
}

func (m *mapper) mapInlineMath(gmMath *inlineMathNode) *syntax.Node {
	node := m.newNode(syntax.ConstructInlineMath)
	node.From = gmMath.Segment.Start - 1
	node.To = gmMath.Segment.Stop + 1
	node.Inline = syntax.NewInlineAttrs().WithMarkerLen(1)
	return node
}

// resolveRules assigns spans to thematic breaks. Goldmark exposes no
// position for them, so each is located by scanning the gap between its
// resolved neighbors for a rule line. Siblings resolve in document
// order, which keeps the windows disjoint for consecutive rules.
func (m *mapper) resolveRules(node *syntax.Node) {
	for child := node.FirstChild; child != nil; child = child.Next {
		if child.Construct == syntax.ConstructThematicBreak && child.From < 0 {
			m.resolveRule(node, child)
		}
		m.resolveRules(child)
	}
}

func (m *mapper) resolveRule(parent, node *syntax.Node) {
	windowFrom := 0
	if parent.From >= 0 {
		windowFrom = parent.From
	}
	if node.Prev != nil && node.Prev.To >= 0 {
		windowFrom = node.Prev.To
	}
	windowTo := len(m.content)
	if parent.To >= 0 && parent.To <= len(m.content) {
		windowTo = parent.To
	}
	if node.Next != nil && node.Next.From >= 0 {
		windowTo = node.Next.From
	}

	pos := windowFrom
	if pos != lineStartAt(m.content, pos) {
		next, ok := nextLineStart(m.content, pos)
		if !ok {
			return
		}
		pos = next
	}
	for pos < windowTo {
		lineEnd := lineContentEndAt(m.content, pos)
		line := m.content[pos:lineEnd]
		if isRuleLine(line) {
			node.From = pos
			node.To = lineEnd
			return
		}
		if !isBlankLine(line) {
			return
		}
		next, ok := nextLineStart(m.content, lineEnd)
		if !ok {
			return
		}
		pos = next
	}
}

// dropUnresolved removes nodes whose span could not be recovered.
// Containers computed from since-dropped children keep their spans.
func (m *mapper) dropUnresolved(node *syntax.Node) {
	for child := node.FirstChild; child != nil; {
		next := child.Next
		m.dropUnresolved(child)
		if child.From < 0 || child.To < child.From || child.To > len(m.content) {
			syntax.RemoveChild(node, child)
		}
		child = next
	}
}
