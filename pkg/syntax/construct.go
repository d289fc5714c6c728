// Package syntax provides the markdown parse tree the preview engine
// consumes. It defines:
// - Construct: the fixed vocabulary of markdown constructs
// - Node: a tree node with a byte-offset span and typed attributes
// - Tree: one parse result, compared by identity across reparses
package syntax

// Construct classifies a node by markdown construct.
type Construct uint16

// Constructs for block-level and inline-level markdown elements.
const (
	ConstructDocument Construct = iota

	// Block-level constructs.
	ConstructParagraph
	ConstructHeading
	ConstructList
	ConstructListItem
	ConstructBlockquote
	ConstructFencedCode
	ConstructIndentedCode
	ConstructThematicBreak
	ConstructHTMLBlock
	ConstructTable

	// Inline-level constructs.
	ConstructText
	ConstructEmphasis
	ConstructStrong
	ConstructStrikethrough
	ConstructInlineCode
	ConstructLink
	ConstructImage
	ConstructAutoLink
	ConstructInlineMath
	ConstructRawHTML
)

// String returns the construct name.
func (c Construct) String() string {
	switch c {
	case ConstructDocument:
		return "Document"
	case ConstructParagraph:
		return "Paragraph"
	case ConstructHeading:
		return "Heading"
	case ConstructList:
		return "List"
	case ConstructListItem:
		return "ListItem"
	case ConstructBlockquote:
		return "Blockquote"
	case ConstructFencedCode:
		return "FencedCode"
	case ConstructIndentedCode:
		return "IndentedCode"
	case ConstructThematicBreak:
		return "ThematicBreak"
	case ConstructHTMLBlock:
		return "HTMLBlock"
	case ConstructTable:
		return "Table"
	case ConstructText:
		return "Text"
	case ConstructEmphasis:
		return "Emphasis"
	case ConstructStrong:
		return "Strong"
	case ConstructStrikethrough:
		return "Strikethrough"
	case ConstructInlineCode:
		return "InlineCode"
	case ConstructLink:
		return "Link"
	case ConstructImage:
		return "Image"
	case ConstructAutoLink:
		return "AutoLink"
	case ConstructInlineMath:
		return "InlineMath"
	case ConstructRawHTML:
		return "RawHTML"
	default:
		return "Unknown"
	}
}

// IsBlock returns true if this is a block-level construct.
func (c Construct) IsBlock() bool {
	switch c {
	case ConstructDocument, ConstructParagraph, ConstructHeading, ConstructList,
		ConstructListItem, ConstructBlockquote, ConstructFencedCode,
		ConstructIndentedCode, ConstructThematicBreak, ConstructHTMLBlock,
		ConstructTable:
		return true
	default:
		return false
	}
}

// IsInline returns true if this is an inline-level construct.
func (c Construct) IsInline() bool {
	switch c {
	case ConstructText, ConstructEmphasis, ConstructStrong, ConstructStrikethrough,
		ConstructInlineCode, ConstructLink, ConstructImage, ConstructAutoLink,
		ConstructInlineMath, ConstructRawHTML:
		return true
	default:
		return false
	}
}
