package syntax

// Span is a [From, To) byte range inside a node, used for sub-structure
// positions such as a link's label and destination.
type Span struct {
	From int
	To   int
}

// Valid returns true when the span is non-inverted and non-negative.
func (s Span) Valid() bool {
	return s.From >= 0 && s.From <= s.To
}

// BlockAttrs holds attributes for block-level nodes.
type BlockAttrs struct {
	// HeadingLevel is the heading level (1-6) for ConstructHeading.
	HeadingLevel int

	// Setext is true for setext headings (underlined with = or -),
	// which carry no leading marker run.
	Setext bool

	// Fence holds fence attributes for ConstructFencedCode.
	Fence *FenceAttrs

	// List holds list attributes for ConstructList.
	List *ListAttrs
}

// FenceAttrs holds attributes for fenced code blocks.
type FenceAttrs struct {
	// Char is the fence character ('`' or '~').
	Char byte

	// Length is the number of fence characters in the opening fence.
	Length int

	// Info is the raw info string following the opening fence.
	Info string

	// Language is the first word of the info string.
	Language string

	// Closed is true when a closing fence line exists. Unclosed blocks run
	// to the end of their span.
	Closed bool
}

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// Marker is the bullet character ('-', '+', '*') or the ordered-list
	// delimiter ('.' or ')').
	Marker byte

	// Start is the starting number for ordered lists.
	Start int
}

// InlineAttrs holds attributes for inline-level nodes.
type InlineAttrs struct {
	// EmphasisLevel indicates emphasis strength (1 for emphasis, 2 for strong).
	EmphasisLevel int

	// MarkerLen is the delimiter run length on each side of the construct
	// (1 for *a*, 2 for **a** and ~~a~~, the backtick count for code spans,
	// 1 for $math$).
	MarkerLen int

	// Label is the span of a link's label text, excluding brackets.
	Label Span

	// Dest is the span of a link's destination text, excluding parens.
	Dest Span

	// Destination is the link URL as written.
	Destination string
}

// NewBlockAttrs creates a new BlockAttrs with default values.
func NewBlockAttrs() *BlockAttrs {
	return &BlockAttrs{}
}

// NewInlineAttrs creates a new InlineAttrs with default values.
func NewInlineAttrs() *InlineAttrs {
	return &InlineAttrs{}
}

// WithHeadingLevel sets the heading level and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithHeadingLevel(level int) *BlockAttrs {
	a.HeadingLevel = level
	return a
}

// WithSetext marks the heading as setext and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithSetext() *BlockAttrs {
	a.Setext = true
	return a
}

// WithFence sets fence attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithFence(attrs *FenceAttrs) *BlockAttrs {
	a.Fence = attrs
	return a
}

// WithList sets list attributes and returns the BlockAttrs for chaining.
func (a *BlockAttrs) WithList(attrs *ListAttrs) *BlockAttrs {
	a.List = attrs
	return a
}

// WithEmphasisLevel sets the emphasis level and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithEmphasisLevel(level int) *InlineAttrs {
	a.EmphasisLevel = level
	return a
}

// WithMarkerLen sets the delimiter run length and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithMarkerLen(length int) *InlineAttrs {
	a.MarkerLen = length
	return a
}

// WithLink sets link label/destination spans and returns the InlineAttrs for chaining.
func (a *InlineAttrs) WithLink(label, dest Span, destination string) *InlineAttrs {
	a.Label = label
	a.Dest = dest
	a.Destination = destination
	return a
}
