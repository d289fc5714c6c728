package widget

import "github.com/typednotes/livemd/pkg/highlight"

// Alignment is a table column alignment from the delimiter row. Columns
// without an explicit alignment are left-aligned.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// View is the displayable form of a widget. Hosts switch on the concrete
// type to draw it.
type View interface {
	isView()
}

// CodeView is highlighted code. Spans is empty when no highlighter is
// available; the source still displays in code style.
type CodeView struct {
	Language string
	Source   string
	Block    bool
	Spans    []highlight.Span
}

// MathView is a typeset expression. When Literal is set no typesetter
// was available and Expr should display verbatim.
type MathView struct {
	Expr    string
	Markup  string
	Display bool
	Literal bool
}

// TableView is a parsed grid. Rows are padded or truncated to the header
// width.
type TableView struct {
	Header []string
	Align  []Alignment
	Rows   [][]string
}

// BadgeView is a compact labelled chip, used for frontmatter blocks.
type BadgeView struct {
	Label  string
	Detail string
}

// RuleView is a horizontal divider.
type RuleView struct{}

// PlainView is the fallback: unstyled text shown as-is.
type PlainView struct {
	Text string
}

func (CodeView) isView()  {}
func (MathView) isView()  {}
func (TableView) isView() {}
func (BadgeView) isView() {}
func (RuleView) isView()  {}
func (PlainView) isView() {}
