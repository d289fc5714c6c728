// Package widget models the rendered stand-ins that replace raw Markdown
// syntax when the cursor is elsewhere.
//
// Widgets are plain values describing what to draw; they carry no drawing
// logic. Equality (Eq) is what decoration diffing keys on: two widgets
// that are Eq produce the same pixels, so a host can keep the old one.
// Rendering widgets into displayable views is the Renderer's job.
package widget

import (
	"fmt"
	"strings"
)

// Widget is a rendered stand-in for a span of raw syntax.
type Widget interface {
	fmt.Stringer

	// Eq reports whether other would render identically.
	Eq(other Widget) bool
}

// Code is a syntax-highlighted code block or inline chip.
type Code struct {
	// Language is the fence info tag, possibly empty.
	Language string
	// Source is the code body with fence lines stripped.
	Source string
	// Block selects block layout; false renders an inline chip.
	Block bool
}

func (w Code) Eq(other Widget) bool {
	o, ok := other.(Code)
	return ok && o == w
}

func (w Code) String() string {
	kind := "inline"
	if w.Block {
		kind = "block"
	}
	return fmt.Sprintf("code(%s, %s, %dB)", kind, w.Language, len(w.Source))
}

// Math is a typeset mathematical expression.
type Math struct {
	// Expr is the TeX source between the dollar delimiters.
	Expr string
	// Display selects display layout; false renders inline.
	Display bool
}

func (w Math) Eq(other Widget) bool {
	o, ok := other.(Math)
	return ok && o == w
}

func (w Math) String() string {
	kind := "inline"
	if w.Display {
		kind = "display"
	}
	return fmt.Sprintf("math(%s, %dB)", kind, len(w.Expr))
}

// Table is a rendered grid for a pipe table.
type Table struct {
	// Source is the raw table text, all rows included.
	Source string
}

func (w Table) Eq(other Widget) bool {
	o, ok := other.(Table)
	return ok && o == w
}

func (w Table) String() string {
	rows := strings.Count(w.Source, "\n") + 1
	return fmt.Sprintf("table(%d rows)", rows)
}

// Frontmatter is a badge summarizing a metadata block.
type Frontmatter struct {
	// Source is the YAML body between the --- fences.
	Source string
}

func (w Frontmatter) Eq(other Widget) bool {
	o, ok := other.(Frontmatter)
	return ok && o == w
}

func (w Frontmatter) String() string {
	return fmt.Sprintf("frontmatter(%dB)", len(w.Source))
}

// Rule is a horizontal divider replacing a thematic break.
type Rule struct{}

func (w Rule) Eq(other Widget) bool {
	_, ok := other.(Rule)
	return ok
}

func (w Rule) String() string {
	return "rule"
}
