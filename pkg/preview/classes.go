package preview

import "strconv"

// Style classes carried by mark and line decorations. The host theme maps
// them to visual styles; the engine only names them.
const (
	// classSyntax dims raw marker characters left visible near the cursor.
	classSyntax = "md-syntax"

	classEm         = "md-em"
	classStrong     = "md-strong"
	classStrike     = "md-strike"
	classCodeInline = "md-code-inline"
	classLink       = "md-link"
	classURL        = "md-url"

	classBlockquote  = "md-blockquote"
	classTable       = "md-table"
	classFrontmatter = "md-frontmatter"

	// classCodeBlock styles each line of a revealed code block. The
	// first/last/only variants are appended for corner rounding.
	classCodeBlock      = "md-code-block"
	classCodeBlockFirst = "md-code-block-first"
	classCodeBlockLast  = "md-code-block-last"
	classCodeBlockOnly  = "md-code-block-only"
)

// headingClass returns md-h1 through md-h6.
func headingClass(level int) string {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return "md-h" + strconv.Itoa(level)
}

// blockLineClass picks the per-line code block class, appending the
// rounding variant for edge lines.
func blockLineClass(num, first, last int) string {
	switch {
	case first == last:
		return classCodeBlock + " " + classCodeBlockOnly
	case num == first:
		return classCodeBlock + " " + classCodeBlockFirst
	case num == last:
		return classCodeBlock + " " + classCodeBlockLast
	default:
		return classCodeBlock
	}
}
