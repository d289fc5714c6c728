// Package ui renders decoration sets for terminal display: Lipgloss
// style themes keyed by decoration class, an ANSI document renderer,
// and a table formatter for decoration listings.
package ui

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for preview output.
type Styles struct {
	// Inline mark styles
	Syntax     lipgloss.Style
	Em         lipgloss.Style
	Strong     lipgloss.Style
	Strike     lipgloss.Style
	CodeInline lipgloss.Style
	Link       lipgloss.Style
	URL        lipgloss.Style

	// Heading line styles
	H1 lipgloss.Style
	H2 lipgloss.Style
	H3 lipgloss.Style
	H4 lipgloss.Style
	H5 lipgloss.Style
	H6 lipgloss.Style

	// Block styles
	Blockquote  lipgloss.Style
	Table       lipgloss.Style
	Frontmatter lipgloss.Style
	CodeBlock   lipgloss.Style

	// Widget chrome
	Badge       lipgloss.Style
	Divider     lipgloss.Style
	MathInline  lipgloss.Style
	MathDisplay lipgloss.Style

	// Code token styles
	TokKeyword     lipgloss.Style
	TokString      lipgloss.Style
	TokNumber      lipgloss.Style
	TokComment     lipgloss.Style
	TokFunction    lipgloss.Style
	TokType        lipgloss.Style
	TokBuiltin     lipgloss.Style
	TokOperator    lipgloss.Style
	TokPunctuation lipgloss.Style
	TokConstant    lipgloss.Style
	TokLiteral     lipgloss.Style
	TokTag         lipgloss.Style
	TokAttribute   lipgloss.Style
	TokDecorator   lipgloss.Style
	TokError       lipgloss.Style

	// Grid and listing chrome
	GridHeader     lipgloss.Style
	GridSeparator  lipgloss.Style
	ListHeader     lipgloss.Style
	ListSeparator  lipgloss.Style
	ListMarkRow    lipgloss.Style
	ListReplaceRow lipgloss.Style
	ListLineRow    lipgloss.Style
	ListSummary    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style

	classes map[string]lipgloss.Style
}

// NewStyles creates a Styles set for the theme and color mode. Unknown
// themes fall back to dark; color disabled overrides the theme entirely.
func NewStyles(theme string, colorEnabled bool) *Styles {
	var s *Styles
	switch {
	case !colorEnabled:
		s = newNoColorStyles()
	case theme == "light":
		s = newLightStyles()
	default:
		s = newDarkStyles()
	}
	s.classes = s.classIndex()
	return s
}

// ForClass resolves a decoration class to its style. Multi-class strings
// resolve to the first recognized class; unknown classes render plain.
func (s *Styles) ForClass(class string) lipgloss.Style {
	for _, name := range strings.Fields(class) {
		if style, ok := s.classes[name]; ok {
			return style
		}
	}
	return lipgloss.NewStyle()
}

// classIndex maps the decoration class vocabulary onto style fields.
func (s *Styles) classIndex() map[string]lipgloss.Style {
	return map[string]lipgloss.Style{
		"md-syntax":      s.Syntax,
		"md-em":          s.Em,
		"md-strong":      s.Strong,
		"md-strike":      s.Strike,
		"md-code-inline": s.CodeInline,
		"md-link":        s.Link,
		"md-url":         s.URL,

		"md-h1": s.H1,
		"md-h2": s.H2,
		"md-h3": s.H3,
		"md-h4": s.H4,
		"md-h5": s.H5,
		"md-h6": s.H6,

		"md-blockquote":  s.Blockquote,
		"md-table":       s.Table,
		"md-frontmatter": s.Frontmatter,
		"md-code-block":  s.CodeBlock,

		"tok-keyword":     s.TokKeyword,
		"tok-string":      s.TokString,
		"tok-number":      s.TokNumber,
		"tok-comment":     s.TokComment,
		"tok-function":    s.TokFunction,
		"tok-type":        s.TokType,
		"tok-builtin":     s.TokBuiltin,
		"tok-operator":    s.TokOperator,
		"tok-punctuation": s.TokPunctuation,
		"tok-constant":    s.TokConstant,
		"tok-literal":     s.TokLiteral,
		"tok-tag":         s.TokTag,
		"tok-attribute":   s.TokAttribute,
		"tok-decorator":   s.TokDecorator,
		"tok-error":       s.TokError,
	}
}

// newDarkStyles creates the dark theme with bright ANSI colors.
func newDarkStyles() *Styles {
	return &Styles{
		// Inline marks
		Syntax:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Em:         lipgloss.NewStyle().Italic(true),
		Strong:     lipgloss.NewStyle().Bold(true),
		Strike:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		CodeInline: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Underline(true),
		URL:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Underline(true),

		// Headings step through distinct hues so levels read at a glance
		H1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		H2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
		H3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		H4: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		H5: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		H6: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),

		// Blocks
		Blockquote:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Italic(true),
		Table:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Frontmatter: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		// Widget chrome
		Badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("11")),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		MathInline:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Italic(true),
		MathDisplay: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		// Code tokens
		TokKeyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		TokString:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		TokNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TokComment:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TokFunction:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TokType:        lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TokBuiltin:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		TokOperator:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		TokPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokConstant:    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TokLiteral:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TokTag:         lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		TokAttribute:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		TokDecorator:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		TokError:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Grid and listing chrome
		GridHeader:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		GridSeparator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ListHeader:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		ListSeparator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ListMarkRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		ListReplaceRow: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		ListLineRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		ListSummary:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newLightStyles creates the light theme with the darker ANSI palette.
func newLightStyles() *Styles {
	return &Styles{
		Syntax:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Em:         lipgloss.NewStyle().Italic(true),
		Strong:     lipgloss.NewStyle().Bold(true),
		Strike:     lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		CodeInline: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		Link:       lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Underline(true),
		URL:        lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Underline(true),

		H1: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4")),
		H2: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		H3: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		H4: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3")),
		H5: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")),
		H6: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8")),

		Blockquote:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Italic(true),
		Table:       lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Frontmatter: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		CodeBlock:   lipgloss.NewStyle().Foreground(lipgloss.Color("0")),

		Badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("3")),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		MathInline:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Italic(true),
		MathDisplay: lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),

		TokKeyword:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		TokString:      lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		TokNumber:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		TokComment:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
		TokFunction:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		TokType:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		TokBuiltin:     lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		TokOperator:    lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		TokPunctuation: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TokConstant:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		TokLiteral:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		TokTag:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		TokAttribute:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		TokDecorator:   lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		TokError:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),

		GridHeader:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		GridSeparator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ListHeader:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")),
		ListSeparator:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		ListMarkRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		ListReplaceRow: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		ListLineRow:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		ListSummary:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Syntax:         plain,
		Em:             plain,
		Strong:         plain,
		Strike:         plain,
		CodeInline:     plain,
		Link:           plain,
		URL:            plain,
		H1:             plain,
		H2:             plain,
		H3:             plain,
		H4:             plain,
		H5:             plain,
		H6:             plain,
		Blockquote:     plain,
		Table:          plain,
		Frontmatter:    plain,
		CodeBlock:      plain,
		Badge:          plain,
		Divider:        plain,
		MathInline:     plain,
		MathDisplay:    plain,
		TokKeyword:     plain,
		TokString:      plain,
		TokNumber:      plain,
		TokComment:     plain,
		TokFunction:    plain,
		TokType:        plain,
		TokBuiltin:     plain,
		TokOperator:    plain,
		TokPunctuation: plain,
		TokConstant:    plain,
		TokLiteral:     plain,
		TokTag:         plain,
		TokAttribute:   plain,
		TokDecorator:   plain,
		TokError:       plain,
		GridHeader:     plain,
		GridSeparator:  plain,
		ListHeader:     plain,
		ListSeparator:  plain,
		ListMarkRow:    plain,
		ListReplaceRow: plain,
		ListLineRow:    plain,
		ListSummary:    plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
