package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/typednotes/livemd/pkg/preview/widget"
)

const dividerChar = "─"

// renderView draws a widget view as styled text. Block views span
// multiple lines; none carry a trailing newline, so the surrounding
// document text supplies separation.
func (r *Renderer) renderView(v widget.View) string {
	switch v := v.(type) {
	case widget.CodeView:
		if v.Block {
			return r.renderCodeBlock(v)
		}
		return r.styles.CodeInline.Render(v.Source)
	case widget.MathView:
		return r.renderMath(v)
	case widget.TableView:
		return r.renderGrid(v)
	case widget.BadgeView:
		return r.renderBadge(v)
	case widget.RuleView:
		return r.styles.Divider.Render(strings.Repeat(dividerChar, r.width))
	case widget.PlainView:
		return v.Text
	default:
		return ""
	}
}

// renderCodeBlock draws highlighted source, or the plain body in code
// style when no spans are available.
func (r *Renderer) renderCodeBlock(v widget.CodeView) string {
	if len(v.Spans) == 0 {
		var b strings.Builder
		writeStyledLines(&b, strings.TrimRight(v.Source, "\n"), r.styles.CodeBlock)
		return b.String()
	}

	var b strings.Builder
	for _, span := range v.Spans {
		if span.From < 0 || span.To > len(v.Source) || span.From >= span.To {
			continue
		}
		writeStyledLines(&b, v.Source[span.From:span.To], r.styles.ForClass(span.Class))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (r *Renderer) renderMath(v widget.MathView) string {
	markup := v.Markup
	if v.Literal {
		markup = v.Expr
	}
	if v.Display {
		return r.styles.MathDisplay.Render(markup)
	}
	return r.styles.MathInline.Render(markup)
}

func (r *Renderer) renderBadge(v widget.BadgeView) string {
	label := v.Label
	if v.Detail != "" {
		label += ": " + v.Detail
	}
	return r.styles.Badge.Render(" " + label + " ")
}

// writeStyledLines styles text line by line, passing newlines through
// unstyled so escape sequences never span lines.
func writeStyledLines(b *strings.Builder, text string, style lipgloss.Style) {
	for {
		idx := strings.IndexByte(text, '\n')
		if idx < 0 {
			break
		}
		if idx > 0 {
			b.WriteString(style.Render(text[:idx]))
		}
		b.WriteByte('\n')
		text = text[idx+1:]
	}
	if text != "" {
		b.WriteString(style.Render(text))
	}
}
