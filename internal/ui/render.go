package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview"
	"github.com/typednotes/livemd/pkg/preview/widget"
)

// Rendering defaults.
const (
	defaultWidth    = 80
	defaultTabWidth = 4
)

// Renderer draws a document with its decoration set applied: replaced
// ranges are omitted and their widgets drawn in place, marked ranges are
// styled, and line classes style whole lines. The document text itself
// is never altered.
type Renderer struct {
	styles   *Styles
	widgets  *widget.Renderer
	width    int
	tabWidth int
}

// Options configure a Renderer. Zero values select the defaults.
type Options struct {
	// Width bounds widget layouts such as grids and dividers.
	Width int

	// TabWidth is the number of spaces a tab expands to.
	TabWidth int
}

// NewRenderer creates a renderer. A nil styles set renders without
// color; a nil widget renderer falls back to one without highlight or
// typeset capabilities.
func NewRenderer(styles *Styles, widgets *widget.Renderer, opts Options) *Renderer {
	if styles == nil {
		styles = NewStyles("", false)
	}
	if widgets == nil {
		widgets = widget.NewRenderer()
	}

	width := opts.Width
	if width <= 0 {
		width = defaultWidth
	}
	tabWidth := opts.TabWidth
	if tabWidth <= 0 {
		tabWidth = defaultTabWidth
	}

	return &Renderer{
		styles:   styles,
		widgets:  widgets,
		width:    width,
		tabWidth: tabWidth,
	}
}

// hiddenRange is a merged run of replacement spans. Only the first
// widget of a merged run is drawn.
type hiddenRange struct {
	from, to int
	w        widget.Widget
}

// Render produces the ANSI rendition of doc under the given decorations.
// A nil collection renders the plain text.
func (r *Renderer) Render(doc *document.Document, col *preview.Collection) string {
	if doc == nil {
		return ""
	}

	var marks []preview.Decoration
	var hidden []hiddenRange
	lineClasses := make(map[int]string)

	if col != nil {
		for _, d := range col.Decorations() {
			switch d.Kind {
			case preview.KindLine:
				num := doc.LineAt(d.From).Number
				if _, ok := lineClasses[num]; !ok {
					lineClasses[num] = d.Class
				}
			case preview.KindMark:
				marks = append(marks, d)
			case preview.KindReplace:
				if n := len(hidden); n > 0 && d.From < hidden[n-1].to {
					if d.To > hidden[n-1].to {
						hidden[n-1].to = d.To
					}
					continue
				}
				hidden = append(hidden, hiddenRange{from: d.From, to: d.To, w: d.Widget})
			}
		}
	}

	var b strings.Builder
	pos := 0
	for _, h := range hidden {
		if h.from > pos {
			r.writeMarked(&b, doc, marks, lineClasses, pos, h.from)
		}
		if h.w != nil {
			b.WriteString(r.renderView(r.widgets.Render(h.w)))
		}
		if h.to > pos {
			pos = h.to
		}
	}
	if pos < doc.Len() {
		r.writeMarked(&b, doc, marks, lineClasses, pos, doc.Len())
	}

	return b.String()
}

// writeMarked emits doc[from:to) with mark and line styling applied.
// The run is split at mark edges and line boundaries so no styled
// segment crosses a line.
func (r *Renderer) writeMarked(b *strings.Builder, doc *document.Document, marks []preview.Decoration, lineClasses map[int]string, from, to int) {
	if from >= to {
		return
	}

	bounds := map[int]struct{}{from: {}, to: {}}
	for _, m := range marks {
		if m.To <= from || m.From >= to {
			continue
		}
		if m.From > from {
			bounds[m.From] = struct{}{}
		}
		if m.To < to {
			bounds[m.To] = struct{}{}
		}
	}

	first := doc.LineAt(from).Number
	last := doc.LineAt(to - 1).Number
	for n := first; n <= last; n++ {
		line := doc.Line(n)
		if line.From > from && line.From < to {
			bounds[line.From] = struct{}{}
		}
		if line.To > from && line.To < to {
			bounds[line.To] = struct{}{}
		}
	}

	cuts := make([]int, 0, len(bounds))
	for off := range bounds {
		cuts = append(cuts, off)
	}
	sort.Ints(cuts)

	for i := 0; i+1 < len(cuts); i++ {
		r.writeSegment(b, doc, marks, lineClasses, cuts[i], cuts[i+1])
	}
}

// writeSegment emits one run lying on a single line and crossing no mark
// edge. Line terminators pass through unstyled.
func (r *Renderer) writeSegment(b *strings.Builder, doc *document.Document, marks []preview.Decoration, lineClasses map[int]string, from, to int) {
	text := doc.Slice(from, to)
	if text == "" {
		return
	}

	line := doc.LineAt(from)
	if from >= line.To {
		b.WriteString(text)
		return
	}

	if strings.ContainsRune(text, '\t') {
		text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", r.tabWidth))
	}

	style := lipgloss.NewStyle()
	if class, ok := lineClasses[line.Number]; ok {
		style = r.styles.ForClass(class)
	}
	// Marks arrive in collection order; later matches take precedence
	// for properties they set, inheriting the rest.
	for _, m := range marks {
		if m.From <= from && to <= m.To {
			style = r.styles.ForClass(m.Class).Inherit(style)
		}
	}

	b.WriteString(style.Render(text))
}
