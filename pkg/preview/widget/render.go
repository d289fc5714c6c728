package widget

import (
	"fmt"
	"hash/fnv"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/typednotes/livemd/pkg/highlight"
	"github.com/typednotes/livemd/pkg/langdetect"
)

// Highlighter colors code for CodeView spans.
type Highlighter interface {
	Highlight(source, language string) ([]highlight.Span, error)
}

// Typesetter converts TeX expressions into display markup.
type Typesetter interface {
	Typeset(expr string, display bool) (string, error)
}

// maxMemoEntries bounds the render memo; past it a quarter of the
// entries are evicted.
const maxMemoEntries = 256

// Renderer turns widgets into views. Capabilities are optional: without
// a highlighter code renders unstyled, without a typesetter math renders
// literal. Renders are memoized, so repeated widgets cost one render.
// Safe for concurrent use.
type Renderer struct {
	highlighter Highlighter
	typesetter  Typesetter

	mu   sync.Mutex
	memo map[uint64]View
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithHighlighter installs the code highlighting capability.
func WithHighlighter(h Highlighter) RendererOption {
	return func(r *Renderer) { r.highlighter = h }
}

// WithTypesetter installs the math typesetting capability.
func WithTypesetter(t Typesetter) RendererOption {
	return func(r *Renderer) { r.typesetter = t }
}

// NewRenderer creates a renderer with the given capabilities.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{memo: make(map[uint64]View)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render produces the view for a widget. Every widget renders to
// something: missing capabilities and malformed sources degrade to
// literal or plain views, never to errors.
func (r *Renderer) Render(w Widget) View {
	key := memoKey(w)

	r.mu.Lock()
	if view, ok := r.memo[key]; ok {
		r.mu.Unlock()
		return view
	}
	r.mu.Unlock()

	view := r.render(w)

	r.mu.Lock()
	if len(r.memo) >= maxMemoEntries {
		evictQuarter(r.memo)
	}
	r.memo[key] = view
	r.mu.Unlock()
	return view
}

func (r *Renderer) render(w Widget) View {
	switch w := w.(type) {
	case Code:
		return r.renderCode(w)
	case Math:
		return r.renderMath(w)
	case Table:
		return r.renderTable(w)
	case Frontmatter:
		return r.renderFrontmatter(w)
	case Rule:
		return RuleView{}
	default:
		return PlainView{Text: w.String()}
	}
}

func (r *Renderer) renderCode(w Code) View {
	language := langdetect.Normalize(w.Language)
	if language == "" && w.Block {
		language = langdetect.Detect([]byte(w.Source))
	}
	view := CodeView{Language: language, Source: w.Source, Block: w.Block}

	// Inline chips render in a uniform code style; only blocks get
	// token colors.
	if w.Block && r.highlighter != nil {
		if spans, err := r.highlighter.Highlight(w.Source, language); err == nil {
			view.Spans = spans
		}
	}
	return view
}

func (r *Renderer) renderMath(w Math) View {
	if r.typesetter != nil {
		if markup, err := r.typesetter.Typeset(w.Expr, w.Display); err == nil {
			return MathView{Expr: w.Expr, Markup: markup, Display: w.Display}
		}
	}
	return MathView{Expr: w.Expr, Display: w.Display, Literal: true}
}

func (r *Renderer) renderTable(w Table) View {
	if view, ok := parseTable(w.Source); ok {
		return view
	}
	return PlainView{Text: w.Source}
}

func (r *Renderer) renderFrontmatter(w Frontmatter) View {
	badge := BadgeView{Label: "frontmatter"}

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(w.Source), &fields); err != nil || len(fields) == 0 {
		return badge
	}
	if title, ok := fields["title"].(string); ok && title != "" {
		badge.Detail = title
		return badge
	}
	if len(fields) == 1 {
		badge.Detail = "1 field"
	} else {
		badge.Detail = fmt.Sprintf("%d fields", len(fields))
	}
	return badge
}

// memoKey hashes a widget's full identity, including sources, so memo
// hits imply identical views.
func memoKey(w Widget) uint64 {
	h := fnv.New64a()
	switch w := w.(type) {
	case Code:
		h.Write([]byte{1, boolByte(w.Block)})
		io.WriteString(h, w.Language)
		h.Write([]byte{0})
		io.WriteString(h, w.Source)
	case Math:
		h.Write([]byte{2, boolByte(w.Display)})
		io.WriteString(h, w.Expr)
	case Table:
		h.Write([]byte{3})
		io.WriteString(h, w.Source)
	case Frontmatter:
		h.Write([]byte{4})
		io.WriteString(h, w.Source)
	case Rule:
		h.Write([]byte{5})
	default:
		io.WriteString(h, w.String())
	}
	return h.Sum64()
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// evictQuarter removes an arbitrary quarter of the memo. Map iteration
// order varies between runs, which is fine for a cache.
func evictQuarter(memo map[uint64]View) {
	drop := len(memo) / 4
	if drop == 0 {
		drop = 1
	}
	for key := range memo {
		delete(memo, key)
		drop--
		if drop == 0 {
			break
		}
	}
}
