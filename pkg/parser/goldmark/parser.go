// Package goldmark builds syntax trees using the goldmark library.
//
// Goldmark reports content segments rather than full construct extents,
// so the mapper in this package re-derives delimiter-inclusive spans by
// scanning the raw source. The resulting tree is position-complete: every
// node covers its construct from first marker byte to last.
package goldmark

import (
	"context"
	"fmt"

	"github.com/typednotes/livemd/pkg/syntax"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Option configures a Parser.
type Option func(*options)

type options struct {
	math bool
}

// WithMath toggles the inline $...$ math extension. Enabled by default.
func WithMath(enabled bool) Option {
	return func(o *options) {
		o.math = enabled
	}
}

// Parser converts Markdown source into syntax trees. It is safe for
// concurrent use.
type Parser struct {
	md goldmark.Markdown
}

// New creates a parser with GFM extensions (tables, strikethrough,
// autolinks) and the inline math parser.
func New(opts ...Option) *Parser {
	cfg := options{math: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{md: newGoldmarkInstance(cfg)}
}

// Parse converts raw Markdown bytes into a syntax tree. The tree indexes
// into content by byte offset; content is copied so later mutation by the
// caller cannot skew spans mid-parse.
func (p *Parser) Parse(ctx context.Context, content []byte) (*syntax.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	source := copyContent(content)
	reader := text.NewReader(source)
	gmDoc := p.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	mapper := newMapper(source)
	return &syntax.Tree{Root: mapper.mapDocument(gmDoc)}, nil
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance(cfg options) goldmark.Markdown {
	opts := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
	}
	if cfg.math {
		opts = append(opts, goldmark.WithParserOptions(
			// After code spans (100), before links (200): backticks win
			// over dollars, dollars win over emphasis.
			parser.WithInlineParsers(util.Prioritized(newInlineMathParser(), 150)),
		))
	}
	return goldmark.New(opts...)
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
