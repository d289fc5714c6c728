// Package highlight colors code snippets for widget display.
//
// It wraps chroma tokenization into flat byte spans so callers can style
// source text without depending on chroma types. Spans always cover the
// source exactly; a lexer that rewrites its input is reported as an error
// so callers can fall back to plain text.
package highlight

import (
	"fmt"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Span labels source[From:To) with a token class. Spans are contiguous
// and in order: each begins where the previous one ended.
type Span struct {
	From  int
	To    int
	Class string
}

// Chroma highlights code using the chroma lexer registry. Lexers are
// cached per language; the zero value is not usable, call NewChroma.
type Chroma struct {
	mu    sync.Mutex
	cache map[string]chroma.Lexer
}

// NewChroma creates a highlighter with an empty lexer cache.
func NewChroma() *Chroma {
	return &Chroma{cache: make(map[string]chroma.Lexer)}
}

// Highlight tokenizes source as language and returns class-labelled
// spans covering it exactly. Unknown languages tokenize as plain text,
// which yields unclassified spans rather than an error.
func (c *Chroma) Highlight(source, language string) ([]Span, error) {
	iterator, err := c.lexerFor(language).Tokenise(nil, source)
	if err != nil {
		return nil, fmt.Errorf("tokenise as %s: %w", language, err)
	}

	spans := make([]Span, 0, 32)
	offset := 0
	for token := iterator(); token != chroma.EOF; token = iterator() {
		if token.Value == "" {
			continue
		}
		next := offset + len(token.Value)
		class := classFor(token.Type)
		if n := len(spans); n > 0 && spans[n-1].Class == class {
			spans[n-1].To = next
		} else {
			spans = append(spans, Span{From: offset, To: next, Class: class})
		}
		offset = next
	}

	// Lexers with EnsureNL append a newline to unterminated input.
	if offset == len(source)+1 && len(spans) > 0 {
		last := &spans[len(spans)-1]
		last.To--
		offset--
		if last.To <= last.From {
			spans = spans[:len(spans)-1]
		}
	}
	if offset != len(source) {
		return nil, fmt.Errorf("lexer for %s drifted: covered %d of %d bytes", language, offset, len(source))
	}
	return spans, nil
}

// lexerFor resolves and caches a coalesced lexer for a language tag.
func (c *Chroma) lexerFor(language string) chroma.Lexer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if lexer, ok := c.cache[language]; ok {
		return lexer
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Match("file." + language)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)
	c.cache[language] = lexer
	return lexer
}

// classFor maps a chroma token type to a display class. Unstyled text
// maps to the empty class.
func classFor(tokenType chroma.TokenType) string {
	if tokenType == chroma.Error {
		return "tok-error"
	}
	switch tokenType.Category() {
	case chroma.Keyword:
		return "tok-keyword"
	case chroma.Operator:
		return "tok-operator"
	case chroma.Punctuation:
		return "tok-punctuation"
	case chroma.Comment:
		return "tok-comment"
	case chroma.Name:
		switch tokenType {
		case chroma.NameFunction, chroma.NameFunctionMagic:
			return "tok-function"
		case chroma.NameClass, chroma.NameNamespace:
			return "tok-type"
		case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
			return "tok-builtin"
		case chroma.NameTag:
			return "tok-tag"
		case chroma.NameAttribute:
			return "tok-attribute"
		case chroma.NameConstant:
			return "tok-constant"
		case chroma.NameDecorator:
			return "tok-decorator"
		default:
			return ""
		}
	case chroma.Literal:
		switch tokenType.SubCategory() {
		case chroma.LiteralString:
			return "tok-string"
		case chroma.LiteralNumber:
			return "tok-number"
		default:
			return "tok-literal"
		}
	default:
		return ""
	}
}
