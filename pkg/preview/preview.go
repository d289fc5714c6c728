// Package preview computes live-preview decorations for markdown text.
// One pass turns (document, selection, parse tree) into an ordered,
// immutable decoration collection: constructs near a cursor show their
// raw syntax, everything else renders styled or replaced by widgets.
//
// The engine is pure and single-threaded. A pass always runs to
// completion, reads its inputs as immutable snapshots, and rebuilds the
// collection from scratch; the only state shared across passes lives in
// the widget render memo, outside this package. Malformed candidate
// ranges are dropped rather than surfaced: a broken decoration must
// never block typing.
package preview

import (
	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/syntax"
)

// Engine produces decoration collections. It holds no per-document
// state; one engine can serve any number of documents.
type Engine struct{}

// New creates an Engine.
func New() *Engine {
	return &Engine{}
}

// Rebuild runs one full assembly pass. It is idempotent: identical
// inputs produce structurally identical collections. A nil tree yields
// only the text-detected decorations (frontmatter, display math).
func (e *Engine) Rebuild(doc *document.Document, sel document.Selection, tree *syntax.Tree) *Collection {
	if doc == nil {
		doc = document.New("")
	}
	a := &assembler{doc: doc, sel: sel}
	return newCollection(doc, a.run(tree))
}

// Inputs bundles one pass's inputs for change detection. The document
// and tree compare by pointer identity, the selection by value: a new
// parse always allocates a new tree, so pointer inequality is exactly
// "a reparse completed".
type Inputs struct {
	Doc  *document.Document
	Sel  document.Selection
	Tree *syntax.Tree
}

// ShouldRebuild reports whether a pass is due: the document changed, the
// selection moved, or an asynchronous reparse delivered a new tree.
func ShouldRebuild(prev, next Inputs) bool {
	return prev.Doc != next.Doc || prev.Tree != next.Tree || !prev.Sel.Equal(next.Sel)
}

// Session tracks the previous pass for a single host view, rebuilding
// only when ShouldRebuild fires and otherwise returning the retained
// collection.
type Session struct {
	engine *Engine
	inputs Inputs
	coll   *Collection
	primed bool
}

// NewSession creates a Session driving the given engine.
func NewSession(engine *Engine) *Session {
	return &Session{engine: engine}
}

// Update returns the collection for the given inputs and whether it was
// rebuilt. The first call always rebuilds.
func (s *Session) Update(in Inputs) (*Collection, bool) {
	if s.primed && !ShouldRebuild(s.inputs, in) {
		return s.coll, false
	}
	s.coll = s.engine.Rebuild(in.Doc, in.Sel, in.Tree)
	s.inputs = in
	s.primed = true
	return s.coll, true
}

// Collection returns the most recent collection, or nil before the first
// Update.
func (s *Session) Collection() *Collection {
	return s.coll
}
