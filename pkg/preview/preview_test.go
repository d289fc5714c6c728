package preview_test

import (
	"context"
	"testing"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/parser/goldmark"
	"github.com/typednotes/livemd/pkg/preview"
	"github.com/typednotes/livemd/pkg/syntax"
)

func parseTree(t *testing.T, source string) *syntax.Tree {
	t.Helper()

	tree, err := goldmark.New().Parse(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return tree
}

func TestShouldRebuild(t *testing.T) {
	t.Parallel()

	const source = "# note\n\nbody"
	doc := document.New(source)
	tree := parseTree(t, source)
	base := preview.Inputs{Doc: doc, Sel: document.Cursor(3), Tree: tree}

	tests := []struct {
		name string
		next preview.Inputs
		want bool
	}{
		{
			name: "identical inputs",
			next: preview.Inputs{Doc: doc, Sel: document.Cursor(3), Tree: tree},
			want: false,
		},
		{
			name: "new document snapshot",
			next: preview.Inputs{Doc: document.New(source), Sel: document.Cursor(3), Tree: tree},
			want: true,
		},
		{
			name: "new parse tree",
			next: preview.Inputs{Doc: doc, Sel: document.Cursor(3), Tree: parseTree(t, source)},
			want: true,
		},
		{
			name: "selection moved",
			next: preview.Inputs{Doc: doc, Sel: document.Cursor(4), Tree: tree},
			want: true,
		},
		{
			name: "selection grew a range",
			next: preview.Inputs{
				Doc: doc,
				Sel: document.Selection{
					Ranges: []document.Range{{Anchor: 3, Head: 3}, {Anchor: 7, Head: 7}},
				},
				Tree: tree,
			},
			want: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := preview.ShouldRebuild(base, tt.next); got != tt.want {
				t.Errorf("ShouldRebuild() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSessionRetainsCollection(t *testing.T) {
	t.Parallel()

	const source = "*em* tail"
	doc := document.New(source)
	tree := parseTree(t, source)
	session := preview.NewSession(preview.New())

	first, rebuilt := session.Update(preview.Inputs{Doc: doc, Sel: document.Cursor(7), Tree: tree})
	if !rebuilt {
		t.Fatal("first update did not rebuild")
	}
	if first.Len() == 0 {
		t.Fatal("first update produced no decorations")
	}

	// Equal selection value, same document and tree: retained, same
	// collection instance.
	second, rebuilt := session.Update(preview.Inputs{Doc: doc, Sel: document.Cursor(7), Tree: tree})
	if rebuilt {
		t.Error("unchanged inputs triggered a rebuild")
	}
	if second != first {
		t.Error("retained pass returned a different collection")
	}

	third, rebuilt := session.Update(preview.Inputs{Doc: doc, Sel: document.Cursor(2), Tree: tree})
	if !rebuilt {
		t.Error("selection move did not trigger a rebuild")
	}
	if third.Eq(first) {
		t.Error("moving the cursor into the span left the decorations unchanged")
	}
	if got := session.Collection(); got != third {
		t.Errorf("Collection() = %p, want latest %p", got, third)
	}
}

func TestSessionRebuildsOnReparse(t *testing.T) {
	t.Parallel()

	const source = "**bold** tail"
	doc := document.New(source)
	session := preview.NewSession(preview.New())

	first, _ := session.Update(preview.Inputs{Doc: doc, Sel: document.Cursor(10), Tree: parseTree(t, source)})

	// A fresh parse of identical text is a new tree identity: rebuild,
	// same decorations.
	second, rebuilt := session.Update(preview.Inputs{Doc: doc, Sel: document.Cursor(10), Tree: parseTree(t, source)})
	if !rebuilt {
		t.Error("new tree identity did not trigger a rebuild")
	}
	if !second.Eq(first) {
		t.Error("reparse of identical text changed the decorations")
	}
}

func TestRebuildNilDocument(t *testing.T) {
	t.Parallel()

	coll := preview.New().Rebuild(nil, document.Cursor(0), nil)
	if coll.Len() != 0 {
		t.Errorf("got %d decorations for nil inputs, want 0", coll.Len())
	}
}
