package preview

import (
	"testing"

	"github.com/typednotes/livemd/pkg/document"
	"github.com/typednotes/livemd/pkg/preview/widget"
)

func TestNewCollectionOrders(t *testing.T) {
	t.Parallel()

	doc := document.New("0123456789\nabcdefghij\n")
	candidates := []Decoration{
		Mark(5, 9, "b"),
		Replace(0, 4),
		Mark(0, 4, "a"),
		LineClass(0, "line"),
		Mark(0, 2, "a"),
		ReplaceWidget(5, 9, widget.Rule{}),
	}

	got := newCollection(doc, candidates).Decorations()
	want := []Decoration{
		LineClass(0, "line"),
		Mark(0, 2, "a"),
		Mark(0, 4, "a"),
		Replace(0, 4),
		Mark(5, 9, "b"),
		ReplaceWidget(5, 9, widget.Rule{}),
	}

	if len(got) != len(want) {
		t.Fatalf("got %d decorations, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Eq(want[i]) {
			t.Errorf("decoration %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNewCollectionDropsInvalid(t *testing.T) {
	t.Parallel()

	doc := document.New("short")

	tests := []struct {
		name      string
		candidate Decoration
	}{
		{name: "inverted range", candidate: Mark(4, 2, "a")},
		{name: "negative from", candidate: Mark(-1, 3, "a")},
		{name: "past document end", candidate: Mark(0, 6, "a")},
		{name: "zero width mark", candidate: Mark(2, 2, "a")},
		{name: "zero width replace", candidate: Replace(2, 2)},
		{name: "line past document end", candidate: LineClass(6, "a")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			coll := newCollection(doc, []Decoration{tt.candidate})
			if coll.Len() != 0 {
				t.Errorf("kept %v, want dropped", coll.At(0))
			}
		})
	}
}

func TestNewCollectionKeepsValidEdges(t *testing.T) {
	t.Parallel()

	doc := document.New("short")
	coll := newCollection(doc, []Decoration{
		Mark(0, 5, "full"),
		LineClass(0, "line"),
		LineClass(5, "line"),
	})
	if coll.Len() != 3 {
		t.Fatalf("Len = %d, want 3: %v", coll.Len(), coll.Decorations())
	}
}

func TestNewCollectionDedupes(t *testing.T) {
	t.Parallel()

	doc := document.New("0123456789")

	tests := []struct {
		name       string
		candidates []Decoration
		want       int
	}{
		{
			name: "identical marks collapse",
			candidates: []Decoration{
				Mark(0, 4, "a"),
				Mark(0, 4, "a"),
			},
			want: 1,
		},
		{
			name: "equal widgets collapse",
			candidates: []Decoration{
				ReplaceWidget(0, 4, widget.Math{Expr: "x"}),
				ReplaceWidget(0, 4, widget.Math{Expr: "x"}),
			},
			want: 1,
		},
		{
			name: "different widgets survive",
			candidates: []Decoration{
				ReplaceWidget(0, 4, widget.Math{Expr: "x"}),
				ReplaceWidget(0, 4, widget.Math{Expr: "y"}),
			},
			want: 2,
		},
		{
			name: "different classes survive",
			candidates: []Decoration{
				Mark(0, 4, "a"),
				Mark(0, 4, "b"),
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			coll := newCollection(doc, tt.candidates)
			if coll.Len() != tt.want {
				t.Errorf("Len = %d, want %d: %v", coll.Len(), tt.want, coll.Decorations())
			}
		})
	}
}

func TestCollectionEq(t *testing.T) {
	t.Parallel()

	doc := document.New("0123456789")
	a := newCollection(doc, []Decoration{Mark(0, 4, "a"), Replace(5, 9)})
	b := newCollection(doc, []Decoration{Replace(5, 9), Mark(0, 4, "a")})
	c := newCollection(doc, []Decoration{Mark(0, 4, "other"), Replace(5, 9)})

	if !a.Eq(b) {
		t.Error("collections with the same candidates in different emission order differ")
	}
	if a.Eq(c) {
		t.Error("collections with different classes compare equal")
	}
}

func TestDecorationString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		dec  Decoration
		want string
	}{
		{name: "mark", dec: Mark(2, 6, "md-em"), want: "mark[2:6) md-em"},
		{name: "hide", dec: Replace(0, 2), want: "replace[0:2)"},
		{
			name: "widget replace",
			dec:  ReplaceWidget(0, 4, widget.Rule{}),
			want: "replace[0:4) rule",
		},
		{name: "line", dec: LineClass(7, "md-table"), want: "line(7) md-table"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.dec.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{kind: KindMark, want: "mark"},
		{kind: KindReplace, want: "replace"},
		{kind: KindLine, want: "line"},
		{kind: Kind(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
