package syntax_test

import (
	"testing"

	"github.com/typednotes/livemd/pkg/syntax"
)

func buildTestTree() *syntax.Node {
	// Build a simple tree:
	// Document
	//   Heading
	//     Text
	//   Paragraph
	//     Text
	//     Emphasis
	//       Text

	doc := syntax.NewNode(syntax.ConstructDocument)

	heading := syntax.NewNode(syntax.ConstructHeading)
	headingText := syntax.NewNode(syntax.ConstructText)
	syntax.AppendChild(heading, headingText)
	syntax.AppendChild(doc, heading)

	para := syntax.NewNode(syntax.ConstructParagraph)
	paraText := syntax.NewNode(syntax.ConstructText)
	syntax.AppendChild(para, paraText)

	emphasis := syntax.NewNode(syntax.ConstructEmphasis)
	emphText := syntax.NewNode(syntax.ConstructText)
	syntax.AppendChild(emphasis, emphText)
	syntax.AppendChild(para, emphasis)

	syntax.AppendChild(doc, para)

	return doc
}

func TestWalk(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	var visited []syntax.Construct
	syntax.Walk(doc, func(n *syntax.Node) syntax.WalkAction {
		visited = append(visited, n.Construct)
		return syntax.WalkContinue
	})

	expected := []syntax.Construct{
		syntax.ConstructDocument,
		syntax.ConstructHeading,
		syntax.ConstructText,
		syntax.ConstructParagraph,
		syntax.ConstructText,
		syntax.ConstructEmphasis,
		syntax.ConstructText,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(visited))
	}

	for i, construct := range expected {
		if visited[i] != construct {
			t.Errorf("node %d: expected %s, got %s", i, construct, visited[i])
		}
	}
}

func TestWalkSkipChildren(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	var visited []syntax.Construct
	syntax.Walk(doc, func(n *syntax.Node) syntax.WalkAction {
		visited = append(visited, n.Construct)
		if n.Construct == syntax.ConstructHeading || n.Construct == syntax.ConstructEmphasis {
			return syntax.WalkSkipChildren
		}
		return syntax.WalkContinue
	})

	// The heading's and emphasis's Text children must not be visited.
	expected := []syntax.Construct{
		syntax.ConstructDocument,
		syntax.ConstructHeading,
		syntax.ConstructParagraph,
		syntax.ConstructText,
		syntax.ConstructEmphasis,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d: %v", len(expected), len(visited), visited)
	}

	for i, construct := range expected {
		if visited[i] != construct {
			t.Errorf("node %d: expected %s, got %s", i, construct, visited[i])
		}
	}
}

func TestWalkStop(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	count := 0
	action := syntax.Walk(doc, func(n *syntax.Node) syntax.WalkAction {
		count++
		if n.Construct == syntax.ConstructHeading {
			return syntax.WalkStop
		}
		return syntax.WalkContinue
	})

	if action != syntax.WalkStop {
		t.Errorf("expected WalkStop result, got %v", action)
	}
	if count != 2 {
		t.Errorf("expected 2 visited nodes, got %d", count)
	}
}

func TestWalkNilRoot(t *testing.T) {
	t.Parallel()

	syntax.Walk(nil, func(_ *syntax.Node) syntax.WalkAction {
		t.Error("callback should not be called for nil root")
		return syntax.WalkContinue
	})
}

func TestFindByConstruct(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	texts := syntax.FindByConstruct(doc, syntax.ConstructText)
	if len(texts) != 3 {
		t.Errorf("expected 3 text nodes, got %d", len(texts))
	}

	headings := syntax.FindByConstruct(doc, syntax.ConstructHeading)
	if len(headings) != 1 {
		t.Errorf("expected 1 heading node, got %d", len(headings))
	}
}

func TestFindFirst(t *testing.T) {
	t.Parallel()

	doc := buildTestTree()

	first := syntax.FindFirst(doc, func(n *syntax.Node) bool {
		return n.Construct == syntax.ConstructText
	})

	if first == nil {
		t.Fatal("expected a text node, got nil")
	}
	if first.Parent == nil || first.Parent.Construct != syntax.ConstructHeading {
		t.Error("expected the heading's text child to be found first")
	}
}
