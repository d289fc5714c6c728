package syntax

// WalkAction controls traversal from a WalkFunc.
type WalkAction uint8

const (
	// WalkContinue visits the node's children next.
	WalkContinue WalkAction = iota

	// WalkSkipChildren continues the walk without descending into the
	// node's children.
	WalkSkipChildren

	// WalkStop ends the walk immediately.
	WalkStop
)

// WalkFunc is the function signature for Walk callbacks.
type WalkFunc func(n *Node) WalkAction

// Walk performs a pre-order traversal of the tree starting at root.
// The callback decides per node whether to descend, skip the subtree, or
// stop the walk entirely.
func Walk(root *Node, fn WalkFunc) WalkAction {
	if root == nil {
		return WalkContinue
	}

	switch fn(root) {
	case WalkStop:
		return WalkStop
	case WalkSkipChildren:
		return WalkContinue
	}

	for child := root.FirstChild; child != nil; child = child.Next {
		if Walk(child, fn) == WalkStop {
			return WalkStop
		}
	}

	return WalkContinue
}

// FindAll returns all nodes matching the predicate.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node

	Walk(root, func(node *Node) WalkAction {
		if predicate(node) {
			result = append(result, node)
		}
		return WalkContinue
	})

	return result
}

// FindFirst returns the first node matching the predicate, or nil if none found.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node

	Walk(root, func(node *Node) WalkAction {
		if predicate(node) {
			found = node
			return WalkStop
		}
		return WalkContinue
	})

	return found
}

// FindByConstruct returns all nodes of the specified construct.
func FindByConstruct(root *Node, construct Construct) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Construct == construct
	})
}
