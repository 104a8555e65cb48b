// Package node defines the hierarchical path tree produced by parsing a
// field path expression.
//
// A node is one path segment: a key plus either no stated sub-paths (a
// terminal node, which selects the entire subtree at that key) or an
// explicit, possibly empty, list of child nodes. The two cases are distinct:
// "a" is terminal, while "a()" carries an explicit empty child list. Nodes
// are immutable; every transformation returns new values.
package node

import "strings"

// RootKey is the key of the implicit root node every parsed expression is
// anchored under.
const RootKey = "ROOT"

// Node is a single segment of a field path expression.
type Node struct {
	key      string
	children []*Node
	branch   bool // an explicit child list was written, even an empty one
}

// NewTerminal creates a node with no stated sub-paths.
func NewTerminal(key string) *Node {
	return &Node{key: key}
}

// NewBranch creates a node with an explicit child list. Calling it with no
// children yields the "key()" form, which is not the same as NewTerminal.
func NewBranch(key string, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{key: key, children: children, branch: true}
}

// Key returns the path segment name.
func (n *Node) Key() string {
	return n.key
}

// Terminal reports whether the node was written without a child list.
func (n *Node) Terminal() bool {
	return !n.branch
}

// Children returns the explicit child list, or nil for a terminal node.
// Callers must not modify the returned slice.
func (n *Node) Children() []*Node {
	return n.children
}

// String renders the node back into path expression syntax: the bare key for
// a terminal node, or "key(child1,child2,...)" otherwise.
func (n *Node) String() string {
	if n.Terminal() {
		return n.key
	}

	parts := make([]string, 0, len(n.children))
	for _, child := range n.children {
		parts = append(parts, child.String())
	}

	return n.key + "(" + strings.Join(parts, ",") + ")"
}

// Equal reports structural equality on (key, children). Two nil nodes are
// equal; a terminal node is never equal to a branch node.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.key != other.key || n.branch != other.branch {
		return false
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, child := range n.children {
		if !child.Equal(other.children[i]) {
			return false
		}
	}
	return true
}
