package filter

import (
	"github.com/czeal/go-jsonfilter/internal/document"
	"github.com/czeal/go-jsonfilter/internal/node"
	"github.com/czeal/go-jsonfilter/internal/parser"
)

// exclusion removes the fields named by the path expression. A terminal node
// drops the entire subtree at its key; a node with an explicit child list
// descends and removes only within the listed children.
//
// Internally a nil result is the removal signal: when filtering a property
// yields nil, the key is deleted from its parent. A consequence is that a
// source value that is literally null is indistinguishable from the removal
// signal and is always deleted once a sub-path names it.
type exclusion struct{}

// Apply implements Filter.
func (f exclusion) Apply(source any, expr string) (any, error) {
	root, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return f.applyNode(source, root), nil
}

func (f exclusion) applyNode(source any, n *node.Node) any {
	if source == nil {
		return nil
	}
	if n == nil {
		// No path left: nothing further to exclude here.
		return document.Clone(source)
	}
	if n.Terminal() {
		// The path named this value with no sub-paths: remove it wholesale.
		return nil
	}

	switch src := source.(type) {
	case map[string]any:
		return f.filterObject(src, n)
	case []any:
		return f.filterArray(src, n)
	default:
		return document.Clone(src)
	}
}

func (f exclusion) filterObject(source map[string]any, n *node.Node) any {
	filtered := document.Clone(source).(map[string]any)

	for _, child := range n.Children() {
		key := child.Key()
		value, ok := filtered[key]
		if !ok {
			continue
		}
		if result := f.applyNode(value, child); result == nil {
			delete(filtered, key)
		} else {
			filtered[key] = result
		}
	}

	return filtered
}

// filterArray applies the same node to every element, preserving element
// count and order.
func (f exclusion) filterArray(source []any, n *node.Node) any {
	filtered := make([]any, 0, len(source))
	for _, elem := range source {
		filtered = append(filtered, f.applyNode(elem, n))
	}
	return filtered
}
