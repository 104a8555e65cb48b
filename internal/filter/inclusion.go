package filter

import (
	"github.com/czeal/go-jsonfilter/internal/document"
	"github.com/czeal/go-jsonfilter/internal/node"
	"github.com/czeal/go-jsonfilter/internal/parser"
)

// inclusion keeps only the fields named by the path expression. A terminal
// node selects the entire subtree at its key; a node with an explicit child
// list admits only the listed children.
type inclusion struct{}

// Apply implements Filter.
func (f inclusion) Apply(source any, expr string) (any, error) {
	root, err := parser.Parse(expr)
	if err != nil {
		return nil, err
	}
	return f.applyNode(source, root), nil
}

func (f inclusion) applyNode(source any, n *node.Node) any {
	switch src := source.(type) {
	case nil:
		return nil
	case map[string]any:
		return f.filterObject(src, n)
	case []any:
		return f.filterArray(src, n)
	default:
		// Primitives cannot be narrowed further; copy them verbatim.
		return document.Clone(src)
	}
}

func (f inclusion) filterObject(source map[string]any, n *node.Node) any {
	if n.Terminal() {
		// No more sub-paths to look into: take the whole object.
		return document.Clone(source)
	}

	filtered := make(map[string]any, len(n.Children()))
	for _, child := range n.Children() {
		key := child.Key()
		value, ok := source[key]
		if !ok {
			continue
		}
		filtered[key] = f.applyNode(value, child)
	}

	return filtered
}

// filterArray applies the same node to every element. Arrays are never
// pruned: element count and order are preserved, and elements that filter
// down to null stay in place as null.
func (f inclusion) filterArray(source []any, n *node.Node) any {
	filtered := make([]any, 0, len(source))
	for _, elem := range source {
		filtered = append(filtered, f.applyNode(elem, n))
	}
	return filtered
}
