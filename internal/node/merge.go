package node

// Merge consolidates duplicate sibling keys throughout the tree, returning a
// new tree in which every key appears at most once per level. Passing nil
// returns nil.
//
// Sibling occurrences of the same key combine as follows: a key that only
// ever appears terminal stays terminal; any occurrence with an explicit
// child list turns the key into a branch, and the child lists of all such
// occurrences are concatenated and merged recursively. Output order is the
// order in which each key was first seen.
func Merge(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Terminal() {
		return NewTerminal(n.key)
	}
	return NewBranch(n.key, mergeAll(n.children)...)
}

// keyState accumulates the merged form of one sibling key.
type keyState struct {
	children []*Node
	branch   bool
}

func mergeAll(nodes []*Node) []*Node {
	states := make(map[string]*keyState, len(nodes))
	order := make([]string, 0, len(nodes))

	for _, n := range nodes {
		state, seen := states[n.key]
		if !seen {
			state = &keyState{}
			states[n.key] = state
			order = append(order, n.key)
		}
		if n.Terminal() {
			// A terminal occurrence only records the key; it never
			// downgrades an accumulated child list.
			continue
		}
		state.branch = true
		state.children = append(state.children, n.children...)
	}

	merged := make([]*Node, 0, len(order))
	for _, key := range order {
		state := states[key]
		if state.branch {
			merged = append(merged, NewBranch(key, mergeAll(state.children)...))
		} else {
			merged = append(merged, NewTerminal(key))
		}
	}

	return merged
}
