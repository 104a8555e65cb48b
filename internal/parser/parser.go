// Package parser turns field path expressions into node trees.
//
// A path expression is a comma-separated list of segments, where each
// segment is a key optionally followed by a parenthesized nested list:
//
//	a,b(c),d(e(f),g)
//
// Keys may contain letters, digits, underscores and whitespace; whitespace
// at segment boundaries is insignificant. The parsed tree is anchored under
// an implicit root node and is returned already merged, so duplicate sibling
// keys are consolidated.
package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/czeal/go-jsonfilter/internal/node"
)

// ErrParse is the sentinel error for malformed path expressions. It allows
// consistent error checks using errors.Is().
var ErrParse = errors.New("invalid path expression")

// segmentPattern matches one complete segment: a key optionally followed by
// a parenthesized child list. Anchored so partial matches (unbalanced
// parentheses, stray characters) are rejected outright; the captured child
// list is validated recursively.
var segmentPattern = regexp.MustCompile(`^([a-zA-Z0-9_\s]*)(\(([a-zA-Z0-9,()_\s]*)\))?$`)

// Parse parses expr into a merged node tree rooted at node.RootKey. An empty
// expr yields a root with an explicit empty child list, which is not the
// same as ParseOptional(nil).
func Parse(expr string) (*node.Node, error) {
	children, err := parseList(expr)
	if err != nil {
		return nil, err
	}
	return node.Merge(node.NewBranch(node.RootKey, children...)), nil
}

// ParseOptional handles the case where no expression was supplied at all: a
// nil expr yields a terminal root, meaning the whole document is selected
// with no narrowing. A non-nil expr behaves exactly like Parse.
func ParseOptional(expr *string) (*node.Node, error) {
	if expr == nil {
		return node.NewTerminal(node.RootKey), nil
	}
	return Parse(*expr)
}

// parseList splits input on top-level commas and parses each token as one
// segment. It always produces at least one token, so an empty input yields a
// single node with an empty key.
func parseList(input string) ([]*node.Node, error) {
	tokens := splitTopLevel(input)

	nodes := make([]*node.Node, 0, len(tokens))
	for _, token := range tokens {
		n, err := parseSegment(token)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}

	return nodes, nil
}

// parseSegment validates one token against the segment grammar and recurses
// into its parenthesized child list, if any.
func parseSegment(token string) (*node.Node, error) {
	m := segmentPattern.FindStringSubmatch(token)
	if m == nil {
		return nil, fmt.Errorf("%w: malformed segment %q", ErrParse, token)
	}

	key := strings.TrimSpace(m[1])
	if m[2] == "" {
		// No parentheses at all: a terminal segment.
		return node.NewTerminal(key), nil
	}

	children, err := parseList(m[3])
	if err != nil {
		return nil, err
	}

	return node.NewBranch(key, children...), nil
}

// splitTopLevel splits input on commas that sit outside any parentheses,
// trimming each token. A single left-to-right scan tracks parenthesis depth;
// unbalanced input is not an error here, it simply produces tokens the
// segment pattern will reject.
func splitTopLevel(input string) []string {
	var tokens []string

	depth := 0
	start := 0

	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				tokens = append(tokens, strings.TrimSpace(input[start:i]))
				start = i + 1
			}
		}
	}

	return append(tokens, strings.TrimSpace(input[start:]))
}
