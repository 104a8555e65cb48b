// Package selector narrows a document to a sub-document with a standard
// JSONPath expression before field filtering is applied.
package selector

import (
	"errors"
	"fmt"

	"github.com/theory/jsonpath"
)

var (
	// ErrInvalidPath is the sentinel error for malformed JSONPath expressions.
	ErrInvalidPath = errors.New("invalid jsonpath expression")
	// ErrNotFound indicates the expression matched nothing in the document.
	ErrNotFound = errors.New("jsonpath matched nothing")
)

// Select evaluates pathExpr against doc. A single match yields the matched
// value; multiple matches yield an array of the matched values in document
// order; zero matches yield ErrNotFound.
func Select(doc any, pathExpr string) (any, error) {
	path, err := jsonpath.Parse(pathExpr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPath, pathExpr, err)
	}

	results := path.Select(doc)

	switch len(results) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNotFound, pathExpr)
	case 1:
		return results[0], nil
	default:
		return []any(results), nil
	}
}
