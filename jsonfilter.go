// Package jsonfilter selectively includes or excludes fields from a generic
// JSON value tree using a compact path expression syntax.
//
// A path expression is a comma-separated list of field paths, where nested
// fields are written in parentheses and duplicate paths are merged:
//
//	a,b            the top-level fields a and b
//	x(y)           the field y inside x
//	a(b(c),b(d))   equivalent to a(b(c,d))
//
// Documents are plain Go value trees as produced by decoding JSON into any:
// map[string]any for objects, []any for arrays, and string, number, bool or
// nil for the rest. Filtering never modifies the source document; the result
// is always newly allocated.
//
// One sharp edge is inherited from the expression semantics: the exclusion
// filter deletes a key whenever filtering its value yields null, so a value
// that is literally null is removed as soon as a sub-path names it.
package jsonfilter

import "github.com/czeal/go-jsonfilter/internal/filter"

// Type selects a filtering strategy.
type Type = filter.Type

const (
	// Inclusion keeps only the fields named by the path expression.
	Inclusion = filter.Inclusion
	// Exclusion removes the fields named by the path expression.
	Exclusion = filter.Exclusion
)

// ErrUnknownType is returned by New for unrecognized types.
var ErrUnknownType = filter.ErrUnknownType

// Filter applies a field path expression to a document and returns a new,
// filtered document. Implementations are stateless and safe for concurrent
// use.
type Filter = filter.Filter

// New returns the filter implementing the given strategy, or ErrUnknownType.
func New(t Type) (Filter, error) {
	return filter.New(t)
}

// Include returns a copy of source retaining only the fields named by expr.
func Include(source any, expr string) (any, error) {
	f, err := filter.New(filter.Inclusion)
	if err != nil {
		return nil, err
	}
	return f.Apply(source, expr)
}

// Exclude returns a copy of source with the fields named by expr removed.
func Exclude(source any, expr string) (any, error) {
	f, err := filter.New(filter.Exclusion)
	if err != nil {
		return nil, err
	}
	return f.Apply(source, expr)
}
