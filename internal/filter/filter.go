// Package filter implements the two field filtering strategies: inclusion,
// which keeps only the fields named by a path expression, and exclusion,
// which removes them.
//
// Both filters are pure: the source document is never modified and the
// result is always newly allocated, so a single filter value is safe for
// concurrent use.
package filter

import (
	"errors"
	"fmt"
)

// ErrUnknownType is the sentinel error for unrecognized filter types.
var ErrUnknownType = errors.New("unknown filter type")

// Type selects a filtering strategy.
type Type int

const (
	// Inclusion keeps only the fields named by the path expression.
	Inclusion Type = iota + 1
	// Exclusion removes the fields named by the path expression.
	Exclusion
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case Inclusion:
		return "include"
	case Exclusion:
		return "exclude"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Filter applies a field path expression to a generic document value and
// returns a new, filtered document. The source is never modified.
type Filter interface {
	Apply(source any, expr string) (any, error)
}

// New returns the filter implementing the given strategy.
func New(t Type) (Filter, error) {
	switch t {
	case Inclusion:
		return inclusion{}, nil
	case Exclusion:
		return exclusion{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
}

// ParseType maps the command-line words "include" and "exclude" to a Type.
func ParseType(name string) (Type, error) {
	switch name {
	case "include", "inclusion":
		return Inclusion, nil
	case "exclude", "exclusion":
		return Exclusion, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}
