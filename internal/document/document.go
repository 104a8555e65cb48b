// Package document provides the generic value model the filters operate on:
// plain Go trees of map[string]any, []any and primitives, as produced by
// decoding JSON or YAML into any.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	yaml "github.com/goccy/go-yaml"
)

// ErrUnknownFormat is the sentinel error for unrecognized document formats.
var ErrUnknownFormat = errors.New("unknown document format")

// Format identifies a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Clone returns a deep copy of v. Maps and slices are copied recursively;
// strings, numbers, booleans and nil are immutable and returned as-is.
func Clone(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for key, elem := range val {
			out[key] = Clone(elem)
		}
		return out
	case []any:
		out := make([]any, 0, len(val))
		for _, elem := range val {
			out = append(out, Clone(elem))
		}
		return out
	default:
		return val
	}
}

// Decode parses data in the given format into a generic value tree. JSON
// numbers are decoded as json.Number so they re-encode without precision
// loss.
func Decode(data []byte, f Format) (any, error) {
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()

		var doc any
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
		return doc, nil
	case FormatYAML:
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Encode serializes a generic value tree in the given format. JSON output is
// indented with two spaces unless compact is set; compact has no effect on
// YAML.
func Encode(v any, f Format, compact bool) ([]byte, error) {
	switch f {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		if !compact {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return buf.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
