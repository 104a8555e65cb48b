package filter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/czeal/go-jsonfilter/internal/parser"
)

func TestExclusionApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string // JSON literal; "" means nil source
		expr   string
		want   string // JSON literal; "" means nil result
	}{
		{
			name:   "nil_source",
			source: "",
			expr:   "key",
			want:   "",
		},
		{
			name:   "null_source",
			source: `null`,
			expr:   "key",
			want:   "",
		},
		{
			name:   "empty_expression_removes_nothing_from_object",
			source: `{"name":"John","age":30}`,
			expr:   "",
			want:   `{"name":"John","age":30}`,
		},
		{
			name:   "empty_expression_removes_nothing_from_array",
			source: `[{"name":"John"},null,42]`,
			expr:   "",
			want:   `[{"name":"John"},null,42]`,
		},
		{
			name:   "empty_expression_on_primitive",
			source: `"Hello World"`,
			expr:   "",
			want:   `"Hello World"`,
		},
		{
			name:   "flat_removal",
			source: `{"a":1,"b":2,"c":3}`,
			expr:   "a,b",
			want:   `{"c":3}`,
		},
		{
			name:   "nested_removal",
			source: `{"x":{"y":{"z":5},"w":10},"v":20}`,
			expr:   "x(y)",
			want:   `{"x":{"w":10},"v":20}`,
		},
		{
			name:   "terminal_drops_whole_subtree",
			source: `{"arr":[{"name":"john"}],"other":1}`,
			expr:   "arr",
			want:   `{"other":1}`,
		},
		{
			name:   "explicit_empty_sublist_removes_nothing",
			source: `{"prop":{"key1":"value1","key2":"value2"}}`,
			expr:   "prop()",
			want:   `{"prop":{"key1":"value1","key2":"value2"}}`,
		},
		{
			name:   "unknown_key_removes_nothing",
			source: `{"name":"john","type":0}`,
			expr:   "key",
			want:   `{"name":"john","type":0}`,
		},
		{
			name:   "removal_inside_array",
			source: `{"arr":[{"name":"john","type":0},{"name":"cali","type":1}]}`,
			expr:   "arr(type)",
			want:   `{"arr":[{"name":"john"},{"name":"cali"}]}`,
		},
		{
			name:   "top_level_array_elements",
			source: `[{"name":"john","type":0},{"name":"cali","type":1}]`,
			expr:   "type",
			want:   `[{"name":"john"},{"name":"cali"}]`,
		},
		{
			name:   "removing_every_key_leaves_empty_object",
			source: `{"a":1,"b":2}`,
			expr:   "a,b",
			want:   `{}`,
		},
		{
			name:   "null_value_removed_when_named",
			source: `{"a":null,"b":1}`,
			expr:   "a(x)",
			want:   `{"b":1}`,
		},
		{
			name:   "nested_null_removed_via_sub_path",
			source: `{"a":{"b":null,"c":1}}`,
			expr:   "a(b)",
			want:   `{"a":{"c":1}}`,
		},
		{
			name:   "terminal_on_primitive_removes_it",
			source: `{"a":"text","b":1}`,
			expr:   "a",
			want:   `{"b":1}`,
		},
		{
			name:   "sub_path_into_primitive_keeps_it",
			source: `{"a":"text","b":1}`,
			expr:   "a(x)",
			want:   `{"a":"text","b":1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var source, want any
			if tt.source != "" {
				source = mustDecode(t, tt.source)
			}
			if tt.want != "" {
				want = mustDecode(t, tt.want)
			}

			got, err := exclusion{}.Apply(source, tt.expr)
			if err != nil {
				t.Fatalf("Apply(%q) error: %v", tt.expr, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Apply(%q) = %v, want %v", tt.expr, got, want)
			}
		})
	}
}

// A nil node means there is nothing left to exclude; the value is copied
// unchanged. This only happens on internal recursion paths.
func TestExclusionNilNodeCopies(t *testing.T) {
	t.Parallel()

	source := mustDecode(t, `{"a":{"b":1}}`)

	got := exclusion{}.applyNode(source, nil)

	if !reflect.DeepEqual(got, source) {
		t.Errorf("applyNode(source, nil) = %v, want full copy %v", got, source)
	}
	if reflect.ValueOf(got).Pointer() == reflect.ValueOf(source).Pointer() {
		t.Error("applyNode(source, nil) returned the source map itself, want a copy")
	}
}

func TestExclusionMalformedExpression(t *testing.T) {
	t.Parallel()

	_, err := exclusion{}.Apply(mustDecode(t, `{"a":1}`), "a(b")
	if !errors.Is(err, parser.ErrParse) {
		t.Errorf("Apply error = %v, want ErrParse", err)
	}
}
