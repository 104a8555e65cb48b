package jsonfilter_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	jsonfilter "github.com/czeal/go-jsonfilter"
)

func decode(t *testing.T, s string) any {
	t.Helper()

	var doc any
	if err := json.Unmarshal([]byte(s), &doc); err != nil {
		t.Fatalf("decode %q: %v", s, err)
	}
	return doc
}

func TestInclude(t *testing.T) {
	t.Parallel()

	got, err := jsonfilter.Include(decode(t, `{"a":1,"b":2,"c":3}`), "a,b")
	if err != nil {
		t.Fatalf("Include() error: %v", err)
	}
	if want := decode(t, `{"a":1,"b":2}`); !reflect.DeepEqual(got, want) {
		t.Errorf("Include() = %v, want %v", got, want)
	}
}

func TestExclude(t *testing.T) {
	t.Parallel()

	got, err := jsonfilter.Exclude(decode(t, `{"a":1,"b":2,"c":3}`), "a,b")
	if err != nil {
		t.Fatalf("Exclude() error: %v", err)
	}
	if want := decode(t, `{"c":3}`); !reflect.DeepEqual(got, want) {
		t.Errorf("Exclude() = %v, want %v", got, want)
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, typ := range []jsonfilter.Type{jsonfilter.Inclusion, jsonfilter.Exclusion} {
		f, err := jsonfilter.New(typ)
		if err != nil {
			t.Fatalf("New(%v) error: %v", typ, err)
		}
		if f == nil {
			t.Fatalf("New(%v) returned nil", typ)
		}
	}

	if _, err := jsonfilter.New(0); !errors.Is(err, jsonfilter.ErrUnknownType) {
		t.Errorf("New(0) error = %v, want ErrUnknownType", err)
	}
}
