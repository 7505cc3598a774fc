package keytree

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		want Key
	}{
		{"email", Key{Kind: Scalar, Name: "email"}},
		{"tags.0", Key{Kind: ArrayItem, Group: "tags", Index: 0}},
		{"tags.12", Key{Kind: ArrayItem, Group: "tags", Index: 12}},
		// a dotted name with a non-numeric suffix stays a scalar
		{"a.b", Key{Kind: Scalar, Name: "a.b"}},
		{"a.", Key{Kind: Scalar, Name: "a."}},
		{".0", Key{Kind: Scalar, Name: ".0"}},
		{"a.-1", Key{Kind: Scalar, Name: "a.-1"}},
	}
	for _, c := range cases {
		if got := Parse(c.name); got != c.want {
			t.Errorf("Parse(%q) = %+v, want %+v", c.name, got, c.want)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, name := range []string{"email", "tags.0", "tags.7"} {
		if got := Parse(name).Encode(); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}

func TestBuildTree_DenseGroups(t *testing.T) {
	tree := BuildTree(map[string]any{
		"email":  "a@b.com",
		"tags.1": "b",
		"tags.0": "a",
	})
	want := map[string]any{
		"email": "a@b.com",
		"tags":  []any{"a", "b"},
	}
	if !reflect.DeepEqual(tree, want) {
		t.Fatalf("tree = %#v, want %#v", tree, want)
	}
}

func TestBuildTree_GapsFillNil(t *testing.T) {
	tree := BuildTree(map[string]any{"tags.2": "c"})
	arr, ok := tree["tags"].([]any)
	if !ok || len(arr) != 3 {
		t.Fatalf("expected dense slice of 3, got %#v", tree["tags"])
	}
	if arr[0] != nil || arr[1] != nil || arr[2] != "c" {
		t.Fatalf("unexpected slots: %#v", arr)
	}
}

func TestPointerToKey(t *testing.T) {
	cases := map[string]string{
		"/email":  "email",
		"/tags/0": "tags.0",
		"/a/b/c":  "a.b.c",
		"/":       "",
		"":        "",
		// RFC 6901 escapes decode per segment
		"/a~1b": "a/b",
		"/x~0y": "x~y",
		"/m~01": "m~1",
	}
	for p, want := range cases {
		if got := PointerToKey(p); got != want {
			t.Errorf("PointerToKey(%q) = %q, want %q", p, got, want)
		}
	}
}
