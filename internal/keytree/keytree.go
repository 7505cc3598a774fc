// Package keytree bridges the flat field-name map and the nested value tree
// consumed by schema validation. Field names are either plain scalars or
// "group.index" array items; only one nesting level is supported, and a
// dotted name whose suffix is not a plain decimal index stays a scalar.
package keytree

import (
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates the field-key union.
type Kind int

const (
	Scalar Kind = iota
	ArrayItem
)

// Key is the decoded form of a field name.
type Key struct {
	Kind  Kind
	Name  string // Scalar only: the literal field name.
	Group string // ArrayItem only: the group prefix.
	Index int    // ArrayItem only: the zero-based item index.
}

// Parse decodes a field name. Only the first "." is considered.
func Parse(name string) Key {
	i := strings.IndexByte(name, '.')
	if i <= 0 || i == len(name)-1 {
		return Key{Kind: Scalar, Name: name}
	}
	idx, err := strconv.Atoi(name[i+1:])
	if err != nil || idx < 0 {
		return Key{Kind: Scalar, Name: name}
	}
	return Key{Kind: ArrayItem, Group: name[:i], Index: idx}
}

// Encode is the inverse of Parse.
func (k Key) Encode() string {
	if k.Kind == ArrayItem {
		return ItemName(k.Group, k.Index)
	}
	return k.Name
}

// ItemName builds the field name for index i of a group.
func ItemName(group string, i int) string {
	return group + "." + strconv.Itoa(i)
}

// BuildTree places every flat entry into a nested value tree: array items at
// tree[group][index], scalars at tree[name]. Groups come out as dense []any
// slices sized by the highest index seen.
func BuildTree(flat map[string]any) map[string]any {
	tree := make(map[string]any, len(flat))
	groups := map[string]map[int]any{}
	for name, v := range flat {
		k := Parse(name)
		if k.Kind == ArrayItem {
			g := groups[k.Group]
			if g == nil {
				g = map[int]any{}
				groups[k.Group] = g
			}
			g[k.Index] = v
			continue
		}
		tree[name] = v
	}
	for group, items := range groups {
		max := -1
		for i := range items {
			if i > max {
				max = i
			}
		}
		arr := make([]any, max+1)
		for i, v := range items {
			arr[i] = v
		}
		tree[group] = arr
	}
	return tree
}

// PointerToKey converts a JSON Pointer ("/tags/0") into a flat field name
// ("tags.0"), decoding the ~1 and ~0 escapes per segment. The root pointer
// maps to the empty name.
func PointerToKey(p string) string {
	p = strings.TrimPrefix(p, "/")
	if p == "" {
		return ""
	}
	segs := strings.Split(p, "/")
	for i, s := range segs {
		if strings.ContainsRune(s, '~') {
			s = strings.ReplaceAll(s, "~1", "/")
			s = strings.ReplaceAll(s, "~0", "~")
			segs[i] = s
		}
	}
	return strings.Join(segs, ".")
}

// SortedNames returns the map keys in ascending order for deterministic
// iteration.
func SortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
