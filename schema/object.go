package schema

import (
	"context"
	"sort"

	goform "github.com/reoring/goform"
)

// objectSchema is the built-in implementation of goform.Schema: a flat
// object of named field adapters plus a required set. Unknown keys in the
// checked tree are ignored; a form may carry values the schema does not
// model.
//
// Required means present and non-empty: a mounted input always contributes
// a value to the tree, so presence alone could never fail.
type objectSchema struct {
	fields     map[string]Adapter
	required   map[string]struct{}
	sortedKeys []string
}

// Ensure objectSchema implements goform.Schema.
var _ goform.Schema = (*objectSchema)(nil)

// sortedKnownKeys returns field keys in ascending order for deterministic
// issue ordering.
func (o *objectSchema) sortedKnownKeys() []string {
	if o.sortedKeys != nil {
		return o.sortedKeys
	}
	kfs := make([]string, 0, len(o.fields))
	for k := range o.fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	o.sortedKeys = kfs
	return o.sortedKeys
}

func (o *objectSchema) clone() *objectSchema {
	fields := make(map[string]Adapter, len(o.fields))
	for k, v := range o.fields {
		fields[k] = v
	}
	required := make(map[string]struct{}, len(o.required))
	for k := range o.required {
		required[k] = struct{}{}
	}
	return &objectSchema{fields: fields, required: required}
}

// Partial returns a copy with every key optional.
func (o *objectSchema) Partial() goform.Schema {
	c := o.clone()
	c.required = map[string]struct{}{}
	return c
}

// Required returns a copy with exactly the given keys marked required.
func (o *objectSchema) Required(keys ...string) goform.Schema {
	c := o.clone()
	c.required = make(map[string]struct{}, len(keys))
	for _, k := range keys {
		c.required[k] = struct{}{}
	}
	return c
}

// Merge combines two object schemas: other's fields win per key and the
// required sets union. Merging a non-object schema returns the receiver
// unchanged; composition across implementations is not modeled.
func (o *objectSchema) Merge(other goform.Schema) goform.Schema {
	o2, ok := other.(*objectSchema)
	if !ok {
		return o.clone()
	}
	c := o.clone()
	for k, v := range o2.fields {
		c.fields[k] = v
	}
	for k := range o2.required {
		c.required[k] = struct{}{}
	}
	return c
}

// SafeParse checks a value tree against the object's fields. Empty values
// (nil, "", empty containers) skip their field adapter; only the required
// set rejects them.
func (o *objectSchema) SafeParse(ctx context.Context, v any) goform.ParseResult {
	m, ok := v.(map[string]any)
	if !ok {
		return goform.ParseResult{Issues: goform.Issues{
			{Path: "/", Code: goform.CodeInvalidType, Message: "invalid type", Hint: "expected object"},
		}}
	}
	var iss goform.Issues
	for _, k := range o.sortedKnownKeys() {
		val, present := m[k]
		if !present || isEmpty(val) {
			if _, req := o.required[k]; req {
				iss = goform.AppendIssues(iss, goform.Issue{
					Path: "/" + k, Code: goform.CodeRequired, Message: "required property missing", Hint: "required property missing",
				})
			}
			continue
		}
		iss = goform.AppendIssues(iss, o.fields[k].Check(ctx, "/"+k, val)...)
	}
	if len(iss) > 0 {
		return goform.ParseResult{Issues: iss}
	}
	return goform.ParseResult{Success: true}
}

// isEmpty reports whether a value counts as missing for required checks.
func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
