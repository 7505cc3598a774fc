package schema

import (
	"sort"

	goform "github.com/reoring/goform"
)

// Builder assembles an object schema field by field.
type Builder struct {
	fields   map[string]Adapter
	required map[string]struct{}
}

// FieldStep scopes required/optional markers to the field just added.
type FieldStep struct {
	b    *Builder
	name string
}

// Object creates a new object schema builder.
func Object() *Builder {
	return &Builder{
		fields:   map[string]Adapter{},
		required: map[string]struct{}{},
	}
}

// Field registers a field with its adapter.
func (b *Builder) Field(name string, ad Adapter) *FieldStep {
	b.fields[name] = ad
	return &FieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *FieldStep) Required() *Builder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *FieldStep) Optional() *Builder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *FieldStep) Field(name string, ad Adapter) *FieldStep { return f.b.Field(name, ad) }
func (f *FieldStep) Require(names ...string) *Builder         { return f.b.Require(names...) }
func (f *FieldStep) Build() goform.Schema                     { return f.b.Build() }
func (f *FieldStep) MustBuild() goform.Schema                 { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *Builder) Require(names ...string) *Builder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Build returns the assembled schema.
func (b *Builder) Build() goform.Schema {
	fields := make(map[string]Adapter, len(b.fields))
	for k, v := range b.fields {
		fields[k] = v
	}
	required := make(map[string]struct{}, len(b.required))
	for k := range b.required {
		required[k] = struct{}{}
	}
	kfs := make([]string, 0, len(fields))
	for k := range fields {
		kfs = append(kfs, k)
	}
	sort.Strings(kfs)
	return &objectSchema{fields: fields, required: required, sortedKeys: kfs}
}

// MustBuild mirrors Build; it exists for call-site symmetry with builders
// whose construction can fail.
func (b *Builder) MustBuild() goform.Schema {
	return b.Build()
}
