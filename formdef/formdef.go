// Package formdef loads declarative form definitions — field and group
// names, required flags, kinds and initial values — from HCL, YAML or JSON
// sources and turns them into ready-registered forms.
package formdef

import (
	goform "github.com/reoring/goform"
	"github.com/reoring/goform/schema"
)

// Definition is the format-agnostic model of one form.
type Definition struct {
	Name   string
	Fields []FieldDef
	Groups []GroupDef
}

// FieldDef declares a scalar field.
type FieldDef struct {
	Name     string
	Kind     string // "", "string", "number" or "bool"
	Required bool
	Initial  any
}

// GroupDef declares an array group seeded with items.
type GroupDef struct {
	Name  string
	Kind  string // element kind, same values as FieldDef.Kind
	Items []any
}

// InitialValues flattens the definition into the initial-values environment
// field registration resolves against.
func (d *Definition) InitialValues() map[string]any {
	out := make(map[string]any, len(d.Fields)+len(d.Groups))
	for _, fd := range d.Fields {
		if fd.Initial != nil {
			out[fd.Name] = fd.Initial
		}
	}
	for _, g := range d.Groups {
		out[g.Name] = append([]any(nil), g.Items...)
	}
	return out
}

// Schema derives the declarative schema for the definition: one adapter per
// field keyed by kind. Required-ness is not baked in here; it is driven per
// pass by which fields are mounted and flagged.
func (d *Definition) Schema() goform.Schema {
	b := schema.Object()
	for _, fd := range d.Fields {
		b.Field(fd.Name, kindAdapter(fd.Kind))
	}
	for _, g := range d.Groups {
		b.Field(g.Name, schema.Array(kindAdapter(g.Kind)))
	}
	return b.Build()
}

func kindAdapter(kind string) schema.Adapter {
	switch kind {
	case "string":
		return schema.String()
	case "number":
		return schema.Number()
	case "bool":
		return schema.Bool()
	default:
		return schema.Any()
	}
}

// Build constructs a Form from the definition: the definition supplies the
// name, initial values and schema unless cfg already provides them, then
// every declared field and group is registered.
func (d *Definition) Build(cfg goform.Config) *goform.Form {
	if cfg.Name == "" {
		cfg.Name = d.Name
	}
	if cfg.InitialValues == nil {
		cfg.InitialValues = d.InitialValues()
	}
	if cfg.Schema == nil {
		cfg.Schema = d.Schema()
	}
	f := goform.New(cfg)
	for _, fd := range d.Fields {
		f.Register(fd.Name, goform.FieldPatch{Required: goform.Some(fd.Required)}, false)
	}
	for _, g := range d.Groups {
		f.Register(g.Name, goform.FieldPatch{}, true)
	}
	return f
}
