package formdef

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile is the top-level structure of a definition file for decoding.
type hclFile struct {
	Forms []*hclForm `hcl:"form,block"`
}

type hclForm struct {
	Name   string      `hcl:"name,label"`
	Fields []*hclField `hcl:"field,block"`
	Groups []*hclGroup `hcl:"group,block"`
}

type hclField struct {
	Name     string    `hcl:"name,label"`
	Kind     string    `hcl:"kind,optional"`
	Required bool      `hcl:"required,optional"`
	Initial  cty.Value `hcl:"initial,optional"`
}

type hclGroup struct {
	Name  string    `hcl:"name,label"`
	Kind  string    `hcl:"kind,optional"`
	Items cty.Value `hcl:"items,optional"`
}

// DecodeHCL parses definition source in HCL syntax. filename is used for
// diagnostics only. Every form block in the file yields one Definition.
func DecodeHCL(src []byte, filename string) ([]*Definition, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("formdef: parse %s: %w", filename, diags)
	}
	var root hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("formdef: decode %s: %w", filename, diags)
	}
	defs := make([]*Definition, 0, len(root.Forms))
	for _, hf := range root.Forms {
		def := &Definition{Name: hf.Name}
		for _, field := range hf.Fields {
			initial, err := ctyToNative(field.Initial)
			if err != nil {
				return nil, fmt.Errorf("formdef: field %q: %w", field.Name, err)
			}
			def.Fields = append(def.Fields, FieldDef{
				Name:     field.Name,
				Kind:     field.Kind,
				Required: field.Required,
				Initial:  initial,
			})
		}
		for _, group := range hf.Groups {
			items, err := ctyToNative(group.Items)
			if err != nil {
				return nil, fmt.Errorf("formdef: group %q: %w", group.Name, err)
			}
			arr, _ := items.([]any)
			def.Groups = append(def.Groups, GroupDef{Name: group.Name, Kind: group.Kind, Items: arr})
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// ctyToNative recursively converts a cty.Value to its most natural Go
// counterpart, the shape the registry and schema layers consume.
func ctyToNative(v cty.Value) (any, error) {
	if v == cty.NilVal || v.IsNull() || !v.IsKnown() {
		return nil, nil
	}
	ty := v.Type()
	switch {
	case ty == cty.String:
		return v.AsString(), nil
	case ty == cty.Number:
		var f float64
		if err := gocty.FromCtyValue(v, &f); err != nil {
			return nil, fmt.Errorf("convert number: %w", err)
		}
		return f, nil
	case ty == cty.Bool:
		var b bool
		if err := gocty.FromCtyValue(v, &b); err != nil {
			return nil, fmt.Errorf("convert bool: %w", err)
		}
		return b, nil
	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		slice := make([]any, 0)
		it := v.ElementIterator()
		for it.Next() {
			_, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, err
			}
			slice = append(slice, nv)
		}
		return slice, nil
	case ty.IsObjectType() || ty.IsMapType():
		m := make(map[string]any)
		it := v.ElementIterator()
		for it.Next() {
			key, ev := it.Element()
			nv, err := ctyToNative(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", key.AsString(), err)
			}
			m[key.AsString()] = nv
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", ty.FriendlyName())
	}
}
