package formdef

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// docModel is the YAML/JSON shape of one definition.
type docModel struct {
	Name   string     `yaml:"name" json:"name"`
	Fields []docField `yaml:"fields" json:"fields"`
	Groups []docGroup `yaml:"groups" json:"groups"`
}

type docField struct {
	Name     string `yaml:"name" json:"name"`
	Kind     string `yaml:"kind" json:"kind"`
	Required bool   `yaml:"required" json:"required"`
	Initial  any    `yaml:"initial" json:"initial"`
}

type docGroup struct {
	Name  string `yaml:"name" json:"name"`
	Kind  string `yaml:"kind" json:"kind"`
	Items []any  `yaml:"items" json:"items"`
}

func (m docModel) definition() *Definition {
	def := &Definition{Name: m.Name}
	for _, fd := range m.Fields {
		def.Fields = append(def.Fields, FieldDef(fd))
	}
	for _, g := range m.Groups {
		def.Groups = append(def.Groups, GroupDef(g))
	}
	return def
}

// DecodeYAML parses one definition document in YAML syntax.
func DecodeYAML(src []byte) (*Definition, error) {
	var m docModel
	if err := yaml.Unmarshal(src, &m); err != nil {
		return nil, fmt.Errorf("formdef: decode yaml: %w", err)
	}
	return m.definition(), nil
}
