package goform

import (
	"strconv"
)

// Binding is the per-field projection handed to a single rendered input:
// a snapshot of display state plus setters routed back through the form.
type Binding struct {
	Name         string
	Value        any
	Touched      bool
	Error        bool
	ErrorMessage string

	form *Form
}

// Field returns the binding for name. The snapshot reflects the record at
// call time; setters stay live.
func (f *Form) Field(name string) Binding {
	rec, _ := f.FieldRecordOf(name)
	return Binding{
		Name:         name,
		Value:        rec.Value,
		Touched:      rec.Touched,
		Error:        rec.Error,
		ErrorMessage: rec.ErrorMessage,
		form:         f,
	}
}

// SetValue routes a widget value change back to the form.
func (b Binding) SetValue(v any) {
	b.form.SetValue(b.Name, v)
}

// Touch marks the field as interacted with.
func (b Binding) Touch() {
	b.form.TouchField(b.Name)
}

// Caster enumerates the value conversions a widget adapter may apply to
// incoming values before they reach the registry.
type Caster int

const (
	CastNone   Caster = iota
	CastNumber        // strings parse as float64; other values pass through
)

// BindingConfig names the props a generic input widget expects and the cast
// applied to values it emits. Empty names fall back to the generic
// value/onValueChange/onTouch contract.
type BindingConfig struct {
	ValueKey  string
	ChangeKey string
	TouchKey  string
	Cast      Caster
}

// Props projects the binding into a prop map for a generic input widget:
// the current value under ValueKey, a change callback under ChangeKey and a
// touch callback under TouchKey.
func (b Binding) Props(cfg BindingConfig) map[string]any {
	valueKey := cfg.ValueKey
	if valueKey == "" {
		valueKey = "value"
	}
	changeKey := cfg.ChangeKey
	if changeKey == "" {
		changeKey = "onValueChange"
	}
	touchKey := cfg.TouchKey
	if touchKey == "" {
		touchKey = "onTouch"
	}
	return map[string]any{
		valueKey: b.Value,
		changeKey: func(v any) {
			b.SetValue(castValue(v, cfg.Cast))
		},
		touchKey: func() { b.Touch() },
	}
}

func castValue(v any, c Caster) any {
	if c != CastNumber {
		return v
	}
	switch t := v.(type) {
	case string:
		if f, err := strconv.ParseFloat(t, 64); err == nil {
			return f
		}
		return t
	case int:
		return float64(t)
	default:
		return v
	}
}
