package goform

// FieldRecord is the value/metadata held per registered field name. Records
// are pure data; the Registry owns every mutation.
type FieldRecord struct {
	// Name is the unique field key. It may contain a single "." separator
	// encoding "<group>.<index>" for array items.
	Name string
	// Value is the current value, any shape.
	Value any
	// OriginalValue is the value captured at registration time; Reset
	// replays it.
	OriginalValue any
	// Touched is true once user interaction or a forced touch-all occurred.
	Touched bool
	// Required marks the key as mandatory for the next validation pass.
	Required bool
	// Error/ErrorMessage are set only by validation and cleared on success.
	Error        bool
	ErrorMessage string

	// registered is true while the owning UI node is mounted. A record with
	// registered=false is retained so its last known value/error survive a
	// remount, unless explicitly deleted.
	registered bool
	// item is true when Name encodes an array index.
	item bool
}

// Registered reports whether the owning UI node is currently mounted.
func (r FieldRecord) Registered() bool { return r.registered }

// Item reports whether the record belongs to an array group.
func (r FieldRecord) Item() bool { return r.item }

// Opt is an optional value cell used by FieldPatch: it distinguishes
// "not provided" from a provided zero value, the closest Go analogue to a
// shallow object merge.
type Opt[T any] struct {
	set bool
	val T
}

// Some wraps v as a provided Opt.
func Some[T any](v T) Opt[T] { return Opt[T]{set: true, val: v} }

// Get returns the value and whether it was provided.
func (o Opt[T]) Get() (T, bool) { return o.val, o.set }

// FieldPatch is a partial update of a FieldRecord. Unset cells leave the
// corresponding attribute untouched. It doubles as the caller-override set
// at registration time.
type FieldPatch struct {
	Value         Opt[any]
	OriginalValue Opt[any]
	Touched       Opt[bool]
	Required      Opt[bool]
	Error         Opt[bool]
	ErrorMessage  Opt[string]
}

// apply shallow-merges the patch into rec.
func (p FieldPatch) apply(rec *FieldRecord) {
	if v, ok := p.Value.Get(); ok {
		rec.Value = v
	}
	if v, ok := p.OriginalValue.Get(); ok {
		rec.OriginalValue = v
	}
	if v, ok := p.Touched.Get(); ok {
		rec.Touched = v
	}
	if v, ok := p.Required.Get(); ok {
		rec.Required = v
	}
	if v, ok := p.Error.Get(); ok {
		rec.Error = v
	}
	if v, ok := p.ErrorMessage.Get(); ok {
		rec.ErrorMessage = v
	}
}

// truthy mirrors the touch-on-nonempty registration rule: nil, false, empty
// string, numeric zero and empty containers are not truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}
