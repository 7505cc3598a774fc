package goform

import (
	"github.com/reoring/goform/internal/keytree"
)

// Registry maps field names to their records. It owns registration,
// unregistration, deletion and partial updates. None of its operations fail:
// mutating an unknown name is a silent no-op, and callers are expected to
// register before mutating.
//
// A record's presence in the registry is independent of its registered flag;
// only Delete removes an entry outright. Unregistered records keep their
// last value and error so a remount can resume state.
type Registry struct {
	fields      map[string]*FieldRecord
	initial     map[string]any
	touchOnInit bool
}

// NewRegistry creates a registry over the given initial-values environment.
// When touchOnInit is set, every field starts touched regardless of value.
func NewRegistry(initial map[string]any, touchOnInit bool) *Registry {
	if initial == nil {
		initial = map[string]any{}
	}
	return &Registry{
		fields:      map[string]*FieldRecord{},
		initial:     initial,
		touchOnInit: touchOnInit,
	}
}

// initialFor resolves the initial value for a field name, indexing into the
// group's initial array for "group.index" names.
func (r *Registry) initialFor(name string) any {
	k := keytree.Parse(name)
	if k.Kind == keytree.ArrayItem {
		arr, _ := r.initial[k.Group].([]any)
		if k.Index < len(arr) {
			return arr[k.Index]
		}
		return nil
	}
	return r.initial[name]
}

// Register creates (or rebuilds) the record for name with registered=true.
//
// With isArray set and an initial value array present for name, one record
// per element is created, keyed name.0, name.1, ..., each seeded from the
// corresponding element. Otherwise the initial value is resolved directly by
// name (or by group.index indexing) and overrides are merged on top of the
// computed defaults, overrides winning.
//
// Registering an existing name overwrites the stored record; use Reregister
// to resume prior state on remount instead.
func (r *Registry) Register(name string, overrides FieldPatch, isArray bool) {
	if isArray {
		arr, _ := r.initial[name].([]any)
		for i, elem := range arr {
			rec := &FieldRecord{
				Name:          keytree.ItemName(name, i),
				Value:         elem,
				OriginalValue: elem,
				Touched:       truthy(elem) || r.touchOnInit,
				registered:    true,
				item:          true,
			}
			overrides.apply(rec)
			r.fields[rec.Name] = rec
		}
		return
	}
	init := r.initialFor(name)
	rec := &FieldRecord{
		Name:          name,
		Value:         init,
		OriginalValue: init,
		Touched:       truthy(init) || r.touchOnInit,
		registered:    true,
		item:          keytree.Parse(name).Kind == keytree.ArrayItem,
	}
	overrides.apply(rec)
	r.fields[name] = rec
}

// Reregister marks an existing record as mounted again without touching any
// other attribute; a previously unmounted field resumes its stored state.
func (r *Registry) Reregister(name string) {
	if rec, ok := r.fields[name]; ok {
		rec.registered = true
	}
}

// Unregister marks the record as unmounted. The record remains addressable
// and its value is preserved for a subsequent Reregister.
func (r *Registry) Unregister(name string) {
	if rec, ok := r.fields[name]; ok {
		rec.registered = false
	}
}

// Delete removes the entry entirely; used when an array item is permanently
// dropped.
func (r *Registry) Delete(name string) {
	delete(r.fields, name)
}

// Update shallow-merges patch into the existing record. Unknown names are a
// no-op: Update never creates records.
func (r *Registry) Update(name string, patch FieldPatch) {
	if rec, ok := r.fields[name]; ok {
		patch.apply(rec)
	}
}

// IsRegistered reports whether an entry exists with registered=true.
func (r *Registry) IsRegistered(name string) bool {
	rec, ok := r.fields[name]
	return ok && rec.registered
}

// Get returns a copy of the record for name.
func (r *Registry) Get(name string) (FieldRecord, bool) {
	if rec, ok := r.fields[name]; ok {
		return *rec, true
	}
	return FieldRecord{}, false
}

// Has reports whether any entry exists for name, registered or not.
func (r *Registry) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Names returns every stored field name in ascending order.
func (r *Registry) Names() []string {
	return keytree.SortedNames(r.fields)
}

// Len returns the number of stored records.
func (r *Registry) Len() int { return len(r.fields) }

// registeredValues returns the flat name->value map of mounted fields only;
// this is the validation input.
func (r *Registry) registeredValues() map[string]any {
	out := make(map[string]any, len(r.fields))
	for name, rec := range r.fields {
		if rec.registered {
			out[name] = rec.Value
		}
	}
	return out
}

// requiredRegisteredKeys returns the top-level tree keys of mounted fields
// marked required, deduplicated: an item's group counts once.
func (r *Registry) requiredRegisteredKeys() []string {
	set := map[string]struct{}{}
	for name, rec := range r.fields {
		if !rec.registered || !rec.Required {
			continue
		}
		k := keytree.Parse(name)
		if k.Kind == keytree.ArrayItem {
			set[k.Group] = struct{}{}
		} else {
			set[name] = struct{}{}
		}
	}
	return keytree.SortedNames(set)
}

// each visits every stored record in name order.
func (r *Registry) each(fn func(rec *FieldRecord)) {
	for _, name := range r.Names() {
		fn(r.fields[name])
	}
}
