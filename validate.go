package goform

import (
	"context"

	"github.com/reoring/goform/internal/keytree"
)

// Result is the aggregate outcome of one validation pass.
type Result struct {
	// Fields is the value tree that was validated, rebuilt over the
	// post-update registry so callers see exactly what was checked,
	// including array groups as dense slices.
	Fields map[string]any
	// Valid is true when no field-level or unregistered error remains.
	Valid bool
	// Errors maps flat field names (and unregistered tree paths) to their
	// first reported message. Nil when Valid.
	Errors map[string]string
}

// runValidation executes one whole-form validation pass over reg:
//
//  1. Flatten mounted fields into a value tree; unregistered entries are
//     excluded from the input but keep their names for suppression decisions.
//  2. Compose the effective schema: the base made fully optional, merged
//     with the base restricted to the keys currently mounted and required.
//     Required-ness is therefore driven by what is on screen, never granting
//     a false valid verdict for data rejected at an unexposed path.
//  3. SafeParse and map each issue's pointer path to a flat field name,
//     keeping the first message per name.
//  4. Write errors onto matching records, clear all others. Issues whose
//     name matches no registry entry are returned separately so they are
//     never silently dropped.
//  5. With touch set, force touched on every stored field (not just the
//     mounted ones) so submission surfaces errors the user never focused.
func runValidation(ctx context.Context, reg *Registry, s Schema, touch bool) (Result, map[string]string) {
	tree := keytree.BuildTree(reg.registeredValues())

	var pr ParseResult
	pr.Success = true
	if s != nil {
		effective := s.Partial().Merge(s.Required(reg.requiredRegisteredKeys()...))
		pr = effective.SafeParse(ctx, tree)
	}

	handled := map[string]string{}
	unregistered := map[string]string{}
	if !pr.Success {
		for _, it := range pr.Issues {
			name := keytree.PointerToKey(it.Path)
			if name == "" {
				name = it.Path
			}
			if reg.Has(name) {
				if _, dup := handled[name]; !dup {
					handled[name] = it.Message
				}
				continue
			}
			if _, dup := unregistered[name]; !dup {
				unregistered[name] = it.Message
			}
		}
	}

	reg.each(func(rec *FieldRecord) {
		if msg, ok := handled[rec.Name]; ok {
			rec.Error = true
			rec.ErrorMessage = msg
		} else {
			rec.Error = false
			rec.ErrorMessage = ""
		}
		if touch {
			rec.Touched = true
		}
	})

	res := Result{
		Fields: keytree.BuildTree(reg.registeredValues()),
		Valid:  len(handled)+len(unregistered) == 0,
	}
	if !res.Valid {
		res.Errors = make(map[string]string, len(handled)+len(unregistered))
		for k, v := range handled {
			res.Errors[k] = v
		}
		for k, v := range unregistered {
			res.Errors[k] = v
		}
	}
	return res, unregistered
}
