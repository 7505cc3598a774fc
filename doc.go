package goform

// Package goform is a declarative form-state engine. It tracks field
// values, touched/error state and validation results across an arbitrarily
// nested set of named fields (including repeating array groups) and drives
// submission.
//
// The engine provides:
//
// - A field registry keyed by name, where array items use a "group.index"
//   naming convention and survive unmount/remount cycles
// - A validation pass that bridges the flat field map and the nested value
//   tree consumed by a schema validator, mapping path-based issues back
//   onto field names without losing errors reported at paths no field
//   currently renders
// - A form controller with reset/clear/touch-all/submit lifecycle
//   operations and synchronous validity recomputation on every mutation
// - Array-group add/remove with order- and state-preserving reindexing
// - Per-field bindings for wiring generic input widgets
//
// Design policy:
// - Keep only public APIs in the root package; put detailed implementations
//   under internal/.
// - Place the concrete schema implementation under schema/, declarative
//   form definitions under formdef/, and the CLI under cmd/goform.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := schema.Object().
//		Field("email", schema.String()).
//		Field("age", schema.Number().Min(0)).
//		MustBuild()
//	f := goform.New(goform.Config{Schema: s})
//	f.Register("email", goform.FieldPatch{Required: goform.Some(true)}, false)
//	res := f.Validate(ctx)
//
// Registry mutations never fail: mutating an unknown name is a silent
// no-op, and validation issues are state, not errors.
