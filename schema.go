package goform

import "context"

// ParseResult is the outcome of a whole-tree schema check.
type ParseResult struct {
	Success bool
	Issues  Issues // Pointer-pathed entries; empty when Success.
}

// Schema is the contract the validation pass consumes. Implementations live
// outside the engine (see the schema subpackage for the built-in one); the
// engine only composes and invokes them.
//
// Partial and Required exist so that required-ness can be driven by which
// fields are currently mounted rather than fixed at definition time: the
// engine validates with Partial().Merge(Required(mountedRequired...)).
type Schema interface {
	// Partial returns a copy of the schema with every key optional.
	Partial() Schema
	// Required returns a copy of the schema with exactly the given keys
	// marked required.
	Required(keys ...string) Schema
	// Merge combines this schema with other; other's fields and required
	// markings win on conflict.
	Merge(other Schema) Schema
	// SafeParse checks a value tree. It never returns an error through a
	// second channel: failures are carried as Issues in the result.
	SafeParse(ctx context.Context, v any) ParseResult
}
