package goform

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// SubmitFunc receives the validation outcome of a submission attempt.
type SubmitFunc func(ctx context.Context, res Result) error

// Config configures a Form. The zero value is usable: a nil Schema skips
// schema checking, the name defaults to a fresh UUID and logging to
// slog.Default().
type Config struct {
	// Name identifies the form instance in diagnostics and context lookup.
	Name string
	// Schema is the declarative validator the engine composes per pass.
	Schema Schema
	// InitialValues is the environment registration resolves defaults from.
	InitialValues map[string]any
	// TouchOnInit forces every field to start touched.
	TouchOnInit bool
	// OnSubmit is the default submit callback when Submit gets nil.
	OnSubmit SubmitFunc
	// OnChange fires with the recomputed Result after every mutation.
	OnChange func(Result)
	// Logger receives diagnostics such as the re-entrant submit warning.
	Logger *slog.Logger
}

// Form orchestrates lifecycle operations atop one exclusively-owned field
// registry. Every mutation applies as a single state transition and is
// immediately followed by a synchronous validity recomputation, so there is
// no stale-validation window visible to callers.
type Form struct {
	name   string
	logger *slog.Logger

	mu           sync.Mutex
	reg          *Registry
	schema       Schema
	unregistered map[string]string // errors at paths no live field exposes
	submitting   bool
	last         Result

	onSubmit SubmitFunc
	onChange func(Result)
}

// ValidateOpt bundles validation options.
type ValidateOpt struct {
	// Touch forces touched on every stored field as part of the pass.
	Touch bool
}

// New creates a Form.
func New(cfg Config) *Form {
	name := cfg.Name
	if name == "" {
		name = uuid.NewString()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	f := &Form{
		name:     name,
		logger:   logger,
		reg:      NewRegistry(cfg.InitialValues, cfg.TouchOnInit),
		schema:   cfg.Schema,
		onSubmit: cfg.OnSubmit,
		onChange: cfg.OnChange,
	}
	f.last = Result{Fields: map[string]any{}, Valid: true}
	return f
}

// Name returns the form's identity.
func (f *Form) Name() string { return f.name }

// recomputeLocked runs a validation pass and caches the aggregate.
func (f *Form) recomputeLocked(ctx context.Context, touch bool) Result {
	res, unreg := runValidation(ctx, f.reg, f.schema, touch)
	f.unregistered = unreg
	f.last = res
	return res
}

// notify fires the change callback outside the lock.
func (f *Form) notify(res Result) {
	if f.onChange != nil {
		f.onChange(res)
	}
}

// mutate applies fn as one atomic transition and recomputes validity.
func (f *Form) mutate(fn func()) {
	f.mu.Lock()
	fn()
	res := f.recomputeLocked(context.Background(), false)
	f.mu.Unlock()
	f.notify(res)
}

// Register mounts a field (or, with isArray, one field per element of the
// initial value array) and recomputes validity. See Registry.Register.
func (f *Form) Register(name string, overrides FieldPatch, isArray bool) {
	f.mutate(func() { f.reg.Register(name, overrides, isArray) })
}

// Reregister resumes a previously unmounted field's stored state.
func (f *Form) Reregister(name string) {
	f.mutate(func() { f.reg.Reregister(name) })
}

// Unregister marks a field unmounted, preserving its record.
func (f *Form) Unregister(name string) {
	f.mutate(func() { f.reg.Unregister(name) })
}

// DeleteField removes a field's record outright.
func (f *Form) DeleteField(name string) {
	f.mutate(func() { f.reg.Delete(name) })
}

// UpdateField shallow-merges patch into the named record; unknown names are
// a silent no-op.
func (f *Form) UpdateField(name string, patch FieldPatch) {
	f.mutate(func() { f.reg.Update(name, patch) })
}

// SetValue updates a field's value.
func (f *Form) SetValue(name string, v any) {
	f.UpdateField(name, FieldPatch{Value: Some(v)})
}

// TouchField marks a field as touched.
func (f *Form) TouchField(name string) {
	f.UpdateField(name, FieldPatch{Touched: Some(true)})
}

// IsRegistered reports whether name is currently mounted.
func (f *Form) IsRegistered(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reg.IsRegistered(name)
}

// FieldRecordOf returns a copy of the stored record for name.
func (f *Form) FieldRecordOf(name string) (FieldRecord, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reg.Get(name)
}

// Reset replays each field's registration snapshot: value=originalValue,
// touched iff the original value is non-empty, errors cleared. It never
// re-fetches fresh initial values from the environment.
func (f *Form) Reset() {
	f.mutate(func() {
		f.reg.each(func(rec *FieldRecord) {
			rec.Value = rec.OriginalValue
			rec.Touched = truthy(rec.OriginalValue)
			rec.Error = false
			rec.ErrorMessage = ""
		})
	})
}

// Clear empties every field: value=nil, touched=false, errors cleared.
// OriginalValue is preserved so a later Reset still restores pre-clear data.
func (f *Form) Clear() {
	f.mutate(func() {
		f.reg.each(func(rec *FieldRecord) {
			rec.Value = nil
			rec.Touched = false
			rec.Error = false
			rec.ErrorMessage = ""
		})
	})
}

// TouchAll marks every stored field touched. It does not run validation:
// touched is not an input to validity, so the cached aggregate stays valid.
func (f *Form) TouchAll() {
	f.mu.Lock()
	f.reg.each(func(rec *FieldRecord) { rec.Touched = true })
	f.mu.Unlock()
}

// Validate runs one whole-form pass and returns the aggregate.
func (f *Form) Validate(ctx context.Context, opts ...ValidateOpt) Result {
	var opt ValidateOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	f.mu.Lock()
	res := f.recomputeLocked(ctx, opt.Touch)
	f.mu.Unlock()
	f.notify(res)
	return res
}

// Submit validates with touch and invokes handler (or the configured
// OnSubmit) with the outcome. A submission already in flight makes the call
// a warned no-op; re-entrant submits are rejected, never queued. The
// submitting flag is cleared even when the handler fails, and the handler's
// error propagates to the caller.
func (f *Form) Submit(ctx context.Context, handler SubmitFunc) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		f.logger.Warn("goform: submit already in progress", "form", f.name)
		return nil
	}
	f.submitting = true
	res := f.recomputeLocked(ctx, true)
	h := handler
	if h == nil {
		h = f.onSubmit
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	f.notify(res)
	if h == nil {
		return nil
	}
	return h(ctx, res)
}

// Submitting reports whether a submission is in flight.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Status returns the last recomputed aggregate without running a new pass.
func (f *Form) Status() Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}
