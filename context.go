package goform

import "context"

// formKey scopes one form instance in a context by name. Forms are never
// process-wide singletons: multiple forms coexist independently and
// descendants look their form up by name.
type formKey struct{ name string }

// WithForm stores f in the context under its name for use by arbitrarily
// deep descendants of the component tree.
func WithForm(ctx context.Context, f *Form) context.Context {
	return context.WithValue(ctx, formKey{name: f.Name()}, f)
}

// FormFrom retrieves the form registered under name.
func FormFrom(ctx context.Context, name string) (*Form, bool) {
	f, ok := ctx.Value(formKey{name: name}).(*Form)
	return f, ok
}

// RequireForm returns the named form or an error suitable for bubbling into
// Issues by callers.
func RequireForm(ctx context.Context, name string) (*Form, error) {
	if f, ok := FormFrom(ctx, name); ok {
		return f, nil
	}
	return nil, Issues{Issue{Code: CodeParseError, Message: "form not provided: " + name}}
}
