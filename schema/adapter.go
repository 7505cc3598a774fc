package schema

import (
	"context"
	"regexp"

	goform "github.com/reoring/goform"
)

// Adapter checks a single value at a pointer path. Adapters compose by
// wrapping: each rule method returns a new Adapter that runs the previous
// check first.
type Adapter struct {
	check func(ctx context.Context, path string, v any) goform.Issues
}

// Check runs the adapter against v, reporting issues at path.
func (ad Adapter) Check(ctx context.Context, path string, v any) goform.Issues {
	if ad.check == nil {
		return nil
	}
	return ad.check(ctx, path, v)
}

// wrap chains a rule after the existing check, short-circuiting on failure
// so rules never see values of the wrong type.
func (ad Adapter) wrap(rule func(ctx context.Context, path string, v any) goform.Issues) Adapter {
	prev := ad.check
	return Adapter{check: func(ctx context.Context, path string, v any) goform.Issues {
		if prev != nil {
			if iss := prev(ctx, path, v); len(iss) > 0 {
				return iss
			}
		}
		return rule(ctx, path, v)
	}}
}

// Min sets a numeric minimum (inclusive).
func (ad Adapter) Min(n float64) Adapter {
	return ad.wrap(func(_ context.Context, path string, v any) goform.Issues {
		if f, ok := numeric(v); ok && f < n {
			return goform.Issues{goform.IssueAt(path, goform.CodeTooSmall, "too small")}
		}
		return nil
	})
}

// Max sets a numeric maximum (inclusive).
func (ad Adapter) Max(n float64) Adapter {
	return ad.wrap(func(_ context.Context, path string, v any) goform.Issues {
		if f, ok := numeric(v); ok && f > n {
			return goform.Issues{goform.IssueAt(path, goform.CodeTooBig, "too big")}
		}
		return nil
	})
}

// MinLen sets a minimum string length.
func (ad Adapter) MinLen(n int) Adapter {
	return ad.wrap(func(_ context.Context, path string, v any) goform.Issues {
		if s, ok := v.(string); ok && len(s) < n {
			return goform.Issues{goform.IssueAt(path, goform.CodeTooShort, "too short")}
		}
		return nil
	})
}

// MaxLen sets a maximum string length.
func (ad Adapter) MaxLen(n int) Adapter {
	return ad.wrap(func(_ context.Context, path string, v any) goform.Issues {
		if s, ok := v.(string); ok && len(s) > n {
			return goform.Issues{goform.IssueAt(path, goform.CodeTooLong, "too long")}
		}
		return nil
	})
}

// Pattern constrains strings to match the anchored regular expression.
// Invalid expressions panic at construction time, like MustCompile.
func (ad Adapter) Pattern(expr string) Adapter {
	re := regexp.MustCompile(expr)
	return ad.wrap(func(_ context.Context, path string, v any) goform.Issues {
		if s, ok := v.(string); ok && !re.MatchString(s) {
			return goform.Issues{goform.IssueAt(path, goform.CodePattern, "does not match pattern")}
		}
		return nil
	})
}

// Refine appends a custom rule. The rule reports its own issues; a plain
// error is wrapped as a parse_error at the value's path.
func (ad Adapter) Refine(fn func(ctx context.Context, v any) error) Adapter {
	return ad.wrap(func(ctx context.Context, path string, v any) goform.Issues {
		err := fn(ctx, v)
		if err == nil {
			return nil
		}
		if iss, ok := goform.AsIssues(err); ok {
			return rebase(path, iss)
		}
		return goform.Issues{{Path: path, Code: goform.CodeParseError, Message: err.Error(), Cause: err}}
	})
}

// rebase prefixes child issue paths with base, mirroring how nested
// structures report through their parent key.
func rebase(base string, iss goform.Issues) goform.Issues {
	out := make(goform.Issues, 0, len(iss))
	for _, it := range iss {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		out = append(out, goform.Issue{Path: p, Code: it.Code, Message: it.Message, Hint: it.Hint, Cause: it.Cause})
	}
	return out
}

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
