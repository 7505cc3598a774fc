package schema

import (
	"context"

	goform "github.com/reoring/goform"
)

// String returns the minimal string adapter.
func String() Adapter {
	return Adapter{check: func(_ context.Context, path string, v any) goform.Issues {
		if _, ok := v.(string); !ok {
			return goform.Issues{goform.Issue{Path: path, Code: goform.CodeInvalidType, Message: "invalid type", Hint: "expected string"}}
		}
		return nil
	}}
}

// Number returns the minimal number adapter. Go ints and floats both pass.
func Number() Adapter {
	return Adapter{check: func(_ context.Context, path string, v any) goform.Issues {
		if _, ok := numeric(v); !ok {
			return goform.Issues{goform.Issue{Path: path, Code: goform.CodeInvalidType, Message: "invalid type", Hint: "expected number"}}
		}
		return nil
	}}
}

// Bool returns the minimal bool adapter.
func Bool() Adapter {
	return Adapter{check: func(_ context.Context, path string, v any) goform.Issues {
		if _, ok := v.(bool); !ok {
			return goform.Issues{goform.Issue{Path: path, Code: goform.CodeInvalidType, Message: "invalid type", Hint: "expected bool"}}
		}
		return nil
	}}
}

// Any accepts every value; rules chained onto it still apply.
func Any() Adapter { return Adapter{} }

// Array checks a dense []any whose elements all satisfy elem. Element
// issues are reported at path/index, nil slots are skipped: a group item
// that was cleared but not deleted is absent, not wrong.
func Array(elem Adapter) Adapter {
	return Adapter{check: func(ctx context.Context, path string, v any) goform.Issues {
		arr, ok := v.([]any)
		if !ok {
			return goform.Issues{goform.Issue{Path: path, Code: goform.CodeInvalidType, Message: "invalid type", Hint: "expected array"}}
		}
		var iss goform.Issues
		for i, item := range arr {
			if item == nil {
				continue
			}
			iss = goform.AppendIssues(iss, elem.Check(ctx, path+"/"+itoa(i), item)...)
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	}}
}

// Nested embeds another schema as a field adapter; its issues are rebased
// under the field's path.
func Nested(s goform.Schema) Adapter {
	return Adapter{check: func(ctx context.Context, path string, v any) goform.Issues {
		pr := s.SafeParse(ctx, v)
		if pr.Success {
			return nil
		}
		return rebase(path, pr.Issues)
	}}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	bp := len(buf)
	for i > 0 {
		bp--
		buf[bp] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[bp:])
}
