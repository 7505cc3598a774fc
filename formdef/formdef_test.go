package formdef_test

import (
	"context"
	"testing"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/formdef"
)

const signupHCL = `
form "signup" {
  field "email" {
    kind     = "string"
    required = true
    initial  = "a@b.com"
  }
  field "age" {
    kind = "number"
  }
  group "tags" {
    kind  = "string"
    items = ["a", "b"]
  }
}
`

func TestDecodeHCL(t *testing.T) {
	defs, err := formdef.DecodeHCL([]byte(signupHCL), "signup.hcl")
	if err != nil {
		t.Fatalf("DecodeHCL: %v", err)
	}
	if len(defs) != 1 {
		t.Fatalf("expected one definition, got %d", len(defs))
	}
	def := defs[0]
	if def.Name != "signup" {
		t.Fatalf("unexpected name %q", def.Name)
	}
	if len(def.Fields) != 2 || len(def.Groups) != 1 {
		t.Fatalf("unexpected shape: %+v", def)
	}
	email := def.Fields[0]
	if email.Name != "email" || !email.Required || email.Initial != "a@b.com" {
		t.Fatalf("unexpected email field: %+v", email)
	}
	tags := def.Groups[0]
	if len(tags.Items) != 2 || tags.Items[0] != "a" {
		t.Fatalf("unexpected tags group: %+v", tags)
	}
}

func TestDecodeHCL_BadSyntax(t *testing.T) {
	if _, err := formdef.DecodeHCL([]byte(`form "x" {`), "x.hcl"); err == nil {
		t.Fatalf("expected parse error")
	}
}

const signupYAML = `
name: signup
fields:
  - name: email
    kind: string
    required: true
    initial: a@b.com
groups:
  - name: tags
    kind: string
    items: [a, b]
`

func TestDecodeYAML(t *testing.T) {
	def, err := formdef.DecodeYAML([]byte(signupYAML))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	if def.Name != "signup" || len(def.Fields) != 1 || len(def.Groups) != 1 {
		t.Fatalf("unexpected definition: %+v", def)
	}
	if def.Fields[0].Initial != "a@b.com" {
		t.Fatalf("unexpected initial: %v", def.Fields[0].Initial)
	}
}

func TestDecodeJSON(t *testing.T) {
	src := []byte(`{"name":"signup","fields":[{"name":"email","kind":"string","required":true,"initial":"a@b.com"}],"groups":[{"name":"tags","items":["a"]}]}`)
	def, err := formdef.DecodeJSON(src)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if def.Fields[0].Name != "email" || def.Groups[0].Items[0] != "a" {
		t.Fatalf("unexpected definition: %+v", def)
	}
}

func TestDefinition_BuildRegistersEverything(t *testing.T) {
	defs, err := formdef.DecodeHCL([]byte(signupHCL), "signup.hcl")
	if err != nil {
		t.Fatalf("DecodeHCL: %v", err)
	}
	f := defs[0].Build(goform.Config{})
	if f.Name() != "signup" {
		t.Fatalf("form name must come from the definition, got %q", f.Name())
	}
	if !f.IsRegistered("email") || !f.IsRegistered("age") {
		t.Fatalf("fields must be registered")
	}
	if !f.IsRegistered("tags.0") || !f.IsRegistered("tags.1") {
		t.Fatalf("group items must be registered")
	}

	res := f.Validate(context.Background(), goform.ValidateOpt{Touch: true})
	if !res.Valid {
		t.Fatalf("satisfied definition must validate, got %v", res.Errors)
	}
	if got, _ := res.Fields["email"].(string); got != "a@b.com" {
		t.Fatalf("unexpected fields tree: %v", res.Fields)
	}
}

func TestDefinition_BuildRequiredEmptyFails(t *testing.T) {
	def, err := formdef.DecodeYAML([]byte("name: login\nfields:\n  - name: email\n    kind: string\n    required: true\n"))
	if err != nil {
		t.Fatalf("DecodeYAML: %v", err)
	}
	f := def.Build(goform.Config{})
	res := f.Validate(context.Background())
	if res.Valid {
		t.Fatalf("required field without initial must fail validation")
	}
	if res.Errors["email"] == "" {
		t.Fatalf("expected email error, got %v", res.Errors)
	}
}
