package goform_test

import (
	"testing"

	goform "github.com/reoring/goform"
)

func TestRegistry_RegisterResolvesInitialValues(t *testing.T) {
	r := goform.NewRegistry(map[string]any{"email": "a@b.com"}, false)
	r.Register("email", goform.FieldPatch{}, false)

	rec, ok := r.Get("email")
	if !ok {
		t.Fatalf("expected record for email")
	}
	if rec.Value != "a@b.com" || rec.OriginalValue != "a@b.com" {
		t.Fatalf("expected initial value seeded, got %v / %v", rec.Value, rec.OriginalValue)
	}
	if !rec.Touched {
		t.Fatalf("non-empty initial value must register touched")
	}
	if !r.IsRegistered("email") {
		t.Fatalf("expected email registered")
	}
}

func TestRegistry_RegisterEmptyInitialNotTouched(t *testing.T) {
	r := goform.NewRegistry(nil, false)
	r.Register("name", goform.FieldPatch{}, false)
	rec, _ := r.Get("name")
	if rec.Touched {
		t.Fatalf("empty initial value must not register touched")
	}
}

func TestRegistry_TouchOnInit(t *testing.T) {
	r := goform.NewRegistry(nil, true)
	r.Register("name", goform.FieldPatch{}, false)
	rec, _ := r.Get("name")
	if !rec.Touched {
		t.Fatalf("touch-on-init must force touched")
	}
}

func TestRegistry_ArrayRegistrationSeedsItems(t *testing.T) {
	r := goform.NewRegistry(map[string]any{"tags": []any{"a", ""}}, false)
	r.Register("tags", goform.FieldPatch{}, true)

	first, ok := r.Get("tags.0")
	if !ok {
		t.Fatalf("expected tags.0")
	}
	if first.Value != "a" || !first.Touched || !first.Item() {
		t.Fatalf("unexpected tags.0 record: %+v", first)
	}
	second, ok := r.Get("tags.1")
	if !ok {
		t.Fatalf("expected tags.1")
	}
	if second.Value != "" || second.Touched {
		t.Fatalf("empty element must seed untouched, got %+v", second)
	}
}

func TestRegistry_GroupIndexInitialResolution(t *testing.T) {
	r := goform.NewRegistry(map[string]any{"tags": []any{"a", "b"}}, false)
	r.Register("tags.1", goform.FieldPatch{}, false)
	rec, _ := r.Get("tags.1")
	if rec.Value != "b" {
		t.Fatalf("expected group.index initial resolution, got %v", rec.Value)
	}
	if !rec.Item() {
		t.Fatalf("tags.1 must be an item record")
	}
}

func TestRegistry_OverridesWinOverDefaults(t *testing.T) {
	r := goform.NewRegistry(map[string]any{"email": "a@b.com"}, false)
	r.Register("email", goform.FieldPatch{
		Value:    goform.Some[any]("x"),
		Required: goform.Some(true),
	}, false)
	rec, _ := r.Get("email")
	if rec.Value != "x" {
		t.Fatalf("caller override must win, got %v", rec.Value)
	}
	if rec.OriginalValue != "a@b.com" {
		t.Fatalf("original value stays computed unless overridden, got %v", rec.OriginalValue)
	}
	if !rec.Required {
		t.Fatalf("expected required override applied")
	}
}

func TestRegistry_ValuePreservedAcrossUnregisterReregister(t *testing.T) {
	r := goform.NewRegistry(nil, false)
	r.Register("email", goform.FieldPatch{}, false)
	r.Update("email", goform.FieldPatch{Value: goform.Some[any]("kept")})

	r.Unregister("email")
	if r.IsRegistered("email") {
		t.Fatalf("unregister must clear the registered flag")
	}
	if !r.Has("email") {
		t.Fatalf("unregister must keep the record addressable")
	}

	r.Reregister("email")
	if !r.IsRegistered("email") {
		t.Fatalf("reregister must restore the registered flag")
	}
	rec, _ := r.Get("email")
	if rec.Value != "kept" {
		t.Fatalf("value must survive an unregister/reregister cycle, got %v", rec.Value)
	}
}

func TestRegistry_UnknownNameMutationsAreNoOps(t *testing.T) {
	r := goform.NewRegistry(nil, false)
	r.Update("ghost", goform.FieldPatch{Value: goform.Some[any]("x")})
	r.Unregister("ghost")
	r.Reregister("ghost")
	if r.Has("ghost") {
		t.Fatalf("mutating an unknown name must not create records")
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty registry, got %d", r.Len())
	}
}

func TestRegistry_DeleteRemovesOutright(t *testing.T) {
	r := goform.NewRegistry(nil, false)
	r.Register("f", goform.FieldPatch{}, false)
	r.Delete("f")
	if r.Has("f") {
		t.Fatalf("delete must remove the entry")
	}
}
