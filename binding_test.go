package goform_test

import (
	"testing"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/schema"
)

func TestBinding_ProjectsRecordState(t *testing.T) {
	f := goform.New(goform.Config{
		Schema:        schema.Object().Field("email", schema.String()).Build(),
		InitialValues: map[string]any{"email": "a@b.com"},
	})
	f.Register("email", goform.FieldPatch{}, false)

	b := f.Field("email")
	if b.Value != "a@b.com" || !b.Touched || b.Error {
		t.Fatalf("unexpected projection: %+v", b)
	}

	b.SetValue("x@y.com")
	rec, _ := f.FieldRecordOf("email")
	if rec.Value != "x@y.com" {
		t.Fatalf("SetValue must route through the form, got %v", rec.Value)
	}
}

func TestBinding_TouchRoutesThroughForm(t *testing.T) {
	f := goform.New(goform.Config{Schema: schema.Object().Field("name", schema.String()).Build()})
	f.Register("name", goform.FieldPatch{}, false)

	f.Field("name").Touch()
	rec, _ := f.FieldRecordOf("name")
	if !rec.Touched {
		t.Fatalf("expected touched after binding touch")
	}
}

func TestBinding_PropsDefaultContract(t *testing.T) {
	f := goform.New(goform.Config{Schema: schema.Object().Field("name", schema.String()).Build()})
	f.Register("name", goform.FieldPatch{Value: goform.Some[any]("ada")}, false)

	props := f.Field("name").Props(goform.BindingConfig{})
	if props["value"] != "ada" {
		t.Fatalf("expected value prop, got %v", props["value"])
	}
	change, ok := props["onValueChange"].(func(any))
	if !ok {
		t.Fatalf("expected change callback")
	}
	change("lovelace")
	rec, _ := f.FieldRecordOf("name")
	if rec.Value != "lovelace" {
		t.Fatalf("change callback must update the field, got %v", rec.Value)
	}
	touch, ok := props["onTouch"].(func())
	if !ok {
		t.Fatalf("expected touch callback")
	}
	touch()
	rec, _ = f.FieldRecordOf("name")
	if !rec.Touched {
		t.Fatalf("touch callback must mark the field")
	}
}

func TestBinding_PropsCustomKeysAndNumberCast(t *testing.T) {
	f := goform.New(goform.Config{Schema: schema.Object().Field("age", schema.Number()).Build()})
	f.Register("age", goform.FieldPatch{}, false)

	props := f.Field("age").Props(goform.BindingConfig{
		ValueKey:  "val",
		ChangeKey: "onChange",
		TouchKey:  "onBlur",
		Cast:      goform.CastNumber,
	})
	change := props["onChange"].(func(any))

	change("42")
	rec, _ := f.FieldRecordOf("age")
	if rec.Value != float64(42) {
		t.Fatalf("number cast must parse strings, got %v", rec.Value)
	}

	change("not a number")
	rec, _ = f.FieldRecordOf("age")
	if rec.Value != "not a number" {
		t.Fatalf("unparseable strings pass through, got %v", rec.Value)
	}

	change(7)
	rec, _ = f.FieldRecordOf("age")
	if rec.Value != float64(7) {
		t.Fatalf("ints normalize to float64, got %v", rec.Value)
	}
}
