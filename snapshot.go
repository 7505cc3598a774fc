package goform

import (
	json "github.com/goccy/go-json"
)

// FieldsJSON encodes the last recomputed value tree as JSON. Array groups
// come out as dense arrays, matching what the schema validated.
func (f *Form) FieldsJSON() ([]byte, error) {
	return json.Marshal(f.Status().Fields)
}

// ResultJSON encodes a validation Result as JSON.
func ResultJSON(res Result) ([]byte, error) {
	return json.Marshal(struct {
		Fields map[string]any    `json:"fields"`
		Valid  bool              `json:"valid"`
		Errors map[string]string `json:"errors,omitempty"`
	}{Fields: res.Fields, Valid: res.Valid, Errors: res.Errors})
}
