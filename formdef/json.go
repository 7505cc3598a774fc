package formdef

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// DecodeJSON parses one definition document in JSON syntax.
func DecodeJSON(src []byte) (*Definition, error) {
	var m docModel
	if err := json.Unmarshal(src, &m); err != nil {
		return nil, fmt.Errorf("formdef: decode json: %w", err)
	}
	return m.definition(), nil
}
