package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// decode reads an embedded JSON file into T. Unknown fields are rejected so a
// misspelled key in fleet.json or symbols.json fails at load time.
func decode[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("read embedded %s: %w", filename, err)
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("decode %s: %w", filename, err)
	}
	return result, nil
}
