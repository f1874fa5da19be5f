package gamedata

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// validator is implemented by data files that can check their own content.
type validator interface {
	validate() error
}

// Load reads one embedded JSON file and decodes it into T.
func Load[T any](filename string) (T, error) {
	content, err := dataFS.ReadFile(filename)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("gamedata: read %s: %w", filename, err)
	}
	return decode[T](filename, content)
}

// decode rejects unknown keys, so a misspelled field in a data file fails at
// startup instead of silently loading as zero. Files implementing validator
// are checked after decoding.
func decode[T any](filename string, content []byte) (T, error) {
	var result T

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&result); err != nil {
		return result, fmt.Errorf("gamedata: parse %s: %w", filename, err)
	}

	if v, ok := any(&result).(validator); ok {
		if err := v.validate(); err != nil {
			return result, fmt.Errorf("gamedata: %s: %w", filename, err)
		}
	}
	return result, nil
}

// uniqueIDs fails on the first id that is empty or seen twice.
func uniqueIDs(kind string, ids []string) error {
	seen := mapset.New[string]()
	for _, id := range ids {
		if id == "" {
			return fmt.Errorf("%s with an empty id", kind)
		}
		if seen.Has(id) {
			return fmt.Errorf("duplicate %s %q", kind, id)
		}
		seen.Put(id)
	}
	return nil
}
