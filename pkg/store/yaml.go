package store

import (
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a top-level YAML mapping into a Map. Values keep the
// natural YAML types (bool, int, float64, string, []any, map[string]any), so
// typed settings validate against them directly.
func ParseYAML(r io.Reader) (Map, error) {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Map{}, nil
		}
		return nil, errors.Join(ErrParseYAML, err)
	}
	return Map(m), nil
}

// LoadYAMLFile reads and decodes a YAML file into a Map.
func LoadYAMLFile(path string) (Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrParseYAML, err)
	}
	defer f.Close()
	return ParseYAML(f)
}
