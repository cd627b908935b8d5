package store

import (
	"errors"

	"dario.cat/mergo"
)

// Merge deep-merges map sources into a single Map. Later sources override
// earlier ones, including keys inside nested maps, which makes it suitable
// for layering a base configuration under environment-specific overrides.
// Sources are never mutated.
func Merge(sources ...map[string]any) (Map, error) {
	merged := make(map[string]any)
	for _, src := range sources {
		if err := mergo.Merge(&merged, deepCopy(src), mergo.WithOverride); err != nil {
			return nil, errors.Join(ErrMerge, err)
		}
	}
	return Map(merged), nil
}

func deepCopy(src map[string]any) map[string]any {
	out := make(map[string]any, len(src))
	for k, v := range src {
		if m, ok := v.(map[string]any); ok {
			out[k] = deepCopy(m)
			continue
		}
		out[k] = v
	}
	return out
}
