package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appsettings/pkg/store"
)

func TestMap(t *testing.T) {
	t.Parallel()

	m := store.Map{
		"MYAPP_RETRIES": 3,
		"MYAPP_NIL":     nil,
	}

	t.Run("present key", func(t *testing.T) {
		v, ok := m.Lookup("MYAPP_RETRIES")
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("present nil is distinguishable from absence", func(t *testing.T) {
		v, ok := m.Lookup("MYAPP_NIL")
		assert.True(t, ok)
		assert.Nil(t, v)

		_, ok = m.Lookup("MYAPP_MISSING")
		assert.False(t, ok)
	})
}

func TestMulti(t *testing.T) {
	t.Parallel()

	primary := store.Map{"KEY": "primary"}
	fallback := store.Map{"KEY": "fallback", "ONLY_FALLBACK": true}
	multi := store.NewMulti(primary, fallback)

	t.Run("earlier stores win", func(t *testing.T) {
		v, ok := multi.Lookup("KEY")
		require.True(t, ok)
		assert.Equal(t, "primary", v)
	})

	t.Run("falls through to later stores", func(t *testing.T) {
		v, ok := multi.Lookup("ONLY_FALLBACK")
		require.True(t, ok)
		assert.Equal(t, true, v)
	})

	t.Run("absent everywhere", func(t *testing.T) {
		_, ok := multi.Lookup("NOWHERE")
		assert.False(t, ok)
	})
}

func TestMerge(t *testing.T) {
	t.Parallel()

	t.Run("later sources override earlier ones", func(t *testing.T) {
		base := map[string]any{"A": 1, "B": 1}
		over := map[string]any{"B": 2}
		m, err := store.Merge(base, over)
		require.NoError(t, err)

		v, _ := m.Lookup("A")
		assert.Equal(t, 1, v)
		v, _ = m.Lookup("B")
		assert.Equal(t, 2, v)
	})

	t.Run("nested maps merge deeply", func(t *testing.T) {
		base := map[string]any{"MYAPP_CACHE": map[string]any{"SIZE": 10, "TTL": 60}}
		over := map[string]any{"MYAPP_CACHE": map[string]any{"TTL": 90}}
		m, err := store.Merge(base, over)
		require.NoError(t, err)

		v, _ := m.Lookup("MYAPP_CACHE")
		nested := v.(map[string]any)
		assert.Equal(t, 10, nested["SIZE"])
		assert.Equal(t, 90, nested["TTL"])
	})

	t.Run("sources are not mutated", func(t *testing.T) {
		base := map[string]any{"MYAPP_CACHE": map[string]any{"SIZE": 10}}
		over := map[string]any{"MYAPP_CACHE": map[string]any{"SIZE": 20}}
		_, err := store.Merge(base, over)
		require.NoError(t, err)
		assert.Equal(t, 10, base["MYAPP_CACHE"].(map[string]any)["SIZE"])
	})
}
