package appsettings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appsettings"
	"github.com/dmitrymomot/appsettings/pkg/store"
)

func TestSliceSetting(t *testing.T) {
	t.Parallel()

	t.Run("resolves typed slices", func(t *testing.T) {
		cfg := store.Map{"HOSTS": []any{"a", "b"}}
		s := appsettings.NewSlice("hosts")
		v, err := s.Value(cfg)
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, v)

		strs, err := s.Strings(cfg)
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, strs)
	})

	t.Run("accepts concrete slice types", func(t *testing.T) {
		s := appsettings.NewSlice("hosts")
		assert.NoError(t, s.Check(store.Map{"HOSTS": []string{"a"}}))
		v, err := s.Value(store.Map{"HOSTS": []string{"a"}})
		require.NoError(t, err)
		assert.Equal(t, []any{"a"}, v)
	})

	t.Run("item type constraint", func(t *testing.T) {
		s := appsettings.NewSlice("hosts", appsettings.WithItemType[string]())
		assert.NoError(t, s.Check(store.Map{"HOSTS": []any{"a", "b"}}))

		err := s.Check(store.Map{"HOSTS": []any{"a", 1}})
		require.ErrorIs(t, err, appsettings.ErrInvalidSetting)
		assert.ErrorContains(t, err, "all items must be string")
	})

	t.Run("length bounds and the deprecated empty alias", func(t *testing.T) {
		s := appsettings.NewSlice("hosts", appsettings.WithMinLength(1), appsettings.WithMaxLength(2))
		assert.NoError(t, s.Check(store.Map{"HOSTS": []any{"a"}}))
		assert.Error(t, s.Check(store.Map{"HOSTS": []any{}}))
		assert.Error(t, s.Check(store.Map{"HOSTS": []any{"a", "b", "c"}}))

		legacy := appsettings.NewSlice("hosts", appsettings.WithEmpty(false))
		assert.Error(t, legacy.Check(store.Map{"HOSTS": []any{}}))
		assert.NoError(t, legacy.Check(store.Map{"HOSTS": []any{"a"}}))
	})

	t.Run("default is an empty slice", func(t *testing.T) {
		s := appsettings.NewSlice("hosts")
		v, err := s.Value(store.Map{})
		require.NoError(t, err)
		assert.Empty(t, v)
	})
}

func TestSetSetting(t *testing.T) {
	t.Parallel()

	t.Run("accepts the struct{} map idiom only", func(t *testing.T) {
		s := appsettings.NewSet("flags")
		assert.NoError(t, s.Check(store.Map{"FLAGS": map[string]struct{}{"a": {}}}))
		assert.Error(t, s.Check(store.Map{"FLAGS": []string{"a"}}))
		assert.Error(t, s.Check(store.Map{"FLAGS": map[string]bool{"a": true}}))
	})

	t.Run("resolves to a generic set", func(t *testing.T) {
		s := appsettings.NewSet("flags")
		v, err := s.Value(store.Map{"FLAGS": map[string]struct{}{"a": {}, "b": {}}})
		require.NoError(t, err)
		assert.Equal(t, map[any]struct{}{"a": {}, "b": {}}, v)
	})

	t.Run("member type and length constraints", func(t *testing.T) {
		s := appsettings.NewSet("flags", appsettings.WithItemType[string](), appsettings.WithMaxLength(2))
		assert.NoError(t, s.Check(store.Map{"FLAGS": map[any]struct{}{"a": {}}}))
		assert.Error(t, s.Check(store.Map{"FLAGS": map[any]struct{}{1: {}}}))
		assert.Error(t, s.Check(store.Map{"FLAGS": map[any]struct{}{"a": {}, "b": {}, "c": {}}}))
	})
}

func TestTupleSetting(t *testing.T) {
	t.Parallel()

	t.Run("accepts fixed-size arrays only", func(t *testing.T) {
		s := appsettings.NewTuple("pair")
		assert.NoError(t, s.Check(store.Map{"PAIR": [2]int{1, 2}}))
		assert.Error(t, s.Check(store.Map{"PAIR": []int{1, 2}}))
	})

	t.Run("resolves to a slice copy", func(t *testing.T) {
		s := appsettings.NewTuple("pair")
		v, err := s.Value(store.Map{"PAIR": [2]string{"a", "b"}})
		require.NoError(t, err)
		assert.Equal(t, []any{"a", "b"}, v)
	})

	t.Run("item type constraint", func(t *testing.T) {
		s := appsettings.NewTuple("pair", appsettings.WithItemType[int]())
		assert.NoError(t, s.Check(store.Map{"PAIR": [2]int{1, 2}}))
		assert.Error(t, s.Check(store.Map{"PAIR": [2]any{1, "b"}}))
	})
}
