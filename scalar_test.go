package appsettings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appsettings"
	"github.com/dmitrymomot/appsettings/pkg/store"
)

func TestBoolSetting(t *testing.T) {
	t.Parallel()

	t.Run("resolves typed", func(t *testing.T) {
		cfg := store.Map{"MYAPP_DEBUG": false}
		s := appsettings.NewBool("debug", appsettings.WithPrefix("MYAPP_"))
		v, err := s.Value(cfg)
		require.NoError(t, err)
		assert.False(t, v)
	})

	t.Run("built-in default is true", func(t *testing.T) {
		s := appsettings.NewBool("debug")
		v, err := s.Value(store.Map{})
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("rejects non-bool raw values", func(t *testing.T) {
		s := appsettings.NewBool("debug")
		err := s.Check(store.Map{"DEBUG": "yes"})
		assert.ErrorIs(t, err, appsettings.ErrInvalidSetting)
	})
}

func TestIntSetting(t *testing.T) {
	t.Parallel()

	t.Run("retries scenario", func(t *testing.T) {
		cfg := store.Map{"MYAPP_RETRIES": 3}
		s := appsettings.NewInt("retries",
			appsettings.WithPrefix("MYAPP_"),
			appsettings.WithMinimum(0),
			appsettings.WithMaximum(5),
		)
		v, err := s.Value(cfg)
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		require.NoError(t, s.Check(cfg))

		cfg["MYAPP_RETRIES"] = 10
		err = s.Check(cfg)
		require.ErrorIs(t, err, appsettings.ErrInvalidSetting)
		assert.ErrorContains(t, err, "MYAPP_RETRIES")
		assert.ErrorContains(t, err, "5")
	})

	t.Run("timeout default scenario", func(t *testing.T) {
		s := appsettings.NewInt("timeout",
			appsettings.WithPrefix("MYAPP_"),
			appsettings.WithDefault(30),
		)
		v, err := s.Value(store.Map{})
		require.NoError(t, err)
		assert.Equal(t, 30, v)
	})

	t.Run("bounds are inclusive, one unit outside fails", func(t *testing.T) {
		s := appsettings.NewInt("n", appsettings.WithMinimum(2), appsettings.WithMaximum(4))
		assert.NoError(t, s.Check(store.Map{"N": 2}))
		assert.NoError(t, s.Check(store.Map{"N": 4}))
		assert.Error(t, s.Check(store.Map{"N": 1}))
		assert.Error(t, s.Check(store.Map{"N": 5}))
	})

	t.Run("accepts int64 raw values from typed stores", func(t *testing.T) {
		s := appsettings.NewInt("n", appsettings.WithMaximum(100))
		assert.NoError(t, s.Check(store.Map{"N": int64(42)}))
		v, err := s.Value(store.Map{"N": int64(42)})
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("positive variant fixes the minimum at zero", func(t *testing.T) {
		s := appsettings.NewPositiveInt("n", appsettings.WithMaximum(10))
		assert.NoError(t, s.Check(store.Map{"N": 0}))
		assert.Error(t, s.Check(store.Map{"N": -1}))
		assert.Error(t, s.Check(store.Map{"N": 11}))
	})

	t.Run("positive variant overrides a caller minimum", func(t *testing.T) {
		s := appsettings.NewPositiveInt("n", appsettings.WithMinimum(-5))
		assert.Error(t, s.Check(store.Map{"N": -1}))
	})
}

func TestFloatSetting(t *testing.T) {
	t.Parallel()

	t.Run("resolves typed with bounds", func(t *testing.T) {
		s := appsettings.NewFloat("ratio", appsettings.WithMinimum(0), appsettings.WithMaximum(1))
		v, err := s.Value(store.Map{"RATIO": 0.5})
		require.NoError(t, err)
		assert.Equal(t, 0.5, v)

		assert.NoError(t, s.Check(store.Map{"RATIO": 1.0}))
		assert.Error(t, s.Check(store.Map{"RATIO": 1.5}))
	})

	t.Run("rejects ints where floats are declared", func(t *testing.T) {
		s := appsettings.NewFloat("ratio")
		assert.Error(t, s.Check(store.Map{"RATIO": 1}))
	})

	t.Run("positive variant", func(t *testing.T) {
		s := appsettings.NewPositiveFloat("ratio")
		assert.NoError(t, s.Check(store.Map{"RATIO": 0.0}))
		assert.Error(t, s.Check(store.Map{"RATIO": -0.1}))
	})
}

func TestStringSetting(t *testing.T) {
	t.Parallel()

	t.Run("resolves typed", func(t *testing.T) {
		s := appsettings.NewString("name", appsettings.WithDefault("app"))
		v, err := s.Value(store.Map{})
		require.NoError(t, err)
		assert.Equal(t, "app", v)
	})

	t.Run("length bounds", func(t *testing.T) {
		s := appsettings.NewString("code", appsettings.WithMinLength(2), appsettings.WithMaxLength(4))
		assert.NoError(t, s.Check(store.Map{"CODE": "ab"}))
		assert.NoError(t, s.Check(store.Map{"CODE": "abcd"}))
		assert.Error(t, s.Check(store.Map{"CODE": "a"}))
		assert.Error(t, s.Check(store.Map{"CODE": "abcde"}))
	})

	t.Run("deprecated empty spelling matches min length one", func(t *testing.T) {
		legacy := appsettings.NewString("code", appsettings.WithEmpty(false))
		current := appsettings.NewString("code", appsettings.WithMinLength(1))

		for _, value := range []string{"", "a", "ab"} {
			cfg := store.Map{"CODE": value}
			legacyErr := legacy.Check(cfg)
			currentErr := current.Check(cfg)
			if currentErr == nil {
				assert.NoError(t, legacyErr, "value %q", value)
			} else {
				assert.Error(t, legacyErr, "value %q", value)
			}
		}
	})
}
