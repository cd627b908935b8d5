package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/appsettings/pkg/store"
)

func TestEnv(t *testing.T) {
	t.Run("reads the process environment as strings", func(t *testing.T) {
		t.Setenv("MYAPP_DSN", "postgres://localhost/app")

		env, err := store.NewEnv()
		require.NoError(t, err)

		v, ok := env.Lookup("MYAPP_DSN")
		require.True(t, ok)
		assert.Equal(t, "postgres://localhost/app", v)
	})

	t.Run("absence is distinguishable from empty", func(t *testing.T) {
		t.Setenv("MYAPP_EMPTY", "")

		env, err := store.NewEnv()
		require.NoError(t, err)

		v, ok := env.Lookup("MYAPP_EMPTY")
		assert.True(t, ok)
		assert.Equal(t, "", v)

		_, ok = env.Lookup("MYAPP_DEFINITELY_NOT_SET")
		assert.False(t, ok)
	})

	t.Run("loads explicit dotenv files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("MYAPP_FROM_DOTENV=hello\n"), 0o600))
		t.Setenv("MYAPP_FROM_DOTENV", "") // restore after the test
		require.NoError(t, os.Unsetenv("MYAPP_FROM_DOTENV"))

		env, err := store.NewEnv(store.WithDotenv(path))
		require.NoError(t, err)

		v, ok := env.Lookup("MYAPP_FROM_DOTENV")
		require.True(t, ok)
		assert.Equal(t, "hello", v)
	})

	t.Run("missing explicit dotenv file is an error", func(t *testing.T) {
		_, err := store.NewEnv(store.WithDotenv("does-not-exist.env"))
		assert.ErrorIs(t, err, store.ErrLoadDotenv)
	})
}

func TestFromEnv(t *testing.T) {
	type schema struct {
		Retries int    `env:"MYAPP_RETRIES" envDefault:"3"`
		Debug   bool   `env:"MYAPP_DEBUG" envDefault:"false"`
		Name    string `env:"MYAPP_NAME"`
		ignored int
	}

	t.Run("exposes typed fields under their tag names", func(t *testing.T) {
		t.Setenv("MYAPP_RETRIES", "7")
		t.Setenv("MYAPP_NAME", "app")

		m, err := store.FromEnv[schema]()
		require.NoError(t, err)

		v, ok := m.Lookup("MYAPP_RETRIES")
		require.True(t, ok)
		assert.Equal(t, 7, v)

		v, ok = m.Lookup("MYAPP_DEBUG")
		require.True(t, ok)
		assert.Equal(t, false, v)

		v, ok = m.Lookup("MYAPP_NAME")
		require.True(t, ok)
		assert.Equal(t, "app", v)
	})

	t.Run("defaults apply when the variable is unset", func(t *testing.T) {
		m, err := store.FromEnv[schema]()
		require.NoError(t, err)

		v, ok := m.Lookup("MYAPP_RETRIES")
		require.True(t, ok)
		assert.Equal(t, 3, v)
	})

	t.Run("invalid values surface as parse errors", func(t *testing.T) {
		t.Setenv("MYAPP_RETRIES", "not-a-number")

		_, err := store.FromEnv[schema]()
		assert.ErrorIs(t, err, store.ErrParseEnv)
	})
}
