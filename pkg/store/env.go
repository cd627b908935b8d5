package store

import (
	"errors"
	"os"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Env reads configuration from the process environment. All values are
// strings; pair it with string settings or layer it behind a typed store.
type Env struct{}

// EnvOption configures the environment store.
type EnvOption func(*envConfig)

type envConfig struct {
	dotenv      bool
	dotenvFiles []string
}

// WithDotenv loads the given .env files into the process environment before
// the store is used. Without arguments the default .env file is loaded when
// present; a missing default file is not an error.
func WithDotenv(files ...string) EnvOption {
	return func(c *envConfig) {
		c.dotenv = true
		c.dotenvFiles = files
	}
}

// NewEnv builds an environment store.
func NewEnv(opts ...EnvOption) (*Env, error) {
	var c envConfig
	for _, opt := range opts {
		opt(&c)
	}
	if c.dotenv {
		if len(c.dotenvFiles) == 0 {
			// The default .env file might not exist and that's ok.
			_ = godotenv.Load()
		} else if err := godotenv.Load(c.dotenvFiles...); err != nil {
			return nil, errors.Join(ErrLoadDotenv, err)
		}
	}
	return &Env{}, nil
}

func (e *Env) Lookup(key string) (any, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil, false
	}
	return v, true
}

// FromEnv parses the environment into a struct of type T using `env` field
// tags, then exposes the typed field values as a Map keyed by their tag
// names. It is the bridge between struct-schema environment parsing and
// setting declarations: the environment supplies strings, the struct supplies
// the types.
//
//	type schema struct {
//	    Retries int  `env:"MYAPP_RETRIES" envDefault:"3"`
//	    Debug   bool `env:"MYAPP_DEBUG"`
//	}
//	cfg, err := store.FromEnv[schema]()
func FromEnv[T any]() (Map, error) {
	var schema T
	if err := env.Parse(&schema); err != nil {
		return nil, errors.Join(ErrParseEnv, err)
	}
	m := make(Map)
	collectTagged(reflect.ValueOf(schema), "", m)
	return m, nil
}

func collectTagged(rv reflect.Value, prefix string, m Map) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag, ok := field.Tag.Lookup("env"); ok {
			name, _, _ := strings.Cut(tag, ",")
			if name != "" && name != "-" {
				m[prefix+name] = rv.Field(i).Interface()
			}
			continue
		}
		if field.Type.Kind() == reflect.Struct {
			collectTagged(rv.Field(i), prefix+field.Tag.Get("envPrefix"), m)
		}
	}
}
