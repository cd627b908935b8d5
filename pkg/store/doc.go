// Package store defines the configuration object settings resolve against and
// a few concrete implementations of it.
//
// The Store interface is deliberately tiny: a read-only lookup by uppercase
// key whose ok result distinguishes absence from a present nil. Settings never
// mutate a store, and a store never validates anything - declarations do.
//
// Implementations:
//
//   - Map: a plain map[string]any, for configuration declared in code and for
//     decoded file sources.
//   - Env: the process environment, optionally seeded from .env files through
//     github.com/joho/godotenv. Values are strings.
//   - ParseYAML / LoadYAMLFile: a YAML mapping decoded with gopkg.in/yaml.v3,
//     keeping natural YAML value types.
//   - Merge: deep merge of map sources (later overrides earlier) via
//     dario.cat/mergo.
//   - Multi: first-match layering over any stores.
//   - FromEnv: environment parsed into a tagged struct schema with
//     github.com/caarlos0/env/v11 and flattened back into a typed Map.
//
// A typical composition puts code defaults under a file under the
// environment:
//
//	base := store.Map{"MYAPP_RETRIES": 3}
//	file, _ := store.LoadYAMLFile("config.yaml")
//	envs, _ := store.NewEnv(store.WithDotenv())
//	cfg := store.NewMulti(envs, file, base)
package store
