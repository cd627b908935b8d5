package appsettings

import (
	"fmt"
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// Namespace groups settings under a common prefix and binds them to a store.
// It is a thin container: each setting still resolves and validates itself,
// the namespace only wires names and prefixes at construction and offers
// whole-group operations.
type Namespace struct {
	cfg      store.Store
	prefix   string
	keys     []string
	settings map[string]Setting
}

// NewNamespace builds a namespace over cfg. A setting without an explicit
// name takes its mapping key; a setting without its own prefix takes the
// namespace prefix. Wiring happens once, here.
func NewNamespace(cfg store.Store, prefix string, settings map[string]Setting) *Namespace {
	ns := &Namespace{
		cfg:      cfg,
		prefix:   prefix,
		settings: make(map[string]Setting, len(settings)),
	}
	for key, s := range settings {
		s.setName(key)
		s.applyPrefix(prefix)
		ns.settings[key] = s
		ns.keys = append(ns.keys, key)
	}
	slices.Sort(ns.keys)
	return ns
}

// Setting returns the declaration registered under key.
func (ns *Namespace) Setting(key string) (Setting, bool) {
	s, ok := ns.settings[key]
	return s, ok
}

// Get resolves the setting registered under key.
func (ns *Namespace) Get(key string) (any, error) {
	s, ok := ns.settings[key]
	if !ok {
		return nil, fmt.Errorf("%w: no setting registered under %q", ErrNotFound, key)
	}
	return s.GetValue(ns.cfg)
}

// MustGet resolves the setting registered under key and panics on failure.
// Useful at startup, after Check has passed.
func (ns *Namespace) MustGet(key string) any {
	v, err := ns.Get(key)
	if err != nil {
		panic(fmt.Sprintf("appsettings: %v", err))
	}
	return v
}

// Check validates every registered setting, visiting all of them before
// failing, and reports every collected message at once. Run it at startup to
// fail fast with a complete diagnosis instead of discovering bad
// configuration at use sites.
func (ns *Namespace) Check() error {
	var errs validate.Errors
	for _, key := range ns.keys {
		if err := ns.settings[key].Check(ns.cfg); err != nil {
			errs = append(errs, childMessages(err)...)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrCheckFailed, errs)
	}
	return nil
}

// Values resolves every registered setting into a map keyed by registration
// key.
func (ns *Namespace) Values() (map[string]any, error) {
	out := make(map[string]any, len(ns.keys))
	for _, key := range ns.keys {
		v, err := ns.settings[key].GetValue(ns.cfg)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

// Decode resolves every registered setting and decodes the result into v
// with mapstructure.
func (ns *Namespace) Decode(v any) error {
	values, err := ns.Values()
	if err != nil {
		return err
	}
	return mapstructure.Decode(values, v)
}
