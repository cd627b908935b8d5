package appsettings

import (
	"slices"

	"github.com/go-viper/mapstructure/v2"

	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// NestedSetting declares a configuration block whose value is a mapping of
// named child settings, each resolved and validated recursively. Children may
// themselves be nested, forming a tree-shaped schema.
type NestedSetting struct {
	DictSetting

	keys     []string
	children map[string]Setting
}

// NewNested declares a nested setting over the given children. Wiring happens
// exactly once, here: a child without an explicit name takes its mapping key
// as name, and every child gets its parent back-reference set so that raw
// lookups go through this block instead of the store. The children mapping
// must not be mutated afterwards.
func NewNested(name string, settings map[string]Setting, opts ...Option) *NestedSetting {
	n := &NestedSetting{
		DictSetting: *NewDict(name, opts...),
		children:    make(map[string]Setting, len(settings)),
	}
	for key, child := range settings {
		child.setName(key)
		child.setParent(n)
		n.children[key] = child
		n.keys = append(n.keys, key)
	}
	// Sorted iteration keeps error ordering deterministic.
	slices.Sort(n.keys)
	return n
}

// Child returns the child setting registered under key.
func (n *NestedSetting) Child(key string) (Setting, bool) {
	child, ok := n.children[key]
	return child, ok
}

// GetValue resolves the block. When the block itself is absent the usual
// required/default branching applies. When present, the result is built by
// resolving every child in turn, keyed by its mapping key; children absent
// from the raw block fall back to their own defaults, so a block may be
// partially specified.
func (n *NestedSetting) GetValue(cfg store.Store) (any, error) {
	if _, err := n.raw(cfg); err != nil {
		if !isMissing(err) {
			return nil, err
		}
		if rerr := n.requiredErr(err); rerr != nil {
			return nil, rerr
		}
		def := n.defaultValue()
		if n.transformDefault {
			return n.applyTransform(def)
		}
		return def, nil
	}

	value := make(map[string]any, len(n.keys))
	for _, key := range n.keys {
		v, err := n.children[key].GetValue(cfg)
		if err != nil {
			return nil, err
		}
		value[key] = v
	}
	return value, nil
}

// Value resolves the block as a map[string]any keyed by child mapping keys.
func (n *NestedSetting) Value(cfg store.Store) (map[string]any, error) {
	v, err := n.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	m, _ := v.(map[string]any)
	return m, nil
}

// Decode resolves the block and decodes it into v with mapstructure.
func (n *NestedSetting) Decode(cfg store.Store, v any) error {
	m, err := n.Value(cfg)
	if err != nil {
		return err
	}
	return mapstructure.Decode(m, v)
}

// Check first validates the block itself (presence, mapping shape, block
// validators), then checks every child, visiting all of them before failing:
// child failure messages are aggregated into one validate.Errors so that a
// single run reports every misconfigured child.
func (n *NestedSetting) Check(cfg store.Store) error {
	if err := n.DictSetting.Check(cfg); err != nil {
		return err
	}
	var errs validate.Errors
	for _, key := range n.keys {
		if err := n.children[key].Check(cfg); err != nil {
			errs = append(errs, childMessages(err)...)
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// childMessages flattens a child failure for aggregation. A bare
// validate.Errors (a nested child's own aggregate) contributes its messages,
// which already name their settings; anything else contributes its full
// message as one entry.
func childMessages(err error) []string {
	if verrs, ok := err.(validate.Errors); ok {
		return verrs.Messages()
	}
	return []string{err.Error()}
}
