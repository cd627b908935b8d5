package appsettings

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
	"github.com/spf13/cast"
)

// SliceSetting declares a configuration value holding an ordered, growable
// collection (any Go slice).
type SliceSetting struct{ Base }

// NewSlice declares a slice setting. WithItemType constrains element types;
// WithMinLength and WithMaxLength bound the length; the deprecated
// WithEmpty(false) is equivalent to WithMinLength(1).
func NewSlice(name string, opts ...Option) *SliceSetting {
	s := &SliceSetting{Base: newBase(name, []any{}, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Slice)}, s.iterableConstraints())
	return s
}

// Value resolves the setting as a []any, whatever the concrete slice type in
// the store.
func (s *SliceSetting) Value(cfg store.Store) ([]any, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	return toAnySlice(v)
}

// Strings resolves the setting as a []string.
func (s *SliceSetting) Strings(cfg store.Store) ([]string, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	return cast.ToStringSliceE(v)
}

// SetSetting declares a configuration value holding an unordered collection
// of unique members, stored as a map with struct{} values (the Go set
// idiom).
type SetSetting struct{ Base }

// NewSet declares a set setting. Constraints match NewSlice; the item type
// applies to the set members.
func NewSet(name string, opts ...Option) *SetSetting {
	s := &SetSetting{Base: newBase(name, map[any]struct{}{}, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Set)}, s.iterableConstraints())
	return s
}

// Value resolves the setting as a map[any]struct{}, whatever the concrete
// key type in the store.
func (s *SetSetting) Value(cfg store.Store) (map[any]struct{}, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("cannot build a set from %T", v)
	}
	out := make(map[any]struct{}, rv.Len())
	for _, key := range rv.MapKeys() {
		out[key.Interface()] = struct{}{}
	}
	return out, nil
}

// TupleSetting declares a configuration value holding a fixed-size ordered
// collection (any Go array).
type TupleSetting struct{ Base }

// NewTuple declares a tuple setting. Constraints match NewSlice.
func NewTuple(name string, opts ...Option) *TupleSetting {
	s := &TupleSetting{Base: newBase(name, [0]any{}, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Tuple)}, s.iterableConstraints())
	return s
}

// Value resolves the setting as a []any copy of the stored array.
func (s *TupleSetting) Value(cfg store.Store) ([]any, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	return toAnySlice(v)
}

func toAnySlice(v any) ([]any, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("cannot build a slice from %T", v)
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}
