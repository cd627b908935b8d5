package checker

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// NewIterable returns a checker for values of the given iterable kind with
// optional ItemType, MinLength, MaxLength and AllowEmpty constraints.
// Violations are reported one at a time, in declaration order: base type,
// item type, minimum length, maximum length, emptiness.
//
// Deprecated: compose validators from the validate package instead.
func NewIterable(kind validate.Kind, opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(kind, c)
}

func iterableCheck(kind validate.Kind, c config) Checker {
	base := typeCheck(kind)
	return func(name string, value any) error {
		if err := base(name, value); err != nil {
			return err
		}
		length := reflect.ValueOf(value).Len()
		if c.itemType != nil {
			for _, item := range iterableItems(value) {
				if !assignable(item, c.itemType) {
					return fmt.Errorf("all elements of %s must be %s", name, c.itemType)
				}
			}
		}
		if c.minLength != nil && length < *c.minLength {
			return fmt.Errorf("%s must be longer than %d (or equal)", name, *c.minLength)
		}
		if c.maxLength != nil && length > *c.maxLength {
			return fmt.Errorf("%s must be shorter than %d (or equal)", name, *c.maxLength)
		}
		if length == 0 && c.allowEmpty != nil && !*c.allowEmpty {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}

// NewString returns a checker for string values.
//
// Deprecated: compose validators from the validate package instead.
func NewString(opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(validate.String, c)
}

// NewList returns a checker for slice values.
//
// Deprecated: compose validators from the validate package instead.
func NewList(opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(validate.Slice, c)
}

// NewSet returns a checker for set values (maps with struct{} values).
//
// Deprecated: compose validators from the validate package instead.
func NewSet(opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(validate.Set, c)
}

// NewTuple returns a checker for fixed-size array values.
//
// Deprecated: compose validators from the validate package instead.
func NewTuple(opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(validate.Tuple, c)
}

// NewDict returns a checker for map values with optional KeyType, ValueType,
// MinLength, MaxLength and AllowEmpty constraints.
//
// Deprecated: compose validators from the validate package instead.
func NewDict(opts ...Option) Checker {
	c := newConfig(opts)
	base := typeCheck(validate.Map)
	return func(name string, value any) error {
		if err := base(name, value); err != nil {
			return err
		}
		rv := reflect.ValueOf(value)
		if c.keyType != nil {
			for _, key := range rv.MapKeys() {
				if !assignable(key.Interface(), c.keyType) {
					return fmt.Errorf("all keys of %s must be %s", name, c.keyType)
				}
			}
		}
		if c.valueType != nil {
			iter := rv.MapRange()
			for iter.Next() {
				if !assignable(iter.Value().Interface(), c.valueType) {
					return fmt.Errorf("all values of %s must be %s", name, c.valueType)
				}
			}
		}
		length := rv.Len()
		if c.minLength != nil && length < *c.minLength {
			return fmt.Errorf("%s must be longer than %d (or equal)", name, *c.minLength)
		}
		if c.maxLength != nil && length > *c.maxLength {
			return fmt.Errorf("%s must be shorter than %d (or equal)", name, *c.maxLength)
		}
		if length == 0 && c.allowEmpty != nil && !*c.allowEmpty {
			return fmt.Errorf("%s must not be empty", name)
		}
		return nil
	}
}

// NewObject returns a checker for dotted object paths. It only verifies that
// the value is a string; resolvability is checked by the object setting's
// transform.
//
// Deprecated: compose validators from the validate package instead.
func NewObject(opts ...Option) Checker {
	c := newConfig(opts)
	return iterableCheck(validate.String, c)
}

// iterableItems lists the members of an iterable value the way the item-type
// constraint sees them: slice and array elements, set members, or the runes of
// a string (strings never carry an item type in practice).
func iterableItems(value any) []any {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
		return items
	case reflect.Map:
		items := make([]any, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			items = append(items, key.Interface())
		}
		return items
	}
	return nil
}

func assignable(v any, t reflect.Type) bool {
	vt := reflect.TypeOf(v)
	if vt == nil {
		return false
	}
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}
