package validate

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// Type validates that a value belongs to the given base kind.
func Type(kind Kind) Validator {
	return func(value any) error {
		if !kind.Matches(value) {
			return New(fmt.Sprintf("must be %s, not %T", kind, value))
		}
		return nil
	}
}

// Min validates that a numeric value is greater than or equal to min.
// The bound is inclusive.
func Min(min float64) Validator {
	return func(value any) error {
		n, err := cast.ToFloat64E(value)
		if err != nil || n < min {
			return New(fmt.Sprintf("must be greater than or equal to %v", min))
		}
		return nil
	}
}

// Max validates that a numeric value is less than or equal to max.
// The bound is inclusive.
func Max(max float64) Validator {
	return func(value any) error {
		n, err := cast.ToFloat64E(value)
		if err != nil || n > max {
			return New(fmt.Sprintf("must be less than or equal to %v", max))
		}
		return nil
	}
}

// MinLength validates that a string, slice, array or map holds at least n
// elements. Values without a length fail the check.
func MinLength(n int) Validator {
	return func(value any) error {
		length, ok := lengthOf(value)
		if !ok || length < n {
			return New(fmt.Sprintf("must have a length of at least %d", n))
		}
		return nil
	}
}

// MaxLength validates that a string, slice, array or map holds at most n
// elements. Values without a length fail the check.
func MaxLength(n int) Validator {
	return func(value any) error {
		length, ok := lengthOf(value)
		if !ok || length > n {
			return New(fmt.Sprintf("must have a length of at most %d", n))
		}
		return nil
	}
}

// Items validates that every element of a slice or array, or every member of a
// set-shaped map, is a T.
func Items[T any]() Validator {
	return func(value any) error {
		for _, item := range elementsOf(value) {
			if _, ok := item.(T); !ok {
				return New(fmt.Sprintf("all items must be %s", typeName[T]()))
			}
		}
		return nil
	}
}

// Keys validates that every key of a map is a T.
func Keys[T any]() Validator {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || rv.Kind() != reflect.Map {
			return nil
		}
		for _, key := range rv.MapKeys() {
			if _, ok := key.Interface().(T); !ok {
				return New(fmt.Sprintf("all keys must be %s", typeName[T]()))
			}
		}
		return nil
	}
}

// Values validates that every value of a map is a T.
func Values[T any]() Validator {
	return func(value any) error {
		rv := reflect.ValueOf(value)
		if !rv.IsValid() || rv.Kind() != reflect.Map {
			return nil
		}
		iter := rv.MapRange()
		for iter.Next() {
			if _, ok := iter.Value().Interface().(T); !ok {
				return New(fmt.Sprintf("all values must be %s", typeName[T]()))
			}
		}
		return nil
	}
}

// Func wraps a predicate into a Validator failing with msg.
func Func(msg string, ok func(value any) bool) Validator {
	return func(value any) error {
		if !ok(value) {
			return New(msg)
		}
		return nil
	}
}

func lengthOf(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// elementsOf lists the members of an iterable value: slice and array elements,
// or the keys of a set-shaped map.
func elementsOf(value any) []any {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			items = append(items, rv.Index(i).Interface())
		}
		return items
	case reflect.Map:
		if Set.Matches(value) {
			items := make([]any, 0, rv.Len())
			for _, key := range rv.MapKeys() {
				items = append(items, key.Interface())
			}
			return items
		}
	}
	return nil
}

func typeName[T any]() string {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return t.String()
}
