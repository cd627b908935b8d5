package checker

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// Checker validates a named raw value and fails immediately on the first
// violation it finds. This is the legacy validation path: unlike validators,
// checkers short-circuit and report a single message.
//
// Deprecated: checkers are kept for backward compatibility only. Use the
// validators from the validate package instead.
type Checker func(name string, value any) error

// Option configures the optional constraints of a checker.
type Option func(*config)

type config struct {
	minimum    *float64
	maximum    *float64
	minLength  *int
	maxLength  *int
	allowEmpty *bool
	itemType   reflect.Type
	keyType    reflect.Type
	valueType  reflect.Type
}

// Minimum sets an inclusive lower bound for numeric checkers.
func Minimum(v float64) Option {
	return func(c *config) { c.minimum = &v }
}

// Maximum sets an inclusive upper bound for numeric checkers.
func Maximum(v float64) Option {
	return func(c *config) { c.maximum = &v }
}

// MinLength sets an inclusive minimum length for iterable checkers.
func MinLength(n int) Option {
	return func(c *config) { c.minLength = &n }
}

// MaxLength sets an inclusive maximum length for iterable checkers.
func MaxLength(n int) Option {
	return func(c *config) { c.maxLength = &n }
}

// AllowEmpty controls whether an empty value is acceptable. Defaults to true.
func AllowEmpty(allowed bool) Option {
	return func(c *config) { c.allowEmpty = &allowed }
}

// ItemType requires every element of an iterable to be a T.
func ItemType[T any]() Option {
	return func(c *config) { c.itemType = reflect.TypeOf((*T)(nil)).Elem() }
}

// KeyType requires every key of a map to be a T.
func KeyType[T any]() Option {
	return func(c *config) { c.keyType = reflect.TypeOf((*T)(nil)).Elem() }
}

// ValueType requires every value of a map to be a T.
func ValueType[T any]() Option {
	return func(c *config) { c.valueType = reflect.TypeOf((*T)(nil)).Elem() }
}

func newConfig(opts []Option) config {
	warnDeprecated()
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func warnDeprecated() {
	slog.Warn("appsettings: checkers are deprecated in favor of validators")
}

// NewType returns a checker that only verifies the base kind of the value.
//
// Deprecated: use validate.Type instead.
func NewType(kind validate.Kind) Checker {
	warnDeprecated()
	return typeCheck(kind)
}

func typeCheck(kind validate.Kind) Checker {
	return func(name string, value any) error {
		if !kind.Matches(value) {
			return fmt.Errorf("%s must be %s, not %T", name, kind, value)
		}
		return nil
	}
}

// NewBoolean returns a checker for boolean values.
//
// Deprecated: use validate.Type(validate.Bool) instead.
func NewBoolean() Checker {
	warnDeprecated()
	return typeCheck(validate.Bool)
}

// NewInteger returns a checker for integer values with optional inclusive
// Minimum and Maximum bounds.
//
// Deprecated: use validate.Type(validate.Int) with validate.Min and
// validate.Max instead.
func NewInteger(opts ...Option) Checker {
	c := newConfig(opts)
	return numericCheck(validate.Int, c)
}

// NewFloat returns a checker for float values with optional inclusive Minimum
// and Maximum bounds.
//
// Deprecated: use validate.Type(validate.Float) with validate.Min and
// validate.Max instead.
func NewFloat(opts ...Option) Checker {
	c := newConfig(opts)
	return numericCheck(validate.Float, c)
}

func numericCheck(kind validate.Kind, c config) Checker {
	base := typeCheck(kind)
	return func(name string, value any) error {
		if err := base(name, value); err != nil {
			return err
		}
		n := reflect.ValueOf(value).Convert(reflect.TypeOf(float64(0))).Float()
		if c.minimum != nil && n < *c.minimum {
			return fmt.Errorf("%s must be greater or equal %v", name, *c.minimum)
		}
		if c.maximum != nil && n > *c.maximum {
			return fmt.Errorf("%s must be less or equal %v", name, *c.maximum)
		}
		return nil
	}
}
