package appsettings

import (
	"log/slog"

	"github.com/dmitrymomot/appsettings/pkg/checker"
	"github.com/dmitrymomot/appsettings/pkg/objpath"
	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// Option configures a setting declaration. Constraint options (bounds,
// lengths, element types) record onto a descriptor that each variant's
// constructor interprets into validators; an option a variant does not
// declare has no effect on it, except where a documented deprecation warning
// applies.
type Option func(*Base)

// WithDefault sets a literal default value, returned verbatim when the
// setting is absent - even when the literal happens to be a func value.
func WithDefault(v any) Option {
	return func(b *Base) {
		b.def = v
		b.defFunc = nil
	}
}

// WithDefaultFunc sets a zero-argument producer invoked on every default
// resolution.
func WithDefaultFunc(f func() any) Option {
	return func(b *Base) { b.defFunc = f }
}

// Required makes absence of the raw value a hard failure instead of a
// default fallback.
func Required() Option {
	return func(b *Base) { b.required = true }
}

// WithPrefix sets the string prepended (upper-cased) to the setting name to
// form the lookup key. It overrides a namespace prefix.
func WithPrefix(prefix string) Option {
	return func(b *Base) { b.prefix = prefix }
}

// WithTransformDefault routes the default value through the same transform a
// present raw value goes through.
func WithTransformDefault() Option {
	return func(b *Base) { b.transformDefault = true }
}

// WithValidators appends validators to the variant's default set. They run
// after the type validator and before constraint-derived validators.
func WithValidators(validators ...validate.Validator) Option {
	return func(b *Base) { b.userValidators = append(b.userValidators, validators...) }
}

// WithValidateFunc sets a custom semantic validation hook, run after the
// legacy checker and before the validators.
func WithValidateFunc(fn func(value any) error) Option {
	return func(b *Base) { b.validateFunc = fn }
}

// WithChecker attaches a legacy checker, invoked with (full name, raw value)
// before any validator and failing on its first violation.
//
// Deprecated: checkers are deprecated in favor of validators; use
// WithValidators or the constraint options instead.
func WithChecker(c checker.Checker) Option {
	return func(b *Base) {
		warnDeprecated("checkers are deprecated in favor of validators")
		b.legacyChecker = c
	}
}

// WithMinimum sets an inclusive lower bound for numeric settings.
func WithMinimum(min float64) Option {
	return func(b *Base) { b.minimum = &min }
}

// WithMaximum sets an inclusive upper bound for numeric settings.
func WithMaximum(max float64) Option {
	return func(b *Base) { b.maximum = &max }
}

// WithMinLength sets an inclusive minimum length for string and iterable
// settings. On NewDict and NewObject it is accepted for backward
// compatibility but does nothing besides logging a deprecation warning.
func WithMinLength(n int) Option {
	return func(b *Base) { b.minLength = &n }
}

// WithMaxLength sets an inclusive maximum length for string and iterable
// settings. On NewDict and NewObject it is accepted for backward
// compatibility but does nothing besides logging a deprecation warning.
func WithMaxLength(n int) Option {
	return func(b *Base) { b.maxLength = &n }
}

// WithEmpty controls whether an empty value is allowed; WithEmpty(false) is
// the legacy spelling of WithMinLength(1) and produces an equivalent
// validator set.
//
// Deprecated: use WithMinLength instead.
func WithEmpty(allowed bool) Option {
	return func(b *Base) { b.empty = &allowed }
}

// WithItemType requires every element of an iterable setting to be a T.
func WithItemType[T any]() Option {
	return func(b *Base) { b.itemValidator = validate.Items[T]() }
}

// WithKeyType requires every key of a map setting to be a T.
func WithKeyType[T any]() Option {
	return func(b *Base) { b.keyValidator = validate.Keys[T]() }
}

// WithValueType requires every value of a map setting to be a T.
func WithValueType[T any]() Option {
	return func(b *Base) { b.valValidator = validate.Values[T]() }
}

// WithRegistry points an object setting at a specific objpath registry
// instead of objpath.Default.
func WithRegistry(r *objpath.Registry) Option {
	return func(b *Base) { b.registry = r }
}

func warnDeprecated(msg string) {
	slog.Warn("appsettings: " + msg)
}
