package appsettings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/appsettings/pkg/checker"
	"github.com/dmitrymomot/appsettings/pkg/objpath"
	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
)

// Setting is a declared configuration value: it knows how to look itself up
// in a store, fall back to its default, transform the raw value, and validate
// it. Implementations are immutable after construction and safe for
// concurrent reads.
type Setting interface {
	// Name returns the bare setting name, unique within its namespace.
	Name() string
	// FullName returns the actual lookup key: upper-cased prefix + name.
	FullName() string
	// GetValue resolves the setting against cfg: raw lookup, required or
	// default fallback, then transform. Resolution is re-evaluated on every
	// call; nothing is cached.
	GetValue(cfg store.Store) (any, error)
	// Check validates the raw value without returning it. An absent value is
	// an error only when the setting is required; the default is trusted.
	Check(cfg store.Store) error

	setName(name string)
	applyPrefix(prefix string)
	setParent(parent *NestedSetting)
}

// Base carries the resolution and validation machinery shared by every
// setting variant. Variants embed it and seed it with their type validator,
// their default value and the validators synthesized from their convenience
// constraints.
type Base struct {
	name             string
	prefix           string
	def              any
	defFunc          func() any
	required         bool
	transformDefault bool

	userValidators []validate.Validator
	validators     []validate.Validator
	legacyChecker  checker.Checker
	validateFunc   func(value any) error
	transform      func(value any) (any, error)

	parent   *NestedSetting
	registry *objpath.Registry

	// constraint descriptor, interpreted by each variant's constructor
	minimum       *float64
	maximum       *float64
	minLength     *int
	maxLength     *int
	empty         *bool
	itemValidator validate.Validator
	keyValidator  validate.Validator
	valValidator  validate.Validator
}

func newBase(name string, def any, opts ...Option) Base {
	b := Base{name: name, def: def}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// seedValidators fixes the validator order: variant defaults first, then
// caller-supplied validators, then validators synthesized from constraints.
func (b *Base) seedValidators(defaults []validate.Validator, constraints []validate.Validator) {
	vs := make([]validate.Validator, 0, len(defaults)+len(b.userValidators)+len(constraints))
	vs = append(vs, defaults...)
	vs = append(vs, b.userValidators...)
	vs = append(vs, constraints...)
	b.validators = vs
}

func (b *Base) Name() string { return b.name }

func (b *Base) FullName() string {
	return strings.ToUpper(b.prefix) + strings.ToUpper(b.name)
}

func (b *Base) setName(name string) {
	if b.name == "" {
		b.name = name
	}
}

func (b *Base) applyPrefix(prefix string) {
	if b.prefix == "" {
		b.prefix = prefix
	}
}

func (b *Base) setParent(parent *NestedSetting) { b.parent = parent }

// defaultValue resolves the tagged default: a producer is invoked on every
// call, a literal is returned verbatim (even when it happens to be a func).
func (b *Base) defaultValue() any {
	if b.defFunc != nil {
		return b.defFunc()
	}
	return b.def
}

// raw returns the value as stored, before any transform. A setting with a
// parent indexes into the parent's raw mapping by its own full name and never
// touches the store directly; a top-level setting looks its full name up in
// the store. The two absence shapes are distinct so that diagnostics can name
// the responsible setting.
func (b *Base) raw(cfg store.Store) (any, error) {
	if b.parent != nil {
		parentRaw, err := b.parent.raw(cfg)
		if err != nil {
			return nil, err
		}
		m, ok := parentRaw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s raw value is %T, not a map[string]any", b.parent.FullName(), parentRaw)
		}
		v, ok := m[b.FullName()]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no item %q", ErrKeyNotFound, b.parent.FullName(), b.FullName())
		}
		return v, nil
	}
	v, ok := cfg.Lookup(b.FullName())
	if !ok {
		return nil, fmt.Errorf("%w: %s is not defined in the configuration store", ErrNotFound, b.FullName())
	}
	return v, nil
}

// requiredErr converts an absence into a hard failure when the setting is
// required, or returns nil when the default may be used. The message names
// the parent and the missing key for nested children, and the setting itself
// otherwise.
func (b *Base) requiredErr(err error) error {
	if !b.required {
		return nil
	}
	if errors.Is(err, ErrKeyNotFound) && b.parent != nil {
		return fmt.Errorf("%w: %s setting is missing required item %q", ErrRequired, b.parent.FullName(), b.FullName())
	}
	return fmt.Errorf("%w: %s setting is required: %v", ErrRequired, b.FullName(), err)
}

func (b *Base) applyTransform(value any) (any, error) {
	if b.transform == nil {
		return value, nil
	}
	return b.transform(value)
}

// GetValue resolves the setting: raw lookup, then either the transformed raw
// value, the required failure, or the (optionally transformed) default.
func (b *Base) GetValue(cfg store.Store) (any, error) {
	value, err := b.raw(cfg)
	if err != nil {
		if !isMissing(err) {
			return nil, err
		}
		if rerr := b.requiredErr(err); rerr != nil {
			return nil, rerr
		}
		def := b.defaultValue()
		if b.transformDefault {
			return b.applyTransform(def)
		}
		return def, nil
	}
	return b.applyTransform(value)
}

// Check validates the raw value. Absence follows the same required branching
// as GetValue but yields no value; the default is trusted without validation.
// On a present value the stages run in fixed order: the legacy checker (which
// short-circuits on its first violation), the custom validate hook, then all
// validators with full aggregation.
func (b *Base) Check(cfg store.Store) error {
	value, err := b.raw(cfg)
	if err != nil {
		if !isMissing(err) {
			return err
		}
		return b.requiredErr(err)
	}
	if b.legacyChecker != nil {
		if cerr := b.legacyChecker(b.FullName(), value); cerr != nil {
			return cerr
		}
	}
	if b.validateFunc != nil {
		if verr := b.validateFunc(value); verr != nil {
			if validate.Is(verr) {
				return b.invalidErr(verr)
			}
			return verr
		}
	}
	if verr := validate.Apply(value, b.validators...); verr != nil {
		return b.invalidErr(verr)
	}
	return nil
}

func (b *Base) invalidErr(err error) error {
	return fmt.Errorf("%w %s: %w", ErrInvalidSetting, b.FullName(), validate.Errors(validate.MessagesOf(err)))
}

// constraint interpretation helpers shared by the variant constructors

func (b *Base) numericConstraints() []validate.Validator {
	var vs []validate.Validator
	if b.minimum != nil {
		vs = append(vs, validate.Min(*b.minimum))
	}
	if b.maximum != nil {
		vs = append(vs, validate.Max(*b.maximum))
	}
	return vs
}

// lengthConstraints interprets min/max length plus the deprecated empty flag,
// where empty=false stands for a minimum length of one.
func (b *Base) lengthConstraints() []validate.Validator {
	minLength := b.minLength
	if b.empty != nil {
		warnDeprecated("the empty option is deprecated, use WithMinLength instead")
		if !*b.empty {
			one := 1
			minLength = &one
		}
	}
	var vs []validate.Validator
	if minLength != nil {
		vs = append(vs, validate.MinLength(*minLength))
	}
	if b.maxLength != nil {
		vs = append(vs, validate.MaxLength(*b.maxLength))
	}
	return vs
}

func (b *Base) iterableConstraints() []validate.Validator {
	var vs []validate.Validator
	if b.itemValidator != nil {
		vs = append(vs, b.itemValidator)
	}
	return append(vs, b.lengthConstraints()...)
}
