package appsettings

import (
	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
	"github.com/spf13/cast"
)

// BoolSetting declares a boolean configuration value.
type BoolSetting struct{ Base }

// NewBool declares a boolean setting. The built-in default is true.
func NewBool(name string, opts ...Option) *BoolSetting {
	s := &BoolSetting{Base: newBase(name, true, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Bool)}, nil)
	return s
}

// Value resolves the setting and coerces it to bool.
func (s *BoolSetting) Value(cfg store.Store) (bool, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return false, err
	}
	return cast.ToBoolE(v)
}

// IntSetting declares an integer configuration value with optional inclusive
// bounds.
type IntSetting struct{ Base }

// NewInt declares an integer setting. WithMinimum and WithMaximum add
// inclusive range validators.
func NewInt(name string, opts ...Option) *IntSetting {
	s := &IntSetting{Base: newBase(name, 0, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Int)}, s.numericConstraints())
	return s
}

// NewPositiveInt declares an integer setting whose minimum is fixed at zero.
// A caller-supplied maximum still applies; a caller-supplied minimum is
// overridden.
func NewPositiveInt(name string, opts ...Option) *IntSetting {
	s := &IntSetting{Base: newBase(name, 0, opts...)}
	zero := float64(0)
	s.minimum = &zero
	s.seedValidators([]validate.Validator{validate.Type(validate.Int)}, s.numericConstraints())
	return s
}

// Value resolves the setting and coerces it to int.
func (s *IntSetting) Value(cfg store.Store) (int, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return 0, err
	}
	return cast.ToIntE(v)
}

// FloatSetting declares a float configuration value with optional inclusive
// bounds.
type FloatSetting struct{ Base }

// NewFloat declares a float setting. WithMinimum and WithMaximum add
// inclusive range validators.
func NewFloat(name string, opts ...Option) *FloatSetting {
	s := &FloatSetting{Base: newBase(name, 0.0, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Float)}, s.numericConstraints())
	return s
}

// NewPositiveFloat declares a float setting whose minimum is fixed at zero.
func NewPositiveFloat(name string, opts ...Option) *FloatSetting {
	s := &FloatSetting{Base: newBase(name, 0.0, opts...)}
	zero := float64(0)
	s.minimum = &zero
	s.seedValidators([]validate.Validator{validate.Type(validate.Float)}, s.numericConstraints())
	return s
}

// Value resolves the setting and coerces it to float64.
func (s *FloatSetting) Value(cfg store.Store) (float64, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return 0, err
	}
	return cast.ToFloat64E(v)
}

// StringSetting declares a string configuration value with optional length
// bounds.
type StringSetting struct{ Base }

// NewString declares a string setting. WithMinLength and WithMaxLength add
// inclusive length validators; the deprecated WithEmpty(false) is equivalent
// to WithMinLength(1).
func NewString(name string, opts ...Option) *StringSetting {
	s := &StringSetting{Base: newBase(name, "", opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.String)}, s.lengthConstraints())
	return s
}

// Value resolves the setting and coerces it to string.
func (s *StringSetting) Value(cfg store.Store) (string, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return "", err
	}
	return cast.ToStringE(v)
}
