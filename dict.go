package appsettings

import (
	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
	"github.com/spf13/cast"
)

// DictSetting declares a configuration value holding a mapping.
type DictSetting struct{ Base }

// NewDict declares a map setting. WithKeyType and WithValueType constrain the
// entries. WithMinLength and WithMaxLength are accepted for backward
// compatibility but have no effect beyond a deprecation warning. The
// deprecated WithEmpty flag maps to a minimum-length-of-one validator.
func NewDict(name string, opts ...Option) *DictSetting {
	s := &DictSetting{Base: newBase(name, map[string]any{}, opts...)}
	s.seedValidators([]validate.Validator{validate.Type(validate.Map)}, s.dictConstraints())
	return s
}

func (b *Base) dictConstraints() []validate.Validator {
	var vs []validate.Validator
	if b.keyValidator != nil {
		vs = append(vs, b.keyValidator)
	}
	if b.valValidator != nil {
		vs = append(vs, b.valValidator)
	}
	if b.empty != nil {
		warnDeprecated("the empty option is deprecated, use WithValidators(validate.MinLength(1)) instead")
		vs = append(vs, validate.MinLength(1))
	}
	if b.minLength != nil {
		warnDeprecated("WithMinLength does nothing on this setting and is deprecated")
	}
	if b.maxLength != nil {
		warnDeprecated("WithMaxLength does nothing on this setting and is deprecated")
	}
	return vs
}

// Value resolves the setting and coerces it to map[string]any.
func (s *DictSetting) Value(cfg store.Store) (map[string]any, error) {
	v, err := s.GetValue(cfg)
	if err != nil {
		return nil, err
	}
	return cast.ToStringMapE(v)
}
