package appsettings

import (
	"github.com/dmitrymomot/appsettings/pkg/objpath"
	"github.com/dmitrymomot/appsettings/pkg/store"
	"github.com/dmitrymomot/appsettings/pkg/validate"
	"github.com/spf13/cast"
)

// ObjectSetting declares a configuration value holding a dotted object path
// that resolves to the live Go value it names.
type ObjectSetting struct{ Base }

// NewObject declares an object-reference setting. The raw value is a
// dot-separated path resolved through an objpath registry (objpath.Default
// unless WithRegistry is given); an empty or nil path resolves to nil.
// WithMinLength, WithMaxLength and WithEmpty are accepted for backward
// compatibility but have no effect beyond a deprecation warning.
func NewObject(name string, opts ...Option) *ObjectSetting {
	s := &ObjectSetting{Base: newBase(name, nil, opts...)}
	if s.minLength != nil {
		warnDeprecated("WithMinLength does nothing on this setting and is deprecated")
	}
	if s.maxLength != nil {
		warnDeprecated("WithMaxLength does nothing on this setting and is deprecated")
	}
	if s.empty != nil {
		warnDeprecated("the empty option does nothing on this setting and is deprecated")
	}
	if s.registry == nil {
		s.registry = objpath.Default
	}
	s.seedValidators([]validate.Validator{validate.Type(validate.String)}, nil)
	s.transform = func(value any) (any, error) {
		if value == nil {
			return nil, nil
		}
		path, err := cast.ToStringE(value)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, nil
		}
		return s.registry.Resolve(path)
	}
	return s
}

// Value resolves the setting to the referenced object.
func (s *ObjectSetting) Value(cfg store.Store) (any, error) {
	return s.GetValue(cfg)
}
