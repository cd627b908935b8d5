package appsettings

import "errors"

// Package-specific errors
var (
	// ErrNotFound is returned when a top-level setting is absent from the
	// configuration store.
	ErrNotFound = errors.New("setting not defined")

	// ErrKeyNotFound is returned when a nested setting's block is present but
	// does not contain the child's key.
	ErrKeyNotFound = errors.New("setting item not defined")

	// ErrRequired is returned when a required setting (or a required item of
	// a nested block) is absent.
	ErrRequired = errors.New("required setting missing")

	// ErrInvalidSetting is returned by Check when one or more validators
	// rejected the raw value.
	ErrInvalidSetting = errors.New("invalid setting")

	// ErrCheckFailed is returned by Namespace.Check when any registered
	// setting failed its check.
	ErrCheckFailed = errors.New("settings check failed")
)

// isMissing reports whether err is one of the two absence shapes. Any other
// error never triggers the default fallback.
func isMissing(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrKeyNotFound)
}
