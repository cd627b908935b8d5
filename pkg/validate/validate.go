package validate

import (
	"errors"
	"strings"
)

// Validator inspects a single value and returns nil when the value is
// acceptable. A failing validator returns an error carrying one or more
// human-readable messages, usually an Errors value.
type Validator func(value any) error

// Errors is an aggregated list of validation failure messages.
type Errors []string

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return strings.Join(e, "; ")
}

// Messages returns the individual failure messages.
func (e Errors) Messages() []string {
	return []string(e)
}

// New builds a validation error from the given messages.
func New(messages ...string) error {
	return Errors(messages)
}

// Apply runs every validator against value and collects all failure messages.
// Validators are never short-circuited: each one runs regardless of earlier
// failures, and the combined Errors is returned once at the end.
func Apply(value any, validators ...Validator) error {
	var errs Errors
	for _, v := range validators {
		if err := v(value); err != nil {
			errs = append(errs, MessagesOf(err)...)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// MessagesOf extracts the individual messages carried by err. Errors values
// contribute their message list; any other error contributes its Error string
// as a single message.
func MessagesOf(err error) []string {
	if err == nil {
		return nil
	}
	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs.Messages()
	}
	return []string{err.Error()}
}

// Is reports whether err carries validation failure messages.
func Is(err error) bool {
	var verrs Errors
	return errors.As(err, &verrs)
}
