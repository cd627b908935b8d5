package objpath

import "errors"

var (
	// ErrNotFound is returned when no registered prefix of a dotted path
	// resolves to an object.
	ErrNotFound = errors.New("object path not found")

	// ErrNoAttribute is returned when a resolved root object does not expose
	// one of the attributes named by the remaining path segments.
	ErrNoAttribute = errors.New("no such attribute")
)
