package objpath

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Registry maps import-path-like names to live Go values. It plays the role
// the module importer plays in dynamic languages: a dotted path names a
// registered root object and, optionally, a chain of attributes to walk from
// it. Registration is expected to happen during single-threaded startup, but
// the registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	objects map[string]any
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{objects: make(map[string]any)}
}

// Default is the process-wide registry used when a setting does not name its
// own.
var Default = New()

// Register binds value to path in the default registry.
func Register(path string, value any) {
	Default.Register(path, value)
}

// Resolve resolves path against the default registry.
func Resolve(path string) (any, error) {
	return Default.Resolve(path)
}

// Register binds value to path. Registering the same path twice replaces the
// previous value.
func (r *Registry) Register(path string, value any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.objects[path] = value
}

// Lookup returns the value registered under exactly path.
func (r *Registry) Lookup(path string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.objects[path]
	return v, ok
}

// Resolve interprets path as a dot-separated object reference. Starting from
// the full path, it repeatedly looks up the longest registered prefix; every
// segment peeled off the end is kept, in order, as an attribute path to walk
// from the registered root via reflection (struct fields, methods, map keys).
// If no prefix resolves, the error names the shortest prefix and wraps
// ErrNotFound.
func (r *Registry) Resolve(path string) (any, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", ErrNotFound)
	}

	roots := strings.Split(path, ".")
	var attrs []string
	for {
		prefix := strings.Join(roots, ".")
		if root, ok := r.Lookup(prefix); ok {
			return walk(root, attrs)
		}
		if len(roots) == 1 {
			return nil, fmt.Errorf("%w: no registered object named %q", ErrNotFound, roots[0])
		}
		attrs = append([]string{roots[len(roots)-1]}, attrs...)
		roots = roots[:len(roots)-1]
	}
}

// walk follows attrs from root through successive attribute lookups. Each step
// tries, in order: a method of the current object, a struct field (through any
// number of pointer indirections), and a map entry keyed by the attribute
// name.
func walk(root any, attrs []string) (any, error) {
	current := root
	for _, attr := range attrs {
		next, err := attribute(current, attr)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

func attribute(obj any, name string) (any, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: cannot take attribute %q of nil", ErrNoAttribute, name)
	}

	if m := rv.MethodByName(name); m.IsValid() {
		return m.Interface(), nil
	}

	elem := rv
	for elem.Kind() == reflect.Pointer {
		if elem.IsNil() {
			return nil, fmt.Errorf("%w: cannot take attribute %q of nil", ErrNoAttribute, name)
		}
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		if m := elem.MethodByName(name); m.IsValid() {
			return m.Interface(), nil
		}
		if f := elem.FieldByName(name); f.IsValid() && f.CanInterface() {
			return f.Interface(), nil
		}
	case reflect.Map:
		if elem.Type().Key().Kind() == reflect.String {
			v := elem.MapIndex(reflect.ValueOf(name).Convert(elem.Type().Key()))
			if v.IsValid() {
				return v.Interface(), nil
			}
		}
	}

	return nil, fmt.Errorf("%w: %T has no attribute %q", ErrNoAttribute, obj, name)
}
