package store

// Store is the opaque configuration object settings resolve against: a
// read-only mapping from uppercase key names to arbitrary values. The ok
// result distinguishes an absent key from a key that is present with a nil
// value.
type Store interface {
	Lookup(key string) (any, bool)
}

// Map is an in-memory store. It is the natural way to declare configuration
// in code and the common decoded form of file-based sources.
type Map map[string]any

func (m Map) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Multi layers several stores: Lookup returns the first hit in declaration
// order.
type Multi []Store

// NewMulti combines stores so that earlier ones take precedence.
func NewMulti(stores ...Store) Multi {
	return Multi(stores)
}

func (m Multi) Lookup(key string) (any, bool) {
	for _, s := range m {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}
