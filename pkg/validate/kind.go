package validate

import "reflect"

// Kind is a base type tag for a setting value. It classifies Go values the way
// a configuration schema cares about them rather than by exact Go type: Int
// matches every integer kind, Set matches the map[T]struct{} idiom, Tuple
// matches fixed-size arrays.
type Kind int

const (
	Bool Kind = iota
	Int
	Float
	String
	Slice
	Tuple
	Set
	Map
)

var kindNames = map[Kind]string{
	Bool:   "bool",
	Int:    "int",
	Float:  "float",
	String: "string",
	Slice:  "slice",
	Tuple:  "tuple (array)",
	Set:    "set (map with struct{} values)",
	Map:    "map",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

var emptyStruct = reflect.TypeOf(struct{}{})

// Matches reports whether value belongs to the kind. A nil value matches
// nothing.
func (k Kind) Matches(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch k {
	case Bool:
		return rv.Kind() == reflect.Bool
	case Int:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return true
		}
		return false
	case Float:
		return rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64
	case String:
		return rv.Kind() == reflect.String
	case Slice:
		return rv.Kind() == reflect.Slice
	case Tuple:
		return rv.Kind() == reflect.Array
	case Set:
		return rv.Kind() == reflect.Map && rv.Type().Elem() == emptyStruct
	case Map:
		return rv.Kind() == reflect.Map
	}
	return false
}
