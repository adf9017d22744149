package jsonio

// EnumMapper translates between enum values and their names.
type EnumMapper[T any] interface {
	Name(v T) (string, bool)
	Value(name string) (T, bool)
}

// Enumerator is implemented by enum-like types, usually with a value
// receiver on the type itself, to have them encoded by name.
type Enumerator[T any] interface {
	JSONEnum() EnumMapper[T]
}

type EnumEntry[T comparable] struct {
	Value T
	Name  string
}

// EnumTable is an ordered list of value/name pairs. Lookups in either
// direction return the first matching entry, so duplicates resolve by
// declaration order.
type EnumTable[T comparable] []EnumEntry[T]

func (t EnumTable[T]) Name(v T) (string, bool) {
	for _, e := range t {
		if e.Value == v {
			return e.Name, true
		}
	}
	return "", false
}

func (t EnumTable[T]) Value(name string) (T, bool) {
	for _, e := range t {
		if e.Name == name {
			return e.Value, true
		}
	}
	var zero T
	return zero, false
}

// Enum adapts a table for use as an explicit descriptor with FieldWith.
type Enum[T comparable] EnumTable[T]

func (e Enum[T]) JSONEnum() EnumMapper[T] { return EnumTable[T](e) }
