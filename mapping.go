package jsonio

import (
	"github.com/pkg/errors"

	"github.com/rawbytedev/jsonio/pkg/strview"
)

// Map is handed to MapJSON and works in both directions: when decoding each
// mapping call looks its field up and stores into the destination, when
// encoding it writes the field from the same destination. One routine per
// type therefore describes both.
//
// The first failure sticks. Later mapping calls become no-ops and the
// error is returned by whoever started the decode or encode.
type Map struct {
	r   *Reader
	w   *ObjectWriter
	err error
}

// Decoding reports the direction.
func (m *Map) Decoding() bool { return m.r != nil }

func (m *Map) Err() error { return m.err }

// Fail records a failure found by the mapping routine itself, for instance
// a value that decoded fine but is out of range for the record.
func (m *Map) Fail(err error) {
	if m.err == nil {
		m.err = err
	}
}

func (m *Map) fail(name string, err error) {
	if m.err == nil {
		m.err = errors.Wrapf(err, "field %q", name)
	}
}

// lookup finds name on decode. ok is false when the field is absent or the
// map already failed.
func (m *Map) lookup(name string) (Value, bool) {
	if m.err != nil {
		return Value{}, false
	}
	v, err := m.r.Field(name)
	if err != nil {
		m.fail(name, err)
		return Value{}, false
	}
	return v, !v.Absent()
}

func (m *Map) field(name string) (ValueWriter, bool) {
	if m.err != nil {
		return ValueWriter{}, false
	}
	return m.w.Field(name), true
}

// Field maps *v under name using the default strategy for T. An absent
// field leaves *v untouched.
func Field[T any](m *Map, name string, v *T) {
	FieldWith(m, name, v, nil)
}

// FieldWith maps *v under name using descriptor d, which may implement
// FieldMapper, Enumerator, NumericCodec or TextCodec for T.
func FieldWith[T any](m *Map, name string, v *T, d any) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		if err := decodeValue(raw.raw, v, d); err != nil {
			m.fail(name, err)
		}
		return
	}
	w, ok := m.field(name)
	if !ok {
		return
	}
	if err := encodeValue(w, v, d); err != nil {
		m.fail(name, err)
	}
}

// Required is Field for fields that must be present.
func Required[T any](m *Map, name string, v *T) {
	RequiredWith(m, name, v, nil)
}

func RequiredWith[T any](m *Map, name string, v *T, d any) {
	if m.Decoding() && m.err == nil {
		val, err := m.r.Field(name)
		if err != nil {
			m.fail(name, err)
			return
		}
		if val.Absent() {
			m.fail(name, ErrMissingField)
			return
		}
	}
	FieldWith(m, name, v, d)
}

// Slice maps a sequence. Decoding replaces the contents of *v.
func Slice[E any](m *Map, name string, v *[]E) {
	SliceWith(m, name, v, nil)
}

// SliceWith is Slice with a descriptor applied to every element.
func SliceWith[E any](m *Map, name string, v *[]E, d any) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		if err := decodeSlice(raw.raw, v, d); err != nil {
			m.fail(name, err)
		}
		return
	}
	w, ok := m.field(name)
	if !ok {
		return
	}
	if err := encodeSlice(w, *v, d); err != nil {
		m.fail(name, err)
	}
}

// Bin maps a fixed-size buffer as hex. The decoded text must fill b exactly.
func Bin(m *Map, name string, b []byte) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		if err := readFixedHex(raw.Text(), b); err != nil {
			m.fail(name, err)
		}
		return
	}
	if w, ok := m.field(name); ok {
		w.Hex(b)
	}
}

// Blob maps a variable-length buffer as hex, resizing it on decode.
func Blob(m *Map, name string, b *[]byte) {
	FieldWith(m, name, b, Hex{})
}

// Object maps a nested object inline, without a named type for it.
func Object(m *Map, name string, fn func(*Map)) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		if err := decodeObject(raw.raw, fn); err != nil {
			m.fail(name, err)
		}
		return
	}
	if w, ok := m.field(name); ok {
		if err := encodeObject(w, fn); err != nil {
			m.fail(name, err)
		}
	}
}

// Flags maps a space separated flag list. fn declares the flags with Mask
// or Flag. An absent field leaves all bits untouched.
func Flags(m *Map, name string, fn func(Bits)) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		fn(raw.Flags())
		return
	}
	if w, ok := m.field(name); ok {
		f := w.Flags()
		fn(f)
		f.Close()
	}
}

// FlagSet maps *v through a flag table.
func FlagSet[T Unsigned](m *Map, name string, v *T, table FlagTable[T]) {
	Flags(m, name, func(b Bits) { table.Map(b, v) })
}

// BitFields maps bits as an object of 0/1 members.
func BitFields(m *Map, name string, fn func(Bits)) {
	if m.Decoding() {
		raw, ok := m.lookup(name)
		if !ok {
			return
		}
		b, err := raw.BitFields()
		if err != nil {
			m.fail(name, err)
			return
		}
		fn(b)
		if err := b.Err(); err != nil {
			m.fail(name, err)
		}
		return
	}
	if w, ok := m.field(name); ok {
		b := w.BitFields()
		fn(b)
		b.Close()
	}
}

// Unknown reports, on decode, the first member whose name is not in known.
// It parses the rest of the object to do so. On encode it does nothing.
func Unknown(m *Map, known ...string) (string, bool) {
	if !m.Decoding() || m.err != nil {
		return "", false
	}
	var found string
	err := m.r.Each(func(name strview.View, _ Value) bool {
		for _, k := range known {
			if nameEqual(name, k) {
				return true
			}
		}
		found = name.String()
		return false
	})
	if err != nil {
		m.Fail(err)
		return "", false
	}
	return found, found != ""
}
