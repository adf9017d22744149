// Package jsonio is a JSON codec for plain Go values that needs neither the
// reflect package nor a document tree.
//
// Each record type supplies one mapping routine:
//
//	func (p *Peer) MapJSON(m *jsonio.Map) {
//		jsonio.Field(m, "host", &p.Host)
//		jsonio.Field(m, "port", &p.Port)
//		jsonio.Slice(m, "tags", &p.Tags)
//	}
//
// and the same routine drives Marshal and Unmarshal. Decoding slices the
// input in place (see pkg/strview and pkg/scan) and converts only the fields
// that are asked for.
//
// # Strategy order
//
// For a destination *T the codec is chosen in this order:
//   - *T implements Record
//   - the descriptor implements FieldMapper[T]
//   - the descriptor implements Enumerator[T] (quoted name)
//   - the descriptor implements NumericCodec[T] (bare text)
//   - the descriptor implements TextCodec[T] (quoted text)
//
// The descriptor is the one passed to a *With function, else T itself when
// it implements one of those interfaces, else the built-in codec for
// string, bool, the integer kinds, []byte (hex) or strview.View.
//
// # Dialect
//
// Input may quote with ' as well as ", supports only the escapes \n \t \"
// \' and \\, and has no fractions or exponents. Output is tab indented with
// one field per line and single-line arrays.
//
// Decoding is lazy: members after the last field a mapping routine asks
// for are never scanned, so malformed text there goes unreported by
// Unmarshal. UnmarshalStrict checks the structure of the whole document
// first.
//
// The input buffer must not change while values decoded from it, such as
// strview.View fields, are in use.
package jsonio

import (
	"github.com/rawbytedev/jsonio/pkg/scan"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// Unmarshal decodes data into v.
func Unmarshal[T any](data []byte, v *T) error {
	return UnmarshalWith(data, v, nil)
}

// UnmarshalWith decodes data into v through descriptor d.
func UnmarshalWith[T any](data []byte, v *T, d any) error {
	raw, err := single(data)
	if err != nil {
		return err
	}
	return decodeValue(raw, v, d)
}

// UnmarshalStrict is Unmarshal that first rejects structurally malformed
// input anywhere in data, including members no mapping routine reads.
func UnmarshalStrict[T any](data []byte, v *T) error {
	if err := scan.Validate(strview.New(data)); err != nil {
		return err
	}
	return Unmarshal(data, v)
}

// UnmarshalSlice decodes a top-level array.
func UnmarshalSlice[E any](data []byte, v *[]E) error {
	raw, err := single(data)
	if err != nil {
		return err
	}
	return decodeSlice(raw, v, nil)
}

// single isolates the one value data must hold.
func single(data []byte) (strview.View, error) {
	rest := strview.New(data)
	raw, err := scan.PopValue(&rest)
	if err != nil {
		return raw, err
	}
	if rest = scan.TrimSpace(rest); !rest.Empty() {
		return raw, scan.Errorf(scan.ErrTrailingData, rest)
	}
	return raw, nil
}

// Marshal encodes v.
func Marshal[T any](v *T) ([]byte, error) {
	return AppendMarshal(nil, v)
}

// MarshalWith encodes v through descriptor d.
func MarshalWith[T any](v *T, d any) ([]byte, error) {
	e := NewEncoder(nil)
	if err := encodeValue(e.Value(), v, d); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}

// AppendMarshal appends the encoding of v to dst.
func AppendMarshal[T any](dst []byte, v *T) ([]byte, error) {
	e := NewEncoder(dst)
	if err := encodeValue(e.Value(), v, nil); err != nil {
		return dst, err
	}
	return e.Bytes(), nil
}

// MarshalSlice encodes v as a top-level array.
func MarshalSlice[E any](v []E) ([]byte, error) {
	e := NewEncoder(nil)
	if err := encodeSlice(e.Value(), v, nil); err != nil {
		return nil, err
	}
	return e.Bytes(), nil
}
