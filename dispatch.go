package jsonio

import (
	"github.com/pkg/errors"

	"github.com/rawbytedev/jsonio/pkg/scan"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// descriptorFor picks who describes a T when the caller named nobody: T
// itself when it implements one of the descriptor interfaces, otherwise the
// built-in codec for its kind.
func descriptorFor[T any](v *T, d any) any {
	if d != nil {
		return d
	}
	var zero T
	switch any(zero).(type) {
	case FieldMapper[T], Enumerator[T], TextCodec[T]:
		return zero
	}
	return builtin(v)
}

func builtin(v any) any {
	switch v.(type) {
	case *string:
		return String{}
	case *bool:
		return Bool{}
	case *uint:
		return Uint[uint]{}
	case *uint8:
		return Uint[uint8]{}
	case *uint16:
		return Uint[uint16]{}
	case *uint32:
		return Uint[uint32]{}
	case *uint64:
		return Uint[uint64]{}
	case *int:
		return Int[int]{}
	case *int8:
		return Int[int8]{}
	case *int16:
		return Int[int16]{}
	case *int32:
		return Int[int32]{}
	case *int64:
		return Int[int64]{}
	case *[]byte:
		return Hex{}
	case *strview.View:
		return Raw{}
	}
	return nil
}

// decodeValue reads raw into v. Strategies are tried in a fixed order:
// Record on *T, then the descriptor as FieldMapper, Enumerator,
// NumericCodec and finally TextCodec.
func decodeValue[T any](raw strview.View, v *T, d any) error {
	if rec, ok := any(v).(Record); ok {
		return decodeObject(raw, rec.MapJSON)
	}
	switch c := descriptorFor(v, d).(type) {
	case FieldMapper[T]:
		return decodeObject(raw, func(m *Map) { c.MapJSON(m, v) })
	case Enumerator[T]:
		name := scan.TrimQuotes(raw)
		key := name.UnsafeString()
		if name.Contains('\\') {
			s, err := unescape(name)
			if err != nil {
				return err
			}
			key = s
		}
		val, ok := c.JSONEnum().Value(key)
		if !ok {
			return scan.Errorf(scan.ErrUnknownEnumName, name)
		}
		*v = val
		return nil
	case NumericCodec[T]:
		return c.ReadJSONText(raw, v)
	case TextCodec[T]:
		return c.ReadJSONText(scan.TrimQuotes(raw), v)
	}
	return errors.Wrapf(ErrNoCodec, "%T", v)
}

func decodeObject(raw strview.View, fn func(*Map)) error {
	r, err := NewReader(raw)
	if err != nil {
		return err
	}
	m := &Map{r: r}
	fn(m)
	return m.err
}

// encodeValue writes v through w using the same order as decodeValue.
func encodeValue[T any](w ValueWriter, v *T, d any) error {
	if rec, ok := any(v).(Record); ok {
		return encodeObject(w, rec.MapJSON)
	}
	switch c := descriptorFor(v, d).(type) {
	case FieldMapper[T]:
		return encodeObject(w, func(m *Map) { c.MapJSON(m, v) })
	case Enumerator[T]:
		name, ok := c.JSONEnum().Name(*v)
		if !ok {
			return errors.Wrapf(scan.ErrUnknownEnumValue, "%v", *v)
		}
		w.quoted(name)
		return nil
	case NumericCodec[T]:
		w.e.buf = c.AppendJSONText(w.e.buf, *v)
		return nil
	case TextCodec[T]:
		w.e.buf = append(w.e.buf, '"')
		w.e.buf = c.AppendJSONText(w.e.buf, *v)
		w.e.buf = append(w.e.buf, '"')
		return nil
	}
	return errors.Wrapf(ErrNoCodec, "%T", v)
}

func encodeObject(w ValueWriter, fn func(*Map)) error {
	o := w.Object()
	m := &Map{w: o}
	fn(m)
	o.Close()
	return m.err
}

func decodeSlice[E any](raw strview.View, v *[]E, d any) error {
	a, err := NewArrayReader(raw)
	if err != nil {
		return err
	}
	*v = (*v)[:0]
	for a.More() {
		elem, err := a.Next()
		if err != nil {
			return err
		}
		var e E
		if err := decodeValue(elem.raw, &e, d); err != nil {
			return errors.Wrapf(err, "element %d", len(*v))
		}
		*v = append(*v, e)
	}
	return nil
}

func encodeSlice[E any](w ValueWriter, v []E, d any) error {
	a := w.Array()
	for i := range v {
		if err := encodeValue(a.Next(), &v[i], d); err != nil {
			return errors.Wrapf(err, "element %d", i)
		}
	}
	a.Close()
	return nil
}

// Decode reads a value obtained from a Reader or ArrayReader into v.
func Decode[T any](val Value, v *T) error {
	return decodeValue(val.raw, v, nil)
}

// DecodeWith is Decode with an explicit descriptor.
func DecodeWith[T any](val Value, v *T, d any) error {
	return decodeValue(val.raw, v, d)
}

// Encode writes v at w.
func Encode[T any](w ValueWriter, v *T) error {
	return encodeValue(w, v, nil)
}

// EncodeWith is Encode with an explicit descriptor.
func EncodeWith[T any](w ValueWriter, v *T, d any) error {
	return encodeValue(w, v, d)
}
