package jsonio

import (
	"strconv"
	"strings"
	"unsafe"

	"github.com/rawbytedev/jsonio/internal/common"
	"github.com/rawbytedev/jsonio/pkg/scan"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// Record is implemented by types that describe their own JSON fields. The
// same MapJSON serves both directions; see Map.
type Record interface {
	MapJSON(m *Map)
}

// FieldMapper describes the fields of a T that cannot carry methods itself.
type FieldMapper[T any] interface {
	MapJSON(m *Map, v *T)
}

// TextCodec converts a T to and from its text. On decode s has had its
// surrounding quotes removed; on encode the caller adds them.
type TextCodec[T any] interface {
	ReadJSONText(s strview.View, v *T) error
	AppendJSONText(dst []byte, v T) []byte
}

// NumericCodec is a TextCodec whose text is written bare and read without
// quote trimming.
type NumericCodec[T any] interface {
	TextCodec[T]
	JSONNumeric()
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// String is the default codec for string values.
type String struct{}

func (String) ReadJSONText(s strview.View, v *string) error {
	out, err := unescape(s)
	if err != nil {
		return err
	}
	*v = out
	return nil
}

func (String) AppendJSONText(dst []byte, v string) []byte {
	return appendEscaped(dst, v)
}

// Raw decodes quoted text as a View borrowed from the input, with escape
// sequences left as they are.
type Raw struct{}

func (Raw) ReadJSONText(s strview.View, v *strview.View) error {
	*v = s
	return nil
}

// AppendJSONText keeps escape pairs as they are and escapes bare double
// quotes, newlines and tabs, which a single-quoted source may hold.
func (Raw) AppendJSONText(dst []byte, v strview.View) []byte {
	b := v.Bytes()
	last := 0
	for i := 0; i < len(b); i++ {
		var esc string
		switch b[i] {
		case '\\':
			if i+1 < len(b) {
				i++
				continue
			}
			esc = `\\`
		case '"':
			esc = `\"`
		case '\n':
			esc = `\n`
		case '\t':
			esc = `\t`
		default:
			continue
		}
		dst = append(dst, b[last:i]...)
		dst = append(dst, esc...)
		last = i + 1
	}
	return append(dst, b[last:]...)
}

// Bool reads true, false, or a number (zero is false) and writes true or false.
type Bool struct{}

func (Bool) JSONNumeric() {}

func (Bool) ReadJSONText(s strview.View, v *bool) error {
	switch {
	case s.Equal("true"):
		*v = true
		return nil
	case s.Equal("false"):
		*v = false
		return nil
	}
	x, st := common.ParseUint(s.Bytes(), ^uint64(0))
	if err := numError(st, s); err != nil {
		return err
	}
	*v = x != 0
	return nil
}

func (Bool) AppendJSONText(dst []byte, v bool) []byte {
	return strconv.AppendBool(dst, v)
}

// Uint handles any unsigned integer type, failing on values T cannot hold.
type Uint[T Unsigned] struct{}

func (Uint[T]) JSONNumeric() {}

func (Uint[T]) ReadJSONText(s strview.View, v *T) error {
	x, st := common.ParseUint(s.Bytes(), uint64(^T(0)))
	if err := numError(st, s); err != nil {
		return err
	}
	*v = T(x)
	return nil
}

func (Uint[T]) AppendJSONText(dst []byte, v T) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}

// Int handles any signed integer type, failing on values T cannot hold.
type Int[T Signed] struct{}

func (Int[T]) JSONNumeric() {}

func (Int[T]) ReadJSONText(s strview.View, v *T) error {
	var zero T
	bits := unsafe.Sizeof(zero) * 8
	hi := int64(1)<<(bits-1) - 1
	x, st := common.ParseInt(s.Bytes(), -hi-1, hi)
	if err := numError(st, s); err != nil {
		return err
	}
	*v = T(x)
	return nil
}

func (Int[T]) AppendJSONText(dst []byte, v T) []byte {
	return strconv.AppendInt(dst, int64(v), 10)
}

// Hex carries a variable-length blob as upper-case hex text.
type Hex struct{}

func (Hex) ReadJSONText(s strview.View, v *[]byte) error {
	if s.Len()%2 != 0 {
		return scan.Errorf(scan.ErrOddHexLength, s)
	}
	n := s.Len() / 2
	if cap(*v) < n {
		*v = make([]byte, n)
	}
	*v = (*v)[:n]
	return decodeHex(s, *v)
}

func (Hex) AppendJSONText(dst []byte, v []byte) []byte {
	return common.AppendHex(dst, v)
}

// readFixedHex fills b exactly from hex text.
func readFixedHex(s strview.View, b []byte) error {
	if s.Len()%2 != 0 {
		return scan.Errorf(scan.ErrOddHexLength, s)
	}
	if s.Len() != len(b)*2 {
		return scan.Errorf(scan.ErrBinaryLength, s)
	}
	return decodeHex(s, b)
}

func decodeHex(s strview.View, dst []byte) error {
	if i := common.DecodeHex(dst, s.Bytes()); i >= 0 {
		return scan.ErrorAt(scan.ErrInvalidHexChar, s.Offset()+i)
	}
	return nil
}

func numError(st common.NumStatus, s strview.View) error {
	switch st {
	case common.NumInvalid:
		return scan.Errorf(scan.ErrInvalidNumber, s)
	case common.NumOverflow:
		return scan.Errorf(scan.ErrNumberOverflow, s)
	}
	return nil
}

// unescape copies s, resolving \n \t \" \' and \\.
func unescape(s strview.View) (string, error) {
	before, after, ok := s.SplitByte('\\')
	if !ok {
		return s.String(), nil
	}
	var sb strings.Builder
	sb.Grow(s.Len())
	for ok {
		sb.Write(before.Bytes())
		if after.Empty() {
			return "", scan.ErrorAt(scan.ErrUnknownEscapeChar, before.End())
		}
		switch c := after.Front(); c {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case '"', '\'', '\\':
			sb.WriteByte(c)
		default:
			return "", scan.ErrorAt(scan.ErrUnknownEscapeChar, after.Offset())
		}
		before, after, ok = after.Tail(1).SplitByte('\\')
	}
	sb.Write(before.Bytes())
	return sb.String(), nil
}

func appendEscaped(dst []byte, s string) []byte {
	last := 0
	for i := 0; i < len(s); i++ {
		var esc string
		switch s[i] {
		case '\\':
			esc = `\\`
		case '"':
			esc = `\"`
		case '\n':
			esc = `\n`
		case '\t':
			esc = `\t`
		default:
			continue
		}
		dst = append(dst, s[last:i]...)
		dst = append(dst, esc...)
		last = i + 1
	}
	return append(dst, s[last:]...)
}
