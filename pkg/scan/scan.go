// Package scan slices JSON text without building a tree.
//
// Every function here works on strview.View values over one backing buffer
// and only ever narrows them. Values come back as raw ranges (quotes and
// brackets included); converting them to Go values is left to the caller,
// so text for fields nobody asks about is never decoded.
package scan

import (
	"github.com/rawbytedev/jsonio/internal/common"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// TrimSpace strips leading and trailing whitespace.
func TrimSpace(v strview.View) strview.View {
	return v.TrimFunc(common.IsSpace)
}

// TrimQuotes strips one pair of matching quotes, if present.
func TrimQuotes(v strview.View) strview.View {
	if v.Len() >= 2 && common.IsQuote(v.Front()) && v.Back() == v.Front() {
		return v.Slice(1, v.Len()-1)
	}
	return v
}

// FindClosingQuote returns the index of the first unescaped q at or after
// start. A backslash consumes the next byte whatever it is.
func FindClosingQuote(v strview.View, start int, q byte) (int, error) {
	for i := start; i < v.Len(); i++ {
		switch v.At(i) {
		case '\\':
			i++
		case q:
			return i, nil
		}
	}
	open := max(start-1, 0)
	return 0, Errorf(ErrUnterminatedString, v.Tail(open))
}

// SkipQuoted cuts a leading quoted span, quotes included, from v. It
// reports false without touching v when v does not start with a quote.
func SkipQuoted(v *strview.View) (strview.View, bool, error) {
	if v.Empty() || !common.IsQuote(v.Front()) {
		return strview.View{}, false, nil
	}
	end, err := FindClosingQuote(*v, 1, v.Front())
	if err != nil {
		return strview.View{}, true, err
	}
	return v.CutHead(end + 1), true, nil
}

// SkipBracketed cuts a leading open...close span from v, tracking nesting
// and stepping over quoted spans so brackets inside strings do not count.
func SkipBracketed(v *strview.View, open, close byte) (strview.View, bool, error) {
	if v.Empty() || v.Front() != open {
		return strview.View{}, false, nil
	}
	depth := 0
	for i := 1; i < v.Len(); i++ {
		c := v.At(i)
		switch {
		case c == close:
			if depth == 0 {
				return v.CutHead(i + 1), true, nil
			}
			depth--
		case c == open:
			depth++
		case common.IsQuote(c):
			end, err := FindClosingQuote(*v, i+1, c)
			if err != nil {
				return strview.View{}, true, err
			}
			i = end
		}
	}
	return strview.View{}, true, Errorf(ErrUnbalancedBrackets, *v)
}

// PopValue cuts the next value from v: a quoted string, an object, an
// array, or a bare token running up to whitespace, ',', '}' or ']'.
func PopValue(v *strview.View) (strview.View, error) {
	*v = TrimSpace(*v)
	if v.Empty() {
		return strview.View{}, Errorf(ErrEmptyValue, *v)
	}
	if s, ok, err := SkipQuoted(v); ok {
		return s, err
	}
	if s, ok, err := SkipBracketed(v, '{', '}'); ok {
		return s, err
	}
	if s, ok, err := SkipBracketed(v, '[', ']'); ok {
		return s, err
	}
	n := v.IndexFunc(common.IsValueEnd)
	switch {
	case n < 0:
		n = v.Len()
	case n == 0 && v.Front() == ',':
		return strview.View{}, ErrorAt(ErrEmptyValue, v.Offset())
	case n == 0:
		return strview.View{}, ErrorAt(ErrUnexpectedChar, v.Offset())
	}
	return v.CutHead(n), nil
}

func isNameEnd(c byte) bool {
	return c == ':' || c == ',' || c == '{' || c == '}' || c == '[' || c == ']' || common.IsQuote(c)
}

// PopMember cuts one name:value pair from v. The name has its quotes
// removed; the value is raw, as PopValue returns it.
func PopMember(v *strview.View) (name, value strview.View, err error) {
	*v = v.TrimLeftFunc(common.IsSpace)
	quoted, ok, err := SkipQuoted(v)
	switch {
	case err != nil:
		return name, value, err
	case ok:
		name = quoted.Slice(1, quoted.Len()-1)
		*v = v.TrimLeftFunc(common.IsSpace)
	default:
		n := v.IndexFunc(isNameEnd)
		if n < 0 {
			return name, value, Errorf(ErrMissingColon, *v)
		}
		name = TrimSpace(v.CutHead(n))
	}
	if v.Empty() || v.Front() != ':' {
		return name, value, ErrorAt(ErrMissingColon, v.Offset())
	}
	if name.Empty() {
		return name, value, ErrorAt(ErrEmptyFieldName, name.Offset())
	}
	v.PopFront()
	value, err = PopValue(v)
	return name, value, err
}

// SkipComma consumes the separator after a member or element. It reports
// false when v is exhausted; a separator must be followed by more input.
func SkipComma(v *strview.View) (bool, error) {
	*v = v.TrimLeftFunc(common.IsSpace)
	if v.Empty() {
		return false, nil
	}
	if v.Front() != ',' {
		return false, ErrorAt(ErrMissingComma, v.Offset())
	}
	at := v.Offset()
	v.PopFront()
	*v = v.TrimLeftFunc(common.IsSpace)
	if v.Empty() {
		return false, ErrorAt(ErrTrailingComma, at)
	}
	return true, nil
}

// Members walks object members in v, calling fn for each. It stops at the
// first member fn accepts and returns that member's value; v then holds
// only the members not yet visited. When fn accepts nothing, v is drained
// and the null View is returned.
func Members(v *strview.View, fn func(name, value strview.View) bool) (strview.View, error) {
	*v = v.TrimLeftFunc(common.IsSpace)
	for !v.Empty() {
		name, value, err := PopMember(v)
		if err != nil {
			return strview.View{}, err
		}
		if _, err := SkipComma(v); err != nil {
			return strview.View{}, err
		}
		if fn(name, value) {
			return value, nil
		}
	}
	return strview.View{}, nil
}

// Unwrap checks that v holds exactly one open...close container and returns
// its body with surrounding whitespace removed.
func Unwrap(v strview.View, open, close byte) (strview.View, error) {
	v = TrimSpace(v)
	if v.Empty() || v.Front() != open {
		return strview.View{}, ErrorAt(ErrUnexpectedChar, v.Offset())
	}
	span, _, err := SkipBracketed(&v, open, close)
	if err != nil {
		return strview.View{}, err
	}
	if !v.Empty() {
		return strview.View{}, Errorf(ErrTrailingData, v)
	}
	return TrimSpace(span.Slice(1, span.Len()-1)), nil
}

// Validate checks that v holds exactly one value and that every container
// inside it is well formed, members nobody looks up included. Scalars are
// not converted, so number and escape errors are left to the decoder.
func Validate(v strview.View) error {
	val, err := PopValue(&v)
	if err != nil {
		return err
	}
	if v = TrimSpace(v); !v.Empty() {
		return Errorf(ErrTrailingData, v)
	}
	return validate(val)
}

func validate(v strview.View) error {
	switch v.Front() {
	case '{':
		body, err := Unwrap(v, '{', '}')
		if err != nil {
			return err
		}
		var inner error
		_, err = Members(&body, func(_, val strview.View) bool {
			inner = validate(val)
			return inner != nil
		})
		if err != nil {
			return err
		}
		return inner
	case '[':
		body, err := Unwrap(v, '[', ']')
		if err != nil {
			return err
		}
		for !body.Empty() {
			elem, err := PopValue(&body)
			if err != nil {
				return err
			}
			if _, err := SkipComma(&body); err != nil {
				return err
			}
			if err := validate(elem); err != nil {
				return err
			}
		}
	}
	return nil
}
