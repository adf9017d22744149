package jsonio

import (
	"github.com/rawbytedev/jsonio/pkg/scan"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

type member struct {
	name, value strview.View
}

// Reader looks up fields of one JSON object. Members are scanned lazily and
// only as far as a lookup needs; every member passed over on the way is
// cached, so no part of the object is scanned twice.
type Reader struct {
	rest    strview.View
	members []member
}

// NewReader prepares a Reader over an object. Blank input yields a Reader
// on which every field is absent.
func NewReader(v strview.View) (*Reader, error) {
	r := &Reader{}
	v = scan.TrimSpace(v)
	if v.Empty() {
		return r, nil
	}
	body, err := scan.Unwrap(v, '{', '}')
	if err != nil {
		return nil, err
	}
	r.rest = body
	return r, nil
}

// Field returns the value stored under name. A missing field is not an
// error: the returned Value reports Absent.
func (r *Reader) Field(name string) (Value, error) {
	for _, m := range r.members {
		if nameEqual(m.name, name) {
			return Value{raw: m.value}, nil
		}
	}
	v, err := scan.Members(&r.rest, func(n, val strview.View) bool {
		r.members = append(r.members, member{name: n, value: val})
		return nameEqual(n, name)
	})
	if err != nil {
		return Value{}, err
	}
	return Value{raw: v}, nil
}

// nameEqual compares a member name as written against name, resolving
// escapes only when the written form has any.
func nameEqual(n strview.View, name string) bool {
	if !n.Contains('\\') {
		return n.Equal(name)
	}
	s, err := unescape(n)
	return err == nil && s == name
}

// Parse scans all members not seen yet.
func (r *Reader) Parse() error {
	_, err := scan.Members(&r.rest, func(n, val strview.View) bool {
		r.members = append(r.members, member{name: n, value: val})
		return false
	})
	return err
}

// Each parses the whole object and visits members in document order until
// fn returns false.
func (r *Reader) Each(fn func(name strview.View, v Value) bool) error {
	if err := r.Parse(); err != nil {
		return err
	}
	for _, m := range r.members {
		if !fn(m.name, Value{raw: m.value}) {
			break
		}
	}
	return nil
}

// Scanned is the number of members scanned so far.
func (r *Reader) Scanned() int { return len(r.members) }

// Remaining is the part of the object body not scanned yet.
func (r *Reader) Remaining() strview.View { return r.rest }

// Value is the raw text of one field or element, borrowed from the input.
type Value struct {
	raw strview.View
}

// Absent reports that the field was not found.
func (v Value) Absent() bool { return v.raw.IsNull() }

// Raw is the value as written, quotes and brackets included.
func (v Value) Raw() strview.View { return v.raw }

// Text is the value with surrounding quotes removed. Escapes are kept.
func (v Value) Text() strview.View { return scan.TrimQuotes(v.raw) }

func (v Value) Object() (*Reader, error) { return NewReader(v.raw) }

func (v Value) Array() (*ArrayReader, error) { return NewArrayReader(v.raw) }

// Flags reads the value as a space separated flag list.
func (v Value) Flags() *FlagReader {
	return &FlagReader{rest: v.Text()}
}

// BitFields reads the value as an object of 0/1 members.
func (v Value) BitFields() (*BitFieldReader, error) {
	r, err := NewReader(v.raw)
	if err != nil {
		return nil, err
	}
	return &BitFieldReader{r: r}, nil
}

// ArrayReader hands out the elements of an array one at a time.
type ArrayReader struct {
	rest strview.View
}

// NewArrayReader prepares a reader over an array. Blank input reads as an
// empty array.
func NewArrayReader(v strview.View) (*ArrayReader, error) {
	a := &ArrayReader{}
	v = scan.TrimSpace(v)
	if v.Empty() {
		return a, nil
	}
	body, err := scan.Unwrap(v, '[', ']')
	if err != nil {
		return nil, err
	}
	a.rest = body
	return a, nil
}

// More reports whether unread elements remain.
func (a *ArrayReader) More() bool { return !a.rest.Empty() }

// Next returns the next element. After the last one it returns an absent Value.
func (a *ArrayReader) Next() (Value, error) {
	if !a.More() {
		return Value{}, nil
	}
	raw, err := scan.PopValue(&a.rest)
	if err != nil {
		return Value{}, err
	}
	if _, err := scan.SkipComma(&a.rest); err != nil {
		return Value{}, err
	}
	return Value{raw: raw}, nil
}
