package jsonio

import (
	"strconv"

	"github.com/rawbytedev/jsonio/internal/common"
)

// Encoder appends JSON text to a growable buffer. Objects are written one
// field per line with tab indentation; arrays stay on one line.
type Encoder struct {
	buf []byte
}

// NewEncoder appends to dst, which may be nil.
func NewEncoder(dst []byte) *Encoder {
	return &Encoder{buf: dst}
}

func (e *Encoder) Bytes() []byte { return e.buf }
func (e *Encoder) Len() int      { return len(e.buf) }
func (e *Encoder) Reset()        { e.buf = e.buf[:0] }

// Value returns a writer for one top-level value.
func (e *Encoder) Value() ValueWriter {
	return ValueWriter{e: e}
}

// atBegin reports whether the last non-space byte opens a container, in
// which case the next field needs no separator.
func (e *Encoder) atBegin() bool {
	for i := len(e.buf) - 1; i >= 0; i-- {
		c := e.buf[i]
		if common.IsSpace(c) {
			continue
		}
		return c == '{' || c == '['
	}
	return true
}

func (e *Encoder) indent(n int) {
	for ; n > 0; n-- {
		e.buf = append(e.buf, '\t')
	}
}

// ValueWriter writes exactly one value at the current position.
type ValueWriter struct {
	e     *Encoder
	depth int
}

func (w ValueWriter) Uint(v uint64) { w.e.buf = strconv.AppendUint(w.e.buf, v, 10) }
func (w ValueWriter) Int(v int64)   { w.e.buf = strconv.AppendInt(w.e.buf, v, 10) }
func (w ValueWriter) Bool(v bool)   { w.e.buf = strconv.AppendBool(w.e.buf, v) }

// String writes v quoted and escaped.
func (w ValueWriter) String(v string) {
	w.e.buf = append(w.e.buf, '"')
	w.e.buf = appendEscaped(w.e.buf, v)
	w.e.buf = append(w.e.buf, '"')
}

// Hex writes b as a quoted upper-case hex string.
func (w ValueWriter) Hex(b []byte) {
	w.e.buf = append(w.e.buf, '"')
	w.e.buf = common.AppendHex(w.e.buf, b)
	w.e.buf = append(w.e.buf, '"')
}

// Raw writes p verbatim. The caller is responsible for it being valid.
func (w ValueWriter) Raw(p []byte) { w.e.buf = append(w.e.buf, p...) }

func (w ValueWriter) quoted(s string) { w.String(s) }

// Object opens a nested object one indentation level deeper.
func (w ValueWriter) Object() *ObjectWriter {
	w.e.buf = append(w.e.buf, '{', '\n')
	return &ObjectWriter{e: w.e, depth: w.depth + 1}
}

func (w ValueWriter) Array() *ArrayWriter {
	w.e.buf = append(w.e.buf, '[')
	return &ArrayWriter{e: w.e, depth: w.depth, first: true}
}

// Flags opens a quoted flag list.
func (w ValueWriter) Flags() *FlagWriter {
	w.e.buf = append(w.e.buf, '"')
	return &FlagWriter{e: w.e}
}

// BitFields opens an object of 0/1 members.
func (w ValueWriter) BitFields() *BitFieldWriter {
	return &BitFieldWriter{o: w.Object()}
}

// ObjectWriter emits the fields of one object.
type ObjectWriter struct {
	e     *Encoder
	depth int
}

// Field writes the separator and the name of the next field, and returns
// the writer for its value.
func (o *ObjectWriter) Field(name string) ValueWriter {
	if !o.e.atBegin() {
		o.e.buf = append(o.e.buf, ',', '\n')
	}
	o.e.indent(o.depth)
	o.e.buf = append(o.e.buf, '"')
	o.e.buf = appendEscaped(o.e.buf, name)
	o.e.buf = append(o.e.buf, '"', ':', ' ')
	return ValueWriter{e: o.e, depth: o.depth}
}

// Close ends the object. An object without fields is written as {}.
func (o *ObjectWriter) Close() {
	n := len(o.e.buf)
	if n >= 2 && o.e.buf[n-2] == '{' && o.e.buf[n-1] == '\n' {
		o.e.buf = append(o.e.buf[:n-1], '}')
		return
	}
	o.e.buf = append(o.e.buf, '\n')
	o.e.indent(o.depth - 1)
	o.e.buf = append(o.e.buf, '}')
}

// ArrayWriter emits comma separated elements on one line.
type ArrayWriter struct {
	e     *Encoder
	depth int
	first bool
}

func (a *ArrayWriter) Next() ValueWriter {
	if !a.first {
		a.e.buf = append(a.e.buf, ',', ' ')
	}
	a.first = false
	return ValueWriter{e: a.e, depth: a.depth}
}

func (a *ArrayWriter) Close() {
	a.e.buf = append(a.e.buf, ']')
}
