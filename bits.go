package jsonio

import (
	"github.com/rawbytedev/jsonio/internal/common"
	"github.com/rawbytedev/jsonio/pkg/strview"
)

// Bits is one named-bit container, either a flag list or a bit-field
// object, being read or written. Bit takes the bit's current state and
// returns its state after the call: writers record set and return it,
// readers ignore it and return what the input says.
type Bits interface {
	Bit(name string, set bool) bool
	Err() error
}

// Mask maps one bit of *v under name.
func Mask[T Unsigned](b Bits, name string, v *T, bit T) {
	if b.Bit(name, *v&bit != 0) {
		*v |= bit
	} else {
		*v &^= bit
	}
}

// Flag maps a bool under name.
func Flag(b Bits, name string, v *bool) {
	*v = b.Bit(name, *v)
}

type FlagEntry[T Unsigned] struct {
	Name string
	Mask T
}

// FlagTable lists named masks in the order they are written.
type FlagTable[T Unsigned] []FlagEntry[T]

// Map applies every entry of t to *v.
func (t FlagTable[T]) Map(b Bits, v *T) {
	for _, e := range t {
		Mask(b, e.Name, v, e.Mask)
	}
}

// FlagReader answers flag queries against a space separated list.
type FlagReader struct {
	rest strview.View
}

// Bit reports whether name appears in the list. A match at the head of
// the list is consumed, so querying flags in written order stays linear.
func (f *FlagReader) Bit(name string, _ bool) bool {
	toks := f.rest
	head := true
	for {
		tok, ok := toks.PopToken(common.IsSpace, common.IsSpace)
		if !ok {
			return false
		}
		if tok.Equal(name) {
			if head {
				f.rest = toks
			}
			return true
		}
		head = false
	}
}

func (f *FlagReader) Err() error { return nil }

// FlagWriter writes the names of set flags into one quoted string.
type FlagWriter struct {
	e *Encoder
}

func (f *FlagWriter) Bit(name string, set bool) bool {
	if set {
		f.e.buf = append(f.e.buf, name...)
		f.e.buf = append(f.e.buf, ' ')
	}
	return set
}

func (f *FlagWriter) Err() error { return nil }

// Close ends the string, turning the separator after the last flag into
// the closing quote. With no flags set the result is "".
func (f *FlagWriter) Close() {
	n := len(f.e.buf)
	if f.e.buf[n-1] == ' ' {
		f.e.buf[n-1] = '"'
		return
	}
	f.e.buf = append(f.e.buf, '"')
}

// BitFieldReader reads bits from an object of numeric members. Missing
// members read as clear.
type BitFieldReader struct {
	r   *Reader
	err error
}

func (b *BitFieldReader) Bit(name string, _ bool) bool {
	if b.err != nil {
		return false
	}
	v, err := b.r.Field(name)
	if err != nil {
		b.err = err
		return false
	}
	if v.Absent() {
		return false
	}
	var on bool
	if err := (Bool{}).ReadJSONText(v.raw, &on); err != nil {
		b.err = err
		return false
	}
	return on
}

func (b *BitFieldReader) Err() error { return b.err }

// BitFieldWriter writes each bit as a 0 or 1 member.
type BitFieldWriter struct {
	o *ObjectWriter
}

func (b *BitFieldWriter) Bit(name string, set bool) bool {
	w := b.o.Field(name)
	if set {
		w.Uint(1)
	} else {
		w.Uint(0)
	}
	return set
}

func (b *BitFieldWriter) Err() error { return nil }

func (b *BitFieldWriter) Close() { b.o.Close() }
