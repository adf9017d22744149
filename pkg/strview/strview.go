// Package strview provides View, a non-owning window over a byte buffer.
//
// A View is an index pair into one backing buffer. Narrowing a View never
// copies; the bytes stay owned by whoever allocated the buffer, so a View must
// not be used after that buffer is reused or modified. Offsets stay relative
// to the backing buffer, which lets callers report where in the input a
// problem was found.
package strview

import (
	"bytes"
	"unsafe"
)

// View is the half-open range [lo, hi) of buf. The zero View is null: it
// refers to no buffer at all, which is distinct from an empty range.
type View struct {
	buf    []byte
	lo, hi int
}

// New returns a View spanning all of b.
func New(b []byte) View {
	if b == nil {
		b = []byte{}
	}
	return View{buf: b, hi: len(b)}
}

// FromString copies s into a fresh buffer and views it.
func FromString(s string) View {
	return New([]byte(s))
}

func (v View) Len() int        { return v.hi - v.lo }
func (v View) Empty() bool     { return v.hi == v.lo }
func (v View) IsNull() bool    { return v.buf == nil }
func (v View) Offset() int     { return v.lo }
func (v View) End() int        { return v.hi }
func (v View) Backing() []byte { return v.buf }

// Bytes returns the viewed bytes. Capacity is clipped so appends never
// clobber the rest of the backing buffer.
func (v View) Bytes() []byte {
	if v.buf == nil {
		return nil
	}
	return v.buf[v.lo:v.hi:v.hi]
}

// String copies the viewed bytes.
func (v View) String() string {
	return string(v.Bytes())
}

// UnsafeString aliases the viewed bytes without copying. The result is only
// valid while the backing buffer is left untouched.
func (v View) UnsafeString() string {
	if v.Empty() {
		return ""
	}
	return unsafe.String(&v.buf[v.lo], v.Len())
}

// At returns the i-th viewed byte.
func (v View) At(i int) byte {
	return v.buf[v.lo+i]
}

func (v View) Front() byte { return v.buf[v.lo] }
func (v View) Back() byte  { return v.buf[v.hi-1] }

// Slice narrows v to [i, j) relative to its own start.
func (v View) Slice(i, j int) View {
	if i < 0 || j < i || j > v.Len() {
		panic("strview: slice out of range")
	}
	return View{buf: v.buf, lo: v.lo + i, hi: v.lo + j}
}

// Head returns the first n bytes.
func (v View) Head(n int) View { return v.Slice(0, n) }

// Tail returns everything after the first n bytes.
func (v View) Tail(n int) View { return v.Slice(n, v.Len()) }

func (v *View) PopFront() { v.lo++ }
func (v *View) PopBack()  { v.hi-- }

// Clear collapses v to an empty range at its start.
func (v *View) Clear() { v.hi = v.lo }

// CutHead removes the first n bytes from v and returns them.
func (v *View) CutHead(n int) View {
	head := v.Head(n)
	v.lo += n
	return head
}

// CutTail removes the last n bytes from v and returns them.
func (v *View) CutTail(n int) View {
	tail := v.Slice(v.Len()-n, v.Len())
	v.hi -= n
	return tail
}

func (v View) Equal(s string) bool {
	return v.Len() == len(s) && string(v.Bytes()) == s
}

func (v View) EqualView(o View) bool {
	return bytes.Equal(v.Bytes(), o.Bytes())
}

func (v View) HasPrefix(s string) bool {
	return v.Len() >= len(s) && string(v.buf[v.lo:v.lo+len(s)]) == s
}

// Less orders views by length first, then bytewise.
func (v View) Less(o View) bool {
	if v.Len() != o.Len() {
		return v.Len() < o.Len()
	}
	return bytes.Compare(v.Bytes(), o.Bytes()) < 0
}

// IndexFunc returns the index of the first byte satisfying f, or -1.
func (v View) IndexFunc(f func(byte) bool) int {
	for i := v.lo; i < v.hi; i++ {
		if f(v.buf[i]) {
			return i - v.lo
		}
	}
	return -1
}

func (v View) IndexByte(c byte) int {
	return bytes.IndexByte(v.Bytes(), c)
}

func (v View) Contains(c byte) bool {
	return v.IndexByte(c) >= 0
}

// Split splits around the first byte satisfying f. The delimiter belongs
// to neither side.
func (v View) Split(f func(byte) bool) (before, after View, ok bool) {
	i := v.IndexFunc(f)
	if i < 0 {
		return v, View{}, false
	}
	return v.Head(i), v.Tail(i + 1), true
}

// SplitByte is Split for a single delimiter.
func (v View) SplitByte(c byte) (before, after View, ok bool) {
	return v.Split(func(b byte) bool { return b == c })
}

// TrimLeftFunc drops leading bytes satisfying f.
func (v View) TrimLeftFunc(f func(byte) bool) View {
	for v.lo < v.hi && f(v.buf[v.lo]) {
		v.lo++
	}
	return v
}

// TrimRightFunc drops trailing bytes satisfying f.
func (v View) TrimRightFunc(f func(byte) bool) View {
	for v.hi > v.lo && f(v.buf[v.hi-1]) {
		v.hi--
	}
	return v
}

func (v View) TrimFunc(f func(byte) bool) View {
	return v.TrimLeftFunc(f).TrimRightFunc(f)
}

// TrimEnds drops first and last byte when they are open and close.
func (v View) TrimEnds(open, close byte) (View, bool) {
	if v.Len() < 2 || v.Front() != open || v.Back() != close {
		return v, false
	}
	return v.Slice(1, v.Len()-1), true
}

// PopToken removes the next delim-separated token from v, skipping leading
// bytes in skip and trimming them from the token's end. It reports false
// once v holds nothing but skippable bytes.
func (v *View) PopToken(delim, skip func(byte) bool) (View, bool) {
	*v = v.TrimLeftFunc(skip)
	if v.Empty() {
		return View{}, false
	}
	tok, rest, ok := v.Split(delim)
	if ok {
		*v = rest
	} else {
		tok = *v
		v.lo = v.hi
	}
	return tok.TrimRightFunc(skip), true
}
