package common

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert.Equal(t, "0AFF01", string(AppendHex(nil, []byte{0x0A, 0xFF, 0x01})))

	dst := make([]byte, 3)
	assert.Equal(t, -1, DecodeHex(dst, []byte("0aFf01")))
	assert.Equal(t, []byte{0x0A, 0xFF, 0x01}, dst)
	assert.Equal(t, 3, DecodeHex(dst, []byte("0AFG01")))
}

func TestHexRoundTrip(t *testing.T) {
	f := func(b []byte) bool {
		dst := make([]byte, len(b))
		return DecodeHex(dst, AppendHex(nil, b)) == -1 && string(dst) == string(b)
	}
	assert.NoError(t, quick.Check(f, nil))
}

func TestParseUint(t *testing.T) {
	cases := []struct {
		in  string
		max uint64
		out uint64
		st  NumStatus
	}{
		{"0", 255, 0, NumOK},
		{"255", 255, 255, NumOK},
		{"256", 255, 0, NumOverflow},
		{"18446744073709551615", math.MaxUint64, math.MaxUint64, NumOK},
		{"18446744073709551616", math.MaxUint64, 0, NumOverflow},
		{"", 255, 0, NumInvalid},
		{"12a", 255, 0, NumInvalid},
		{"-1", 255, 0, NumInvalid},
	}
	for _, c := range cases {
		out, st := ParseUint([]byte(c.in), c.max)
		assert.Equal(t, c.st, st, c.in)
		assert.Equal(t, c.out, out, c.in)
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		st  NumStatus
	}{
		{"-128", -128, NumOK},
		{"127", 127, NumOK},
		{"128", 0, NumOverflow},
		{"-129", 0, NumOverflow},
		{"-0", 0, NumOK},
		{"-", 0, NumInvalid},
		{"--1", 0, NumInvalid},
	}
	for _, c := range cases {
		out, st := ParseInt([]byte(c.in), math.MinInt8, math.MaxInt8)
		assert.Equal(t, c.st, st, c.in)
		assert.Equal(t, c.out, out, c.in)
	}

	out, st := ParseInt([]byte("-9223372036854775808"), math.MinInt64, math.MaxInt64)
	assert.Equal(t, NumOK, st)
	assert.Equal(t, int64(math.MinInt64), out)
}

func TestParseIntMatchesStrconv(t *testing.T) {
	f := func(x int64) bool {
		out, st := ParseInt(strconv.AppendInt(nil, x, 10), math.MinInt64, math.MaxInt64)
		return st == NumOK && out == x
	}
	assert.NoError(t, quick.Check(f, nil))
}
