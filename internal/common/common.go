package common

// IsSpace reports whether c is JSON insignificant whitespace.
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// IsQuote reports whether c opens a quoted string. Both quote styles are accepted.
func IsQuote(c byte) bool {
	return c == '"' || c == '\''
}

// IsValueEnd reports whether c terminates a bare token.
func IsValueEnd(c byte) bool {
	return IsSpace(c) || c == ',' || c == '}' || c == ']'
}

func IsDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// HexDigits is the upper-case alphabet used on encode.
const HexDigits = "0123456789ABCDEF"

// HexVal decodes one hex digit, either case.
func HexVal(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// AppendHex appends two upper-case hex digits per byte of src.
func AppendHex(dst, src []byte) []byte {
	for _, b := range src {
		dst = append(dst, HexDigits[b>>4], HexDigits[b&0x0f])
	}
	return dst
}

// DecodeHex decodes pairs from src into dst, which must hold len(src)/2 bytes.
// It returns the index of the first invalid character in src, or -1.
func DecodeHex(dst, src []byte) int {
	for i := 0; i+1 < len(src); i += 2 {
		hi, ok := HexVal(src[i])
		if !ok {
			return i
		}
		lo, ok := HexVal(src[i+1])
		if !ok {
			return i + 1
		}
		dst[i/2] = hi<<4 | lo
	}
	return -1
}

// NumStatus is the outcome of a decimal parse.
type NumStatus uint8

const (
	NumOK NumStatus = iota
	NumInvalid
	NumOverflow
)

// ParseUint accumulates decimal digits, failing on any other byte and on
// values above max.
func ParseUint(b []byte, max uint64) (uint64, NumStatus) {
	if len(b) == 0 {
		return 0, NumInvalid
	}
	var x uint64
	for _, c := range b {
		if !IsDigit(c) {
			return 0, NumInvalid
		}
		d := uint64(c - '0')
		if x > (max-d)/10 {
			return 0, NumOverflow
		}
		x = x*10 + d
	}
	return x, NumOK
}

// ParseInt accepts one leading '-' and otherwise behaves like ParseUint,
// bounded by [min, max].
func ParseInt(b []byte, min, max int64) (int64, NumStatus) {
	neg := len(b) > 0 && b[0] == '-'
	if neg {
		b = b[1:]
	}
	if !neg {
		u, st := ParseUint(b, uint64(max))
		return int64(u), st
	}
	// magnitude of min does not fit int64 when min is math.MinInt64
	u, st := ParseUint(b, uint64(-(min+1))+1)
	if st != NumOK {
		return 0, st
	}
	return -int64(u-1) - 1, NumOK
}
