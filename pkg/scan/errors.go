package scan

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/jsonio/pkg/strview"
)

var (
	ErrUnterminatedString = errors.New("unterminated string")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
	ErrMissingColon       = errors.New("missing ':' after field name")
	ErrEmptyFieldName     = errors.New("empty field name")
	ErrMissingComma       = errors.New("missing ',' between members")
	ErrTrailingComma      = errors.New("trailing ','")
	ErrEmptyValue         = errors.New("empty value")
	ErrUnexpectedChar     = errors.New("unexpected character")
	ErrTrailingData       = errors.New("trailing data after value")
	ErrUnknownEscapeChar  = errors.New("unknown escape char")
	ErrOddHexLength       = errors.New("odd hex length")
	ErrInvalidHexChar     = errors.New("invalid hex char")
	ErrBinaryLength       = errors.New("binary length mismatch")
	ErrInvalidNumber      = errors.New("invalid number")
	ErrNumberOverflow     = errors.New("number overflows destination")
	ErrUnknownEnumName    = errors.New("unknown enum name")
	ErrUnknownEnumValue   = errors.New("unknown enum value")
)

// Kind numbers the sentinel errors so they can travel in binary frames.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUnterminatedString
	KindUnbalancedBrackets
	KindMissingColon
	KindEmptyFieldName
	KindMissingComma
	KindTrailingComma
	KindEmptyValue
	KindUnexpectedChar
	KindTrailingData
	KindUnknownEscapeChar
	KindOddHexLength
	KindInvalidHexChar
	KindBinaryLength
	KindInvalidNumber
	KindNumberOverflow
	KindUnknownEnumName
	KindUnknownEnumValue
)

var kinds = [...]error{
	KindUnterminatedString: ErrUnterminatedString,
	KindUnbalancedBrackets: ErrUnbalancedBrackets,
	KindMissingColon:       ErrMissingColon,
	KindEmptyFieldName:     ErrEmptyFieldName,
	KindMissingComma:       ErrMissingComma,
	KindTrailingComma:      ErrTrailingComma,
	KindEmptyValue:         ErrEmptyValue,
	KindUnexpectedChar:     ErrUnexpectedChar,
	KindTrailingData:       ErrTrailingData,
	KindUnknownEscapeChar:  ErrUnknownEscapeChar,
	KindOddHexLength:       ErrOddHexLength,
	KindInvalidHexChar:     ErrInvalidHexChar,
	KindBinaryLength:       ErrBinaryLength,
	KindInvalidNumber:      ErrInvalidNumber,
	KindNumberOverflow:     ErrNumberOverflow,
	KindUnknownEnumName:    ErrUnknownEnumName,
	KindUnknownEnumValue:   ErrUnknownEnumValue,
}

// Sentinel returns the error a Kind stands for, or nil for KindUnknown.
func (k Kind) Sentinel() error {
	if int(k) >= len(kinds) {
		return nil
	}
	return kinds[k]
}

func (k Kind) String() string {
	if err := k.Sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// KindOf finds the Kind of err by walking its chain.
func KindOf(err error) Kind {
	for k := KindUnterminatedString; int(k) < len(kinds); k++ {
		if errors.Is(err, kinds[k]) {
			return k
		}
	}
	return KindUnknown
}

// SyntaxError locates a failure in the backing buffer.
type SyntaxError struct {
	Err    error
	Offset int
	Len    int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Errorf builds a SyntaxError for the bytes covered by at.
func Errorf(err error, at strview.View) error {
	return &SyntaxError{Err: err, Offset: at.Offset(), Len: at.Len()}
}

// ErrorAt builds a SyntaxError for a single position.
func ErrorAt(err error, offset int) error {
	return &SyntaxError{Err: err, Offset: offset, Len: 1}
}
