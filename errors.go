package jsonio

import (
	"errors"

	"github.com/rawbytedev/jsonio/pkg/scan"
)

// Decode failures. All of them arrive wrapped in a *scan.SyntaxError that
// carries the offending offset, and then in field context; test with
// errors.Is.
var (
	ErrUnterminatedString = scan.ErrUnterminatedString
	ErrUnbalancedBrackets = scan.ErrUnbalancedBrackets
	ErrMissingColon       = scan.ErrMissingColon
	ErrEmptyFieldName     = scan.ErrEmptyFieldName
	ErrMissingComma       = scan.ErrMissingComma
	ErrTrailingComma      = scan.ErrTrailingComma
	ErrEmptyValue         = scan.ErrEmptyValue
	ErrUnexpectedChar     = scan.ErrUnexpectedChar
	ErrTrailingData       = scan.ErrTrailingData
	ErrUnknownEscapeChar  = scan.ErrUnknownEscapeChar
	ErrOddHexLength       = scan.ErrOddHexLength
	ErrInvalidHexChar     = scan.ErrInvalidHexChar
	ErrBinaryLength       = scan.ErrBinaryLength
	ErrInvalidNumber      = scan.ErrInvalidNumber
	ErrNumberOverflow     = scan.ErrNumberOverflow
	ErrUnknownEnumName    = scan.ErrUnknownEnumName
)

// ErrUnknownEnumValue is the only encode-time failure of the built-in codecs.
var ErrUnknownEnumValue = scan.ErrUnknownEnumValue

var (
	ErrMissingField = errors.New("missing required field")
	ErrNoCodec      = errors.New("no codec for type")
)
