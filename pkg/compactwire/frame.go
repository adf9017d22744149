// Package compactwire wraps encoded documents in checksummed binary frames
// for storage or transport. A frame is
//
//	magic(2) type(1) length(4) body... crc32(4)
//
// where length counts the whole frame and the CRC covers everything after
// the magic. Integers are little endian.
package compactwire

import (
	"bytes"

	"github.com/pkg/errors"
)

const (
	TypeData  byte = 0x01
	TypeError byte = 0x02
)

// FlagCompressed marks a data frame whose payload is zstd compressed.
const FlagCompressed byte = 1 << 0

var magic = [2]byte{0xC0, 0xDE}

const (
	headerLen  = 2 + 1 + 4
	trailerLen = 4
)

var (
	ErrShortFrame     = errors.New("frame too short")
	ErrNotDataFrame   = errors.New("not a data frame")
	ErrNotErrorFrame  = errors.New("not an error frame")
	ErrLengthMismatch = errors.New("length mismatch")
	ErrCRCMismatch    = errors.New("crc mismatch")
)

// DataFrame is a decoded data frame.
type DataFrame struct {
	Flags   byte
	Payload []byte
}

func (d DataFrame) Compressed() bool { return d.Flags&FlagCompressed != 0 }

// ErrorFrame reports a failed decode: Code is the scan.Kind of the failure
// and Offset its position in the rejected document.
type ErrorFrame struct {
	Code    byte
	Offset  uint32
	Message []byte
}

func writePreamble(buf *bytes.Buffer, t byte) {
	buf.Write(magic[:])
	buf.WriteByte(t)
}

// readPreamble checks the magic and returns the frame type.
func readPreamble(r *bytes.Reader) (byte, error) {
	var m [2]byte
	if _, err := r.Read(m[:]); err != nil || m != magic {
		return 0, ErrShortFrame
	}
	return r.ReadByte()
}

// FrameType peeks at the type of a frame without validating it.
func FrameType(data []byte) (byte, error) {
	if len(data) < headerLen+trailerLen || data[0] != magic[0] || data[1] != magic[1] {
		return 0, ErrShortFrame
	}
	return data[2], nil
}
