package compactwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// open validates the envelope of a frame of type t and returns a reader
// positioned after the length field, limited to the body.
func open(data []byte, t byte, wrong error) (*bytes.Reader, error) {
	if len(data) < headerLen+trailerLen {
		return nil, ErrShortFrame
	}
	got, err := readPreamble(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if got != t {
		return nil, wrong
	}
	if int(binary.LittleEndian.Uint32(data[3:])) != len(data) {
		return nil, ErrLengthMismatch
	}
	end := len(data) - trailerLen
	want := binary.LittleEndian.Uint32(data[end:])
	if crc32.ChecksumIEEE(data[2:end]) != want {
		return nil, ErrCRCMismatch
	}
	return bytes.NewReader(data[headerLen:end]), nil
}

// DecodeDataFrame validates a data frame and returns the document it
// carries, decompressed if needed.
func DecodeDataFrame(data []byte) ([]byte, error) {
	f, err := ParseDataFrame(data)
	if err != nil {
		return nil, err
	}
	if !f.Compressed() {
		return f.Payload, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	doc, err := dec.DecodeAll(f.Payload, nil)
	if err != nil {
		return nil, errors.Wrap(err, "decompress payload")
	}
	return doc, nil
}

// ParseDataFrame validates a data frame without touching its payload. The
// payload aliases data.
func ParseDataFrame(data []byte) (DataFrame, error) {
	var f DataFrame
	r, err := open(data, TypeData, ErrNotDataFrame)
	if err != nil {
		return f, err
	}
	if f.Flags, err = r.ReadByte(); err != nil {
		return f, ErrShortFrame
	}
	f.Payload = data[len(data)-trailerLen-r.Len() : len(data)-trailerLen]
	return f, nil
}

// DecodeErrorFrame validates and parses an error frame.
func DecodeErrorFrame(data []byte) (ErrorFrame, error) {
	var f ErrorFrame
	r, err := open(data, TypeError, ErrNotErrorFrame)
	if err != nil {
		return f, err
	}
	var n uint16
	if f.Code, err = r.ReadByte(); err != nil {
		return f, ErrShortFrame
	}
	if err := binary.Read(r, binary.LittleEndian, &f.Offset); err != nil {
		return f, ErrShortFrame
	}
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return f, ErrShortFrame
	}
	f.Message = make([]byte, n)
	if _, err := io.ReadFull(r, f.Message); err != nil {
		return f, ErrShortFrame
	}
	if r.Len() != 0 {
		return f, ErrLengthMismatch
	}
	return f, nil
}
