package compactwire

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"

	"github.com/klauspost/compress/zstd"
)

// EncodeDataFrame frames doc, compressing it with zstd when compress is set.
func EncodeDataFrame(doc []byte, compress bool) ([]byte, error) {
	var flags byte
	payload := doc
	if compress {
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, err
		}
		payload = enc.EncodeAll(doc, nil)
		enc.Close()
		flags |= FlagCompressed
	}
	buf := &bytes.Buffer{}
	buf.Grow(headerLen + 1 + len(payload) + trailerLen)
	writePreamble(buf, TypeData)
	binary.Write(buf, binary.LittleEndian, uint32(0)) // length placeholder
	buf.WriteByte(flags)
	buf.Write(payload)
	return seal(buf.Bytes()), nil
}

// EncodeErrorFrame builds an error frame.
func EncodeErrorFrame(f ErrorFrame) []byte {
	buf := &bytes.Buffer{}
	writePreamble(buf, TypeError)
	binary.Write(buf, binary.LittleEndian, uint32(0))
	buf.WriteByte(f.Code)
	binary.Write(buf, binary.LittleEndian, f.Offset)
	binary.Write(buf, binary.LittleEndian, uint16(len(f.Message)))
	buf.Write(f.Message)
	return seal(buf.Bytes())
}

// seal fills in the length and appends the CRC.
func seal(out []byte) []byte {
	binary.LittleEndian.PutUint32(out[3:], uint32(len(out)+trailerLen))
	crc := crc32.ChecksumIEEE(out[2:])
	return binary.LittleEndian.AppendUint32(out, crc)
}
