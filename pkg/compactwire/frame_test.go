package compactwire

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var doc = []byte("{\n\t\"name\": \"edge-01\",\n\t\"port\": 8443\n}")

func TestDataFrameRoundTrip(t *testing.T) {
	for _, compress := range []bool{false, true} {
		frame, err := EncodeDataFrame(doc, compress)
		require.NoError(t, err)
		typ, err := FrameType(frame)
		require.NoError(t, err)
		assert.Equal(t, TypeData, typ)

		f, err := ParseDataFrame(frame)
		require.NoError(t, err)
		assert.Equal(t, compress, f.Compressed())

		got, err := DecodeDataFrame(frame)
		require.NoError(t, err)
		assert.Equal(t, doc, got)
	}
}

func TestDataFrameUncompressedPayloadIsDocument(t *testing.T) {
	frame, err := EncodeDataFrame(doc, false)
	require.NoError(t, err)
	assert.Len(t, frame, headerLen+1+len(doc)+trailerLen)
	assert.True(t, bytes.Contains(frame, doc))
}

func TestDataFrameCorruption(t *testing.T) {
	frame, err := EncodeDataFrame(doc, false)
	require.NoError(t, err)

	flipped := bytes.Clone(frame)
	flipped[headerLen+3] ^= 0x20
	_, err = DecodeDataFrame(flipped)
	assert.ErrorIs(t, err, ErrCRCMismatch)

	_, err = DecodeDataFrame(frame[:len(frame)-1])
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = DecodeDataFrame(frame[:5])
	assert.ErrorIs(t, err, ErrShortFrame)

	bad := bytes.Clone(frame)
	bad[0] = 0
	_, err = DecodeDataFrame(bad)
	assert.ErrorIs(t, err, ErrShortFrame)
}

func TestErrorFrameRoundTrip(t *testing.T) {
	in := ErrorFrame{Code: 3, Offset: 17, Message: []byte("missing ':' after field name at offset 17")}
	frame := EncodeErrorFrame(in)

	out, err := DecodeErrorFrame(frame)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = DecodeDataFrame(frame)
	assert.ErrorIs(t, err, ErrNotDataFrame)

	data, err := EncodeDataFrame(doc, false)
	require.NoError(t, err)
	_, err = DecodeErrorFrame(data)
	assert.ErrorIs(t, err, ErrNotErrorFrame)
}

func TestErrorFrameEmptyMessage(t *testing.T) {
	out, err := DecodeErrorFrame(EncodeErrorFrame(ErrorFrame{Code: 1}))
	require.NoError(t, err)
	assert.Equal(t, byte(1), out.Code)
	assert.Empty(t, out.Message)
}

func BenchmarkEncodeDataFrameCompressed(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := EncodeDataFrame(doc, true); err != nil {
			b.Fatal(err)
		}
	}
}
