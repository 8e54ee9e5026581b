package cobs_test

import (
	"bytes"
	"testing"

	"github.com/byteframe/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type maximalRunContent struct{}

func (maximalRunContent) Content() []byte {
	return bytes.Repeat([]byte{'a'}, 254)
}

func (maximalRunContent) String() string {
	return "[maximal run]"
}

// inputBytes generates byte sequences that mix arbitrary content, lone zero
// bytes and runs of exactly 254 non-zero bytes, so that chunk-boundary
// behavior around the maximum offset gets exercised.
var inputBytes = rapid.Custom(func(t *rapid.T) []byte {
	smallChunk := rapid.SliceOf(rapid.Byte())
	maximalRun := rapid.Just(maximalRunContent{})
	zero := rapid.Just([]byte{0x00})
	generator := rapid.SliceOf(rapid.OneOf(smallChunk, maximalRun, zero))
	chunks := generator.Draw(t, "chunks").([]interface{})
	var buf bytes.Buffer
	for _, chunk := range chunks {
		run, ok := chunk.(maximalRunContent)
		if ok {
			buf.Write(run.Content())
		} else {
			buf.Write(chunk.([]byte))
		}
	}
	return buf.Bytes()
})

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputBytes.Draw(t, "input").([]byte)
		encoded := make([]byte, cobs.MaxEncodedLength(len(input)))
		encodedLen, err := cobs.Encode(input, encoded)
		require.NoError(t, err)
		decoded := make([]byte, cobs.MaxDecodedLength(encodedLen))
		consumed, produced, err := cobs.Decode(encoded[:encodedLen], decoded)
		require.NoError(t, err)
		assert.Equal(t, encodedLen, consumed)
		assert.Equal(t, input, decoded[:produced])
	})
}

func TestEncodedIsMarkerFree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputBytes.Draw(t, "input").([]byte)
		encoded := make([]byte, cobs.MaxEncodedLength(len(input)))
		encodedLen, err := cobs.Encode(input, encoded)
		require.NoError(t, err)
		require.GreaterOrEqual(t, encodedLen, 2)
		assert.Equal(t, encodedLen-1, bytes.IndexByte(encoded[:encodedLen], 0x00))
	})
}

func TestRoundTripStream(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inputs := rapid.SliceOf(inputBytes).Draw(t, "inputs").([][]byte)
		var stream []byte
		for _, input := range inputs {
			encoded := make([]byte, cobs.MaxEncodedLength(len(input)))
			encodedLen, err := cobs.Encode(input, encoded)
			require.NoError(t, err)
			stream = append(stream, encoded[:encodedLen]...)
		}

		actual := [][]byte{}
		rest := stream
		for len(rest) > 0 {
			decoded := make([]byte, cobs.MaxDecodedLength(len(rest)))
			consumed, produced, err := cobs.Decode(rest, decoded)
			require.NoError(t, err)
			actual = append(actual, decoded[:produced])
			rest = rest[consumed:]
		}

		require.Equal(t, len(inputs), len(actual))
		for i := range inputs {
			assert.Equal(t, inputs[i], actual[i])
		}
	})
}

func TestTruncatedEncodingFails(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		input := inputBytes.Draw(t, "input").([]byte)
		encoded := make([]byte, cobs.MaxEncodedLength(len(input)))
		encodedLen, err := cobs.Encode(input, encoded)
		require.NoError(t, err)
		cut := rapid.IntRange(1, encodedLen-1).Draw(t, "cut").(int)
		decoded := make([]byte, cobs.MaxDecodedLength(encodedLen))
		_, produced, err := cobs.Decode(encoded[:encodedLen-cut], decoded)
		assert.Equal(t, cobs.ReadOverflow, err)
		assert.Equal(t, 0, produced)
	})
}
