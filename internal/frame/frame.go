// Package frame provides whole-buffer helpers for producing and consuming
// streams of zero-delimited COBS packets.  The helpers size their buffers
// with the codec's length bounds, so callers never see an overflow status.
package frame

import (
	"bytes"
	"errors"

	"github.com/byteframe/cobs-go/cobs"
)

var (
	// Incomplete is the error that is returned when the stream holds no
	// complete packet, so decoding cannot make progress.
	Incomplete = errors.New("Incomplete stream")
)

// AppendEncode encodes src as a single packet, appends the packet to dst,
// and returns the extended slice.
func AppendEncode(dst, src []byte) []byte {
	start := len(dst)
	dst = append(dst, make([]byte, cobs.MaxEncodedLength(len(src)))...)
	produced, err := cobs.Encode(src, dst[start:])
	if err != nil {
		// MaxEncodedLength sized the buffer; Encode cannot overflow it.
		panic(err)
	}
	return dst[:start+produced]
}

// AppendDecode decodes the first packet of stream, appends the decoded bytes
// to dst, and returns the extended slice together with the remainder of the
// stream after that packet.  Stray marker bytes before the packet are
// skipped.
//
// If stream holds no terminating marker, AppendDecode returns dst unchanged,
// the unconsumed remainder and Incomplete.  If the first packet is corrupt,
// it returns dst unchanged, the remainder after the packet's terminator and
// the decoding error; the caller can carry on with the next packet.
func AppendDecode(dst, stream []byte) ([]byte, []byte, error) {
	for len(stream) > 0 && stream[0] == 0x00 {
		stream = stream[1:]
	}
	if len(stream) == 0 {
		return dst, stream, Incomplete
	}

	term := bytes.IndexByte(stream, 0x00)
	if term < 0 {
		return dst, stream, Incomplete
	}
	packet := stream[:term+1]
	rest := stream[term+1:]

	start := len(dst)
	dst = append(dst, make([]byte, cobs.MaxDecodedLength(len(packet)))...)
	_, produced, err := cobs.Decode(packet, dst[start:])
	if err != nil {
		return dst[:start], rest, err
	}
	return dst[:start+produced], rest, nil
}
