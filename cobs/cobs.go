package cobs

import (
	"errors"
)

// The marker is the reserved byte value that the encoding removes from the
// data and that terminates every encoded packet.
const marker = 0x00

// maxOffset is the largest value an offset byte can hold.  A chunk with this
// offset carries maxOffset-1 data bytes and does not stand for an elided
// marker byte.
const maxOffset = 0xff

var (
	// WriteOverflow is the error that is returned when the destination
	// buffer is too small to hold the result.
	WriteOverflow = errors.New("Write overflow")

	// ReadOverflow is the error that is returned when the source buffer
	// does not contain at least one full packet.
	ReadOverflow = errors.New("Read overflow")

	// UnexpectedZero is the error that is returned when the source buffer
	// contains a zero byte where a data byte or a continuation offset was
	// expected during decoding.
	UnexpectedZero = errors.New("Unexpected zero")
)

// MaxEncodedLength returns the largest encoded length that a decoded buffer
// of the given length can produce.  The worst case is an input without any
// zero bytes: one offset byte for every 254 data bytes, plus the leading
// offset and the terminating marker.  Use it to size the destination buffer
// for Encode; the result never undershoots.
func MaxEncodedLength(decodedLength int) int {
	return decodedLength + decodedLength/(maxOffset-1) + 2
}

// MaxDecodedLength returns the largest decoded length that an encoded buffer
// of the given length can produce.  The minimum overhead of a packet is two
// bytes (the leading offset and the terminating marker), so the bound is the
// encoded length minus two.  Use it to size the destination buffer for
// Decode.  Encoded packets are never shorter than two bytes; for smaller
// arguments the result is clamped to zero.
func MaxDecodedLength(encodedLength int) int {
	if encodedLength < 2 {
		return 0
	}
	return encodedLength - 2
}

// Encode writes the COBS encoding of src into dst and returns the number of
// bytes produced.  The output contains no zero byte except the terminating
// marker, and is always at least two bytes, even for empty input.
//
// If dst is too small the encoding is aborted, and Encode returns 0 and
// WriteOverflow; whatever was written to dst is not a valid prefix of any
// encoding.  A dst of MaxEncodedLength(len(src)) bytes cannot overflow.
func Encode(src, dst []byte) (int, error) {
	// offsetIdx is the reserved position where the pending chunk's offset
	// byte is backfilled once the chunk closes; copyIdx is the next data
	// byte to write.
	offsetIdx := 0
	copyIdx := 1

	// A trailing chunk with offset 1 is omitted when it directly follows a
	// maximal chunk: the decoder inserts no zero after an offset of 255,
	// so the terminator can take the chunk's place.
	maximal := false

	for _, b := range src {
		if b != marker {
			if copyIdx >= len(dst) {
				return 0, WriteOverflow
			}
			dst[copyIdx] = b
			copyIdx++
			if copyIdx-offsetIdx != maxOffset {
				continue
			}
			maximal = true
		} else {
			maximal = false
		}

		// Close the chunk: backfill the offset and reserve a byte for
		// the next chunk's offset.
		if offsetIdx >= len(dst) {
			return 0, WriteOverflow
		}
		dst[offsetIdx] = byte(copyIdx - offsetIdx)
		offsetIdx = copyIdx
		copyIdx++
	}

	if copyIdx-offsetIdx == 1 && maximal {
		// Drop the reserved offset byte; the terminator follows the
		// maximal chunk directly.
		copyIdx = offsetIdx
	} else {
		if offsetIdx >= len(dst) {
			return 0, WriteOverflow
		}
		dst[offsetIdx] = byte(copyIdx - offsetIdx)
	}

	if copyIdx >= len(dst) {
		return 0, WriteOverflow
	}
	dst[copyIdx] = marker
	copyIdx++

	return copyIdx, nil
}

// Decode reads one encoded packet from the start of src, writes the decoded
// bytes into dst, and returns the number of bytes consumed (including the
// terminating marker) and produced.  Bytes of src beyond the terminator are
// not touched; a new decoding operation can be started at src[consumed:].
//
// On failure the decoded count is 0 and whatever was written to dst is not a
// valid prefix of any decoding:
//
//   - ReadOverflow: src does not contain a full packet; 0 bytes consumed.
//   - WriteOverflow: dst is too small; 0 bytes consumed.  A dst of
//     MaxDecodedLength(len(src)) bytes cannot overflow on well-formed input.
//   - UnexpectedZero: a zero byte appeared inside a chunk's data.  The
//     consumed count includes the offending byte, so a caller scanning a
//     marker-delimited stream can resynchronize at src[consumed:].  A packet
//     starting with the marker itself reports UnexpectedZero with 1 byte
//     consumed, which doubles as an "empty packet" signal.
func Decode(src, dst []byte) (int, int, error) {
	srcIdx := 0
	dstIdx := 0

	if srcIdx >= len(src) {
		return 0, 0, ReadOverflow
	}
	offset := src[srcIdx]
	srcIdx++

	if offset == marker {
		return srcIdx, 0, UnexpectedZero
	}

	for {
		// The offset counts itself, so offset-1 data bytes follow.
		copyEnd := srcIdx + int(offset) - 1
		if copyEnd > len(src) {
			return 0, 0, ReadOverflow
		}
		if dstIdx+int(offset)-1 > len(dst) {
			return 0, 0, WriteOverflow
		}

		for srcIdx < copyEnd {
			b := src[srcIdx]
			srcIdx++
			if b == marker {
				return srcIdx, 0, UnexpectedZero
			}
			dst[dstIdx] = b
			dstIdx++
		}

		if srcIdx >= len(src) {
			return 0, 0, ReadOverflow
		}
		next := src[srcIdx]
		srcIdx++

		if next == marker {
			break
		}

		// Any offset below the maximum marks a zero byte that the
		// encoder elided at the chunk boundary.
		if offset != maxOffset {
			if dstIdx >= len(dst) {
				return 0, 0, WriteOverflow
			}
			dst[dstIdx] = marker
			dstIdx++
		}

		offset = next
	}

	return srcIdx, dstIdx, nil
}
