// Package cobs implements Consistent Overhead Byte Stuffing (COBS), an
// encoding that removes every zero byte from a byte sequence so that zero can
// be used unambiguously as a packet delimiter on a byte stream (serial links,
// packet sockets, and so on).
//
// Refer to: https://en.wikipedia.org/wiki/Consistent_Overhead_Byte_Stuffing
//
// An encoded packet is a sequence of chunks followed by a terminating zero.
// A chunk is an offset byte (1-255) followed by offset-1 data bytes; the
// offset states the distance to the next chunk (or to the terminator).  An
// offset below 255 marks the position of a zero byte that was elided from the
// input; a maximal chunk (offset 255, 254 data bytes) elides nothing.
//
// Using the notation "Nx" for N consecutive non-zero bytes:
//
//	decoded, length -> encoded       , length
//	       , 0      -> 1|0           , 2
//	x      , 1      -> 2|x|0         , 3
//	0      , 1      -> 1|1|0         , 3
//	x|0|x  , 3      -> 2|x|2|x|0     , 5
//	254x   , 254    -> 255|254x|0    , 256
//	254x|0 , 255    -> 255|254x|1|1|0, 258
//	255x   , 255    -> 255|254x|2|x|0, 258
//
// Both transforms operate on caller-owned buffers and never allocate.  Size
// destination buffers with MaxEncodedLength and MaxDecodedLength and neither
// transform can fail with WriteOverflow.
package cobs
