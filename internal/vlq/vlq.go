// Package vlq implements [Variable-length quantity] encoding as used in MIDI
// or BER. A VLQ is essentially a base-128 representation of an unsigned
// integer with the addition of the eighth bit to mark continuation of bytes.
// VLQ is identical to [LEB128] except in endianness.
//
// [Variable-length quantity]: https://en.wikipedia.org/wiki/Variable-length_quantity
// [LEB128]: https://en.wikipedia.org/wiki/LEB128
package vlq

import (
	"errors"
	"io"
	"math/bits"
	"unsafe"
)

// ErrNonMinimal indicates that a VLQ carries leading zeros (an 0x80 byte at
// the start). Encodings produced by this package are always minimal.
var ErrNonMinimal = errors.New("vlq is not minimally encoded")

// ErrOverflow indicates that a VLQ does not fit into the requested type.
var ErrOverflow = errors.New("vlq too large for target type")

// Decode parses an unsigned VLQ from the beginning of b. It returns the
// decoded value and the number of bytes consumed. The maximum allowed value is
// limited by the size of T.
//
// If b ends before the final byte of the VLQ, [io.ErrUnexpectedEOF] is
// returned. If the VLQ is not minimally encoded, [ErrNonMinimal] is returned.
func Decode[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](b []byte) (ret T, n int, err error) {
	if len(b) == 0 {
		return 0, 0, io.ErrUnexpectedEOF
	}
	if b[0] == 0x80 {
		return 0, 0, ErrNonMinimal
	}

	c := b[0]
	n = 1
	ret = T(c & 0x7f)
	numBits := bits.Len8(c & 0x7f)

	for c&0x80 != 0 {
		if n == len(b) {
			return 0, n, io.ErrUnexpectedEOF
		}
		c = b[n]
		n++
		ret <<= 7
		ret |= T(c & 0x7f)

		if numBits == 0 {
			numBits = bits.Len8(c & 0x7f)
		} else {
			numBits += 7
		}
		if numBits > int(unsafe.Sizeof(ret)*8) {
			return 0, n, ErrOverflow
		}
	}
	return ret, n, nil
}

// Length returns the number of bytes needed to encode n as a VLQ.
func Length[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](n T) int {
	if n == 0 {
		return 1
	}
	l := 0
	for i := n; i > 0; i >>= 7 {
		l++
	}
	return l
}

// Append appends the minimal VLQ encoding of i to dst and returns the
// extended slice.
func Append[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](dst []byte, i T) []byte {
	l := Length(i)
	for j := l - 1; j >= 0; j-- {
		b := byte(i>>(j*7)) & 0x7f
		if j > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}
