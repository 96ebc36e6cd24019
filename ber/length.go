// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"math"
	"math/bits"
	"strconv"
)

// LengthIndefinite when used as the length of a [Header] indicates that the
// data value is encoded using the constructed indefinite-length format. The
// indefinite-length format is only valid under the [BER] discipline.
const LengthIndefinite Length = -1

// Length describes the number of content octets of a data value encoding.
// A Length is either definite (a non-negative byte count) or the special
// value [LengthIndefinite].
type Length int

// IsDefinite reports whether l is a definite length.
func (l Length) IsDefinite() bool {
	return l != LengthIndefinite
}

// String returns a string representation of l.
func (l Length) String() string {
	if l == LengthIndefinite {
		return "indefinite"
	}
	return strconv.Itoa(int(l))
}

// EncodedLen returns the number of octets of the canonical encoding of l: one
// octet for lengths up to 126 and 1+k octets for larger lengths, where k is
// the minimal number of big-endian bytes representing l. An indefinite length
// has no canonical encoding and results in a [SyntaxError].
func (l Length) EncodedLen() (int, error) {
	if l == LengthIndefinite {
		return 0, &SyntaxError{Err: errIndefiniteLength}
	}
	if l < 127 {
		return 1, nil
	}
	return 1 + (bits.Len(uint(l))+7)/8, nil
}

// appendLength appends the canonical encoding of the definite length l to
// dst. The caller ensures that l is definite.
func appendLength(dst []byte, l Length) []byte {
	if l < 127 {
		return append(dst, byte(l))
	}
	numBytes := (bits.Len(uint(l)) + 7) / 8
	dst = append(dst, 0x80|byte(numBytes))
	for ; numBytes > 0; numBytes-- {
		dst = append(dst, byte(l>>uint((numBytes-1)*8)))
	}
	return dst
}

// parseLength decodes the length octets at the beginning of input under the
// discipline m. It returns the decoded length and the number of bytes
// consumed.
func parseLength(input []byte, m Mode) (Length, int, error) {
	if len(input) == 0 {
		return 0, 0, &IncompleteError{Needed: 1}
	}
	b := input[0]
	switch {
	case b == 0x7f || b == 0xff:
		return 0, 1, &SyntaxError{Err: errReservedLength}
	case b&0x80 == 0:
		// The length is encoded in the bottom 7 bits.
		return Length(b), 1, nil
	case b == 0x80:
		if m == DER {
			return 0, 1, &SyntaxError{Err: errIndefiniteLength}
		}
		return LengthIndefinite, 1, nil
	}

	// Bottom 7 bits give the number of length bytes to follow.
	numBytes := int(b & 0x7f)
	if len(input)-1 < numBytes {
		return 0, len(input), &IncompleteError{Needed: numBytes - (len(input) - 1)}
	}
	var l Length
	for i := 1; i <= numBytes; i++ {
		if m == DER && i == 1 && input[i] == 0 {
			return 0, i + 1, &SyntaxError{Err: errNonMinimalLength}
		}
		if l > math.MaxInt>>8 {
			// We can't shift l up without overflowing.
			return 0, i, &SyntaxError{Err: errLengthTooLarge}
		}
		l = l<<8 | Length(input[i])
	}
	if m == DER && l < 127 {
		// the short form is required for lengths below 127
		return 0, numBytes + 1, &SyntaxError{Err: errNonMinimalLength}
	}
	return l, numBytes + 1, nil
}

// CombinedLength returns the length of a data value encoding (not including
// its header) consisting of data value encodings of the specified lengths. If
// any of the passed lengths are [LengthIndefinite] or the result does not fit
// into the int type, the result is [LengthIndefinite].
func CombinedLength(ls ...Length) Length {
	sum := Length(0)
	for _, l := range ls {
		if l == LengthIndefinite {
			return LengthIndefinite
		}
		if l > math.MaxInt-sum { // overflow
			return LengthIndefinite
		}
		sum += l
	}
	return sum
}
