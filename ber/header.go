// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"

	"github.com/ibeckermayer/asn1"
	"github.com/ibeckermayer/asn1/internal/vlq"
)

// Header represents the identifier and length octets of an encoded data
// value: its tag, the constructed flag, and the number of content octets that
// follow. The Length may be [LengthIndefinite] if the constructed
// indefinite-length encoding is used. It is invalid for a primitive encoding
// to use the indefinite-length format.
//
// A Header is constructed fresh on every decode or encode operation and is
// not modified afterwards.
type Header struct {
	Tag         asn1.Tag
	Length      Length
	Constructed bool
}

// String returns a string representation of h.
func (h Header) String() string {
	s := h.Tag.String()
	if h.Constructed {
		s += "/c"
	} else {
		s += "/p"
	}
	return s + ":" + h.Length.String()
}

// EncodedLen returns the number of bytes of the canonical encoding of h. The
// encoding functions write this exact number of bytes.
func (h Header) EncodedLen() int {
	l := 1 // class, constructed, tag
	if h.Tag.Number() >= 31 {
		// tag number does not fit into the identifier octet
		l += vlq.Length(h.Tag.Number())
	}
	if h.Length == LengthIndefinite {
		return l + 1
	}
	n, _ := h.Length.EncodedLen()
	return l + n
}

// AppendDer appends the canonical DER encoding of h to dst and returns the
// extended slice. Headers with an indefinite length have no DER encoding and
// result in a [SyntaxError].
func (h Header) AppendDer(dst []byte) ([]byte, error) {
	if h.Length == LengthIndefinite {
		return dst, &SyntaxError{Tag: h.Tag, Err: errIndefiniteLength}
	}
	b := uint8(h.Tag.Class()) << 6
	if h.Constructed {
		b |= 0x20
	}
	if h.Tag.Number() < 31 {
		dst = append(dst, b|uint8(h.Tag.Number()))
	} else {
		dst = append(dst, b|0x1f)
		dst = vlq.Append(dst, h.Tag.Number())
	}
	return appendLength(dst, h.Length), nil
}

// WriteDer writes the canonical DER encoding of h to w. It returns the number
// of bytes written. Errors from w are wrapped in a [WriteError].
func (h Header) WriteDer(w io.Writer) (int, error) {
	var buf [12]byte
	enc, err := h.AppendDer(buf[:0])
	if err != nil {
		return 0, err
	}
	n, err := w.Write(enc)
	if err != nil {
		return n, &WriteError{Err: err}
	}
	if n < len(enc) {
		return n, &WriteError{Err: io.ErrShortWrite}
	}
	return n, nil
}

// ParseHeader decodes the identifier and length octets at the beginning of
// input under the discipline m. It returns the decoded header and the
// remaining input following the length octets.
func (m Mode) ParseHeader(input []byte) (Header, []byte, error) {
	h, n, err := parseHeader(input, m)
	return h, input[n:], err
}

// parseHeader implements [Mode.ParseHeader]. It returns the number of bytes
// consumed instead of the remaining input.
func parseHeader(input []byte, m Mode) (Header, int, error) {
	if len(input) == 0 {
		return Header{}, 0, &IncompleteError{Needed: 1}
	}
	b := input[0]
	h := Header{
		Tag:         asn1.NewTag(asn1.Class(b>>6), uint(b&0x1f)),
		Constructed: b&0x20 == 0x20,
	}
	n := 1

	// If the bottom five bits are set, the tag number is actually VLQ-encoded
	// in the following bytes.
	if b&0x1f == 0x1f {
		num, l, err := vlq.Decode[uint](input[1:])
		n += l
		if err != nil {
			if err == io.ErrUnexpectedEOF {
				return h, n, &IncompleteError{Needed: 1}
			}
			return h, n, &SyntaxError{Err: err}
		}
		if num > asn1.MaxTag {
			return h, n, &SyntaxError{Err: errTagTooLarge}
		}
		h.Tag = asn1.NewTag(h.Tag.Class(), num)
	}

	l, ln, err := parseLength(input[n:], m)
	n += ln
	if err != nil {
		return h, n, wrapTag(err, h.Tag)
	}
	h.Length = l
	if h.Length == LengthIndefinite && !h.Constructed {
		return h, n, &SyntaxError{Tag: h.Tag, Err: errIndefinitePrimitive}
	}
	return h, n, nil
}

// wrapTag attaches the tag t to a [SyntaxError] that was generated before the
// surrounding tag was known.
func wrapTag(err error, t asn1.Tag) error {
	var sErr *SyntaxError
	if errors.As(err, &sErr) && sErr.Tag == asn1.TagReserved {
		sErr.Tag = t
	}
	return err
}
