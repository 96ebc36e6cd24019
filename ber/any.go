// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"github.com/ibeckermayer/asn1"
)

// Any is a generically-typed data value: a decoded [Header] paired with the
// raw, undecoded content octets of the value. An Any is produced by
// [Mode.Parse] and consumed by the [Decoder] of a concrete type. It is not
// modified after construction.
//
// The content of an Any decoded by [Mode.Parse] is borrowed from the input
// buffer. Use [Any.ToOwned] if the value must outlive the input.
type Any struct {
	Header Header

	data Content
}

// NewAny returns an Any combining the given header and content.
func NewAny(h Header, c Content) Any {
	return Any{Header: h, data: c}
}

// Tag returns the tag of the data value.
func (a Any) Tag() asn1.Tag {
	return a.Header.Tag
}

// Class returns the tag class of the data value.
func (a Any) Class() asn1.Class {
	return a.Header.Tag.Class()
}

// Constructed reports whether the data value uses the constructed encoding.
func (a Any) Constructed() bool {
	return a.Header.Constructed
}

// Bytes returns the content octets of the data value. The returned slice must
// not be modified.
func (a Any) Bytes() []byte {
	return a.data.Bytes()
}

// Content returns the content octets of the data value as a [Content] view.
func (a Any) Content() Content {
	return a.data
}

// ToOwned returns a copy of a whose content holds no reference to the input
// buffer it was decoded from.
func (a Any) ToOwned() Any {
	return Any{Header: a.Header, data: a.data.ToOwned()}
}

// Equal reports whether a and other represent the same data value: equal
// headers and equal content octets. Content ownership does not participate in
// equality.
func (a Any) Equal(other Any) bool {
	return a.Header == other.Header && a.data.Equal(other.data)
}

// AssertTag returns a [TagMismatchError] if the tag of a does not equal t.
func (a Any) AssertTag(t asn1.Tag) error {
	if a.Tag() != t {
		return &TagMismatchError{Expected: t, Actual: a.Tag()}
	}
	return nil
}

// AssertConstructed returns a [SyntaxError] if a does not use the constructed
// encoding.
func (a Any) AssertConstructed() error {
	if !a.Constructed() {
		return &SyntaxError{Tag: a.Tag(), Err: errPrimitive}
	}
	return nil
}

// AssertPrimitive returns a [ConstraintError] if a uses the constructed
// encoding. The Distinguished Encoding Rules require the primitive encoding
// for string types and other primitive ASN.1 types (X.690 Section 10.2).
func (a Any) AssertPrimitive() error {
	if a.Constructed() {
		return &ConstraintError{Tag: a.Tag(), Err: errConstructed}
	}
	return nil
}

// Parse decodes the data value encoding at the beginning of input under the
// discipline m. It returns the decoded value and the remaining input
// following the data value. The content of the returned Any is borrowed from
// input.
//
// For definite lengths the content is exactly Length octets; an input
// containing fewer bytes results in an [IncompleteError]. For indefinite
// lengths (BER only) the content is the bytes between the header and the
// matching end-of-contents marker.
func (m Mode) Parse(input []byte) (Any, []byte, error) {
	h, n, err := parseHeader(input, m)
	if err != nil {
		return Any{Header: h}, input, err
	}
	rest := input[n:]

	if h.Length == LengthIndefinite {
		l, err := indefiniteContentLen(rest)
		if err != nil {
			return Any{Header: h}, input, err
		}
		a := Any{Header: h, data: Borrowed(rest[:l])}
		return a, rest[l+2:], nil // skip the end-of-contents marker
	}

	l := int(h.Length)
	if len(rest) < l {
		return Any{Header: h}, input, &IncompleteError{Needed: l - len(rest)}
	}
	return Any{Header: h, data: Borrowed(rest[:l])}, rest[l:], nil
}

// indefiniteContentLen returns the number of bytes in b that precede the
// end-of-contents marker terminating an indefinite-length encoding. Nested
// data values are skipped as a whole so that end-of-contents markers of
// nested indefinite-length encodings are not mistaken for the terminator.
func indefiniteContentLen(b []byte) (int, error) {
	off := 0
	for {
		if len(b)-off < 2 {
			return 0, &IncompleteError{Needed: 2 - (len(b) - off)}
		}
		if b[off] == 0x00 && b[off+1] == 0x00 {
			return off, nil
		}
		h, n, err := parseHeader(b[off:], BER)
		if err != nil {
			return 0, err
		}
		off += n
		if h.Length == LengthIndefinite {
			l, err := indefiniteContentLen(b[off:])
			if err != nil {
				return 0, err
			}
			off += l + 2
		} else {
			if len(b)-off < int(h.Length) {
				return 0, &IncompleteError{Needed: int(h.Length) - (len(b) - off)}
			}
			off += int(h.Length)
		}
	}
}
