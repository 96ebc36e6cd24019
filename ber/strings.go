// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"
	"unicode/utf8"

	"github.com/ibeckermayer/asn1"
)

// UTF8String is an ASN.1 UTF8String: a string type whose content octets are
// UTF-8 encoded text. It is the representative leaf type of this package;
// other ASN.1 leaf types implement the same contracts ([Decoder], [Tagged],
// [DerConstraints], [Encoder]) outside of it.
//
// A UTF8String decoded by this package borrows its content from the input
// buffer; use [UTF8String.ToOwned] to detach it.
type UTF8String struct {
	data Content
}

// NewUTF8String returns a UTF8String holding an owned copy of s.
func NewUTF8String(s string) UTF8String {
	return UTF8String{data: Owned([]byte(s))}
}

// String returns the text of s.
func (s UTF8String) String() string {
	return string(s.data.Bytes())
}

// Content returns the content octets of s as a [Content] view.
func (s UTF8String) Content() Content {
	return s.data
}

// Tag returns the intrinsic tag of an ASN.1 UTF8String.
func (s UTF8String) Tag() asn1.Tag {
	return asn1.TagUTF8String
}

// DecodeAny implements the [Decoder] interface. The data value must carry the
// UTF8String tag and its content octets must form valid UTF-8.
func (s *UTF8String) DecodeAny(a Any) error {
	if err := a.AssertTag(asn1.TagUTF8String); err != nil {
		return err
	}
	if !utf8.Valid(a.Bytes()) {
		return &SyntaxError{Tag: a.Tag(), Err: errInvalidUTF8}
	}
	s.data = a.Content()
	return nil
}

// CheckDer implements the [DerConstraints] interface. X.690 Section 10.2
// forbids the constructed encoding for string types under the Distinguished
// Encoding Rules.
func (s UTF8String) CheckDer(a Any) error {
	return a.AssertPrimitive()
}

// ToOwned returns a string equal to s whose content holds no reference to the
// input buffer it was decoded from. ToOwned is idempotent.
func (s UTF8String) ToOwned() UTF8String {
	return UTF8String{data: s.data.ToOwned()}
}

// Equal reports whether s and other hold equal text.
func (s UTF8String) Equal(other UTF8String) bool {
	return s.data.Equal(other.data)
}

// header returns the canonical DER header of s.
func (s UTF8String) header() Header {
	return Header{
		Tag:         asn1.TagUTF8String,
		Length:      Length(s.data.Len()),
		Constructed: false,
	}
}

// DerLen implements the [Encoder] interface.
func (s UTF8String) DerLen() (int, error) {
	return s.header().EncodedLen() + s.data.Len(), nil
}

// EncodeDerHeader implements the [Encoder] interface.
func (s UTF8String) EncodeDerHeader(w io.Writer) (int, error) {
	return s.header().WriteDer(w)
}

// EncodeDerContent implements the [Encoder] interface.
func (s UTF8String) EncodeDerContent(w io.Writer) (int, error) {
	return WriteContent(w, s.data.Bytes())
}
