// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"io"

	"github.com/ibeckermayer/asn1"
)

// Sequence is a constructed data value holding the raw content octets of an
// ASN.1 SEQUENCE. The content consists of the back-to-back encodings of the
// sequence elements; it holds exactly the bytes between the end of the
// SEQUENCE header and the position implied by its length, never any trailing
// bytes.
//
// Elements are decoded lazily from the content via [IterBer], [IterDer] and
// the SequenceOf functions. A Sequence decoded by this package borrows its
// content from the input buffer; use [Sequence.ToOwned] to detach it.
type Sequence struct {
	content Content
}

// NewSequence returns a sequence over the given content octets.
func NewSequence(c Content) Sequence {
	return Sequence{content: c}
}

// SequenceFromItems serializes each item to canonical DER and concatenates
// the encodings as the content of a new sequence. The content of the returned
// sequence is owned.
func SequenceFromItems[T Encoder](items []T) (Sequence, error) {
	var size Length
	for _, item := range items {
		l, err := item.DerLen()
		if err != nil {
			return Sequence{}, err
		}
		size = CombinedLength(size, Length(l))
	}
	buf := newSliceWriter(int(size))
	for _, item := range items {
		if _, err := EncodeDer(buf, item); err != nil {
			return Sequence{}, err
		}
	}
	return Sequence{content: Owned(buf.data)}, nil
}

// Content returns the content octets of s as a [Content] view.
func (s Sequence) Content() Content {
	return s.content
}

// Bytes returns the content octets of s. The returned slice must not be
// modified.
func (s Sequence) Bytes() []byte {
	return s.content.Bytes()
}

// Tag returns the intrinsic tag of an ASN.1 SEQUENCE.
func (s Sequence) Tag() asn1.Tag {
	return asn1.TagSequence
}

// DecodeAny implements the [Decoder] interface. The data value must carry the
// SEQUENCE tag and use the constructed encoding.
func (s *Sequence) DecodeAny(a Any) error {
	if err := a.AssertTag(asn1.TagSequence); err != nil {
		return err
	}
	if err := a.AssertConstructed(); err != nil {
		return err
	}
	s.content = a.Content()
	return nil
}

// CheckDer implements the [DerConstraints] interface. A SEQUENCE has no
// DER-specific shape rules beyond the canonical form checks performed during
// parsing.
func (s Sequence) CheckDer(a Any) error {
	return nil
}

// ToOwned returns a sequence equal to s whose content holds no reference to
// the input buffer it was decoded from. ToOwned is idempotent.
func (s Sequence) ToOwned() Sequence {
	return Sequence{content: s.content.ToOwned()}
}

// Equal reports whether s and other hold equal content octets.
func (s Sequence) Equal(other Sequence) bool {
	return s.content.Equal(other.content)
}

// Parse invokes f with the content octets of s. The content is not consumed;
// Parse can be called any number of times. The error returned by f is
// returned unchanged.
func (s Sequence) Parse(f func(content []byte) error) error {
	return f(s.content.Bytes())
}

// ParseBorrowed invokes f with the content octets of s, which must be
// borrowed from an input buffer. If the content of s is owned, ParseBorrowed
// fails with a [LifetimeError]: results derived from f alias the content of
// s, and handing them out from content whose only reference may be s itself
// defeats the borrowed/owned distinction the caller relies on.
func (s Sequence) ParseBorrowed(f func(content []byte) error) error {
	if !s.content.IsBorrowed() {
		return &LifetimeError{}
	}
	return f(s.content.Bytes())
}

// header returns the canonical DER header of s.
func (s Sequence) header() Header {
	return Header{
		Tag:         asn1.TagSequence,
		Length:      Length(s.content.Len()),
		Constructed: true,
	}
}

// DerLen implements the [Encoder] interface.
func (s Sequence) DerLen() (int, error) {
	return s.header().EncodedLen() + s.content.Len(), nil
}

// EncodeDerHeader implements the [Encoder] interface.
func (s Sequence) EncodeDerHeader(w io.Writer) (int, error) {
	return s.header().WriteDer(w)
}

// EncodeDerContent implements the [Encoder] interface.
func (s Sequence) EncodeDerContent(w io.Writer) (int, error) {
	return WriteContent(w, s.content.Bytes())
}
