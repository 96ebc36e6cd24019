// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package asn1 defines the tag model shared by the ASN.1 encoding rules
// specified in [Rec. ITU-T X.690]. This package only contains the types
// identifying ASN.1 values on the wire: the tag class and the tag number.
// Encoding and decoding of data values is implemented in the
// [github.com/ibeckermayer/asn1/ber] package.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
package asn1

import (
	"strconv"
	"strings"
)

// Class holds the class part of an ASN.1 tag. The class acts as a namespace
// for the tag number. A Class value is an unsigned 2-bit integer. Class values
// whose value exceeds 2 bits are invalid.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

// Predefined [Class] constants. These are all the possible values that can be
// encoded in the [Class] type.
const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c is a valid Class value.
func (c Class) IsValid() bool {
	return c <= 3
}

// Tag constitutes an ASN.1 tag, consisting of its class and number. For
// details, see Section 8 of Rec. ITU-T X.680.
//
// The class occupies the top two bits of a Tag and the number occupies the
// remaining fourteen. Two tags are equal only if both their classes and their
// numbers are equal, so tags from different classes never compare equal even
// when they share a number. Use [NewTag] to construct tags from a class and a
// number. The predefined tag constants in this package all belong to
// [ClassUniversal] where a Tag value and its number coincide.
type Tag uint16

// MaxTag is the largest tag number that can be represented by the [Tag] type.
const MaxTag = 1<<14 - 1

// NewTag returns the tag with the given class and number. Numbers larger than
// [MaxTag] cannot be represented and are truncated.
func NewTag(class Class, number uint) Tag {
	return Tag(class)<<14 | (Tag(number) & MaxTag)
}

// Class returns the class of t.
func (t Tag) Class() Class {
	return Class(t >> 14)
}

// Number returns the tag number of t within its class.
func (t Tag) Number() uint {
	return uint(t & MaxTag)
}

// String returns a string representation of t in a format similar to the one
// used in ASN.1 notation. The tag number is enclosed by square brackets and
// prefixed with the class used. To avoid ambiguity the UNIVERSAL word is used
// for universal tags, although this is not valid ASN.1 syntax.
func (t Tag) String() string {
	if t.Class() == ClassContextSpecific {
		return "[" + strconv.FormatUint(uint64(t.Number()), 10) + "]"
	}
	return "[" + strings.ToUpper(t.Class().String()) + " " + strconv.FormatUint(uint64(t.Number()), 10) + "]"
}

// TagReserved is a reserved tag number in the [ClassUniversal] namespace to be
// used by encoding rules. This assignment is defined in Rec. ITU-T X.680,
// Section 8, Table 1. The BER end-of-contents marker uses this tag.
const TagReserved Tag = 0

// These are the ASN.1 tag numbers defined in the [ClassUniversal] namespace.
// These assignments are defined in Rec. ITU-T X.680, Section 8, Table 1.
const (
	TagBoolean          Tag = 1
	TagInteger          Tag = 2
	TagBitString        Tag = 3
	TagOctetString      Tag = 4
	TagNull             Tag = 5
	TagOID              Tag = 6
	TagObjectDescriptor Tag = 7
	TagExternal         Tag = 8
	TagReal             Tag = 9
	TagEnumerated       Tag = 10
	TagEmbeddedPDV      Tag = 11
	TagUTF8String       Tag = 12
	TagRelativeOID      Tag = 13
	TagTime             Tag = 14
	TagSequence         Tag = 16
	TagSet              Tag = 17
	TagNumericString    Tag = 18
	TagPrintableString  Tag = 19
	TagTeletexString    Tag = 20
	TagT61String            = TagTeletexString
	TagVideotexString   Tag = 21
	TagIA5String        Tag = 22
	TagUTCTime          Tag = 23
	TagGeneralizedTime  Tag = 24
	TagGraphicString    Tag = 25
	TagVisibleString    Tag = 26
	TagISO646String         = TagVisibleString
	TagGeneralString    Tag = 27
	TagUniversalString  Tag = 28
	TagCharacterString  Tag = 29
	TagBMPString        Tag = 30
)
