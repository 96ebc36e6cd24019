// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ber implements decoding and encoding of the tag-length-value (TLV)
// format defined by the ASN.1 Basic Encoding Rules (BER) and Distinguished
// Encoding Rules (DER) as specified in [Rec. ITU-T X.690].
// See also “[A Layman's Guide to a Subset of ASN.1, BER, and DER]”.
//
// # Decoding
//
// Decoding operates on byte slices and does not copy the input. The generic
// value type [Any] pairs a decoded [Header] with the raw content octets of a
// data value. The [Mode] type selects the decode discipline: [BER] accepts
// everything the Basic Encoding Rules allow, including indefinite lengths and
// non-minimal length encodings, while [DER] restricts the input to the
// canonical subset and additionally runs the DER constraint checks of the
// target type.
//
//	a, rest, err := ber.DER.Parse(input)
//
// Typed decoding is built on a small set of contracts implemented by concrete
// ASN.1 types: [Decoder] constructs a typed value from an [Any], [Tagged]
// declares a type's expected tag, and [DerConstraints] validates DER shape
// rules. The generic functions [FromBer] and [FromDer] combine header
// parsing, tag assertion, and constraint checking:
//
//	s, rest, err := ber.FromDer[ber.UTF8String](input)
//
// # Content Ownership
//
// Decoded values reference the input buffer they were decoded from instead of
// copying it. Such borrowed content is only valid as long as the input buffer
// is neither freed nor modified. The [Content] type records whether its bytes
// are borrowed or owned, and the ToOwned methods defined throughout this
// package convert a borrowed value into one with no remaining reference to
// the input, recursing through containers.
//
// # Encoding
//
// Serialization always produces canonical DER, regardless of the discipline a
// value was decoded under. The [Encoder] contract splits serialization into a
// length computation followed by header and content writes; [EncodeDer] and
// [MarshalDer] drive the process.
//
// [Rec. ITU-T X.690]: https://www.itu.int/rec/T-REC-X.690
// [A Layman's Guide to a Subset of ASN.1, BER, and DER]: http://luca.ntop.org/Teaching/Appunti/asn1.html
package ber

import "strconv"

// Mode selects the decode discipline. The BER and DER disciplines share a
// single decode path; the Mode toggles acceptance of indefinite lengths and
// non-canonical length forms and controls whether the DER constraint checks
// of the target type run.
type Mode int

const (
	// BER decodes according to the Basic Encoding Rules. Indefinite lengths
	// and non-minimal length encodings are accepted and DER constraint checks
	// are skipped.
	BER Mode = iota

	// DER decodes according to the Distinguished Encoding Rules, the
	// canonical subset of BER. Indefinite lengths and non-minimal length
	// encodings are rejected with a [SyntaxError] and the [DerConstraints] of
	// the target type are enforced.
	DER
)

// String returns the conventional name of the discipline.
func (m Mode) String() string {
	switch m {
	case BER:
		return "BER"
	case DER:
		return "DER"
	default:
		return "Mode(" + strconv.Itoa(int(m)) + ")"
	}
}
