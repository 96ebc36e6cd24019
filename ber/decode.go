// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"github.com/ibeckermayer/asn1"
)

// Decoder is the interface implemented by types that can construct themselves
// from a generic data value. DecodeAny inspects the header and content of a
// and fills in the receiver. Implementations validate the tag and shape of a
// and return a [TagMismatchError] or [SyntaxError] if a cannot represent the
// type.
//
// DecodeAny implementations must not retain or modify the content of a beyond
// the lifetime rules of its [Content]: content borrowed from an input buffer
// stays borrowed in the decoded value.
type Decoder interface {
	DecodeAny(a Any) error
}

// Tagged is implemented by types with a fixed intrinsic tag. The generic
// decode functions [FromBer], [FromDer], [BerValue] and [DerValue] reject a
// data value whose tag does not match before invoking [Decoder.DecodeAny].
type Tagged interface {
	Tag() asn1.Tag
}

// DerConstraints is implemented by types whose encodings are subject to
// additional shape rules under the Distinguished Encoding Rules. CheckDer
// inspects a decoded data value and returns a [ConstraintError] if it
// violates such a rule. Types without DER-specific rules simply do not
// implement the interface, which is equivalent to a check that always
// succeeds.
//
// CheckDer is consulted by the generic decode functions only under the [DER]
// discipline, before [Decoder.DecodeAny] runs.
type DerConstraints interface {
	CheckDer(a Any) error
}

// decoderPtr is the constraint for the generic decode functions: a pointer to
// T that implements [Decoder].
type decoderPtr[T any] interface {
	*T
	Decoder
}

// FromBer decodes the data value encoding at the beginning of input into a
// value of type T under the [BER] discipline. It returns the decoded value
// and the remaining input following the data value.
func FromBer[T any, P decoderPtr[T]](input []byte) (T, []byte, error) {
	return from[T, P](BER, input)
}

// FromDer decodes the data value encoding at the beginning of input into a
// value of type T under the [DER] discipline. In addition to the canonical
// form checks of [DER], the [DerConstraints] of T are enforced.
func FromDer[T any, P decoderPtr[T]](input []byte) (T, []byte, error) {
	return from[T, P](DER, input)
}

// from implements [FromBer] and [FromDer].
func from[T any, P decoderPtr[T]](m Mode, input []byte) (T, []byte, error) {
	a, rest, err := m.Parse(input)
	if err != nil {
		var zero T
		return zero, input, err
	}
	v, err := decodeValue[T, P](m, a)
	if err != nil {
		return v, input, err
	}
	return v, rest, nil
}

// BerValue converts an already-parsed data value into a value of type T under
// the [BER] discipline.
func BerValue[T any, P decoderPtr[T]](a Any) (T, error) {
	return decodeValue[T, P](BER, a)
}

// DerValue converts an already-parsed data value into a value of type T under
// the [DER] discipline, enforcing the [DerConstraints] of T.
func DerValue[T any, P decoderPtr[T]](a Any) (T, error) {
	return decodeValue[T, P](DER, a)
}

// decodeValue is the main typed decoding function. It asserts the intrinsic
// tag of T (if T implements [Tagged]), runs the DER constraint checks of T
// under the [DER] discipline (if T implements [DerConstraints]), and finally
// invokes DecodeAny.
func decodeValue[T any, P decoderPtr[T]](m Mode, a Any) (T, error) {
	var v T
	p := P(&v)
	if t, ok := any(p).(Tagged); ok {
		if err := a.AssertTag(t.Tag()); err != nil {
			return v, err
		}
	}
	if m == DER {
		if c, ok := any(p).(DerConstraints); ok {
			if err := c.CheckDer(a); err != nil {
				return v, err
			}
		}
	}
	if err := p.DecodeAny(a); err != nil {
		return v, err
	}
	return v, nil
}
