// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ibeckermayer/asn1"
)

var (
	errReservedLength      = errors.New("reserved length octet")
	errLengthTooLarge      = errors.New("length too large")
	errNonMinimalLength    = errors.New("length is not minimally encoded")
	errTagTooLarge         = errors.New("tag number too large")
	errIndefiniteLength    = errors.New("indefinite length")
	errIndefinitePrimitive = errors.New("indefinite-length primitive data value")
	errConstructed         = errors.New("constructed encoding")
	errPrimitive           = errors.New("primitive encoding")
	errInvalidUTF8         = errors.New("invalid UTF-8 data")
)

// A SyntaxError indicates that the input is not a valid encoding under the
// decode discipline in use: a malformed length or tag encoding, a reserved
// byte pattern, or an indefinite length where the Distinguished Encoding Rules
// forbid one.
type SyntaxError struct {
	Tag asn1.Tag // tag of the data value containing the error, if known
	Err error
}

func (e *SyntaxError) Error() string {
	var s strings.Builder
	s.WriteString("ber: syntax error")
	if e.Tag != asn1.TagReserved {
		s.WriteString(" decoding ")
		s.WriteString(e.Tag.String())
	}
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// An IncompleteError indicates that the input ended before the declared end of
// a data value encoding. Decoding the same data with the missing bytes
// appended may succeed.
type IncompleteError struct {
	// Needed is the number of missing bytes, or 0 if the number is unknown.
	Needed int
}

func (e *IncompleteError) Error() string {
	if e.Needed == 0 {
		return "ber: incomplete data"
	}
	return "ber: incomplete data: need " + strconv.Itoa(e.Needed) + " more bytes"
}

// A TagMismatchError indicates that the tag of a decoded data value does not
// match the tag expected by the target type. Tags match only if both their
// classes and their numbers are equal.
type TagMismatchError struct {
	Expected asn1.Tag
	Actual   asn1.Tag
}

func (e *TagMismatchError) Error() string {
	return "ber: unexpected tag " + e.Actual.String() + ", expected " + e.Expected.String()
}

// A ConstraintError indicates that an encoding violates a shape rule imposed
// by the Distinguished Encoding Rules, such as the constructed encoding of a
// primitive string type forbidden by X.690 Section 10.2.
type ConstraintError struct {
	Tag asn1.Tag
	Err error
}

func (e *ConstraintError) Error() string {
	var s strings.Builder
	s.WriteString("ber: DER constraint violated")
	if e.Tag != asn1.TagReserved {
		s.WriteString(" for ")
		s.WriteString(e.Tag.String())
	}
	if e.Err != nil {
		s.WriteString(": ")
		s.WriteString(e.Err.Error())
	}
	return s.String()
}

func (e *ConstraintError) Unwrap() error {
	return e.Err
}

// A LifetimeError indicates that an operation requiring borrowed content was
// invoked on a value holding owned content.
type LifetimeError struct{}

func (e *LifetimeError) Error() string {
	return "ber: operation requires borrowed content"
}

// A WriteError wraps an error returned by the output sink during
// serialization.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "ber: write error: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
