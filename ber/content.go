// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "bytes"

// Content is a byte view over the content octets of a data value. The bytes
// are either borrowed (a sub-slice of the input buffer they were decoded
// from) or owned (an independent copy).
//
// Borrowed content is cheap to produce but is only valid as long as the
// original input buffer is neither freed nor modified. Owned content carries
// no reference to any input buffer and can be retained indefinitely. The
// [Content.ToOwned] method is the single conversion from borrowed to owned;
// the conversion is never performed implicitly.
//
// The zero value is empty borrowed content.
type Content struct {
	data  []byte
	owned bool
}

// Borrowed returns content referencing b directly. The returned Content is
// valid only as long as b is.
func Borrowed(b []byte) Content {
	return Content{data: b}
}

// Owned returns content that takes ownership of b. The caller must not modify
// b afterwards.
func Owned(b []byte) Content {
	return Content{data: b, owned: true}
}

// Bytes returns the content octets. The returned slice must not be modified.
func (c Content) Bytes() []byte {
	return c.data
}

// Len returns the number of content octets.
func (c Content) Len() int {
	return len(c.data)
}

// IsBorrowed reports whether c references the input buffer it was decoded
// from.
func (c Content) IsBorrowed() bool {
	return !c.owned
}

// ToOwned returns content equal to c that holds no reference to any input
// buffer. If c is already owned, c is returned unchanged; ToOwned is
// idempotent.
func (c Content) ToOwned() Content {
	if c.owned {
		return c
	}
	return Content{data: bytes.Clone(c.data), owned: true}
}

// Equal reports whether c and other hold equal content octets. Ownership does
// not participate in equality.
func (c Content) Equal(other Content) bool {
	return bytes.Equal(c.data, other.data)
}
