// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"errors"
	"io"
	"strconv"
)

// Encoder is the interface implemented by types that can serialize themselves
// into canonical DER. Serialization is a three-pass process: the content
// length determines the header, the header is written, then the content is
// written.
//
//   - DerLen returns the total number of bytes of the DER encoding, header
//     and content octets combined.
//   - EncodeDerHeader writes the identifier and length octets.
//   - EncodeDerContent writes the content octets.
//
// The number of bytes written by EncodeDerHeader and EncodeDerContent
// combined must equal the result of DerLen. Errors from the underlying writer
// are reported as a [WriteError]; implementations typically produce them via
// [Header.WriteDer] and [WriteContent].
//
// Encoders always emit canonical DER, even for values that were decoded under
// the permissive [BER] discipline. Values whose encoding cannot be
// represented in DER (such as an indefinite length) report a [SyntaxError]
// from DerLen.
type Encoder interface {
	DerLen() (int, error)
	EncodeDerHeader(w io.Writer) (int, error)
	EncodeDerContent(w io.Writer) (int, error)
}

// EncodeDer writes the complete DER encoding of v to w: first the header,
// then the content octets. It returns the number of bytes written.
func EncodeDer(w io.Writer, v Encoder) (int, error) {
	n, err := v.EncodeDerHeader(w)
	if err != nil {
		return n, err
	}
	n2, err := v.EncodeDerContent(w)
	n += n2
	return n, err
}

// MarshalDer returns the DER encoding of v as a freshly allocated byte slice.
// If the number of bytes produced by v does not match its DerLen, an error is
// returned.
func MarshalDer(v Encoder) ([]byte, error) {
	l, err := v.DerLen()
	if err != nil {
		return nil, err
	}
	buf := newSliceWriter(l)
	n, err := EncodeDer(buf, v)
	if err != nil {
		return nil, err
	}
	if n != l {
		return nil, errors.New("ber: encoder wrote " + strconv.Itoa(n) + " bytes, promised " + strconv.Itoa(l))
	}
	return buf.data, nil
}

// WriteContent writes b to w, wrapping any failure of w in a [WriteError].
// It is intended for use in EncodeDerContent implementations.
func WriteContent(w io.Writer, b []byte) (int, error) {
	n, err := w.Write(b)
	if err != nil {
		return n, &WriteError{Err: err}
	}
	if n < len(b) {
		return n, &WriteError{Err: io.ErrShortWrite}
	}
	return n, nil
}

// sliceWriter is an in-memory [io.Writer] collecting written bytes into a
// slice. It never fails.
type sliceWriter struct {
	data []byte
}

func newSliceWriter(capacity int) *sliceWriter {
	return &sliceWriter{data: make([]byte, 0, capacity)}
}

func (w *sliceWriter) Write(p []byte) (int, error) {
	w.data = append(w.data, p...)
	return len(p), nil
}
