// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"testing"

	"github.com/ibeckermayer/asn1"
)

// seqABC is the DER encoding of a SEQUENCE of the UTF8Strings "a", "bb" and
// "ccc".
var seqABC = []byte{
	0x30, 0x0a,
	0x0c, 0x01, 'a',
	0x0c, 0x02, 'b', 'b',
	0x0c, 0x03, 'c', 'c', 'c',
}

func TestSequence_FromDer(t *testing.T) {
	s, rest, err := FromDer[Sequence](seqABC)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	if len(rest) != 0 {
		t.Errorf("FromDer() len(rest) = %d, want 0", len(rest))
	}
	want := seqABC[2:]
	if !bytes.Equal(s.Bytes(), want) {
		t.Errorf("FromDer() content = %# x, want %# x", s.Bytes(), want)
	}
}

func TestSequence_DecodeAny(t *testing.T) {
	tt := map[string]struct {
		input   []byte
		mode    Mode
		wantErr error
	}{
		"Valid":     {seqABC, DER, nil},
		"Empty":     {[]byte{0x30, 0x00}, DER, nil},
		"WrongTag":  {[]byte{0x0c, 0x01, 'a'}, DER, &TagMismatchError{Expected: asn1.TagSequence, Actual: asn1.TagUTF8String}},
		"Primitive": {[]byte{0x10, 0x00}, BER, &SyntaxError{Err: errPrimitive}},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			var err error
			switch tc.mode {
			case BER:
				_, _, err = FromBer[Sequence](tc.input)
			case DER:
				_, _, err = FromDer[Sequence](tc.input)
			}
			if !matchErr(err, tc.wantErr) {
				t.Errorf("decoding %# x error = %v, want %v", tc.input, err, tc.wantErr)
			}
		})
	}
}

func TestIterDer(t *testing.T) {
	s, _, err := FromDer[Sequence](seqABC)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}

	want := []string{"a", "bb", "ccc"}
	var got []string
	for v, err := range IterDer[UTF8String](s) {
		if err != nil {
			t.Fatalf("IterDer() error = %v, want nil", err)
		}
		got = append(got, v.String())
	}
	if len(got) != len(want) {
		t.Fatalf("IterDer() yielded %d elements, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("IterDer() element %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIterDer_EarlyBreak(t *testing.T) {
	s, _, err := FromDer[Sequence](seqABC)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	n := 0
	for _, err := range IterDer[UTF8String](s) {
		if err != nil {
			t.Fatalf("IterDer() error = %v, want nil", err)
		}
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration continued after break, yielded %d elements", n)
	}
}

func TestIterBer_PartialElement(t *testing.T) {
	// the content ends in the middle of the third element
	input := []byte{
		0x30, 0x07,
		0x0c, 0x01, 'a',
		0x0c, 0x01, 'b',
		0x0c, // truncated element
	}
	s, _, err := FromBer[Sequence](input)
	if err != nil {
		t.Fatalf("FromBer() error = %v, want nil", err)
	}

	var got []string
	var iterErr error
	for v, err := range IterBer[UTF8String](s) {
		if err != nil {
			iterErr = err
			continue
		}
		got = append(got, v.String())
	}
	if !matchErr(iterErr, &IncompleteError{}) {
		t.Fatalf("iteration error = %v, want *IncompleteError", iterErr)
	}
	if len(got) != 2 {
		t.Errorf("iteration yielded %d elements before the error, want 2", len(got))
	}
}

func TestDerSequenceOf(t *testing.T) {
	s, _, err := FromDer[Sequence](seqABC)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	vs, err := DerSequenceOf[UTF8String](s)
	if err != nil {
		t.Fatalf("DerSequenceOf() error = %v, want nil", err)
	}
	if len(vs) != 3 || vs[0].String() != "a" || vs[1].String() != "bb" || vs[2].String() != "ccc" {
		t.Errorf("DerSequenceOf() = %q, want [a bb ccc]", vs)
	}
}

func TestDerSequenceOf_Error(t *testing.T) {
	// SEQUENCE containing a non-string element: partial results are discarded
	input := []byte{
		0x30, 0x06,
		0x0c, 0x01, 'a',
		0x04, 0x01, 0x00,
	}
	s, _, err := FromDer[Sequence](input)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	vs, err := DerSequenceOf[UTF8String](s)
	if !matchErr(err, &TagMismatchError{Expected: asn1.TagUTF8String, Actual: asn1.TagOctetString}) {
		t.Fatalf("DerSequenceOf() error = %v, want *TagMismatchError", err)
	}
	if vs != nil {
		t.Errorf("DerSequenceOf() = %q, want nil on error", vs)
	}
}

func TestOwnedDerSequenceOf(t *testing.T) {
	input := bytes.Clone(seqABC)
	s, _, err := FromDer[Sequence](input)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	vs, err := OwnedDerSequenceOf[UTF8String](s)
	if err != nil {
		t.Fatalf("OwnedDerSequenceOf() error = %v, want nil", err)
	}

	// the elements survive mutation of the input buffer
	for i := range input {
		input[i] = 0xff
	}
	want := []string{"a", "bb", "ccc"}
	for i, v := range vs {
		if v.Content().IsBorrowed() {
			t.Errorf("element %d is borrowed, want owned", i)
		}
		if v.String() != want[i] {
			t.Errorf("element %d = %q after input mutation, want %q", i, v, want[i])
		}
	}
}

func TestSequence_ToOwned(t *testing.T) {
	input := bytes.Clone(seqABC)
	s, _, err := FromDer[Sequence](input)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}
	if !s.Content().IsBorrowed() {
		t.Fatal("decoded sequence is owned, want borrowed")
	}

	o := s.ToOwned()
	if o.Content().IsBorrowed() {
		t.Fatal("ToOwned() sequence is borrowed, want owned")
	}
	if !o.Equal(o.ToOwned()) {
		t.Error("ToOwned() of owned sequence differs from itself")
	}

	input[4] = 'z'
	vs, err := DerSequenceOf[UTF8String](o)
	if err != nil {
		t.Fatalf("DerSequenceOf() error = %v, want nil", err)
	}
	if vs[0].String() != "a" {
		t.Errorf("element 0 = %q after input mutation, want %q", vs[0], "a")
	}
}

func TestSequence_ParseBorrowed(t *testing.T) {
	s, _, err := FromDer[Sequence](seqABC)
	if err != nil {
		t.Fatalf("FromDer() error = %v, want nil", err)
	}

	called := false
	err = s.ParseBorrowed(func(content []byte) error {
		called = true
		return nil
	})
	if err != nil || !called {
		t.Errorf("ParseBorrowed() = (called %t, %v), want (true, nil)", called, err)
	}

	err = s.ToOwned().ParseBorrowed(func(content []byte) error {
		t.Error("ParseBorrowed() invoked f on owned content")
		return nil
	})
	if !matchErr(err, &LifetimeError{}) {
		t.Errorf("ParseBorrowed() error = %v, want *LifetimeError", err)
	}
}

func TestSequenceFromItems(t *testing.T) {
	items := []UTF8String{NewUTF8String("a"), NewUTF8String("bb"), NewUTF8String("ccc")}
	s, err := SequenceFromItems(items)
	if err != nil {
		t.Fatalf("SequenceFromItems() error = %v, want nil", err)
	}
	if s.Content().IsBorrowed() {
		t.Error("SequenceFromItems() content is borrowed, want owned")
	}

	enc, err := MarshalDer(s)
	if err != nil {
		t.Fatalf("MarshalDer() error = %v, want nil", err)
	}
	if !bytes.Equal(enc, seqABC) {
		t.Errorf("MarshalDer() = %# x, want %# x", enc, seqABC)
	}
}

func TestSequenceFromItems_Empty(t *testing.T) {
	s, err := SequenceFromItems[UTF8String](nil)
	if err != nil {
		t.Fatalf("SequenceFromItems() error = %v, want nil", err)
	}
	enc, err := MarshalDer(s)
	if err != nil {
		t.Fatalf("MarshalDer() error = %v, want nil", err)
	}
	if !bytes.Equal(enc, []byte{0x30, 0x00}) {
		t.Errorf("MarshalDer() = %# x, want 30 00", enc)
	}
}
