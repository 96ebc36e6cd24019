// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ibeckermayer/asn1"
)

func TestUTF8String_FromDer(t *testing.T) {
	tt := map[string]struct {
		input   []byte
		want    string
		wantErr error
	}{
		"Simple":      {[]byte{0x0c, 0x05, 'h', 'e', 'l', 'l', 'o'}, "hello", nil},
		"Empty":       {[]byte{0x0c, 0x00}, "", nil},
		"Multibyte":   {[]byte{0x0c, 0x04, 0xf0, 0x9f, 0x8f, 0x95}, "\U0001f3d5", nil},
		"InvalidUTF8": {[]byte{0x0c, 0x02, 0xff, 0xfe}, "", &SyntaxError{Err: errInvalidUTF8}},
		"WrongTag":    {[]byte{0x04, 0x03, 'a', 'b', 'c'}, "", &TagMismatchError{Expected: asn1.TagUTF8String, Actual: asn1.TagOctetString}},
		"Truncated":   {[]byte{0x0c, 0x05, 'h', 'e'}, "", &IncompleteError{Needed: 3}},
	}
	for name, tc := range tt {
		t.Run(name, func(t *testing.T) {
			s, rest, err := FromDer[UTF8String](tc.input)
			if !matchErr(err, tc.wantErr) {
				t.Fatalf("FromDer(%# x) error = %v, want %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr != nil {
				return
			}
			if s.String() != tc.want {
				t.Errorf("FromDer(%# x) = %q, want %q", tc.input, s, tc.want)
			}
			if len(rest) != 0 {
				t.Errorf("FromDer(%# x) len(rest) = %d, want 0", tc.input, len(rest))
			}
		})
	}
}

func TestUTF8String_Constructed(t *testing.T) {
	// X.690 Section 10.2 forbids the constructed encoding under DER but BER
	// accepts it.
	a := NewAny(
		Header{Tag: asn1.TagUTF8String, Length: 3, Constructed: true},
		Borrowed([]byte("abc")),
	)

	s, err := BerValue[UTF8String](a)
	if err != nil {
		t.Fatalf("BerValue() error = %v, want nil", err)
	}
	if s.String() != "abc" {
		t.Errorf("BerValue() = %q, want %q", s, "abc")
	}

	_, err = DerValue[UTF8String](a)
	if !matchErr(err, &ConstraintError{}) {
		t.Errorf("DerValue() error = %v, want *ConstraintError", err)
	}
}

func TestUTF8String_RoundTrip(t *testing.T) {
	for _, text := range []string{"", "hello", "héllo wörld", strings.Repeat("x", 300)} {
		enc, err := MarshalDer(NewUTF8String(text))
		if err != nil {
			t.Fatalf("MarshalDer(%q) error = %v, want nil", text, err)
		}
		got, rest, err := FromDer[UTF8String](enc)
		if err != nil {
			t.Fatalf("FromDer(MarshalDer(%q)) error = %v, want nil", text, err)
		}
		if got.String() != text || len(rest) != 0 {
			t.Errorf("FromDer(MarshalDer(%q)) = (%q, %d rest), want (%q, 0 rest)", text, got, len(rest), text)
		}
	}
}

func TestUTF8String_Encoding(t *testing.T) {
	enc, err := MarshalDer(NewUTF8String("hi"))
	if err != nil {
		t.Fatalf("MarshalDer() error = %v, want nil", err)
	}
	want := []byte{0x0c, 0x02, 'h', 'i'}
	if !bytes.Equal(enc, want) {
		t.Errorf("MarshalDer() = %# x, want %# x", enc, want)
	}
}

func TestUTF8String_ToOwned(t *testing.T) {
	input := []byte{0x0c, 0x03, 'a', 'b', 'c'}
	s, _, err := FromBer[UTF8String](input)
	if err != nil {
		t.Fatalf("FromBer() error = %v, want nil", err)
	}
	if !s.Content().IsBorrowed() {
		t.Fatal("decoded string is owned, want borrowed")
	}
	o := s.ToOwned()
	input[2] = 'z'
	if o.String() != "abc" {
		t.Errorf("owned string = %q after input mutation, want %q", o, "abc")
	}
	if !o.Equal(o.ToOwned()) {
		t.Error("ToOwned() of owned string differs from itself")
	}
}
