// Copyright 2025 The asn1 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ber

import "iter"

// IterBer returns an iterator over the elements of s, decoding each element
// as a value of type T under the [BER] discipline.
//
// The iterator is lazy: each element is decoded when the iteration reaches
// it, advancing a cursor by the number of bytes the element consumed. The
// sequence is finite and single-use; iterating again decodes the elements
// again from the start. Iteration ends after the element that exhausts the
// content. If decoding an element fails, the iterator yields a zero value
// together with the error and stops; a partial element at the end of the
// content yields an [IncompleteError]. There are no items after an item with
// a non-nil error.
func IterBer[T any, P decoderPtr[T]](s Sequence) iter.Seq2[T, error] {
	return iterate[T, P](BER, s)
}

// IterDer returns an iterator over the elements of s, decoding each element
// as a value of type T under the [DER] discipline. It behaves like [IterBer]
// with the stricter discipline applied to every element.
func IterDer[T any, P decoderPtr[T]](s Sequence) iter.Seq2[T, error] {
	return iterate[T, P](DER, s)
}

// iterate implements [IterBer] and [IterDer].
func iterate[T any, P decoderPtr[T]](m Mode, s Sequence) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		rest := s.content.Bytes()
		for len(rest) > 0 {
			a, r, err := m.Parse(rest)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			v, err := decodeValue[T, P](m, a)
			if err != nil {
				yield(v, err)
				return
			}
			if !yield(v, nil) {
				return
			}
			rest = r
		}
	}
}

// BerSequenceOf decodes every element of s as a value of type T under the
// [BER] discipline and collects the results into a slice. Decoding stops at
// the first failing element and returns its error; elements decoded up to
// that point are discarded.
func BerSequenceOf[T any, P decoderPtr[T]](s Sequence) ([]T, error) {
	return collect[T, P](BER, s)
}

// DerSequenceOf decodes every element of s as a value of type T under the
// [DER] discipline and collects the results into a slice. It behaves like
// [BerSequenceOf] with the stricter discipline applied to every element.
func DerSequenceOf[T any, P decoderPtr[T]](s Sequence) ([]T, error) {
	return collect[T, P](DER, s)
}

// collect implements [BerSequenceOf] and [DerSequenceOf].
func collect[T any, P decoderPtr[T]](m Mode, s Sequence) ([]T, error) {
	var vs []T
	for v, err := range iterate[T, P](m, s) {
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// owner is the constraint for the owned collect functions: values of type T
// can normalize themselves into owned values of the same type.
type owner[T any] interface {
	ToOwned() T
}

// OwnedBerSequenceOf decodes every element of s under the [BER] discipline
// and normalizes each decoded element so that it holds no reference to the
// content of s. Use this instead of [BerSequenceOf] when the elements must
// outlive s or the buffer s was decoded from.
func OwnedBerSequenceOf[T owner[T], P decoderPtr[T]](s Sequence) ([]T, error) {
	return collectOwned[T, P](BER, s)
}

// OwnedDerSequenceOf decodes every element of s under the [DER] discipline
// and normalizes each decoded element so that it holds no reference to the
// content of s.
func OwnedDerSequenceOf[T owner[T], P decoderPtr[T]](s Sequence) ([]T, error) {
	return collectOwned[T, P](DER, s)
}

// collectOwned implements [OwnedBerSequenceOf] and [OwnedDerSequenceOf].
func collectOwned[T owner[T], P decoderPtr[T]](m Mode, s Sequence) ([]T, error) {
	vs, err := collect[T, P](m, s)
	if err != nil {
		return nil, err
	}
	for i := range vs {
		vs[i] = vs[i].ToOwned()
	}
	return vs, nil
}
