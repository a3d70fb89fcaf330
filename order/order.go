// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package order defines the two bit-order tags that parameterize every
// reader and writer in the codec stack.
//
// A bit-order tag selects which end of a machine word "bit offset 0" refers
// to: the most significant bit (MsbFirst) or the least significant bit
// (LsbFirst). The two tags are bit-for-bit incompatible wire formats; a
// stream written under one tag cannot be read correctly under the other.
//
// dsnet-compress's formats each hardcode one tag: bzip2 packs big-endian
// (MsbFirst), flate and brotli pack little-endian (LsbFirst). This package
// generalizes that split into a compile-time selector so a single generic
// reader/writer implementation serves both.
package order

import "encoding/binary"

// Tag is implemented only by MsbFirst and LsbFirst. The interface is sealed:
// its single method is unexported, so no type outside this package can
// implement it.
type Tag interface {
	msbFirst() bool
}

// MsbFirst selects the convention where bit offset 0 within a word is the
// word's most significant bit, and the most-significant bit of a value
// passed to write_bits is emitted first.
type MsbFirst struct{}

func (MsbFirst) msbFirst() bool { return true }

// LsbFirst selects the convention where bit offset 0 within a word is the
// word's least significant bit, and the least-significant bit of a value
// passed to write_bits is emitted first.
type LsbFirst struct{}

func (LsbFirst) msbFirst() bool { return false }

// IsMsbFirst reports whether tag selects the MsbFirst convention. It exists
// so generic code can branch on a zero-size type-parameter value without an
// interface-typed variable in between.
func IsMsbFirst[T Tag]() bool {
	var z T
	return z.msbFirst()
}

// NE is whichever tag matches the host's native byte order, for callers that
// want their in-memory word layout to match the tag's intra-word bit
// numbering without thinking about which platform they're on.
var NE Tag = func() Tag {
	b := [2]byte{0x01, 0x00}
	if binary.NativeEndian.Uint16(b[:]) == 1 {
		return LsbFirst{}
	}
	return MsbFirst{}
}()
