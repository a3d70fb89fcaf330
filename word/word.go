// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package word defines the machine-word type constraint shared by the
// word-stream and bit-stream layers, and the small set of width-dependent
// helpers that let generic code stay branch-free across W ∈ {8, 16, 32, 64}.
package word

import "unsafe"

// Unsigned is satisfied by exactly the four supported machine-word widths.
// It is the type parameter every word-stream, bit-stream, and code layer
// type is generic over.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Bits returns the bit-width of W, e.g. 8 for uint8, 64 for uint64.
func Bits[W Unsigned]() uint {
	var z W
	return uint(unsafe.Sizeof(z)) * 8
}
