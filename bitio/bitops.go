// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"math/bits"

	"github.com/dsnet/bitcodec/word"
)

// mask64 returns a uint64 with the low n bits set, for 0 <= n <= 64. n == 64
// relies on Go's defined shift-by-width-is-zero rule: 1<<64 (as a uint64)
// evaluates to 0, so the subsequent "- 1" wraps around to all ones — exactly
// the full mask, with no special case needed.
func mask64(n uint) uint64 { return uint64(1)<<n - 1 }

// extractMsb reads n bits (n <= word.Bits[W]()) starting at bit offset
// bitOff within w0, continuing into w1 if the read crosses the word
// boundary, under the MsbFirst convention (bit offset 0 = the word's most
// significant bit), via a two-word shift-and-or; relies on Go's defined
// x<<W == 0 / x>>W == 0 rule so the bitOff == 0 case (no contribution from
// w1) needs no branch.
func extractMsb[W word.Unsigned](w0, w1 W, bitOff, n uint) uint64 {
	wd := word.Bits[W]()
	combined := (w0 << bitOff) | (w1 >> (wd - bitOff))
	return uint64(combined) >> (wd - n) & mask64(n)
}

// extractLsb is extractMsb's mirror under the LsbFirst convention (bit
// offset 0 = the word's least significant bit): shift directions are
// swapped, and the result is already right-aligned (its low n bits are the
// answer), needing a mask instead of a final shift.
func extractLsb[W word.Unsigned](w0, w1 W, bitOff, n uint) uint64 {
	wd := word.Bits[W]()
	combined := (w0 >> bitOff) | (w1 << (wd - bitOff))
	return uint64(combined) & mask64(n)
}

// leadingZerosN counts leading zeros of v, treating it as an n-bit value
// (n <= 64) rather than a full 64-bit one.
func leadingZerosN(v uint64, n uint) uint {
	return uint(bits.LeadingZeros64(v)) - (64 - n)
}

// trailingZerosN counts trailing zeros of v, treating it as an n-bit value.
// Unlike leadingZerosN this needs no width adjustment for a non-zero v: a
// set bit above position n cannot exist (the caller always masks or shifts
// such bits away first). Only v == 0 needs handling, since
// bits.TrailingZeros64 then returns 64, so the result is clamped to n.
func trailingZerosN(v uint64, n uint) uint {
	tz := uint(bits.TrailingZeros64(v))
	if tz > n {
		return n
	}
	return tz
}
