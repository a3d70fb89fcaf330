// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import "github.com/dsnet/bitcodec/bcerr"

// log2Floor returns floor(log2(n)) for n >= 1.
func log2Floor(n uint64) uint {
	var b uint
	for n > 1 {
		n >>= 1
		b++
	}
	return b
}

// WriteMinimalBinary writes x (0 <= x < n, n >= 1) using the minimal binary
// code: values below a cutoff use floor(log2 n) bits, the rest use
// floor(log2 n)+1 bits, so the shorter codeword is used whenever the range
// isn't an exact power of two. This is the remainder code Golomb/Rice
// coding reduces to (see golomb.go); it coincides with plain fixed-width
// binary whenever n is a power of two. A longer codeword is written as its
// high floor(log2 n) bits followed by its low bit, so ReadMinimalBinary sees
// the same field order under either bit-order tag.
func WriteMinimalBinary(w BitWriter, n, x uint64) error {
	if n == 0 || x >= n {
		return bcerr.ErrInvalidArg
	}
	if n == 1 {
		return nil
	}
	b := log2Floor(n)
	cutoff := (uint64(1) << (b + 1)) - n
	if x < cutoff {
		return w.WriteBits(x, b)
	}
	v := x + cutoff
	if err := w.WriteBits(v>>1, b); err != nil {
		return err
	}
	return w.WriteBits(v&1, 1)
}

// ReadMinimalBinary reads a value in [0, n) written by WriteMinimalBinary.
func ReadMinimalBinary(r BitReader, n uint64) (uint64, error) {
	if n == 0 {
		return 0, bcerr.ErrInvalidArg
	}
	if n == 1 {
		return 0, nil
	}
	b := log2Floor(n)
	cutoff := (uint64(1) << (b + 1)) - n
	v, err := r.ReadBits(b)
	if err != nil {
		return 0, err
	}
	if v < cutoff {
		return v, nil
	}
	extra, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	return (v<<1 | extra) - cutoff, nil
}
