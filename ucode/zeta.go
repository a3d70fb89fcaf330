// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import "github.com/dsnet/bitcodec/bcerr"

// WriteZeta writes x (x >= 0) using the Boldi-Vigna zeta_k code (k >= 1): an
// exponent-group index h in unary, then the offset within that group via
// WriteMinimalBinary. zeta_1 coincides with gamma, since each group's width
// is then a power of two and the minimal binary code degenerates to a
// fixed-width field. Like gamma and delta, the public domain is x >= 0;
// internally it codes x+1.
func WriteZeta(w BitWriter, k uint, x uint64) error {
	if k == 0 {
		return bcerr.ErrInvalidArg
	}
	v := x + 1
	h := log2Floor(v) / k
	if err := w.WriteUnary(uint64(h)); err != nil {
		return err
	}
	left := uint64(1) << (h * k)
	span := (uint64(1) << ((h + 1) * k)) - left
	return WriteMinimalBinary(w, span, v-left)
}

// ReadZeta reads a value written by WriteZeta with the same k.
func ReadZeta(r BitReader, k uint) (uint64, error) {
	if k == 0 {
		return 0, bcerr.ErrInvalidArg
	}
	h, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	left := uint64(1) << (uint(h) * k)
	span := (uint64(1) << ((uint(h) + 1) * k)) - left
	off, err := ReadMinimalBinary(r, span)
	if err != nil {
		return 0, err
	}
	return left + off - 1, nil
}
