// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import "github.com/dsnet/bitcodec/bcerr"

// WriteGolomb writes x (x >= 0) using the Golomb code with parameter b (b
// >= 1): the quotient x/b is written in unary, followed by the remainder
// x%b written via WriteMinimalBinary over [0, b). When b is a power of two
// this degenerates to the Rice code, since WriteMinimalBinary reduces to a
// plain fixed-width field whenever its range argument is a power of two.
func WriteGolomb(w BitWriter, b, x uint64) error {
	if b == 0 {
		return bcerr.ErrInvalidArg
	}
	if err := w.WriteUnary(x / b); err != nil {
		return err
	}
	return WriteMinimalBinary(w, b, x%b)
}

// ReadGolomb reads a value written by WriteGolomb with the same b.
func ReadGolomb(r BitReader, b uint64) (uint64, error) {
	if b == 0 {
		return 0, bcerr.ErrInvalidArg
	}
	q, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	rem, err := ReadMinimalBinary(r, b)
	if err != nil {
		return 0, err
	}
	return q*b + rem, nil
}

// WriteRice writes x (x >= 0) using the Rice code with parameter k: b =
// 2^k, so the remainder field is a plain k-bit binary value. It is provided
// as a direct call for the common power-of-two case, avoiding
// WriteMinimalBinary's cutoff arithmetic.
func WriteRice(w BitWriter, k uint, x uint64) error {
	b := uint64(1) << k
	if err := w.WriteUnary(x / b); err != nil {
		return err
	}
	return w.WriteBits(x&(b-1), k)
}

// ReadRice reads a value written by WriteRice with the same k.
func ReadRice(r BitReader, k uint) (uint64, error) {
	q, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	rem, err := r.ReadBits(k)
	if err != nil {
		return 0, err
	}
	return q<<k | rem, nil
}
