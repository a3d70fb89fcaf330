// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

// WriteGamma writes x (x >= 0) using the Elias gamma code. Internally it
// codes x+1 (gamma is classically defined over positive integers): writes
// N = floor(log2(x+1)) in unary, then the low N bits of (x+1) — the bits
// below its leading 1.
func WriteGamma(w BitWriter, x uint64) error {
	v := x + 1
	n := log2Floor(v)
	if err := w.WriteUnary(uint64(n)); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return w.WriteBits(v&(1<<n-1), n)
}

// ReadGamma reads a value written by WriteGamma.
func ReadGamma(r BitReader) (uint64, error) {
	n, err := r.ReadUnary()
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, nil
	}
	low, err := r.ReadBits(uint(n))
	if err != nil {
		return 0, err
	}
	return (uint64(1)<<n | low) - 1, nil
}
