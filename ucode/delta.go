// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

// WriteDelta writes x (x >= 0) using the Elias delta code. Like gamma, it
// internally codes x+1: N = floor(log2(x+1)) is itself written via gamma
// (rather than unary, as plain gamma coding does), followed by the low N
// bits of (x+1). Delta costs more for small values than gamma but grows
// the codeword length logarithmically slower, so it is shorter for large
// values.
func WriteDelta(w BitWriter, x uint64) error {
	v := x + 1
	n := log2Floor(v)
	if err := WriteGamma(w, uint64(n)); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	return w.WriteBits(v&(1<<n-1), n)
}

// ReadDelta reads a value written by WriteDelta.
func ReadDelta(r BitReader) (uint64, error) {
	n, err := ReadGamma(r)
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
