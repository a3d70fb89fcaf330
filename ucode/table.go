// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import "github.com/dsnet/bitcodec/internal/prefixtab"

// ReadGammaTabled decodes a gamma codeword the same way ReadGamma does, but
// consults package internal/prefixtab's precomputed table first: whenever
// the next prefixtab.Bits bits fully contain the codeword, decoding is one
// table lookup instead of a unary scan plus a variable-width field read. It
// falls back to ReadGamma whenever fewer than prefixtab.Bits bits remain in
// the stream or the codeword doesn't fit in the window. The table is keyed
// per bit-order tag; r.IsMsbFirst selects which of prefixtab's two
// precomputed tables matches r's layout.
func ReadGammaTabled(r PeekReader) (uint64, error) {
	v, have, err := r.PeekBits(prefixtab.Bits)
	if err != nil {
		return 0, err
	}
	if have == prefixtab.Bits {
		table := &prefixtab.GammaTableLsb
		if r.IsMsbFirst() {
			table = &prefixtab.GammaTable
		}
		if e := table[v]; e.Length > 0 {
			if err := r.SkipBits(uint(e.Length)); err != nil {
				return 0, err
			}
			return e.Value, nil
		}
	}
	return ReadGamma(r)
}
