// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"github.com/dsnet/bitcodec/order"
	"github.com/dsnet/bitcodec/word"
)

// CopyBits copies n bits from src to dst. When both sides are currently
// byte/word-aligned (their accumulators empty) and n spans a whole number
// of words, it copies directly word-by-word instead of through the 64-bit-
// chunked BufferedWriter.CopyFrom path, avoiding the accumulator entirely.
// Matches flate/bit_reader.go's fast path that switches to a
// raw byte copy once a reader reaches a byte boundary instead of shifting
// bits through its register one byte at a time.
func CopyBits[T order.Tag, W word.Unsigned](dst *BufferedWriter[T, W], src *BufferedReader[T, W], n uint64) error {
	wd := uint64(word.Bits[W]())
	if src.acc.Valid == 0 && dst.acc.Valid == 0 && n%wd == 0 {
		for n > 0 {
			w, err := src.words.ReadNextWord()
			if err != nil {
				return err
			}
			if err := dst.words.WriteWord(w); err != nil {
				return err
			}
			n -= wd
		}
		return nil
	}
	return dst.CopyFrom(src, n)
}
