// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package word_test

import (
	"testing"

	"github.com/dsnet/bitcodec/word"
)

func TestBits(t *testing.T) {
	if got, want := word.Bits[uint8](), uint(8); got != want {
		t.Errorf("Bits[uint8]() = %d, want %d", got, want)
	}
	if got, want := word.Bits[uint16](), uint(16); got != want {
		t.Errorf("Bits[uint16]() = %d, want %d", got, want)
	}
	if got, want := word.Bits[uint32](), uint(32); got != want {
		t.Errorf("Bits[uint32]() = %d, want %d", got, want)
	}
	if got, want := word.Bits[uint64](), uint(64); got != want {
		t.Errorf("Bits[uint64]() = %d, want %d", got, want)
	}
}
