// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode_test

import (
	"fmt"

	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/order"
	"github.com/dsnet/bitcodec/ucode"
	"github.com/dsnet/bitcodec/wordio"
)

// ExampleWriteGamma_zero shows gamma's cheapest codeword: x=0 costs exactly
// one bit (a lone unary terminator, no data bits at all).
func ExampleWriteGamma_zero() {
	vec := wordio.NewVecWriter[uint8]()
	w := bitio.NewBufferedWriter[order.MsbFirst](vec)
	ucode.WriteGamma(w, 0)
	w.Flush()

	r := bitio.NewBufferedReader[order.MsbFirst](wordio.NewSliceReader(vec.Words()))
	c := bitio.NewCountingReader(r)
	v, _ := ucode.ReadGamma(c)
	fmt.Println(v, c.BitsRead())
	// Output: 0 1
}

// ExampleWriteGamma_max shows gamma coding the large boundary value 2^63-1:
// the codeword widens to roughly 2*log2(x) bits (127 here: 63 zeros, the
// terminator, 63 data bits) and still correctly round trips.
func ExampleWriteGamma_max() {
	vec := wordio.NewVecWriter[uint8]()
	w := bitio.NewBufferedWriter[order.MsbFirst](vec)
	x := uint64(1)<<63 - 1
	ucode.WriteGamma(w, x)
	w.Flush()

	r := bitio.NewBufferedReader[order.MsbFirst](wordio.NewSliceReader(vec.Words()))
	got, _ := ucode.ReadGamma(r)
	fmt.Println(got == x)
	// Output: true
}

// ExampleWriteMinimalBinary_powerOfTwo shows minimal binary degenerating to
// plain fixed-width binary whenever the range is an exact power of two: no
// value needs an extra bit, so every codeword is the same length.
func ExampleWriteMinimalBinary_powerOfTwo() {
	vec := wordio.NewVecWriter[uint8]()
	w := bitio.NewBufferedWriter[order.MsbFirst](vec)
	for x := uint64(0); x < 8; x++ {
		ucode.WriteMinimalBinary(w, 8, x)
	}
	w.Flush()

	r := bitio.NewBufferedReader[order.MsbFirst](wordio.NewSliceReader(vec.Words()))
	cr := bitio.NewCountingReader(r)
	for x := uint64(0); x < 8; x++ {
		ucode.ReadMinimalBinary(cr, 8)
	}
	fmt.Println(cr.BitsRead())
	// Output: 24
}
