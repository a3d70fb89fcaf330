// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ucode

import (
	"testing"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bitcodec/bitio"
	"github.com/dsnet/bitcodec/internal/prefixtab"
	"github.com/dsnet/bitcodec/order"
	"github.com/dsnet/bitcodec/wordio"
)

// TestGammaTableSelfCheck exhaustively checks every one of prefixtab's 2^Bits
// table entries against the unaccelerated decoder: for every window whose
// codeword the table claims fits, decoding that exact window the slow way
// must agree on both the consumed length and the decoded value. Grounded on
// dsnet-compress's internal/prefix package testing its canonical-code tables
// the same way — build once, verify exhaustively against the reference
// decode path rather than sampling.
func TestGammaTableSelfCheck(t *testing.T) {
	for w := 0; w < prefixtab.Size; w++ {
		entry := prefixtab.GammaTable[w]
		if entry.Length == 0 {
			continue
		}
		if err := checkGammaEntry(uint64(w), entry); err != nil {
			t.Fatalf("window %#x: %v", w, err)
		}
	}
}

// TestGammaTableLsbSelfCheck is TestGammaTableSelfCheck's counterpart for
// GammaTableLsb, the LsbFirst decode table: one table per bit-order tag,
// not one shared table.
func TestGammaTableLsbSelfCheck(t *testing.T) {
	for w := 0; w < prefixtab.Size; w++ {
		entry := prefixtab.GammaTableLsb[w]
		if entry.Length == 0 {
			continue
		}
		if err := checkGammaEntryLsb(uint64(w), entry); err != nil {
			t.Fatalf("window %#x: %v", w, err)
		}
	}
}

func checkGammaEntry(window uint64, entry prefixtab.Entry) (err error) {
	defer errs.Recover(&err)

	vec := wordio.NewVecWriter[uint8]()
	w := bitio.NewBufferedWriter[order.MsbFirst](vec)
	errs.Panic(w.WriteBits(window, prefixtab.Bits))
	// Pad with ones so a too-short table entry can't accidentally pass by
	// reading into implicit zero padding.
	errs.Panic(w.WriteBits(^uint64(0), 64))
	errs.Panic(w.Flush())

	r := bitio.NewCountingReader(bitio.NewBufferedReader[order.MsbFirst](wordio.NewSliceReader(vec.Words())))
	gotValue, rerr := ReadGamma(r)
	errs.Panic(rerr)

	errs.Assert(gotValue == entry.Value, errMismatch)
	errs.Assert(r.BitsRead() == uint64(entry.Length), errMismatch)
	return nil
}

func checkGammaEntryLsb(window uint64, entry prefixtab.Entry) (err error) {
	defer errs.Recover(&err)

	vec := wordio.NewVecWriter[uint8]()
	w := bitio.NewBufferedWriter[order.LsbFirst](vec)
	errs.Panic(w.WriteBits(window, prefixtab.Bits))
	errs.Panic(w.WriteBits(^uint64(0), 64))
	errs.Panic(w.Flush())

	r := bitio.NewCountingReader(bitio.NewBufferedReader[order.LsbFirst](wordio.NewSliceReader(vec.Words())))
	gotValue, rerr := ReadGamma(r)
	errs.Panic(rerr)

	errs.Assert(gotValue == entry.Value, errMismatch)
	errs.Assert(r.BitsRead() == uint64(entry.Length), errMismatch)
	return nil
}

type selfCheckError string

func (e selfCheckError) Error() string { return string(e) }

const errMismatch = selfCheckError("table entry disagrees with unaccelerated decode")
