// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitacc

import (
	"math/rand"
	"testing"
)

// TestTopRoundTrip exercises the MsbFirst (Top) layout: bits appended in
// order must be extracted in the same order, and the accumulator must
// return to its zero value once everything is consumed.
func TestTopRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var a Acc
	var chunks []uint64
	var widths []uint
	for a.Valid <= 64 {
		n := uint(1 + rng.Intn(32))
		if a.Valid+n > 128 {
			break
		}
		v := rng.Uint64() & (1<<n - 1)
		a.AppendTop(v, n)
		chunks = append(chunks, v)
		widths = append(widths, n)
	}
	for i, want := range chunks {
		n := widths[i]
		got := a.ExtractTop(n)
		if got != want {
			t.Fatalf("chunk #%d: ExtractTop(%d) = %#x, want %#x", i, n, got, want)
		}
		a.ConsumeTop(n)
	}
	if a != (Acc{}) {
		t.Fatalf("accumulator not empty after consuming every chunk: %+v", a)
	}
}

// TestBottomRoundTrip is TestTopRoundTrip's counterpart for the LsbFirst
// (Bottom) layout.
func TestBottomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	var a Acc
	var chunks []uint64
	var widths []uint
	for a.Valid <= 64 {
		n := uint(1 + rng.Intn(32))
		if a.Valid+n > 128 {
			break
		}
		v := rng.Uint64() & (1<<n - 1)
		a.AppendBottom(v, n)
		chunks = append(chunks, v)
		widths = append(widths, n)
	}
	for i, want := range chunks {
		n := widths[i]
		got := a.ExtractBottom(n)
		if got != want {
			t.Fatalf("chunk #%d: ExtractBottom(%d) = %#x, want %#x", i, n, got, want)
		}
		a.ConsumeBottom(n)
	}
	if a != (Acc{}) {
		t.Fatalf("accumulator not empty after consuming every chunk: %+v", a)
	}
}

// TestZerosOutsideValidRegion checks the invariant that every bit outside
// the valid region reads back as zero, which is what lets ReadUnary treat
// LeadingZeros/TrailingZeros as already saturating at Valid.
func TestZerosOutsideValidRegion(t *testing.T) {
	var top Acc
	top.AppendTop(1<<20-1, 20) // valid bits occupy the top 20 bits, all set
	if got, want := top.TrailingZeros(), uint(128-20); got != want {
		t.Errorf("Top: TrailingZeros() = %d, want %d", got, want)
	}

	var bottom Acc
	bottom.AppendBottom(1<<20-1, 20) // valid bits occupy the bottom 20 bits, all set
	if got, want := bottom.LeadingZeros(), uint(128-20); got != want {
		t.Errorf("Bottom: LeadingZeros() = %d, want %d", got, want)
	}
}

// TestUnaryScanAllZeroRunsThroughPadding confirms that scanning an
// all-zero valid region reports a zero count that extends past Valid into
// the guaranteed-zero padding beyond it (the property bitio.ReadUnary
// relies on instead of special-casing the boundary).
func TestUnaryScanAllZeroRunsThroughPadding(t *testing.T) {
	var a Acc
	a.AppendTop(0, 10)
	if got := a.LeadingZeros(); got < a.Valid {
		t.Errorf("LeadingZeros() = %d, want >= Valid (%d)", got, a.Valid)
	}
}

func TestAppendTopFillsHighestBits(t *testing.T) {
	var a Acc
	a.AppendTop(0b101, 3)
	if a.Hi>>61 != 0b101 {
		t.Errorf("Hi>>61 = %b, want 101", a.Hi>>61)
	}
	if a.Valid != 3 {
		t.Errorf("Valid = %d, want 3", a.Valid)
	}
}

func TestAppendBottomFillsLowestBits(t *testing.T) {
	var a Acc
	a.AppendBottom(0b101, 3)
	if a.Lo != 0b101 {
		t.Errorf("Lo = %b, want 101", a.Lo)
	}
	if a.Valid != 3 {
		t.Errorf("Valid = %d, want 3", a.Valid)
	}
}

func TestFullWidthAppendAndExtract(t *testing.T) {
	var top, bottom Acc
	top.AppendTop(^uint64(0), 64)
	if got := top.ExtractTop(64); got != ^uint64(0) {
		t.Errorf("Top: ExtractTop(64) = %#x, want all-ones", got)
	}
	top.ConsumeTop(64)
	if top.Valid != 0 {
		t.Errorf("Top: Valid = %d after consuming 64, want 0", top.Valid)
	}

	bottom.AppendBottom(^uint64(0), 64)
	if got := bottom.ExtractBottom(64); got != ^uint64(0) {
		t.Errorf("Bottom: ExtractBottom(64) = %#x, want all-ones", got)
	}
	bottom.ConsumeBottom(64)
	if bottom.Valid != 0 {
		t.Errorf("Bottom: Valid = %d after consuming 64, want 0", bottom.Valid)
	}
}

func TestReset(t *testing.T) {
	var a Acc
	a.AppendTop(0x1234, 16)
	a.Reset()
	if a != (Acc{}) {
		t.Errorf("Reset() left %+v, want zero value", a)
	}
}
