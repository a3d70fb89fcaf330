// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"github.com/dsnet/bitcodec/bcerr"
	"github.com/dsnet/bitcodec/internal/bitacc"
	"github.com/dsnet/bitcodec/order"
	"github.com/dsnet/bitcodec/word"
	"github.com/dsnet/bitcodec/wordio"
)

// BufferedReader is component F: a sequential bit reader built around an
// in-register accumulator, refilled one word at a time from an underlying
// wordio.Reader. Grounded on flate/bit_reader.go's bitReader: bits are
// fetched into bb/nb there (FeedBits) and consumed from the low end
// (TryReadBits); here the accumulator is internal/bitacc.Acc, wide enough to
// hold refills of any W without ever needing a mid-refill consume.
type BufferedReader[T order.Tag, W word.Unsigned] struct {
	words wordio.Reader[W]
	acc   bitacc.Acc
	atEOF bool
}

// NewBufferedReader returns a BufferedReader over r, with an empty
// accumulator.
func NewBufferedReader[T order.Tag, W word.Unsigned](r wordio.Reader[W]) *BufferedReader[T, W] {
	return &BufferedReader[T, W]{words: r}
}

// ensure refills the accumulator, via the underlying word reader, until it
// holds at least n valid bits or the underlying store is exhausted. It
// returns bcerr.ErrEndOfStream if fewer than n bits are available overall.
func (r *BufferedReader[T, W]) ensure(n uint) error {
	wd := word.Bits[W]()
	for r.acc.Valid < n {
		if r.atEOF {
			return bcerr.ErrEndOfStream
		}
		w, err := r.words.ReadNextWord()
		if err != nil {
			if err == bcerr.ErrEndOfStream {
				r.atEOF = true
				continue
			}
			return err
		}
		if order.IsMsbFirst[T]() {
			r.acc.AppendTop(uint64(w), wd)
		} else {
			r.acc.AppendBottom(uint64(w), wd)
		}
	}
	return nil
}

// ReadBits reads the next n bits (0 <= n <= 64) as an unsigned integer.
func (r *BufferedReader[T, W]) ReadBits(n uint) (uint64, error) {
	if n > 64 {
		return 0, bcerr.ErrInvalidArg
	}
	if n == 0 {
		return 0, nil
	}
	if err := r.ensure(n); err != nil {
		return 0, err
	}
	var v uint64
	if order.IsMsbFirst[T]() {
		v = r.acc.ExtractTop(n)
		r.acc.ConsumeTop(n)
	} else {
		v = r.acc.ExtractBottom(n)
		r.acc.ConsumeBottom(n)
	}
	return v, nil
}

// PeekBits returns the next n valid bits without consuming them, for table-
// accelerated code decoding (package ucode). If fewer than n bits remain in
// the stream, the result is zero-padded in the low-significance positions
// for MsbFirst and the high-significance positions for LsbFirst — callers
// that get a short peek near the end of the stream fall back to ReadBits-
// driven decoding of the actual (narrower) code.
func (r *BufferedReader[T, W]) PeekBits(n uint) (v uint64, have uint, err error) {
	if n > 64 {
		return 0, 0, bcerr.ErrInvalidArg
	}
	if err := r.ensure(n); err != nil && err != bcerr.ErrEndOfStream {
		return 0, 0, err
	}
	have = n
	if r.acc.Valid < n {
		have = r.acc.Valid
	}
	if order.IsMsbFirst[T]() {
		top := r.acc.ExtractTop(have)
		return top << (n - have), have, nil
	}
	return r.acc.ExtractBottom(have), have, nil
}

// SkipBits discards n bits without returning their value.
func (r *BufferedReader[T, W]) SkipBits(n uint) error {
	for n > 64 {
		if _, err := r.ReadBits(64); err != nil {
			return err
		}
		n -= 64
	}
	_, err := r.ReadBits(n)
	return err
}

// ReadUnary reads a unary-coded run and returns the count of leading zero
// bits before the terminating one bit. It uses the
// accumulator's leading/trailing zero count directly: the "outside the
// valid region is always zero" invariant (package internal/bitacc) means
// that when every valid bit is itself zero, the scan runs straight through
// into the guaranteed-zero padding beyond Valid, so comparing the raw
// LeadingZeros/TrailingZeros result against Valid is enough to tell "run
// continues, refill and keep scanning" apart from "terminator found at this
// offset" without any adjustment.
func (r *BufferedReader[T, W]) ReadUnary() (uint64, error) {
	var count uint64
	for {
		if err := r.ensure(1); err != nil {
			return 0, err
		}
		var z uint
		if order.IsMsbFirst[T]() {
			z = r.acc.LeadingZeros()
		} else {
			z = r.acc.TrailingZeros()
		}
		if z >= r.acc.Valid {
			count += uint64(r.acc.Valid)
			if order.IsMsbFirst[T]() {
				r.acc.ConsumeTop(r.acc.Valid)
			} else {
				r.acc.ConsumeBottom(r.acc.Valid)
			}
			continue
		}
		count += uint64(z)
		if order.IsMsbFirst[T]() {
			r.acc.ConsumeTop(z + 1)
		} else {
			r.acc.ConsumeBottom(z + 1)
		}
		return count, nil
	}
}

// IsMsbFirst reports which bit-order tag this reader was constructed with,
// so order-sensitive callers (package ucode's table-accelerated decoding)
// can pick the matching table without themselves being generic over T.
func (r *BufferedReader[T, W]) IsMsbFirst() bool { return order.IsMsbFirst[T]() }

// BitPos reports the absolute tape position: the word stream's cursor is
// always ahead of what has actually been consumed by however many bits
// still sit unconsumed in the accumulator.
func (r *BufferedReader[T, W]) BitPos() uint64 {
	wd := uint64(word.Bits[W]())
	return uint64(r.words.Position())*wd - uint64(r.acc.Valid)
}

// BitsRead is not tracked by BufferedReader itself; wrap one in a
// CountingReader (component I) for that.
