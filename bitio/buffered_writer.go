// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bitio

import (
	"runtime"

	"github.com/dsnet/bitcodec/bcerr"
	"github.com/dsnet/bitcodec/internal/bitacc"
	"github.com/dsnet/bitcodec/order"
	"github.com/dsnet/bitcodec/word"
	"github.com/dsnet/bitcodec/wordio"
)

// FinalizerLogger receives a message if a BufferedWriter is garbage
// collected with unflushed bits still buffered. Silent data loss is
// surprising, but panicking from a finalizer is worse, so the default is
// silence and this is opt-in.
type FinalizerLogger interface {
	Logf(format string, args ...any)
}

// BufferedWriter is component G: a sequential bit writer built around an
// in-register accumulator, flushed one word at a time to an underlying
// wordio.Writer. Grounded on flate's huffmanBitWriter: bits accumulate in a
// register (bits/nbits there) and are flushed in whole bytes as they fill;
// here the accumulator is internal/bitacc.Acc and flushes in whole W-bit
// words, with the 128-bit width giving headroom for any single WriteBits
// call up to 64 bits without an intermediate flush.
type BufferedWriter[T order.Tag, W word.Unsigned] struct {
	words  wordio.Writer[W]
	acc    bitacc.Acc
	logger FinalizerLogger
}

// NewBufferedWriter returns a BufferedWriter flushing words to w.
func NewBufferedWriter[T order.Tag, W word.Unsigned](w wordio.Writer[W]) *BufferedWriter[T, W] {
	return &BufferedWriter[T, W]{words: w}
}

// SetFinalizerLogger installs a logger that is notified if this writer is
// garbage collected while holding unflushed bits. There is no default
// logger: most callers call Flush explicitly and never need one. Installing
// a logger registers a runtime finalizer on w; calling Flush or IntoInner
// clears the buffered bits before collection, so the finalizer only ever
// flushes and logs for a genuinely unflushed writer (on an empty one it
// returns without doing anything).
func (w *BufferedWriter[T, W]) SetFinalizerLogger(l FinalizerLogger) {
	w.logger = l
	if l != nil {
		runtime.SetFinalizer(w, (*BufferedWriter[T, W]).finalize)
	} else {
		runtime.SetFinalizer(w, nil)
	}
}

// finalize is the best-effort drop-time flush: it loses at most wd-1
// trailing bits and surfaces no error, only a log line via the installed
// FinalizerLogger.
func (w *BufferedWriter[T, W]) finalize() {
	if w.acc.Valid == 0 || w.logger == nil {
		return
	}
	lost := w.acc.Valid
	if err := w.Flush(); err != nil {
		w.logger.Logf("bitio: BufferedWriter garbage collected without Flush; best-effort flush of %d pending bits failed: %v", lost, err)
		return
	}
	w.logger.Logf("bitio: BufferedWriter garbage collected without Flush; %d pending bits were flushed as zero-padding", lost)
}

// flushWords writes out whole words from the accumulator while at least one
// full word's worth of bits is buffered.
func (w *BufferedWriter[T, W]) flushWords() error {
	wd := word.Bits[W]()
	for w.acc.Valid >= wd {
		var v uint64
		if order.IsMsbFirst[T]() {
			v = w.acc.ExtractTop(wd)
			w.acc.ConsumeTop(wd)
		} else {
			v = w.acc.ExtractBottom(wd)
			w.acc.ConsumeBottom(wd)
		}
		if err := w.words.WriteWord(W(v)); err != nil {
			return err
		}
	}
	return nil
}

// WriteBits writes the low n bits of v (0 <= n <= 64), flushing whole words
// out to the underlying store as the accumulator fills. v must fit within n
// bits; any set bit above position n is a contract violation and fails with
// bcerr.ErrInvalidArg rather than being silently discarded.
func (w *BufferedWriter[T, W]) WriteBits(v uint64, n uint) error {
	if n > 64 {
		return bcerr.ErrInvalidArg
	}
	if v&^mask64(n) != 0 {
		return bcerr.ErrInvalidArg
	}
	if n == 0 {
		return nil
	}
	if order.IsMsbFirst[T]() {
		w.acc.AppendTop(v, n)
	} else {
		w.acc.AppendBottom(v, n)
	}
	return w.flushWords()
}

// WriteUnary writes n zero bits followed by a terminating one bit, under
// either bit-order tag. Long runs are written in 64-bit chunks rather than
// one bit at a time.
func (w *BufferedWriter[T, W]) WriteUnary(n uint64) error {
	for n >= 64 {
		if err := w.WriteBits(0, 64); err != nil {
			return err
		}
		n -= 64
	}
	if err := w.WriteBits(0, uint(n)); err != nil {
		return err
	}
	return w.WriteBits(1, 1)
}

// Flush pads the accumulator's remaining bits out to a whole word with
// zeros and writes it, leaving the accumulator empty. It is a no-op if the
// accumulator is already empty.
func (w *BufferedWriter[T, W]) Flush() error {
	wd := word.Bits[W]()
	if w.acc.Valid == 0 {
		return nil
	}
	pad := wd - w.acc.Valid%wd
	if pad == wd {
		pad = 0
	}
	if pad > 0 {
		if order.IsMsbFirst[T]() {
			w.acc.AppendTop(0, pad)
		} else {
			w.acc.AppendBottom(0, pad)
		}
	}
	return w.flushWords()
}

// IntoInner flushes any remaining bits and returns the underlying word
// writer.
func (w *BufferedWriter[T, W]) IntoInner() (wordio.Writer[W], error) {
	if err := w.Flush(); err != nil {
		return nil, err
	}
	return w.words, nil
}

// CopyFrom drains n bits from r into w, bypassing any external buffering
// either side might otherwise need. It reads and writes in chunks of up to
// 64 bits.
func (w *BufferedWriter[T, W]) CopyFrom(r *BufferedReader[T, W], n uint64) error {
	for n >= 64 {
		v, err := r.ReadBits(64)
		if err != nil {
			return err
		}
		if err := w.WriteBits(v, 64); err != nil {
			return err
		}
		n -= 64
	}
	if n == 0 {
		return nil
	}
	v, err := r.ReadBits(uint(n))
	if err != nil {
		return err
	}
	return w.WriteBits(v, uint(n))
}

// CopyTo is CopyFrom called from the reader's perspective, for symmetry with
// the writer side.
func (r *BufferedReader[T, W]) CopyTo(w *BufferedWriter[T, W], n uint64) error {
	return w.CopyFrom(r, n)
}
