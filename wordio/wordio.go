// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package wordio implements component C (word reader/writer) and component D
// (stream-to-word adapter) of the bit-stream codec: sequential, word-at-a-
// time access over a backing store, addressed by a cursor measured in words.
//
// Grounded on bzip2.Writer's buffer-growth pattern (Reset
// extends zw.buf on demand) for the growable VecStore, and on
// flate/bit_reader.go's bufio Peek/Discard fast path for the StreamReader,
// adapted from bit granularity to whole-word granularity.
package wordio

import "github.com/dsnet/bitcodec/word"

// Reader is a sequential, word-at-a-time source, addressed by a cursor
// measured in words.
type Reader[W word.Unsigned] interface {
	// Len reports the total number of words, if known. ok is false for an
	// unbounded stream (e.g. one backed by an io.Reader of unknown length).
	Len() (n int64, ok bool)

	// Position reports the current cursor, in words.
	Position() int64

	// SetPosition moves the cursor. It fails with bcerr.ErrOutOfBounds if k
	// exceeds the known length of a non-extensible store.
	SetPosition(k int64) error

	// ReadNextWord reads the word at the cursor and advances it. It fails
	// with bcerr.ErrEndOfStream at the end of the store.
	ReadNextWord() (W, error)
}

// Writer is a Reader that can also extend or overwrite the store.
type Writer[W word.Unsigned] interface {
	Reader[W]

	// WriteWord writes w at the cursor and advances it. Slice-backed stores
	// fail with bcerr.ErrOutOfBounds past their fixed capacity; vector-
	// backed stores grow to accommodate.
	WriteWord(w W) error
}
