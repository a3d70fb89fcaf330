// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wordio

import (
	"github.com/dsnet/bitcodec/bcerr"
	"github.com/dsnet/bitcodec/word"
)

// SliceStore is word storage backed by a pre-allocated, fixed-capacity
// slice. It implements both Reader and Writer: writes past the end of the
// slice fail with bcerr.ErrOutOfBounds rather than growing it.
//
// A position exactly at len(words) is one-past-the-end: valid to seek a
// writer to (the slot a subsequent WriteWord can never actually reach, since
// WriteWord itself is bounds-checked, but the seek is harmless), invalid for
// a reader, which can never legitimately sit past the last word it can read.
//
type SliceStore[W word.Unsigned] struct {
	words    []W
	pos      int64
	writable bool
}

// NewSliceReader returns a Reader over words. The returned store does not
// copy words; mutations to the backing array are visible to the reader.
func NewSliceReader[W word.Unsigned](words []W) *SliceStore[W] {
	return &SliceStore[W]{words: words}
}

// NewSliceWriter returns a Writer over words. WriteWord overwrites existing
// elements; it never grows words, and fails with bcerr.ErrOutOfBounds once
// the cursor reaches len(words).
func NewSliceWriter[W word.Unsigned](words []W) *SliceStore[W] {
	return &SliceStore[W]{words: words, writable: true}
}

func (s *SliceStore[W]) Len() (int64, bool) { return int64(len(s.words)), true }
func (s *SliceStore[W]) Position() int64    { return s.pos }

func (s *SliceStore[W]) SetPosition(k int64) error {
	n := int64(len(s.words))
	if k < 0 || k > n || (k == n && !s.writable) {
		return bcerr.ErrOutOfBounds
	}
	s.pos = k
	return nil
}

func (s *SliceStore[W]) ReadNextWord() (W, error) {
	if s.pos >= int64(len(s.words)) {
		var zero W
		return zero, bcerr.ErrEndOfStream
	}
	w := s.words[s.pos]
	s.pos++
	return w, nil
}

func (s *SliceStore[W]) WriteWord(w W) error {
	if s.pos >= int64(len(s.words)) {
		return bcerr.ErrOutOfBounds
	}
	s.words[s.pos] = w
	s.pos++
	return nil
}

// Words returns the backing slice as currently populated.
func (s *SliceStore[W]) Words() []W { return s.words }

// VecStore is word storage backed by a growable vector: writes past the
// current length extend it, always leaving length >= cursor after a
// successful WriteWord.
//
// Grounded on bzip2.Writer's zw.buf growth in Reset (cap reuse, append on
// demand).
type VecStore[W word.Unsigned] struct {
	words []W
	pos   int64
}

// NewVecWriter returns an empty, growable Writer.
func NewVecWriter[W word.Unsigned]() *VecStore[W] {
	return &VecStore[W]{}
}

// NewVecWriterFrom returns a growable Writer pre-populated with words. The
// cursor starts at 0; writes overwrite existing elements until the cursor
// reaches len(words), then grow it exactly like a fresh VecStore.
func NewVecWriterFrom[W word.Unsigned](words []W) *VecStore[W] {
	return &VecStore[W]{words: words}
}

func (s *VecStore[W]) Len() (int64, bool) { return int64(len(s.words)), true }
func (s *VecStore[W]) Position() int64    { return s.pos }

func (s *VecStore[W]) SetPosition(k int64) error {
	// A vector-backed store is extensible, so SetPosition may target
	// exactly one past the current length (the position a subsequent
	// WriteWord would occupy), but no further — there is nothing to extend
	// to for a bare seek with no write.
	if k < 0 || k > int64(len(s.words)) {
		return bcerr.ErrOutOfBounds
	}
	s.pos = k
	return nil
}

func (s *VecStore[W]) ReadNextWord() (W, error) {
	if s.pos >= int64(len(s.words)) {
		var zero W
		return zero, bcerr.ErrEndOfStream
	}
	w := s.words[s.pos]
	s.pos++
	return w, nil
}

func (s *VecStore[W]) WriteWord(w W) error {
	switch {
	case s.pos < int64(len(s.words)):
		s.words[s.pos] = w
	case s.pos == int64(len(s.words)):
		s.words = append(s.words, w)
	default:
		// Unreachable: SetPosition never admits a cursor beyond len(words).
		return bcerr.ErrOutOfBounds
	}
	s.pos++
	return nil
}

// Words returns the backing slice as currently populated.
func (s *VecStore[W]) Words() []W { return s.words }
