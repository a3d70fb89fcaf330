// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package wordio

import (
	"encoding/binary"
	"io"

	"github.com/dsnet/bitcodec/bcerr"
	"github.com/dsnet/bitcodec/word"
)

// StreamReader wraps a byte-oriented io.Reader so it satisfies Reader,
// buffering W/8 bytes per word. It has no known length (Len reports ok =
// false) and SetPosition fails for any position other than the current one,
// since a bare io.Reader cannot seek.
//
// A partial trailing word (fewer than W/8 bytes left in the stream) fails as
// bcerr.ErrEndOfStream.
//
// Grounded on flate/bit_reader.go's handling of an underlying io.Reader, at
// word granularity instead of bit granularity.
type StreamReader[W word.Unsigned] struct {
	r   io.Reader
	pos int64
	buf []byte
}

// NewStreamReader returns a word Reader over r, reading words in host byte
// order.
func NewStreamReader[W word.Unsigned](r io.Reader) *StreamReader[W] {
	return &StreamReader[W]{r: r, buf: make([]byte, word.Bits[W]()/8)}
}

func (s *StreamReader[W]) Len() (int64, bool) { return 0, false }
func (s *StreamReader[W]) Position() int64    { return s.pos }

func (s *StreamReader[W]) SetPosition(k int64) error {
	if k == s.pos {
		return nil
	}
	return bcerr.ErrOutOfBounds
}

func (s *StreamReader[W]) ReadNextWord() (W, error) {
	var zero W
	if _, err := io.ReadFull(s.r, s.buf); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return zero, bcerr.ErrEndOfStream
		}
		return zero, bcerr.WrapIO(err)
	}
	s.pos++
	return decodeWord[W](s.buf), nil
}

// StreamWriter wraps a byte-oriented io.Writer so it satisfies Writer,
// buffering W/8 bytes per word and flushing one word at a time. Len reports
// the number of words written so far. Like StreamReader, it rejects
// SetPosition to any position other than the current one.
type StreamWriter[W word.Unsigned] struct {
	w   io.Writer
	pos int64
	buf []byte
}

// NewStreamWriter returns a word Writer over w, writing words in host byte
// order.
func NewStreamWriter[W word.Unsigned](w io.Writer) *StreamWriter[W] {
	return &StreamWriter[W]{w: w, buf: make([]byte, word.Bits[W]()/8)}
}

func (s *StreamWriter[W]) Len() (int64, bool) { return s.pos, true }
func (s *StreamWriter[W]) Position() int64    { return s.pos }

func (s *StreamWriter[W]) SetPosition(k int64) error {
	if k == s.pos {
		return nil
	}
	return bcerr.ErrOutOfBounds
}

func (s *StreamWriter[W]) ReadNextWord() (W, error) {
	var zero W
	return zero, bcerr.ErrEndOfStream
}

func (s *StreamWriter[W]) WriteWord(w W) error {
	encodeWord(s.buf, w)
	if _, err := s.w.Write(s.buf); err != nil {
		return bcerr.WrapIO(err)
	}
	s.pos++
	return nil
}

func decodeWord[W word.Unsigned](buf []byte) W {
	switch word.Bits[W]() {
	case 8:
		return W(buf[0])
	case 16:
		return W(binary.NativeEndian.Uint16(buf))
	case 32:
		return W(binary.NativeEndian.Uint32(buf))
	default:
		return W(binary.NativeEndian.Uint64(buf))
	}
}

func encodeWord[W word.Unsigned](buf []byte, w W) {
	switch word.Bits[W]() {
	case 8:
		buf[0] = byte(w)
	case 16:
		binary.NativeEndian.PutUint16(buf, uint16(w))
	case 32:
		binary.NativeEndian.PutUint32(buf, uint32(w))
	default:
		binary.NativeEndian.PutUint64(buf, uint64(w))
	}
}
