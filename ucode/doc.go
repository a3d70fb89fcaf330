// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package ucode implements component H: the universal and parameterized
// codes layered on top of package bitio's ReadBits/WriteBits/ReadUnary/
// WriteUnary primitives — unary, Elias gamma and delta, Boldi-Vigna zeta_k,
// Golomb/Rice, and minimal (truncated) binary.
//
// Every code here operates on the bit-order tag and word width already
// baked into the BitReader/BitWriter it's handed; once ReadBits has
// returned a uint64, the tag has done its job, so nothing in this package
// is itself generic over order.Tag or word.Unsigned — it only needs the
// reader/writer interfaces below, which bitio.BufferedReader,
// bitio.UnbufferedReader, bitio.BufferedWriter, and bitio.CountingReader
// all satisfy regardless of their own type parameters.
//
// Grounded on flate/prefix.go (the "read N bits, interpret as
// a code" shape of huffmanDecoder.readSym) and brotli/prefix_decoder.go
// (its two-level chunked lookup table, reused here by package
// internal/prefixtab for table-accelerated decoding).
package ucode

// BitReader is the surface every decoder in this package needs.
type BitReader interface {
	ReadBits(n uint) (uint64, error)
	ReadUnary() (uint64, error)
}

// BitWriter is the surface every encoder in this package needs.
type BitWriter interface {
	WriteBits(v uint64, n uint) error
	WriteUnary(n uint64) error
}

// PeekReader is implemented by BitReaders that can look ahead without
// consuming, which table-accelerated decoding needs. bitio.BufferedReader
// satisfies it; bitio.UnbufferedReader and bitio.CountingReader do not, and
// fall back to the unaccelerated decoders in this package. IsMsbFirst lets
// table-accelerated decoding pick the table matching the reader's bit-order
// tag without this package itself being generic over order.Tag.
type PeekReader interface {
	BitReader
	PeekBits(n uint) (v uint64, have uint, err error)
	SkipBits(n uint) error
	IsMsbFirst() bool
}
