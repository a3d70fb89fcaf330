// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package serial implements component J: the Serialize/Deserialize
// contracts higher-level formats use to compose several codec-stack
// operations (a handful of ReadBits/WriteBits/ReadGamma/... calls, each of
// which can fail) into one value-returning step, instead of threading an
// error return through every call site by hand.
//
// Grounded on xflate/meta's reader.go/writer.go: every field of a meta
// block there is read or written by a sequence of readBits/writeBits and
// errs.Assert calls under one deferred errs.Recover, so a malformed stream
// anywhere in the block surfaces as a single returned error instead of
// needing an if err != nil after every step. This package generalizes that
// pattern from "one hardcoded meta-block layout" to "any ordered sequence
// of fields a caller supplies".
package serial

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/bitcodec/ucode"
)

// Field is one value within a composite record: a name (used only for
// error messages) plus the encode/decode steps for that value.
type Field struct {
	Name   string
	Encode func(w ucode.BitWriter) error
	Decode func(r ucode.BitReader) error
}

// BitsField returns a Field that writes/reads n bits of *v as an unsigned
// integer, the most common case.
func BitsField(name string, v *uint64, n uint) Field {
	return Field{
		Name: name,
		Encode: func(w ucode.BitWriter) error {
			return w.WriteBits(*v, n)
		},
		Decode: func(r ucode.BitReader) error {
			got, err := r.ReadBits(n)
			*v = got
			return err
		},
	}
}

// GammaField returns a Field that writes/reads *v as an Elias gamma code.
func GammaField(name string, v *uint64) Field {
	return Field{
		Name: name,
		Encode: func(w ucode.BitWriter) error {
			return ucode.WriteGamma(w, *v)
		},
		Decode: func(r ucode.BitReader) error {
			got, err := ucode.ReadGamma(r)
			*v = got
			return err
		},
	}
}

// fieldError names which field of a composite record failed.
type fieldError struct {
	name string
	err  error
}

func (e *fieldError) Error() string { return e.name + ": " + e.err.Error() }
func (e *fieldError) Unwrap() error { return e.err }

// countingWriter wraps a ucode.BitWriter and tallies the total number of
// bits written through it, so Serialize can hand back that count without
// every Field's Encode closure doing its own bookkeeping.
type countingWriter struct {
	w    ucode.BitWriter
	bits uint64
}

func (c *countingWriter) WriteBits(v uint64, n uint) error {
	if err := c.w.WriteBits(v, n); err != nil {
		return err
	}
	c.bits += uint64(n)
	return nil
}

func (c *countingWriter) WriteUnary(n uint64) error {
	if err := c.w.WriteUnary(n); err != nil {
		return err
	}
	c.bits += n + 1
	return nil
}

// Serialize writes every field's value to w in order and returns the number
// of bits emitted. The first field whose Encode fails aborts the whole
// record; the returned error identifies which field failed.
func Serialize(w ucode.BitWriter, fields ...Field) (bits uint64, err error) {
	defer errs.Recover(&err)
	cw := &countingWriter{w: w}
	for _, f := range fields {
		if ferr := f.Encode(cw); ferr != nil {
			errs.Panic(&fieldError{f.Name, ferr})
		}
	}
	return cw.bits, nil
}

// Deserialize allocates a fresh T via build, which returns both the new
// value and the Fields bound to its members, then decodes each field from r
// in order and returns the populated value. The first field whose Decode
// fails aborts the whole record; the returned error identifies which field
// failed.
func Deserialize[T any](r ucode.BitReader, build func() (*T, []Field)) (v T, err error) {
	defer errs.Recover(&err)
	val, fields := build()
	for _, f := range fields {
		if ferr := f.Decode(r); ferr != nil {
			errs.Panic(&fieldError{f.Name, ferr})
		}
	}
	return *val, nil
}
