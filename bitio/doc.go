// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bitio implements components E, F, G, and I of the bit-stream
// codec: the unbuffered (random-access) bit reader, the buffered
// (sequential, accumulator-based) bit reader and writer, and the counting
// reader wrapper.
//
// Every type here is generic over a bit-order tag (package order) and a
// machine word width (package word), resolved at compile time: a type
// parameter's method set is bound statically per instantiation, so
// branching on order.IsMsbFirst[T]() in a hot loop never goes through an
// interface's itab the way a plain order.Tag-typed field would.
//
// Grounded on flate/bit_reader.go (FeedBits/TryReadBits
// refill discipline) and brotli/bit_reader.go (the simpler non-bufio
// variant), generalized from a fixed byte-wide, LSB-first accumulator to
// any of the four word widths and either bit-order tag, layered on top of
// package internal/bitacc's 128-bit accumulator.
package bitio
