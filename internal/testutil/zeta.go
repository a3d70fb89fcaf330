// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"math"
	"sort"
)

// zetaHorizon bounds the support of the truncated distribution Zeta samples
// from. s > 1 makes the zeta series converge quickly, so the mass beyond
// this point is negligible for test purposes; this only needs to look like
// a real skewed integer sequence, not match the distribution exactly.
const zetaHorizon = 1 << 16

// Zeta draws non-negative integers from a Zipf/zeta-like distribution via
// inverse-transform sampling against the same deterministic Rand used
// elsewhere in this package: P(X = k) is proportional to (k+1)^-s. Universal
// codes are tuned for exactly this skew (many small values, a long tail of
// large ones), so round-trip tests that only ever sample uniformly never
// exercise a code's long codewords; this produces the same mix a real
// bit-packed integer sequence would.
type Zeta struct {
	rng *Rand
	cdf []float64 // cdf[k] = P(X <= k), precomputed once up to zetaHorizon
}

// NewZeta returns a Zeta sampler with skew parameter s (s > 1; larger s
// concentrates more probability mass on small values). The cumulative
// distribution is built once at construction so each Next call is a binary
// search rather than a fresh pass over the series.
func NewZeta(rng *Rand, s float64) *Zeta {
	cdf := make([]float64, zetaHorizon)
	var norm float64
	for k := range cdf {
		norm += math.Pow(float64(k+1), -s)
		cdf[k] = norm
	}
	for k := range cdf {
		cdf[k] /= norm
	}
	return &Zeta{rng: rng, cdf: cdf}
}

// Next returns the next sample.
func (z *Zeta) Next() uint64 {
	u := float64(uint32(z.rng.Int())) / float64(1<<32)
	k := sort.Search(len(z.cdf), func(i int) bool { return z.cdf[i] >= u })
	if k == len(z.cdf) {
		k--
	}
	return uint64(k)
}
