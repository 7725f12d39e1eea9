// SPDX-License-Identifier: LGPL-3.0-or-later

package flood

import (
	"hash/fnv"
	"math"

	"github.com/bits-and-blooms/bitset"
)

// bloomFilter is a standard Kirsch-Mitzenmacher bloom filter: two base
// hashes combine into k probe positions over a bitset.BitSet. No bloom
// filter package exists in the corpus, only the underlying bit array
// (bits-and-blooms/bitset); the double-hashing and sizing formulas below
// are the standard construction built on top of it.
type bloomFilter struct {
	bits *bitset.BitSet
	m    uint // number of bits
	k    uint // number of hash functions
}

// newBloomFilter sizes a filter for n expected items at false-positive
// rate p using the standard optimal-m/optimal-k formulas.
func newBloomFilter(n uint, p float64) *bloomFilter {
	if n == 0 {
		n = 1
	}
	m := optimalM(n, p)
	k := optimalK(m, n)
	return &bloomFilter{bits: bitset.New(m), m: m, k: k}
}

func optimalM(n uint, p float64) uint {
	m := math.Ceil(-1 * float64(n) * math.Log(p) / (math.Ln2 * math.Ln2))
	if m < 1 {
		m = 1
	}
	return uint(m)
}

func optimalK(m, n uint) uint {
	k := math.Round((float64(m) / float64(n)) * math.Ln2)
	if k < 1 {
		k = 1
	}
	return uint(k)
}

// add marks id as present.
func (b *bloomFilter) add(id string) {
	h1, h2 := splitHash(id)
	for i := uint(0); i < b.k; i++ {
		b.bits.Set(probe(h1, h2, i, b.m))
	}
}

// test reports whether id may have been added (false positives possible,
// false negatives never).
func (b *bloomFilter) test(id string) bool {
	h1, h2 := splitHash(id)
	for i := uint(0); i < b.k; i++ {
		if !b.bits.Test(probe(h1, h2, i, b.m)) {
			return false
		}
	}
	return true
}

func probe(h1, h2 uint64, i, m uint) uint {
	return uint((h1 + uint64(i)*h2) % uint64(m))
}

// splitHash derives two independent 64-bit hashes of id from a single
// FNV-1a pass (FNV-128 split into high/low halves).
func splitHash(id string) (uint64, uint64) {
	h := fnv.New128a()
	_, _ = h.Write([]byte(id))
	sum := h.Sum(nil)
	var h1, h2 uint64
	for i := 0; i < 8; i++ {
		h1 = h1<<8 | uint64(sum[i])
		h2 = h2<<8 | uint64(sum[i+8])
	}
	return h1, h2
}
