// SPDX-License-Identifier: LGPL-3.0-or-later

// Package flood implements the inbound flood-protection layer of
// spec.md section 4.9: message-id deduplication via a rotating bloom
// filter, and a per-peer token-bucket rate limiter. Both are applied to
// every inbound pubsub/transport message after signature verification
// but before handler dispatch.
package flood

import "sync"

// DefaultExpectedItems and DefaultFalsePositiveRate size a fresh
// Deduplicator filter, per spec.md section 4.9.
const (
	DefaultExpectedItems     = 10000
	DefaultFalsePositiveRate = 0.01
)

// Deduplicator tracks recently seen message ids across a rotating pair
// of bloom filters: current absorbs new entries, previous stays
// available read-through during the transition window so a rotation
// never produces a false "not seen" for an id marked just before it.
type Deduplicator struct {
	mu       sync.Mutex
	current  *bloomFilter
	previous *bloomFilter
	n        uint
	p        float64
	count    uint
}

// NewDeduplicator builds a Deduplicator sized for n expected items at
// false-positive rate p.
func NewDeduplicator(n uint, p float64) *Deduplicator {
	if n == 0 {
		n = DefaultExpectedItems
	}
	if p <= 0 {
		p = DefaultFalsePositiveRate
	}
	return &Deduplicator{current: newBloomFilter(n, p), n: n, p: p}
}

// IsDuplicate reports whether id has already been marked seen, checking
// both the current filter and, if still live, the previous one.
func (d *Deduplicator) IsDuplicate(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current.test(id) {
		return true
	}
	return d.previous != nil && d.previous.test(id)
}

// MarkSeen records id as seen in the current filter, rotating first if
// the current filter has reached its expected capacity.
func (d *Deduplicator) MarkSeen(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.shouldRotateLocked() {
		d.rotateLocked()
	}
	d.current.add(id)
	d.count++
}

// CheckAndMark is the combined operation applied to every inbound
// message: it reports true (duplicate, drop) without marking, or false
// and marks the id seen for next time.
func (d *Deduplicator) CheckAndMark(id string) (duplicate bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current.test(id) || (d.previous != nil && d.previous.test(id)) {
		return true
	}
	if d.shouldRotateLocked() {
		d.rotateLocked()
	}
	d.current.add(id)
	d.count++
	return false
}

func (d *Deduplicator) shouldRotateLocked() bool {
	return d.count >= d.n
}

func (d *Deduplicator) rotateLocked() {
	d.previous = d.current
	d.current = newBloomFilter(d.n, d.p)
	d.count = 0
}
