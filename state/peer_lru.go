// SPDX-License-Identifier: LGPL-3.0-or-later

package state

import (
	"container/list"
)

// PeerLRU is the bounded, LRU-evicted peer set backing NodeState.Peers.
// Capped at maxPeers (spec.md section 3/5, default 10000); evicted by
// idleness elsewhere (stalePeerTimeoutMs) and by LRU here when full.
type PeerLRU struct {
	capacity int
	byID     map[string]*list.Element
	order    *list.List // front = most recently touched
}

type peerLRUEntry struct {
	id   string
	info PeerInfo
}

// NewPeerLRU constructs an empty bounded peer set.
func NewPeerLRU(capacity int) *PeerLRU {
	if capacity <= 0 {
		capacity = 10000
	}
	return &PeerLRU{
		capacity: capacity,
		byID:     make(map[string]*list.Element),
		order:    list.New(),
	}
}

// Clone deep-copies the LRU for copy-on-write mutation.
func (l *PeerLRU) Clone() *PeerLRU {
	nl := NewPeerLRU(l.capacity)
	// Walk back-to-front so PushFront reproduces the same relative order.
	for el := l.order.Back(); el != nil; el = el.Prev() {
		e := el.Value.(*peerLRUEntry)
		nEl := nl.order.PushFront(&peerLRUEntry{id: e.id, info: e.info.Clone()})
		nl.byID[e.id] = nEl
	}
	return nl
}

// Get returns the peer record for id, if present.
func (l *PeerLRU) Get(id string) (PeerInfo, bool) {
	el, ok := l.byID[id]
	if !ok {
		return PeerInfo{}, false
	}
	return el.Value.(*peerLRUEntry).info, true
}

// Upsert inserts or updates a peer in place, moving it to the front
// (most-recently-touched), evicting the least-recently-touched entry if
// this insertion exceeds capacity. Returns the id of any evicted peer.
func (l *PeerLRU) Upsert(info PeerInfo) (evicted string, didEvict bool) {
	if el, ok := l.byID[info.ID]; ok {
		el.Value.(*peerLRUEntry).info = info
		l.order.MoveToFront(el)
		return "", false
	}
	el := l.order.PushFront(&peerLRUEntry{id: info.ID, info: info})
	l.byID[info.ID] = el
	if len(l.byID) > l.capacity {
		oldest := l.order.Back()
		e := oldest.Value.(*peerLRUEntry)
		l.order.Remove(oldest)
		delete(l.byID, e.id)
		return e.id, true
	}
	return "", false
}

// Remove deletes a peer from the set.
func (l *PeerLRU) Remove(id string) {
	if el, ok := l.byID[id]; ok {
		l.order.Remove(el)
		delete(l.byID, id)
	}
}

// Len returns the number of peers currently tracked.
func (l *PeerLRU) Len() int { return len(l.byID) }

// Range calls fn for every peer, most-recently-touched first. fn must
// not mutate the LRU.
func (l *PeerLRU) Range(fn func(PeerInfo) bool) {
	for el := l.order.Front(); el != nil; el = el.Next() {
		if !fn(el.Value.(*peerLRUEntry).info) {
			return
		}
	}
}

// EvictIdleBefore removes every peer whose LastSeen predates cutoff,
// returning their ids (spec.md section 3 "evicted when idle beyond
// stalePeerTimeoutMs").
func (l *PeerLRU) EvictIdleBefore(cutoffUnixNano int64) []string {
	var evicted []string
	for el := l.order.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*peerLRUEntry)
		if e.info.LastSeen.UnixNano() < cutoffUnixNano {
			evicted = append(evicted, e.id)
			l.order.Remove(el)
			delete(l.byID, e.id)
		}
		el = next
	}
	return evicted
}
