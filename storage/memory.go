// SPDX-License-Identifier: LGPL-3.0-or-later

package storage

import (
	"context"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/ecco-mesh/ecco/reputation"
	"github.com/ecco-mesh/ecco/settlement"
)

// MemoryLedgerStore implements settlement.LedgerStore with a
// mutex-protected map. Suitable for a single-process node or tests;
// state is lost on restart.
type MemoryLedgerStore struct {
	mu      sync.RWMutex
	entries map[string]LedgerEntry
}

// NewMemoryLedgerStore returns an empty MemoryLedgerStore.
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{entries: make(map[string]LedgerEntry)}
}

var _ settlement.LedgerStore = (*MemoryLedgerStore)(nil)

func (m *MemoryLedgerStore) MarkSettled(ctx context.Context, entryID string, txHash common.Hash) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entryID] = LedgerEntry{
		EntryID:    entryID,
		Status:     "settled",
		TxHash:     txHash.Hex(),
		ResolvedAt: time.Now(),
	}
	return nil
}

func (m *MemoryLedgerStore) MarkCancelled(ctx context.Context, entryID string, reason string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entryID] = LedgerEntry{
		EntryID:    entryID,
		Status:     "cancelled",
		Reason:     reason,
		ResolvedAt: time.Now(),
	}
	return nil
}

// Get returns the recorded entry for entryID, if any. Exposed for tests
// and inspection tooling; not part of settlement.LedgerStore.
func (m *MemoryLedgerStore) Get(entryID string) (LedgerEntry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[entryID]
	return e, ok
}

// MemoryReputationStore implements reputation.Committer as an
// in-memory append log, keyed by peer id.
type MemoryReputationStore struct {
	mu     sync.RWMutex
	events map[string][]ReputationEvent
}

// NewMemoryReputationStore returns an empty MemoryReputationStore.
func NewMemoryReputationStore() *MemoryReputationStore {
	return &MemoryReputationStore{events: make(map[string][]ReputationEvent)}
}

var _ reputation.Committer = (*MemoryReputationStore)(nil)

func (m *MemoryReputationStore) Commit(ctx context.Context, ratings []reputation.Rating) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range ratings {
		m.events[r.PeerID] = append(m.events[r.PeerID], ReputationEvent{
			PeerID:    r.PeerID,
			Success:   r.Success,
			Timestamp: r.Timestamp,
		})
	}
	return nil
}

// Events returns the committed history for a peer. Exposed for tests
// and inspection tooling.
func (m *MemoryReputationStore) Events(peerID string) []ReputationEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ReputationEvent, len(m.events[peerID]))
	copy(out, m.events[peerID])
	return out
}
