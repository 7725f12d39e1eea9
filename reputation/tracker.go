// SPDX-License-Identifier: LGPL-3.0-or-later

// Package reputation implements the per-peer local reputation tracker
// of spec.md section 4.12: interaction counters, a lazily-resolved
// peer-to-wallet mapping, and a batched commit of pending ratings.
// Bloom-filter tier gossip is explicitly external to this core.
package reputation

import (
	"context"
	"sync"
	"time"

	"github.com/ecco-mesh/ecco/internal/logger"
)

// Tier thresholds, per spec.md section 4.12.
const (
	TierElite      = "elite"
	TierGood       = "good"
	TierAcceptable = "acceptable"
	TierNone       = "none"

	eliteThreshold      = 90
	goodThreshold       = 70
	acceptableThreshold = 50
)

// Defaults for the batched commit, per spec.md section 4.12.
const (
	DefaultCommitThreshold = 10
	DefaultCommitInterval  = 24 * time.Hour
)

// Rating is a single local outcome observation awaiting commit.
type Rating struct {
	PeerID    string
	Success   bool
	Timestamp time.Time
}

// PeerRecord is the per-peer counters of spec.md section 4.12.
type PeerRecord struct {
	LocalScore        float64
	SuccessfulJobs    int64
	FailedJobs        int64
	TotalJobs         int64
	LastInteractionAt time.Time
	PendingRatings    []Rating
}

// Tier classifies score into the named band spec.md section 4.12 feeds
// to the external bloom-filter tier gossip.
func Tier(score float64) string {
	switch {
	case score >= eliteThreshold:
		return TierElite
	case score >= goodThreshold:
		return TierGood
	case score >= acceptableThreshold:
		return TierAcceptable
	default:
		return TierNone
	}
}

// WalletResolver lazily resolves a peer id's on-chain identity binding.
type WalletResolver func(ctx context.Context, peerID string) (string, error)

// Committer flushes a batch of ratings to durable storage.
type Committer interface {
	Commit(ctx context.Context, ratings []Rating) error
}

// Config configures a Tracker.
type Config struct {
	Resolver        WalletResolver
	Committer       Committer
	CommitThreshold int
	CommitInterval  time.Duration
	Log             logger.Logger
}

func (c *Config) applyDefaults() {
	if c.CommitThreshold <= 0 {
		c.CommitThreshold = DefaultCommitThreshold
	}
	if c.CommitInterval <= 0 {
		c.CommitInterval = DefaultCommitInterval
	}
	if c.Log == nil {
		c.Log = logger.GetDefaultLogger()
	}
}

// Tracker holds every known peer's local reputation record.
type Tracker struct {
	cfg Config

	mu      sync.Mutex
	peers   map[string]*PeerRecord
	wallets map[string]string

	lastCommit time.Time
}

// New builds a Tracker from cfg, applying spec.md section 4.12's
// defaults for CommitThreshold/CommitInterval.
func New(cfg Config) *Tracker {
	cfg.applyDefaults()
	return &Tracker{
		cfg:        cfg,
		peers:      make(map[string]*PeerRecord),
		wallets:    make(map[string]string),
		lastCommit: time.Now(),
	}
}

// RecordLocalSuccess records a successful local interaction with peerID.
func (t *Tracker) RecordLocalSuccess(ctx context.Context, peerID string) {
	t.record(ctx, peerID, true)
}

// RecordLocalFailure records a failed local interaction with peerID.
func (t *Tracker) RecordLocalFailure(ctx context.Context, peerID string) {
	t.record(ctx, peerID, false)
}

func (t *Tracker) record(ctx context.Context, peerID string, success bool) {
	t.mu.Lock()
	rec := t.recordFor(peerID)
	now := time.Now()
	rec.TotalJobs++
	if success {
		rec.SuccessfulJobs++
	} else {
		rec.FailedJobs++
	}
	rec.LastInteractionAt = now
	rec.LocalScore = scoreFrom(rec.SuccessfulJobs, rec.FailedJobs)
	rec.PendingRatings = append(rec.PendingRatings, Rating{PeerID: peerID, Success: success, Timestamp: now})

	shouldFlush := len(rec.PendingRatings) >= t.cfg.CommitThreshold || now.Sub(t.lastCommit) >= t.cfg.CommitInterval
	var batch []Rating
	if shouldFlush {
		batch = rec.PendingRatings
		rec.PendingRatings = nil
		t.lastCommit = now
	}
	t.mu.Unlock()

	if shouldFlush && t.cfg.Committer != nil && len(batch) > 0 {
		if err := t.cfg.Committer.Commit(ctx, batch); err != nil {
			t.cfg.Log.Error("reputation: commit failed", logger.Error(err))
		}
	}
}

func (t *Tracker) recordFor(peerID string) *PeerRecord {
	rec, ok := t.peers[peerID]
	if !ok {
		rec = &PeerRecord{}
		t.peers[peerID] = rec
	}
	return rec
}

// scoreFrom maps (successes, failures) onto a 0-100 scale; a peer with
// no interactions scores 0 (neither rewarded nor penalized yet).
func scoreFrom(successes, failures int64) float64 {
	total := successes + failures
	if total == 0 {
		return 0
	}
	return 100 * float64(successes) / float64(total)
}

// Score returns peerID's current local score, or 0 if unknown.
func (t *Tracker) Score(peerID string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.peers[peerID]
	if !ok {
		return 0
	}
	return rec.LocalScore
}

// Record returns a copy of peerID's current record, or the zero value
// if unknown.
func (t *Tracker) Record(peerID string) PeerRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, ok := t.peers[peerID]
	if !ok {
		return PeerRecord{}
	}
	return *rec
}

// Wallet returns peerID's on-chain identity binding, resolving and
// caching it via the configured WalletResolver on first access.
func (t *Tracker) Wallet(ctx context.Context, peerID string) (string, error) {
	t.mu.Lock()
	if w, ok := t.wallets[peerID]; ok {
		t.mu.Unlock()
		return w, nil
	}
	t.mu.Unlock()

	if t.cfg.Resolver == nil {
		return "", nil
	}
	w, err := t.cfg.Resolver(ctx, peerID)
	if err != nil {
		return "", err
	}

	t.mu.Lock()
	t.wallets[peerID] = w
	t.mu.Unlock()
	return w, nil
}

// FlushPending force-commits every peer's pending ratings regardless of
// threshold/interval, e.g. during node shutdown.
func (t *Tracker) FlushPending(ctx context.Context) error {
	t.mu.Lock()
	var batch []Rating
	for _, rec := range t.peers {
		if len(rec.PendingRatings) == 0 {
			continue
		}
		batch = append(batch, rec.PendingRatings...)
		rec.PendingRatings = nil
	}
	t.lastCommit = time.Now()
	t.mu.Unlock()

	if t.cfg.Committer == nil || len(batch) == 0 {
		return nil
	}
	return t.cfg.Committer.Commit(ctx, batch)
}
